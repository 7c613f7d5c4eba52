package main

import "os"

func main() {
	os.Exit(newConfig().main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
