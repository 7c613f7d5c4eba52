package main

import (
	"bytes"
	"io/ioutil"
	"os"

	"github.com/google/renameio"
)

// rewriteFile filters the named file through the same pipeline stdin
// takes, then replaces it atomically so that any error leaves the
// original untouched.
func (cfg *config) rewriteFile(name string) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := cfg.run(bytes.NewReader(data), &buf); err != nil {
		return err
	}
	return renameio.WriteFile(name, buf.Bytes(), info.Mode().Perm())
}
