package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/reflow/internal/reflow"
	"github.com/jcorbin/reflow/internal/textio"
)

func (cfg *config) main(args []string, in io.Reader, out, errw io.Writer) int {
	err := cfg.fromEnv()
	if err == nil && !cfg.help && !cfg.version {
		err = cfg.parseArgs(args)
	}
	if err == nil && !cfg.help && !cfg.version {
		if len(cfg.files) > 0 {
			for _, name := range cfg.files {
				if err = cfg.rewriteFile(name); err != nil {
					break
				}
			}
		} else {
			err = cfg.run(in, out)
		}
	}

	errout := out
	if cfg.stderr {
		errout = errw
	}
	if err != nil {
		msg := err.Error()
		if len(msg) > 162 {
			msg = msg[:162]
		}
		fmt.Fprintf(errout, "reflow error:\n%s\n", msg)
	}
	if cfg.version {
		fmt.Fprintln(errout, versionString)
	}
	if cfg.help {
		fmt.Fprint(errout, usage)
	}

	if err != nil {
		return 1
	}
	return 0
}

// run filters in to out: blank lines and protected lines pass through,
// while every other run of lines forms an input paragraph that is
// delimited and reflowed.
func (cfg *config) run(in io.Reader, out io.Writer) error {
	rd := textio.NewReader(in)
	w := textio.NewWriter(out)
	if err := cfg.filter(rd, w); err != nil {
		return err
	}
	return w.Flush()
}

func (cfg *config) filter(rd *textio.Reader, w *textio.Writer) error {
	touch := cfg.touch
	if !cfg.touchSet {
		touch = cfg.fit || cfg.last
	}

	para := reflow.Reader{
		Protect:   cfg.protectchars,
		Quote:     cfg.quotechars,
		QuoteGaps: cfg.quote,
		Invisible: cfg.invis,
	}

	sawnonblank, oweblank := false, false
	for {
		var c byte
		ok := true

		// pass through blank lines and protected lines; with expel on,
		// blanks are owed rather than written so runs collapse
	skim:
		for {
			c, ok = rd.ReadByte()
			if !ok {
				break
			}
			if cfg.expel && c == '\n' {
				oweblank = sawnonblank
				continue
			}
			if cfg.protectchars.Has(c) {
				sawnonblank = true
				if oweblank {
					w.WriteByte('\n')
					oweblank = false
				}
				for c != '\n' {
					w.WriteByte(c)
					if c, ok = rd.ReadByte(); !ok {
						break skim
					}
				}
			}
			if c != '\n' {
				break
			}
			w.WriteByte('\n')
		}
		if !ok {
			break
		}
		rd.Unread()

		lines, props, err := para.ReadParagraph(rd)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			continue
		}

		sawnonblank = true
		if oweblank {
			w.WriteByte('\n')
			oweblank = false
		}

		reflow.Delimit(lines, props, cfg.bodychars, cfg.repeat, cfg.div)
		if cfg.expel {
			reflow.MarkSuperfluous(lines, props)
		}

		i := 0
		for i < len(lines) {
			prop := props[i]
			if prop.Bodiless() {
				if !prop.Invisible() && !(cfg.expel && prop.Superfluous()) {
					if err := reflow.WriteBodiless(w, lines[i], prop, cfg.repeat, cfg.width); err != nil {
						return err
					}
				}
				i++
				continue
			}

			j := i + 1
			for j < len(lines) && !props[j].Bodiless() && !props[j].First() {
				j++
			}

			afp, fs, prefix, suffix := reflow.SetAffixes(
				lines[i:j], props[i:j], cfg.bodychars, cfg.quotechars,
				cfg.hang, cfg.quote, cfg.prefix, cfg.suffix)
			if cfg.width <= prefix+suffix {
				return reflow.WidthError{Width: cfg.width, Prefix: prefix, Suffix: suffix}
			}

			rf := reflow.Reformatter{
				Hang: cfg.hang, Prefix: prefix, Suffix: suffix, Width: cfg.width,
				Cap: cfg.cap, Fit: cfg.fit, Guess: cfg.guess, Just: cfg.just,
				Last: cfg.last, Report: cfg.report, Touch: touch,
				Terminal: cfg.terminalchars,
			}
			outLines, err := rf.Reformat(lines[i:j], afp, fs)
			if err != nil {
				return err
			}
			for _, ln := range outLines {
				w.WriteLine(ln)
			}

			i = j
		}
	}

	if err := rd.Err(); err != nil {
		return err
	}
	return w.Err()
}
