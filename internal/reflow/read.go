package reflow

import (
	"github.com/jcorbin/reflow/internal/charset"
	"github.com/jcorbin/reflow/internal/textio"
)

// Reader accumulates one input paragraph worth of lines from a byte
// stream. NUL bytes are discarded and any whitespace other than newline
// is folded to a single space.
type Reader struct {
	Protect charset.Set // bytes that protect a line from reflowing
	Quote   charset.Set // bytes that form quoting skeletons

	// QuoteGaps supplies a vacant line wherever the quoting skeleton
	// changes between adjacent lines; Invisible marks such supplied
	// lines so output can withhold them.
	QuoteGaps bool
	Invisible bool
}

// ReadParagraph reads lines from rd until EOF, a blank line, or a line
// whose first byte is protective. The blank line's newline, or the
// protective byte, is left unread for the caller. Returned lines carry
// no terminator; props parallels lines and is zero except for any
// invisible flag on supplied quote-gap lines.
func (pr *Reader) ReadParagraph(rd *textio.Reader) (lines [][]byte, props []LineProp, err error) {
	var (
		cur       []byte
		empty     = true
		blank     = true
		firstline = true
		oldIdx    int
		oldQpend  int
		oldQsonly bool
	)

	for {
		c, ok := rd.ReadByte()
		if !ok {
			break
		}

		if c != '\n' {
			if empty {
				if pr.Protect.Has(c) {
					rd.Unread()
					break
				}
				empty = false
			}
			if c == 0 {
				continue
			}
			if charset.IsSpace(c) {
				c = ' '
			} else {
				blank = false
			}
			cur = append(cur, c)
			continue
		}

		if blank {
			rd.Unread()
			break
		}

		ln := cur
		cur = nil

		if pr.QuoteGaps {
			qpend := 0
			for qpend < len(ln) && pr.Quote.Has(ln[qpend]) {
				qpend++
			}
			p := qpend
			for p < len(ln) && (ln[p] == ' ' || pr.Quote.Has(ln[p])) {
				p++
			}
			qsonly := p == len(ln)
			for qpend > 0 && ln[qpend-1] == ' ' {
				qpend--
			}
			if !firstline {
				old := lines[oldIdx]
				k := 0
				for k < qpend && k < oldQpend && ln[k] == old[k] {
					k++
				}
				if !(k == qpend && k == oldQpend) {
					if !pr.Invisible && oldQsonly && qsonly {
						// both skeletons bare: truncate to the common
						// prefix instead of supplying a vacant
						if oldQsonly {
							lines[oldIdx] = old[:k]
							oldQpend = k
						}
						if qsonly {
							ln = ln[:k]
							qpend = k
						}
					} else {
						vln := make([]byte, k)
						copy(vln, ln[:k])
						var vprop LineProp
						if pr.Invisible {
							vprop.Flags = LineInvisible
						}
						lines = append(lines, vln)
						props = append(props, vprop)
					}
				}
			}
			oldQpend, oldQsonly = qpend, qsonly
		}

		lines = append(lines, ln)
		props = append(props, LineProp{})
		oldIdx = len(lines) - 1
		empty, blank = true, true
		firstline = false
	}

	if err := rd.Err(); err != nil {
		return nil, nil, err
	}

	// an unterminated final line still counts
	if !blank {
		lines = append(lines, cur)
		props = append(props, LineProp{})
	}
	return lines, props, nil
}
