package reflow

import "github.com/jcorbin/reflow/internal/charset"

type wordFlag uint8

const (
	// wordShifted words take an extra space before them unless they
	// start a line.
	wordShifted wordFlag = 1 << iota

	// wordCurious words end in sentence-terminal punctuation backed by
	// an alphanumeric.
	wordCurious

	// wordCapital words start with a non-lowercase alphanumeric.
	wordCapital
)

// word is a view into the body region of one paragraph line, linked into
// the paragraph's word sequence. score and nextline are optimizer state
// under the hypothesis that this word starts an output line.
type word struct {
	prev, next, nextline *word
	score                int
	li, beg, end         int
	flags                wordFlag
}

func (w *word) width() int { return w.end - w.beg }

func (w *word) shifted() int {
	if w.flags&wordShifted != 0 {
		return 1
	}
	return 0
}

// Reformatter reflows the body of one paragraph to a target width.
type Reformatter struct {
	Hang   int // leading lines excluded from affix analysis
	Prefix int
	Suffix int
	Width  int

	Cap    bool // count every word as capitalized
	Fit    bool // narrow the target for best fit
	Guess  bool // preserve wide sentence breaks
	Just   bool // justify instead of ragged fill
	Last   bool // treat the last line like the others
	Report bool // error on over-wide words instead of splitting
	Touch  bool // shrink the body width to the longest built line

	Terminal charset.Set // sentence-terminal characters for Guess
}

// Reformat rebuilds the paragraph held in lines, returning the output
// lines. afp and fs are the augmented fallback prefix length and the
// fallback suffix length from the affix scan, used to fabricate affixes
// for hanging lines past the input.
func (rf *Reformatter) Reformat(lines [][]byte, afp, fs int) ([][]byte, error) {
	numin := len(lines)
	if numin == 0 {
		return nil, impossibility(4)
	}

	affix := rf.Prefix + rf.Suffix
	L := rf.Width - affix
	if L < 1 {
		return nil, WidthError{Width: rf.Width, Prefix: rf.Prefix, Suffix: rf.Suffix}
	}

	var head word
	tail := &head

	// Carve the body region of each line into words. The paragraph's
	// first word keeps any leading body indentation by starting right at
	// the prefix.
	onfirst := true
	for li, ln := range lines {
		if len(ln) < affix {
			return nil, ShortLineError{
				Line: li + 1, Length: len(ln),
				Prefix: rf.Prefix, Suffix: rf.Suffix,
			}
		}
		end := len(ln) - rf.Suffix
		p1 := rf.Prefix
		for {
			for p1 < end && ln[p1] == ' ' {
				p1++
			}
			if p1 == end {
				break
			}
			p2 := p1
			if onfirst {
				p1 = rf.Prefix
				onfirst = false
			}
			for p2 < end && ln[p2] != ' ' {
				p2++
			}
			w := &word{li: li, beg: p1, end: p2, prev: tail}
			tail.next = w
			tail = w
			p1 = p2
		}
	}

	if rf.Guess {
		w1 := &head
		for w2 := head.next; w2 != nil; w1, w2 = w2, w2.next {
			if rf.checkCurious(lines, w2) {
				w2.flags |= wordCurious
			}
			if rf.Cap || checkCapital(lines, w2) {
				w2.flags |= wordCapital
				if w1.flags&wordCurious != 0 {
					if w1.li == w2.li && w1.end+1 == w2.beg {
						// adjacent in the source: coalesce across the
						// single joining space
						w2.beg = w1.beg
						w2.prev = w1.prev
						w2.prev.next = w2
						if w1.flags&wordCapital != 0 {
							w2.flags |= wordCapital
						} else {
							w2.flags &^= wordCapital
						}
						if w1.flags&wordShifted != 0 {
							w2.flags |= wordShifted
						} else {
							w2.flags &^= wordShifted
						}
					} else {
						w2.flags |= wordShifted
					}
				}
			}
		}
		tail = w1
	}

	if rf.Report {
		for w2 := head.next; w2 != nil; w2 = w2.next {
			if w2.width() > L {
				excerpt := make([]byte, w2.width())
				copy(excerpt, lines[w2.li][w2.beg:w2.end])
				return nil, WordTooLongError{Word: excerpt}
			}
		}
	} else {
		for w2 := head.next; w2 != nil; w2 = w2.next {
			for w2.width() > L {
				w1 := &word{
					li: w2.li, beg: w2.beg, end: w2.beg + L,
					prev: w2.prev, next: w2,
				}
				w1.prev.next = w1
				w2.prev = w1
				w2.beg += L
				if w2.flags&wordCapital != 0 {
					w1.flags |= wordCapital
					w2.flags &^= wordCapital
				}
				if w2.flags&wordShifted != 0 {
					w1.flags |= wordShifted
					w2.flags &^= wordShifted
				}
			}
		}
	}

	if rf.Just {
		if err := justBreaks(&head, tail, L, rf.Last); err != nil {
			return nil, err
		}
	} else {
		if err := normalBreaks(&head, tail, L, rf.Fit, rf.Last); err != nil {
			return nil, err
		}
	}

	if !rf.Just && rf.Touch {
		L = 0
		w1 := head.next
		for w1 != nil {
			linelen := w1.width()
			w2 := w1.next
			for w2 != w1.nextline {
				linelen += 1 + w2.shifted() + w2.width()
				w2 = w2.next
			}
			if linelen > L {
				L = linelen
			}
			w1 = w2
		}
	}

	var out [][]byte
	numout := 0
	w1 := head.next
	for numout < rf.Hang || w1 != nil {
		var w2 *word
		var numgaps, extra int
		if w1 != nil {
			extra = L - w1.width()
			for w2 = w1.next; w2 != w1.nextline; w2 = w2.next {
				numgaps++
				extra -= 1 + w2.shifted() + w2.width()
			}
		}

		var linelen int
		switch {
		case rf.Suffix > 0 || (rf.Just && (w2 != nil || rf.Last)):
			linelen = L + affix
		case w1 != nil:
			linelen = rf.Prefix + L - extra
		default:
			linelen = rf.Prefix
		}

		q := make([]byte, 0, linelen)
		numout++

		switch {
		case numout <= numin:
			q = append(q, lines[numout-1][:rf.Prefix]...)
		case numin > rf.Hang:
			q = append(q, lines[numin-1][:rf.Prefix]...)
		default:
			a := afp
			if a > rf.Prefix {
				a = rf.Prefix
			}
			q = append(q, lines[numin-1][:a]...)
			for len(q) < rf.Prefix {
				q = append(q, ' ')
			}
		}

		if w1 != nil {
			phase := numgaps / 2
			for w2 = w1; ; {
				q = append(q, lines[w2.li][w2.beg:w2.end]...)
				w2 = w2.next
				if w2 == w1.nextline {
					break
				}
				q = append(q, ' ')
				if rf.Just && (w1.nextline != nil || rf.Last) {
					phase += extra
					for phase >= numgaps {
						q = append(q, ' ')
						phase -= numgaps
					}
				}
				if w2.flags&wordShifted != 0 {
					q = append(q, ' ')
				}
			}
		}

		for len(q) < linelen-rf.Suffix {
			q = append(q, ' ')
		}

		switch {
		case numout <= numin:
			ln := lines[numout-1]
			q = append(q, ln[len(ln)-rf.Suffix:]...)
		case numin > rf.Hang:
			ln := lines[numin-1]
			q = append(q, ln[len(ln)-rf.Suffix:]...)
		default:
			f := fs
			if f > rf.Suffix {
				f = rf.Suffix
			}
			ln := lines[numin-1]
			q = append(q, ln[len(ln)-rf.Suffix:][:f]...)
			for len(q) < linelen {
				q = append(q, ' ')
			}
		}

		out = append(out, q)
		if w1 != nil {
			w1 = w1.nextline
		}
	}

	return out, nil
}

// checkCapital reports whether the word's first alphanumeric byte is
// non-lowercase.
func checkCapital(lines [][]byte, w *word) bool {
	b := lines[w.li][w.beg:w.end]
	i := 0
	for i < len(b) && !charset.IsAlnum(b[i]) {
		i++
	}
	return i < len(b) && !charset.IsLower(b[i])
}

// checkCurious reports whether the word ends in a run of non-alphanumeric
// bytes containing a terminal character preceded somewhere by an
// alphanumeric.
func (rf *Reformatter) checkCurious(lines [][]byte, w *word) bool {
	b := lines[w.li][w.beg:w.end]
	p := len(b)
	for ; p > 0; p-- {
		ch := b[p-1]
		if charset.IsAlnum(ch) {
			return false
		}
		if rf.Terminal.Has(ch) {
			break
		}
	}
	if p <= 1 {
		return false
	}
	p--
	for p > 0 {
		p--
		if charset.IsAlnum(b[p]) {
			return true
		}
	}
	return false
}
