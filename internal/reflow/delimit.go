package reflow

import "github.com/jcorbin/reflow/internal/charset"

// comPreSuf computes the common prefix and common suffix length of the
// given lines, assuming both have already been determined to be at least
// pre and suf. The prefix stops at the first body character; the suffix
// extends leftward only over non-body characters, and keeps at most one
// of any run of leading pad spaces.
func comPreSuf(lines [][]byte, body charset.Set, pre, suf int) (int, int) {
	l0 := lines[0]

	end := pre
	for end < len(l0) && !body.Has(l0[end]) {
		end++
	}
	for _, ln := range lines[1:] {
		p := pre
		for p < end && p < len(ln) && l0[p] == ln[p] {
			p++
		}
		end = p
	}
	cpre := end

	e0 := len(l0)
	start := e0 - suf
	for start > cpre && !body.Has(l0[start-1]) {
		start--
	}
	for _, ln := range lines[1:] {
		p1, p2 := e0-suf, len(ln)-suf
		for p1 > start && p2 > cpre && l0[p1-1] == ln[p2-1] {
			p1--
			p2--
		}
		start = p1
	}
	for e0-start >= 2 && l0[start] == ' ' && l0[start+1] == ' ' {
		start++
	}
	return cpre, e0 - start
}

// Delimit classifies the lines of an input paragraph: it attributes
// common prefix and suffix lengths, detects bodiless separator lines,
// recursively refines the runs between them, and marks the first line of
// each sub-paragraph. With div set, a change in indentation just after
// the prefix also starts a sub-paragraph. The superfluous flag is never
// set here; see MarkSuperfluous.
func Delimit(lines [][]byte, props []LineProp, body charset.Set, repeat int, div bool) {
	delimit(lines, props, body, repeat, div, 0, 0)
}

func delimit(lines [][]byte, props []LineProp, body charset.Set, repeat int, div bool, pre, suf int) {
	if len(lines) == 0 {
		return
	}
	if len(lines) == 1 {
		props[0].Flags |= LineFirst
		props[0].Pre, props[0].Suf = pre, suf
		return
	}

	pre, suf = comPreSuf(lines, body, pre, suf)

	anyBodiless := false
	for i, ln := range lines {
		prop := &props[i]
		prop.Flags |= LineBodiless
		prop.Pre, prop.Suf = pre, suf
		bod := ln[pre : len(ln)-suf]
		rep := byte(' ')
		if len(bod) > 0 {
			rep = bod[0]
		}
		if rep != ' ' && repeat > 0 && len(bod) < repeat {
			prop.Flags &^= LineBodiless
		} else {
			for _, c := range bod {
				if c != rep {
					prop.Flags &^= LineBodiless
					break
				}
			}
		}
		if prop.Bodiless() {
			anyBodiless = true
			prop.Rep = rep
		}
	}

	if anyBodiless {
		i := 0
		for i < len(lines) {
			if props[i].Bodiless() {
				i++
				continue
			}
			j := i + 1
			for j < len(lines) && !props[j].Bodiless() {
				j++
			}
			delimit(lines[i:j], props[i:j], body, repeat, div, pre, suf)
			i = j
		}
		return
	}

	if !div {
		props[0].Flags |= LineFirst
		return
	}

	props[0].Flags |= LineFirst
	prev := startsSpace(lines[0], pre)
	for i := 1; i < len(lines); i++ {
		cur := startsSpace(lines[i], pre)
		if cur != prev {
			props[i].Flags |= LineFirst
		}
		prev = cur
	}
}

func startsSpace(ln []byte, pre int) bool {
	return pre < len(ln) && ln[pre] == ' '
}

// MarkSuperfluous flags every vacant line, then for each run of vacants
// between two body lines clears the flag on the one with the fewest
// non-space bytes (leftmost on ties), so at most one vacant survives per
// interior gap. Runs touching the paragraph edges keep none.
func MarkSuperfluous(lines [][]byte, props []LineProp) {
	for i := range props {
		if props[i].Vacant() {
			props[i].Flags |= LineSuperfluous
		}
	}

	inbody, mnum, mIdx := false, 0, -1
	for i := range props {
		if props[i].Vacant() {
			num := 0
			for _, c := range lines[i] {
				if c != ' ' {
					num++
				}
			}
			if inbody || num < mnum {
				mnum, mIdx = num, i
			}
			inbody = false
		} else {
			if !inbody && mIdx >= 0 {
				props[mIdx].Flags &^= LineSuperfluous
			}
			inbody = true
		}
	}
}

// SetAffixes resolves the effective prefix and suffix lengths of an
// already delimited paragraph. It returns the augmented fallback prefix
// length, the fallback suffix length, and the resolved prefix and suffix
// lengths; prefix and suffix values below zero are defaulted from a
// secondary affix scan that skips the first hang lines (or from the
// fallbacks when the paragraph is too short for one).
func SetAffixes(
	lines [][]byte, props []LineProp, body, quote charset.Set,
	hang int, quoteGaps bool, prefix, suffix int,
) (afp, fs, pre, suf int) {
	n := len(lines)

	var pre2, suf2 int
	if (prefix < 0 || suffix < 0) && n > hang+1 {
		pre2, suf2 = comPreSuf(lines[hang:], body, 0, 0)
	}

	p := props[0].Pre
	if n == 1 && quoteGaps {
		for p < len(lines[0]) && quote.Has(lines[0][p]) {
			p++
		}
	}
	afp = p
	fs = props[0].Suf

	pre, suf = prefix, suffix
	if pre < 0 {
		if n > hang+1 {
			pre = pre2
		} else {
			pre = afp
		}
	}
	if suf < 0 {
		if n > hang+1 {
			suf = suf2
		} else {
			suf = fs
		}
	}
	return afp, fs, pre, suf
}
