package reflow

// The break choosers below are right-to-left dynamic programs over the
// word list: each word's score and nextline are computed under the
// hypothesis that it starts an output line, considering every feasible
// next-line starter w2. Both use inclusive comparisons on update so that
// ties go to the latest w2; that asymmetry is load-bearing, as it picks
// the break points the line builder expects.

// simpleBreaks chooses breaks maximizing the length of the shortest
// line under width L. The final line counts only when last is set.
// Returns the shortest line length achieved, -1 if some word exceeds L,
// or L if there are no lines.
func simpleBreaks(head, tail *word, L int, last bool) int {
	if head.next == nil {
		return L
	}

	// every tail segment that fits whole is a candidate final line
	w1 := tail
	linelen := w1.width()
	for w1 != head && linelen <= L {
		if last {
			w1.score = linelen
		} else {
			w1.score = L
		}
		w1.nextline = nil
		linelen += w1.shifted()
		w1 = w1.prev
		linelen += 1 + w1.width()
	}

	for ; w1 != head; w1 = w1.prev {
		w1.score = -1
		linelen := w1.width()
		for w2 := w1.next; linelen <= L; {
			score := w2.score
			if linelen < score {
				score = linelen
			}
			if score >= w1.score {
				w1.nextline = w2
				w1.score = score
			}
			linelen += 1 + w2.shifted() + w2.width()
			w2 = w2.next
		}
	}

	return head.next.score
}

// normalBreaks chooses breaks for the ragged policy: subject to lines no
// longer than L (narrowed first when fit is set), and no line shorter
// than the best achievable shortest line, minimize the sum of squared
// deviations from the target. The final line is exempt unless last is
// set.
func normalBreaks(head, tail *word, L int, fit, last bool) error {
	if head.next == nil {
		return nil
	}

	target := L

	// narrow the target step by step, keeping the one with the smallest
	// spread between target and shortest line (the wider one on ties)
	if fit {
		best := L + 1
		for tryL := L; ; tryL-- {
			shortest := simpleBreaks(head, tail, tryL, last)
			if shortest < 0 {
				break
			}
			if tryL-shortest < best {
				target = tryL
				best = target - shortest
			}
		}
	}

	shortest := simpleBreaks(head, tail, target, last)
	if shortest < 0 {
		return impossibility(1)
	}

	w1 := tail
	for {
		w1.score = -1
		linelen := w1.width()
		for w2 := w1.next; linelen <= target; {
			extra := target - linelen
			minlen := shortest
			var score int
			if w2 != nil {
				score = w2.score
			} else {
				score = 0
				if !last {
					extra, minlen = 0, 0
				}
			}
			if linelen >= minlen && score >= 0 {
				score += extra * extra
				if w1.score < 0 || score <= w1.score {
					w1.nextline = w2
					w1.score = score
				}
			}
			if w2 == nil {
				break
			}
			linelen += 1 + w2.shifted() + w2.width()
			w2 = w2.next
		}
		w1 = w1.prev
		if w1 == head {
			break
		}
	}

	if head.next.score < 0 {
		return impossibility(2)
	}
	return nil
}

// justBreaks chooses breaks for the justified policy: first minimize the
// largest inter-word gap, then minimize the sum of squared extra-space
// counts among arrangements achieving it. The final line is exempt from
// both unless last is set.
func justBreaks(head, tail *word, L int, last bool) error {
	if head.next == nil {
		return nil
	}

	w1 := tail
	for {
		w1.score = L
		numgaps, extra := 0, L-w1.width()
		for w2 := w1.next; extra >= 0; {
			gap := L
			if numgaps > 0 {
				gap = (extra + numgaps - 1) / numgaps
			}
			var score int
			if w2 != nil {
				score = w2.score
			} else {
				score = 0
				if !last {
					gap = 0
				}
			}
			if gap > score {
				score = gap
			}
			if score <= w1.score {
				w1.nextline = w2
				w1.score = score
			}
			if w2 == nil {
				break
			}
			numgaps++
			extra -= 1 + w2.shifted() + w2.width()
			w2 = w2.next
		}
		w1 = w1.prev
		if w1 == head {
			break
		}
	}

	maxgap := head.next.score
	if maxgap >= L {
		return ErrCannotJustify
	}

	w1 = tail
	for {
		w1.score = -1
		numgaps, extra := 0, L-w1.width()
		for w2 := w1.next; extra >= 0; {
			gap := L
			if numgaps > 0 {
				gap = (extra + numgaps - 1) / numgaps
			}
			var score int
			if w2 != nil {
				score = w2.score
			} else {
				if !last {
					w1.nextline = nil
					w1.score = 0
					break
				}
				score = 0
			}
			if gap <= maxgap && score >= 0 {
				numbiggaps := extra % numgaps
				// sum of the squares of the per-gap extra space counts,
				// easier to prove graphically than algebraically
				score += (extra/numgaps)*(extra+numbiggaps) + numbiggaps
				if w1.score < 0 || score <= w1.score {
					w1.nextline = w2
					w1.score = score
				}
			}
			if w2 == nil {
				break
			}
			numgaps++
			extra -= 1 + w2.shifted() + w2.width()
			w2 = w2.next
		}
		w1 = w1.prev
		if w1 == head {
			break
		}
	}

	if head.next.score < 0 {
		return impossibility(3)
	}
	return nil
}
