package reflow

import (
	"errors"
	"fmt"
)

// ErrCannotJustify reports that no arrangement of words can be justified
// within the target width.
var ErrCannotJustify = errors.New("Cannot justify.")

// ShortLineError reports an input line too short to carry the prefix and
// suffix being stripped from it.
type ShortLineError struct {
	Line           int // 1-based line number within the paragraph
	Length         int
	Prefix, Suffix int
}

func (sl ShortLineError) Error() string {
	return fmt.Sprintf("Line %d shorter than <prefix> + <suffix> = %d + %d = %d",
		sl.Line, sl.Prefix, sl.Suffix, sl.Prefix+sl.Suffix)
}

// WordTooLongError reports a word wider than the target line width when
// reporting is requested instead of hard splitting.
type WordTooLongError struct {
	Word []byte
}

// maxExcerpt bounds the word excerpt so the whole message fits the
// historical 163-byte error buffer.
const maxExcerpt = 146

func (wl WordTooLongError) Error() string {
	word := wl.Word
	if len(word) > maxExcerpt {
		word = word[:maxExcerpt]
	}
	return fmt.Sprintf("Word too long: %s", word)
}

// WidthError reports a width no wider than the combined affixes.
type WidthError struct {
	Width, Prefix, Suffix int
}

func (we WidthError) Error() string {
	return fmt.Sprintf("<width> (%d) <= <prefix> (%d) + <suffix> (%d)",
		we.Width, we.Prefix, we.Suffix)
}

// impossibility is a defensive error for states the optimizer invariants
// make unreachable.
type impossibility int

func (imp impossibility) Error() string {
	return fmt.Sprintf("This can't happen (%d).", int(imp))
}
