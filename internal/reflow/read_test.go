package reflow_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/reflow/internal/charset"
	. "github.com/jcorbin/reflow/internal/reflow"
	"github.com/jcorbin/reflow/internal/textio"
)

func mustSet(t *testing.T, lit string) charset.Set {
	t.Helper()
	set, err := charset.Parse(lit)
	require.NoError(t, err)
	return set
}

func TestReader_ReadParagraph(t *testing.T) {
	for _, tc := range []struct {
		name      string
		in        string
		protect   string
		quoteGaps bool
		invisible bool
		lines     []string
		invis     []int // indexes expected to carry the invisible flag
		rest      string
	}{
		{
			name:  "stops before a blank line",
			in:    "foo bar\nbaz\n\nrest\n",
			lines: []string{"foo bar", "baz"},
			rest:  "\nrest\n",
		},

		{
			name:  "whitespace folds and NULs vanish",
			in:    "a\tb\x00c\r\n",
			lines: []string{"a bc "},
		},

		{
			name:  "unterminated final line",
			in:    "no newline",
			lines: []string{"no newline"},
		},

		{
			name:    "stops before a protected line",
			in:      "foo\n>quoted\n",
			protect: ">",
			lines:   []string{"foo"},
			rest:    ">quoted\n",
		},

		{
			name:      "quote gap supplies a vacant line",
			in:        "> A\n> > B\n",
			quoteGaps: true,
			lines:     []string{"> A", ">", "> > B"},
		},

		{
			name:      "supplied lines marked invisible",
			in:        "> A\n> > B\n",
			quoteGaps: true,
			invisible: true,
			lines:     []string{"> A", ">", "> > B"},
			invis:     []int{1},
		},

		{
			name:      "bare skeletons truncate instead",
			in:        "> \n> > \n",
			quoteGaps: true,
			lines:     []string{">", ">"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rd := textio.NewReader(strings.NewReader(tc.in))
			pr := Reader{
				Quote:     mustSet(t, "> "),
				QuoteGaps: tc.quoteGaps,
				Invisible: tc.invisible,
			}
			if tc.protect != "" {
				pr.Protect = mustSet(t, tc.protect)
			}

			lines, props, err := pr.ReadParagraph(rd)
			require.NoError(t, err)

			var got []string
			for _, ln := range lines {
				got = append(got, string(ln))
			}
			assert.Equal(t, tc.lines, got, "expected lines")
			require.Equal(t, len(lines), len(props), "props must parallel lines")

			for i, prop := range props {
				want := false
				for _, j := range tc.invis {
					if i == j {
						want = true
					}
				}
				assert.Equal(t, want, prop.Invisible(), "invisible flag on line %d", i)
			}

			if tc.rest != "" {
				var rest []byte
				for {
					c, ok := rd.ReadByte()
					if !ok {
						break
					}
					rest = append(rest, c)
				}
				assert.Equal(t, tc.rest, string(rest), "expected pushback to leave the stream usable")
			}
		})
	}
}
