package reflow

import "github.com/jcorbin/reflow/internal/textio"

// WriteBodiless emits one bodiless separator line: verbatim with
// trailing spaces trimmed when repeat is off (or for a bare vacant),
// otherwise with its repeated character run stretched so the line spans
// width.
func WriteBodiless(w *textio.Writer, ln []byte, prop LineProp, repeat, width int) error {
	if repeat == 0 || (prop.Rep == ' ' && prop.Suf == 0) {
		end := len(ln)
		for end > 0 && ln[end-1] == ' ' {
			end--
		}
		return w.WriteLine(ln[:end])
	}
	n := width - prop.Pre - prop.Suf
	if n < 0 {
		return impossibility(5)
	}
	w.Write(ln[:prop.Pre])
	for i := 0; i < n; i++ {
		w.WriteByte(prop.Rep)
	}
	return w.WriteLine(ln[len(ln)-prop.Suf:])
}
