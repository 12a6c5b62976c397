package term

import (
	"fmt"
	"io"
	"strings"
)

// Output helpers that drop fmt's (n, err) results. Diagnostics and reports
// go to caller-supplied writers so tests can capture them.

// Wprintf writes formatted text to w.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

// Bprintf writes formatted text into b.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }
