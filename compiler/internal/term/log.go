package term

import "io"

// Logger prints "cmc: ..." progress lines when enabled. The zero value is
// silent.
type Logger struct {
	W       io.Writer
	Enabled bool
}

func (l Logger) Logf(format string, a ...any) {
	if !l.Enabled || l.W == nil {
		return
	}
	Wprintf(l.W, "cmc: "+format+"\n", a...)
}
