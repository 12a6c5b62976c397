package diag

import "fmt"

// Prefix and LineLabel frame every semantic diagnostic line:
//
//	ERRO SEMANTICO: <message> LINHA: <line>
//
// Downstream tooling parses this format; do not change it.
const (
	Prefix    = "ERRO SEMANTICO"
	LineLabel = "LINHA"
)

// Diagnostic is one semantic violation. Line 0 means "no source position"
// (e.g. the missing entry point).
type Diagnostic struct {
	Code string // catalogue id, e.g. "CSE0004"
	Key  string // catalogue key, e.g. "var_undeclared"
	Line int
	Msg  string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s %s: %d", Prefix, d.Msg, LineLabel, d.Line)
}
