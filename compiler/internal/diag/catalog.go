package diag

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed codes.yaml
var codesYAML []byte

// Lang selects the message templates of the catalogue.
type Lang string

const (
	LangPT Lang = "pt"
	LangEN Lang = "en"
)

// ParseLang accepts "pt"/"en" (any case); empty means LangPT.
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pt", "pt-br":
		return LangPT, nil
	case "en":
		return LangEN, nil
	default:
		return "", fmt.Errorf("diag: unknown language %q (want pt or en)", s)
	}
}

// Catalogue keys used by the semantic analyzer.
const (
	KeyVarRedeclared   = "var_redeclared"
	KeyFuncRedeclared  = "func_redeclared"
	KeyParamRedeclared = "param_redeclared"
	KeyVarUndeclared   = "var_undeclared"
	KeyArrayUndeclared = "array_undeclared"
	KeyAssignMismatch  = "assign_mismatch"
	KeyArithNonInt     = "arith_non_int"
	KeyMainMissing     = "main_missing"
)

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `yaml:"id"`    // e.g., "CSE0004"
	Title string `yaml:"title"` // short human title e.g., "undeclared use"
	PT    string `yaml:"pt"`
	EN    string `yaml:"en"`
}

// Template returns the message template for lang, falling back to pt.
func (c CodeEntry) Template(lang Lang) string {
	if lang == LangEN && c.EN != "" {
		return c.EN
	}
	return c.PT
}

// Registry is the top-level catalogue format.
type Registry struct {
	Semantic map[string]CodeEntry `yaml:"semantic"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesYAML) == 0 {
			return
		}
		regErr = yaml.Unmarshal(codesYAML, &reg)
	})
	return regErr
}

// Lookup returns a semantic code entry by key.
func Lookup(key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	ce, ok := reg.Semantic[key]
	return ce, ok
}

// Make builds the diagnostic for key at line, formatting the catalogue
// template with args. Unknown keys still produce a usable message.
func Make(lang Lang, key string, line int, args ...any) Diagnostic {
	ce, ok := Lookup(key)
	if !ok {
		msg := key
		if len(args) > 0 {
			msg = fmt.Sprintf("%s %v", key, args)
		}
		return Diagnostic{Key: key, Line: line, Msg: msg}
	}
	return Diagnostic{
		Code: ce.ID,
		Key:  key,
		Line: line,
		Msg:  fmt.Sprintf(ce.Template(lang), args...),
	}
}
