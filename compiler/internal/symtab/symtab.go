package symtab

// Global is the scope tag of file-level declarations.
const Global = "global"

// Kind is the category of a declared name.
type Kind int

const (
	KindVariable Kind = iota
	KindArray
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	default:
		return "variable"
	}
}

// Symbol is one declared name.
type Symbol struct {
	Name   string
	Kind   Kind
	Type   Type   // return type for functions
	Scope  string // Global or the owning function's name
	Line   int
	Params int // functions only
}

// IsFunction reports whether s names a function.
func (s *Symbol) IsFunction() bool { return s.Kind == KindFunction }

// Category is the report label used in the table dump.
func (s *Symbol) Category() string {
	if s.IsFunction() {
		return "funcao"
	}
	return "variavel"
}

// Variable describes a scalar or array declaration; the array marker on typ
// decides the kind.
func Variable(name string, typ Type, scope string, line int) Symbol {
	k := KindVariable
	if typ.Array {
		k = KindArray
	}
	return Symbol{Name: name, Kind: k, Type: typ, Scope: scope, Line: line}
}

// Function describes a function declaration. Functions always live in Global.
func Function(name string, ret Type, line, params int) Symbol {
	return Symbol{Name: name, Kind: KindFunction, Type: ret, Scope: Global, Line: line, Params: params}
}

type key struct{ name, scope string }

// Table stores declarations keyed by (name, scope) and remembers insertion
// order for reporting. Not safe for concurrent use.
type Table struct {
	index map[key]*Symbol
	order []*Symbol
}

func New() *Table {
	return &Table{index: map[key]*Symbol{}}
}

// Insert stores s unless a symbol with the same name and scope exists.
// It reports whether s was stored; on false the table is unchanged.
func (t *Table) Insert(s Symbol) bool {
	if t.index == nil {
		t.index = map[key]*Symbol{}
	}
	k := key{s.Name, s.Scope}
	if _, exists := t.index[k]; exists {
		return false
	}
	sym := s
	t.index[k] = &sym
	t.order = append(t.order, &sym)
	return true
}

// LookupInScope finds name in exactly scope, or returns nil.
func (t *Table) LookupInScope(name, scope string) *Symbol {
	return t.index[key{name, scope}]
}

// Lookup finds name in scope, falling back to Global. A local declaration
// therefore hides a global one of the same name.
func (t *Table) Lookup(name, scope string) *Symbol {
	if s := t.LookupInScope(name, scope); s != nil {
		return s
	}
	if scope != Global {
		return t.LookupInScope(name, Global)
	}
	return nil
}

// Clear drops every symbol. The table stays usable.
func (t *Table) Clear() {
	t.index = map[key]*Symbol{}
	t.order = nil
}

func (t *Table) Len() int { return len(t.order) }

// Symbols returns the stored symbols in insertion order.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.order))
	for _, s := range t.order {
		out = append(out, *s)
	}
	return out
}

// InScope returns the symbols declared in scope, in insertion order.
func (t *Table) InScope(scope string) []Symbol {
	var out []Symbol
	for _, s := range t.order {
		if s.Scope == scope {
			out = append(out, *s)
		}
	}
	return out
}
