package symtab

/* ---------- types ---------- */

// Base is a C- scalar sort. BaseUnknown covers declarations whose type tag
// was missing or not a C- type; the tag text, if any, is kept on Type.
type Base int

const (
	BaseUnknown Base = iota
	BaseInt
	BaseVoid
)

func (b Base) String() string {
	switch b {
	case BaseInt:
		return "int"
	case BaseVoid:
		return "void"
	default:
		return ""
	}
}

// ParseBase maps a type tag to a Base. Tags match exactly: "INT" is not int.
func ParseBase(t string) Base {
	switch t {
	case "int":
		return BaseInt
	case "void":
		return BaseVoid
	default:
		return BaseUnknown
	}
}

// Type is a base sort plus the one-dimensional array marker. Tag holds the
// declared spelling of a type the language does not define ("float"), so it
// still takes part in comparisons.
type Type struct {
	Base  Base
	Tag   string
	Array bool
}

var (
	Int      = Type{Base: BaseInt}
	Void     = Type{Base: BaseVoid}
	IntArray = Type{Base: BaseInt, Array: true}
)

// ParseType builds the scalar type named by a declaration's type tag.
func ParseType(tag string) Type {
	if b := ParseBase(tag); b != BaseUnknown {
		return Type{Base: b}
	}
	return Type{Tag: tag}
}

func (t Type) base() string {
	if t.Base == BaseUnknown {
		return t.Tag
	}
	return t.Base.String()
}

// String renders the declaration spelling: "int", "void", "int[]".
func (t Type) String() string {
	if t.Array {
		return t.base() + "[]"
	}
	return t.base()
}

// Elem is the type of an indexed access. An array with no base spelling keeps
// its marker, so it still renders non-empty.
func (t Type) Elem() Type {
	if !t.Array || t.base() == "" {
		return t
	}
	return Type{Base: t.Base, Tag: t.Tag}
}

// Known reports whether t renders non-empty, i.e. participates in checks.
func (t Type) Known() bool { return t.String() != "" }
