package ast

import (
	"fmt"
	"strings"
)

/*** KINDS ***/

// Kind is the closed set of syntax node kinds produced by the C- parser.
type Kind int

const (
	KindOther Kind = iota
	KindVarDecl
	KindArrayVarDecl
	KindFunctionDecl
	KindIdentifier
	KindArrayIdentifier
	KindAssignment
	KindReturn
	KindAddition
	KindSubtraction
	KindMultiplication
	KindDivision
	KindTypeTag
	KindParamList
	KindParam
	KindArrayParam
	KindParams
	KindNumber
)

var kindNames = [...]string{
	KindOther:           "Other",
	KindVarDecl:         "VarDecl",
	KindArrayVarDecl:    "ArrayVarDecl",
	KindFunctionDecl:    "FunctionDecl",
	KindIdentifier:      "Identifier",
	KindArrayIdentifier: "ArrayIdentifier",
	KindAssignment:      "Assignment",
	KindReturn:          "Return",
	KindAddition:        "Addition",
	KindSubtraction:     "Subtraction",
	KindMultiplication:  "Multiplication",
	KindDivision:        "Division",
	KindTypeTag:         "TypeTag",
	KindParamList:       "ParamList",
	KindParam:           "Param",
	KindArrayParam:      "ArrayParam",
	KindParams:          "Params",
	KindNumber:          "Number",
}

// parser tags as emitted by the C- grammar actions
var kindTags = [...]string{
	KindOther:           "",
	KindVarDecl:         "VAR",
	KindArrayVarDecl:    "ARRAY_VAR",
	KindFunctionDecl:    "FUN_DEF",
	KindIdentifier:      "ID",
	KindArrayIdentifier: "ID_ARRAY",
	KindAssignment:      "ATRIB",
	KindReturn:          "RETURN",
	KindAddition:        "SOMA",
	KindSubtraction:     "SUB",
	KindMultiplication:  "MULT",
	KindDivision:        "DIV",
	KindTypeTag:         "TIPO",
	KindParamList:       "PARAM_LIST",
	KindParam:           "PARAM",
	KindArrayParam:      "PARAM_ARRAY",
	KindParams:          "PARAMS",
	KindNumber:          "NUM",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Tag returns the parser tag for k ("VAR", "FUN_DEF", ...). KindOther has none.
func (k Kind) Tag() string {
	if k < 0 || int(k) >= len(kindTags) {
		return ""
	}
	return kindTags[k]
}

// ParseKind maps either a canonical name ("VarDecl") or a parser tag ("VAR")
// to a Kind. Unknown text yields KindOther and ok=false.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindOther, false
	}
	for k := KindVarDecl; int(k) < len(kindNames); k++ {
		if s == kindNames[k] || s == kindTags[k] {
			return k, true
		}
	}
	if s == kindNames[KindOther] {
		return KindOther, true
	}
	return KindOther, false
}

// IsArithmetic reports whether k is one of the four binary arithmetic kinds.
func (k Kind) IsArithmetic() bool {
	switch k {
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision:
		return true
	}
	return false
}

/*** NODES ***/

// Node is one syntax tree node. Trees are built once (see Builder) and only
// read afterwards.
type Node struct {
	Kind  Kind
	Label string // parser tag; only meaningful for KindOther ("IF", "WHILE", ...)
	Value string // identifier name, literal text, type name, operator
	Line  int

	Children []*Node
}

// Child returns the i-th child or nil when it does not exist.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Name is the display tag of the node: the parser tag for known kinds, the
// preserved label for KindOther.
func (n *Node) Name() string {
	if n.Kind == KindOther {
		if n.Label != "" {
			return n.Label
		}
		return kindNames[KindOther]
	}
	return n.Kind.Tag()
}

// Walk calls fn for n and every descendant in depth-first pre-order.
// Returning false from fn skips the children of that node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
