package build

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/desilang/cminus/compiler/internal/ast"
)

func TestLoadYAMLTree(t *testing.T) {
	root, err := LoadTree(filepath.Join("testdata", "ok.yaml"), Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := ast.Other("PROGRAM", "", 1,
		ast.New(ast.KindVarDecl, "total", 1, ast.New(ast.KindTypeTag, "int", 1)),
		ast.New(ast.KindFunctionDecl, "main", 3,
			ast.New(ast.KindTypeTag, "void", 3),
			ast.New(ast.KindParams, "void", 3),
			ast.Other("COMPOUND", "", 3,
				ast.New(ast.KindAssignment, "=", 4,
					ast.New(ast.KindIdentifier, "total", 4),
					ast.New(ast.KindAddition, "+", 4,
						ast.New(ast.KindNumber, "1", 4),
						ast.New(ast.KindNumber, "2", 4),
					),
				),
			),
		),
	)
	if diff := deep.Equal(root, want); diff != nil {
		t.Fatal(diff)
	}
}

func TestLoadJSONTree(t *testing.T) {
	root, err := LoadTree(filepath.Join("testdata", "undeclared.json"), Options{StrictKinds: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ret := root.Child(2)
	if root.Kind != ast.KindFunctionDecl || ret.Kind != ast.KindReturn || ret.Child(0).Value != "x" || ret.Child(0).Line != 3 {
		t.Fatalf("unexpected tree:\n%s", ast.Dump(root))
	}
}

func TestFanOutIsValidated(t *testing.T) {
	_, err := LoadTree(filepath.Join("testdata", "wide.yaml"), Options{})
	if !errors.Is(err, ast.ErrTooManyChildren) {
		t.Fatalf("expected ErrTooManyChildren, got %v", err)
	}
	if _, err := LoadTree(filepath.Join("testdata", "wide.yaml"), Options{MaxChildren: 6}); err != nil {
		t.Fatalf("raised limit should accept the tree: %v", err)
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := LoadTree("prog.cm", Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := LoadTree(filepath.Join(t.TempDir(), "nope.yaml"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestKinds(t *testing.T) {
	src := "kind: WHILE\nline: 2\nchildren:\n  - {kind: ID, value: i, line: 2}\n"
	n, err := DecodeTree(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n.Kind != ast.KindOther || n.Label != "WHILE" || n.Name() != "WHILE" {
		t.Fatalf("unknown kinds must be kept as Other with their label, got %+v", n)
	}
	_, err = DecodeTree(strings.NewReader(src), Options{StrictKinds: true})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("strict mode: expected ErrUnknownKind, got %v", err)
	}
	_, err = DecodeTree(strings.NewReader("line: 1\n"), Options{})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("missing kind: expected ErrUnknownKind, got %v", err)
	}
}

func TestErrorsNameTheNodePath(t *testing.T) {
	src := "kind: Other\nchildren:\n  - kind: VAR\n    children:\n      - {kind: BOGUS}\n"
	_, err := DecodeTree(strings.NewReader(src), Options{StrictKinds: true})
	if err == nil || !strings.Contains(err.Error(), "root.children[0].children[0]") {
		t.Fatalf("expected node path in error, got %v", err)
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	_, err := DecodeTree(strings.NewReader("kind: VAR\nname: x\n"), Options{})
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestEmptyDocument(t *testing.T) {
	n, err := DecodeTree(strings.NewReader(""), Options{})
	if err != nil || n != nil {
		t.Fatalf("empty document: got %v, %v", n, err)
	}
}
