package build

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/desilang/cminus/compiler/internal/ast"
)

// ErrUnknownFormat is returned for tree files that are not .yaml/.yml/.json.
var ErrUnknownFormat = errors.New("unknown tree file format")

// ErrUnknownKind is returned for a node kind that is neither a canonical
// name nor a parser tag, when strict kinds are requested.
var ErrUnknownKind = errors.New("unknown node kind")

// nodeDisk is the on-disk form of a node. JSON is accepted too, since the
// YAML decoder reads it unchanged.
//
//	kind: FUN_DEF
//	value: main
//	line: 1
//	children:
//	  - {kind: TIPO, value: int, line: 1}
type nodeDisk struct {
	Kind     string      `yaml:"kind"`
	Value    string      `yaml:"value"`
	Line     int         `yaml:"line"`
	Children []*nodeDisk `yaml:"children"`
}

// Options control tree decoding.
type Options struct {
	MaxChildren int  // fan-out bound; 0 means ast.MaxChildren
	StrictKinds bool // reject unknown kinds instead of keeping them as ast.KindOther
}

// LoadTree reads and decodes the syntax tree stored at path.
func LoadTree(path string, opts Options) (*ast.Node, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("load %s: %w", path, ErrUnknownFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	root, err := DecodeTree(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return root, nil
}

// DecodeTree decodes one tree document from r. An empty document yields a
// nil tree.
func DecodeTree(r io.Reader, opts Options) (*ast.Node, error) {
	var raw nodeDisk
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	b := ast.Builder{Limit: opts.MaxChildren}
	return raw.toNode(b, opts.StrictKinds, "root")
}

func (d *nodeDisk) toNode(b ast.Builder, strict bool, path string) (*ast.Node, error) {
	if d == nil {
		return nil, fmt.Errorf("%s: empty node", path)
	}
	kind, ok := ast.ParseKind(d.Kind)
	if !ok && (strict || strings.TrimSpace(d.Kind) == "") {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownKind, d.Kind)
	}
	n, err := b.New(kind, d.Value, d.Line)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if kind == ast.KindOther {
		n.Label = strings.TrimSpace(d.Kind)
	}
	for i, c := range d.Children {
		cp := path + ".children[" + strconv.Itoa(i) + "]"
		child, err := c.toNode(b, strict, cp)
		if err != nil {
			return nil, err
		}
		if err := b.Add(n, child); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return n, nil
}
