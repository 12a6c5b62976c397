package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/desilang/cminus/compiler/internal/ast"
	"github.com/desilang/cminus/compiler/internal/diag"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "cminus.yaml"

// Diagnostic stream targets.
const (
	Stdout = "stdout"
	Stderr = "stderr"
)

// Dump selects the reports printed by the build command.
type Dump struct {
	Tree    bool `yaml:"tree"`
	Symbols bool `yaml:"symbols"`
	TAC     bool `yaml:"tac"`
}

// Config holds compiler settings.
type Config struct {
	Path string `yaml:"-"` // file it was read from; empty for defaults

	Lang        string `yaml:"lang"`        // "pt" | "en"
	Diagnostics string `yaml:"diagnostics"` // "stdout" | "stderr"
	MaxChildren int    `yaml:"max_children"`
	StrictKinds bool   `yaml:"strict_kinds"`
	Dump        Dump   `yaml:"dump"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Lang:        string(diag.LangPT),
		Diagnostics: Stdout,
		MaxChildren: ast.MaxChildren,
		Dump:        Dump{Tree: true, Symbols: true, TAC: true},
	}
}

// Load reads path, or DefaultFile when path is empty. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		c.Path = abs
	} else {
		c.Path = path
	}
	return c, nil
}

// Decode reads a config document over the defaults and validates it.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate normalizes fields and rejects unknown values.
func (c *Config) Validate() error {
	lang, err := diag.ParseLang(c.Lang)
	if err != nil {
		return err
	}
	c.Lang = string(lang)

	switch d := strings.ToLower(strings.TrimSpace(c.Diagnostics)); d {
	case "", Stdout:
		c.Diagnostics = Stdout
	case Stderr:
		c.Diagnostics = Stderr
	default:
		return fmt.Errorf("diagnostics: want %s or %s, got %q", Stdout, Stderr, c.Diagnostics)
	}

	if c.MaxChildren < 0 {
		return fmt.Errorf("max_children: must be >= 0, got %d", c.MaxChildren)
	}
	if c.MaxChildren == 0 {
		c.MaxChildren = ast.MaxChildren
	}
	return nil
}

// DiagLang is Lang as a catalogue language.
func (c *Config) DiagLang() diag.Lang {
	l, err := diag.ParseLang(c.Lang)
	if err != nil {
		return diag.LangPT
	}
	return l
}

// DiagWriter picks the stream diagnostics go to.
func (c *Config) DiagWriter(stdout, stderr io.Writer) io.Writer {
	if c.Diagnostics == Stderr {
		return stderr
	}
	return stdout
}
