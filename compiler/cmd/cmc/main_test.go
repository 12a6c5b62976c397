package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func sample(name string) string { return filepath.Join("testdata", name) }

func TestCheckAcceptsValidProgram(t *testing.T) {
	code, out, errOut := runCLI(t, "check", sample("sum.yaml"))
	if code != 0 {
		t.Fatalf("exit=%d stdout=%q stderr=%q", code, out, errOut)
	}
	if out != "" {
		t.Fatalf("expected no diagnostics, got %q", out)
	}
	if !strings.Contains(errOut, "summary: 0 error(s)") {
		t.Fatalf("missing summary: %q", errOut)
	}
}

func TestCheckReportsEveryViolation(t *testing.T) {
	code, out, errOut := runCLI(t, "check", sample("broken.yaml"))
	if code != 1 {
		t.Fatalf("exit=%d, want 1 (stderr=%q)", code, errOut)
	}
	want := []string{
		"ERRO SEMANTICO: variavel 'x' ja declarada neste escopo LINHA: 2",
		"ERRO SEMANTICO: variavel 'y' nao declarada LINHA: 4",
		"ERRO SEMANTICO: funcao 'main' nao declarada LINHA: 0",
	}
	if diff := deep.Equal(strings.Split(strings.TrimRight(out, "\n"), "\n"), want); diff != nil {
		t.Fatal(diff)
	}
	if !strings.Contains(errOut, "summary: 3 error(s)") {
		t.Fatalf("missing summary: %q", errOut)
	}
}

func TestDiagnosticsToStderrInEnglish(t *testing.T) {
	code, out, errOut := runCLI(t, "--lang=en", "--diag-stderr", "check", sample("broken.yaml"))
	if code != 1 || out != "" {
		t.Fatalf("exit=%d stdout=%q", code, out)
	}
	if !strings.Contains(errOut, "ERRO SEMANTICO: variable 'y' not declared LINHA: 4") {
		t.Fatalf("english diagnostic missing: %q", errOut)
	}
}

func TestBuildBlocksCodeGenerationOnErrors(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := runCLI(t, "build", "--no-tree", "--out", dir, sample("broken.yaml"))
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if strings.Contains(out, "CODIGO INTERMEDIARIO") || strings.Contains(out, "TABELA DE SIMBOLOS") {
		t.Fatalf("reports must not be printed after errors:\n%s", out)
	}
	if !strings.Contains(errOut, "code generation skipped") {
		t.Fatalf("missing skip notice: %q", errOut)
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.tac")); !os.IsNotExist(err) {
		t.Fatalf("tac file must not exist, stat err=%v", err)
	}
}

func TestBuildWritesReportsAndTAC(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := runCLI(t, "build", "--out", dir, sample("sum.yaml"))
	if code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	for _, s := range []string{"- FUN_DEF (soma) [linha 2]", "TABELA DE SIMBOLOS", "CODIGO INTERMEDIARIO"} {
		if !strings.Contains(out, s) {
			t.Fatalf("stdout missing %q:\n%s", s, out)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "sum.tac"))
	if err != nil {
		t.Fatalf("read tac: %v", err)
	}
	listing := string(data)
	if !strings.HasPrefix(listing, "1: t0 = a + b\n") || !strings.Contains(listing, "t1 = total * 4") {
		t.Fatalf("unexpected listing:\n%s", listing)
	}
}

func TestSymbolsAndTree(t *testing.T) {
	code, out, _ := runCLI(t, "symbols", sample("sum.yaml"))
	if code != 0 || !strings.Contains(out, "soma") || !strings.Contains(out, "output") {
		t.Fatalf("exit=%d symbols:\n%s", code, out)
	}
	code, out, _ = runCLI(t, "tree", sample("sum.yaml"))
	if code != 0 || !strings.HasPrefix(out, "- PROGRAM [linha 1]\n") {
		t.Fatalf("exit=%d tree:\n%s", code, out)
	}
}

func TestTacCommand(t *testing.T) {
	code, out, _ := runCLI(t, "tac", sample("sum.yaml"))
	if code != 0 || !strings.Contains(out, "t0") {
		t.Fatalf("exit=%d tac:\n%s", code, out)
	}
	code, out, _ = runCLI(t, "tac", sample("broken.yaml"))
	if code != 1 || strings.Contains(out, "CODIGO INTERMEDIARIO") {
		t.Fatalf("tac must refuse invalid programs: exit=%d\n%s", code, out)
	}
}

func TestUsageAndIOErrors(t *testing.T) {
	if code, _, _ := runCLI(t, "check"); code != 2 {
		t.Fatalf("missing file arg: exit=%d, want 2", code)
	}
	code, _, errOut := runCLI(t, "check", sample("missing.yaml"))
	if code != 2 || !strings.Contains(errOut, "missing.yaml") {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	if code, _, _ := runCLI(t, "--lang=fr", "check", sample("sum.yaml")); code != 2 {
		t.Fatalf("bad language: exit=%d, want 2", code)
	}
	if code, _, _ := runCLI(t, "--strict-kinds", "check", sample("sum.yaml")); code != 2 {
		t.Fatalf("strict kinds must reject PROGRAM/COMPOUND/CALL: exit=%d", code)
	}
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cm.yaml")
	if err := os.WriteFile(cfg, []byte("lang: en\ndump:\n  tree: false\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, out, _ := runCLI(t, "--config", cfg, "build", sample("sum.yaml"))
	if code != 0 || strings.Contains(out, "[linha") {
		t.Fatalf("tree dump should be disabled by config: exit=%d\n%s", code, out)
	}
	_, out, _ = runCLI(t, "-c", cfg, "check", sample("broken.yaml"))
	if !strings.Contains(out, "function 'main' not declared") {
		t.Fatalf("config language not applied: %q", out)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	if code != 0 || !strings.HasPrefix(out, "cmc ") {
		t.Fatalf("exit=%d out=%q", code, out)
	}
}
