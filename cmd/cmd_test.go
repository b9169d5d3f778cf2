package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thellimist/apigen/internal/apperr"
)

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeSpecs(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "specs.json")
	content := `[{"apiName":"createUser","parameters":[{"name":"username","type":"String"},{"name":"age","type":"Integer"}],"returnType":"UserDto","method":"POST"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeSpecs(t, dir)
	out := filepath.Join(dir, "out")

	for _, want := range []string{"cli_project_1", "cli_project_2"} {
		stdout, err := execute(t, "generate", "--inputFile="+input, "--outputDir="+out, "--parentName=cli_project", "--quiet")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		wantLine := "Generated project at: " + filepath.Join(out, want) + "\n"
		if stdout != wantLine {
			t.Errorf("stdout = %q, want %q", stdout, wantLine)
		}
	}

	controller := filepath.Join(out, "cli_project_1", "generated-service", "src", "main", "java", "com", "boa", "generated", "GeneratedController.java")
	if _, err := os.Stat(controller); err != nil {
		t.Errorf("controller not written: %v", err)
	}
}

func TestGenerateCommandDefaultParent(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeSpecs(t, dir)

	stdout, err := execute(t, "generate", "--inputFile="+input, "--outputDir="+dir, "--parentName=", "--quiet")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(stdout), "boa_hackathon_project_1") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestGenerateCommandRequiresInputFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "generate", "--inputFile=", "--outputDir="+dir, "--quiet")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("expected no directories, found %d", len(entries))
	}
}

func TestGenerateCommandMissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "generate", "--inputFile="+filepath.Join(dir, "nope.json"), "--outputDir="+dir, "--quiet")
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want a not-exist error", err)
	}
}

func TestGenerateCommandEmptySpecList(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(input, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "generate", "--inputFile="+input, "--outputDir="+filepath.Join(dir, "out"), "--quiet")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestInvalidLogFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(func() { flagLogFormat = "" })

	_, err := execute(t, "generate", "--log-format=xml", "--inputFile="+writeSpecs(t, dir), "--quiet")
	if err == nil || !strings.Contains(err.Error(), "--log-format") {
		t.Fatalf("err = %v, want a --log-format error", err)
	}
}
