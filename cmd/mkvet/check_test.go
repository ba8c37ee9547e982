package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDocument = `site_name: Test Docs
nav:
  - Home: index.md
  - Guide:
      - About: guide/about.md
plugins:
  - search
`

func writeProject(t *testing.T, document string, pages ...string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mkdocs.yml"), []byte(document), 0o644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	for _, page := range pages {
		path := filepath.Join(dir, "docs", filepath.FromSlash(page))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# page\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommandValid(t *testing.T) {
	dir := writeProject(t, testDocument, "index.md", "guide/about.md")

	out, err := runCommand(t, "check", "-c", filepath.Join(dir, "mkdocs.yml"))
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "configuration is valid") {
		t.Errorf("output missing success line:\n%s", out)
	}
	if !strings.Contains(out, "pages: 2") {
		t.Errorf("output missing page count:\n%s", out)
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	dir := writeProject(t, testDocument, "index.md") // guide/about.md absent

	out, err := runCommand(t, "check", "-c", filepath.Join(dir, "mkdocs.yml"))
	if err == nil {
		t.Fatalf("check should fail, output:\n%s", out)
	}
	if !strings.Contains(out, "guide/about.md") {
		t.Errorf("output should name the missing page:\n%s", out)
	}
	if !strings.Contains(err.Error(), "1 problem") {
		t.Errorf("error should count problems, got: %v", err)
	}
}

func TestCheckCommandParseFailure(t *testing.T) {
	dir := writeProject(t, "nav:\n  - a\n - b\n")

	_, err := runCommand(t, "check", "-c", filepath.Join(dir, "mkdocs.yml"))
	if err == nil {
		t.Fatal("check should fail on a malformed document")
	}
}

func TestDumpCommandRoundTrips(t *testing.T) {
	dir := writeProject(t, testDocument)

	out, err := runCommand(t, "dump", "-c", filepath.Join(dir, "mkdocs.yml"))
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}

	// Dump output must itself be a loadable document with the same content.
	dir2 := writeProject(t, out)
	out2, err := runCommand(t, "dump", "-c", filepath.Join(dir2, "mkdocs.yml"))
	if err != nil {
		t.Fatalf("dump of dumped output failed: %v", err)
	}
	if out != out2 {
		t.Errorf("dump is not stable:\nfirst:\n%s\nsecond:\n%s", out, out2)
	}
}

func TestRegistryCommandListsBuiltins(t *testing.T) {
	out, err := runCommand(t, "registry")
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}
	for _, want := range []string{"search", "i18n", "admonition", "pymdownx.superfences"} {
		if !strings.Contains(out, want) {
			t.Errorf("registry output missing %q:\n%s", want, out)
		}
	}
}
