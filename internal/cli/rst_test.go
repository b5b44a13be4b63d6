package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `sections:
  - name: design
    doc: Class design checks.
    options:
      - name: exclude-too-few-public-methods
        type: regexp_csv
        help: Class ancestor patterns to ignore.
        default: '\d{1,2},\w{3,5}'
      - name: max-args
        type: int
        default: 5
`

const testCatalogRST = "design\n" +
	"======\n" +
	"\n" +
	"Class design checks.\n" +
	"\n" +
	"exclude-too-few-public-methods\n" +
	"------------------------------\n" +
	"\n" +
	"Class ancestor patterns to ignore.\n" +
	"\n" +
	"Default: ``\\d{1,2},\\w{3,5}``\n" +
	"\n" +
	"max-args\n" +
	"--------\n" +
	"\n" +
	"No help available\n" +
	"\n" +
	"Default: ``5``\n"

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestRSTToStdout(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run([]string{"rst", writeTestCatalog(t)}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("run rst command: %v", err)
	}
	if out.String() != testCatalogRST {
		t.Fatalf("unexpected rst output\n--- got ---\n%s\n--- want ---\n%s", out.String(), testCatalogRST)
	}
}

func TestRSTOutputFile(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "options.rst")
	err := Run([]string{"rst", "-o", dest, writeTestCatalog(t)}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("run rst -o command: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != testCatalogRST {
		t.Fatalf("unexpected file content\n--- got ---\n%s\n--- want ---\n%s", string(got), testCatalogRST)
	}
}

func TestRSTCheckUpToDate(t *testing.T) {
	t.Parallel()

	doc := filepath.Join(t.TempDir(), "options.rst")
	if err := os.WriteFile(doc, []byte(testCatalogRST), 0o600); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	var out bytes.Buffer
	err := Run([]string{"rst", "--check", doc, writeTestCatalog(t)}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("run rst --check command: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no diff, got %q", out.String())
	}
}

func TestRSTCheckStale(t *testing.T) {
	t.Parallel()

	doc := filepath.Join(t.TempDir(), "options.rst")
	stale := strings.Replace(testCatalogRST, "Default: ``5``", "Default: ``4``", 1)
	if err := os.WriteFile(doc, []byte(stale), 0o600); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	var out bytes.Buffer
	err := Run([]string{"rst", "--color", "never", "--check", doc, writeTestCatalog(t)}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &bytes.Buffer{},
	})
	if !errors.Is(err, ErrStale) {
		t.Fatalf("expected stale error, got: %v", err)
	}
	if !strings.Contains(out.String(), "-Default: ``4``\n+Default: ``5``\n") {
		t.Fatalf("unexpected diff output: %q", out.String())
	}
}

func TestRSTRejectsBadColor(t *testing.T) {
	t.Parallel()

	err := Run([]string{"rst", "--color", "rainbow", writeTestCatalog(t)}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	if err == nil || !strings.Contains(err.Error(), `invalid --color "rainbow"`) {
		t.Fatalf("expected color error, got: %v", err)
	}
}

func TestRSTVerboseLogsCatalog(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer
	err := Run([]string{"rst", "-v", writeTestCatalog(t)}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
		Stderr: &errOut,
	})
	if err != nil {
		t.Fatalf("run rst -v command: %v", err)
	}
	if !strings.Contains(errOut.String(), "optdoc: ") || !strings.Contains(errOut.String(), "catalog.yaml (1 sections)") {
		t.Fatalf("unexpected log output: %q", errOut.String())
	}
}

func TestRSTMissingCatalog(t *testing.T) {
	t.Parallel()

	err := Run([]string{"rst", filepath.Join(t.TempDir(), "missing.yaml")}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})
	if err == nil || !strings.Contains(err.Error(), "stat catalog") {
		t.Fatalf("expected missing catalog error, got: %v", err)
	}
}

func TestINIToStdout(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run([]string{"ini", writeTestCatalog(t)}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("run ini command: %v", err)
	}
	want := "# Class design checks.\n" +
		"[DESIGN]\n" +
		"\n" +
		"# Class ancestor patterns to ignore.\n" +
		"exclude-too-few-public-methods=\\d{1,2},\\w{3,5}\n" +
		"\n" +
		"max-args=5\n"
	if out.String() != want {
		t.Fatalf("unexpected ini output\n--- got ---\n%s\n--- want ---\n%s", out.String(), want)
	}
}
