package resume

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/folio/internal/content"
)

func TestFileName(t *testing.T) {
	if got := FileName(content.Default()); got != "manav_behl_resume.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := FileName(content.Profile{Name: "???"}); got != "folio_resume.pdf" {
		t.Fatalf("expected fallback name, got %q", got)
	}
}

func TestExportWritesPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := Export(content.Default(), dir)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !filepath.IsAbs(path) || filepath.Dir(path) != dir {
		t.Fatalf("unexpected export path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestExportDefaultsToDocumentsDir(t *testing.T) {
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	path, err := Export(content.Default(), "")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join(docs, "FOLIO")) {
		t.Fatalf("expected export under %s, got %s", docs, path)
	}
}

func TestRenderHandlesNonASCII(t *testing.T) {
	p := content.Profile{
		Name:     "Zoë Müller",
		Roles:    []string{"Développeuse", ""},
		Projects: []content.Project{{Title: "Café ☕ tracker", Tools: []string{"Go"}}},
	}
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected PDF bytes")
	}
}
