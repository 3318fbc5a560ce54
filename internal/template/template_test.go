package template_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/orbit-careers/page-builder/internal/template"
)

func testViews(body string) fstest.MapFS {
	return fstest.MapFS{
		"static/views/test.html": &fstest.MapFile{Data: []byte(body)},
	}
}

// ── Render ─────────────────────────────────────────────────────────────────

func TestRender_ExecutesNamedViewWithStatus(t *testing.T) {
	tmpl := template.NewTemplate(testViews(`<p>hello {{ .Name }}</p>`))
	w := httptest.NewRecorder()
	if err := tmpl.Render(w, http.StatusTeapot, "test.html", map[string]interface{}{"Name": "acme"}); err != nil {
		t.Fatalf("Render returned unexpected error: %v", err)
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
	if !strings.Contains(w.Body.String(), "hello acme") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRender_HumanNumberHelper(t *testing.T) {
	tmpl := template.NewTemplate(testViews(`{{ humannumber .Count }}`))
	w := httptest.NewRecorder()
	if err := tmpl.Render(w, http.StatusOK, "test.html", map[string]interface{}{"Count": 1234567}); err != nil {
		t.Fatalf("Render returned unexpected error: %v", err)
	}
	if got := w.Body.String(); got != "1,234,567" {
		t.Errorf("humannumber = %q, want 1,234,567", got)
	}
}

// ── MarkdownToHTML ─────────────────────────────────────────────────────────

func TestMarkdownToHTML_RendersAndSanitizes(t *testing.T) {
	tmpl := template.NewTemplate(testViews(`unused`))
	got := string(tmpl.MarkdownToHTML("**bold** and <script>alert(1)</script>"))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("markdown emphasis not rendered: %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("script tags must be stripped: %q", got)
	}
}

func TestMarkdownToHTML_LinksAreNofollow(t *testing.T) {
	tmpl := template.NewTemplate(testViews(`unused`))
	got := string(tmpl.MarkdownToHTML("[apply](https://example.com/apply)"))
	if !strings.Contains(got, `href="https://example.com/apply"`) {
		t.Errorf("link not rendered: %q", got)
	}
	if !strings.Contains(got, "nofollow") {
		t.Errorf("tenant-authored links should carry rel=nofollow: %q", got)
	}
}
