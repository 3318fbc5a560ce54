package template

import (
	"io/fs"
	"net/http"

	stdtemplate "html/template"

	humanize "github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	blackfriday "github.com/russross/blackfriday/v2"
)

type Template struct {
	templates *stdtemplate.Template
	sanitizer *bluemonday.Policy
}

func NewTemplate(views fs.FS) *Template {
	funcMap := stdtemplate.FuncMap{
		"humannumber": func(n int) string {
			return humanize.Comma(int64(n))
		},
	}
	return &Template{
		templates: stdtemplate.Must(stdtemplate.New("stdtmpl").Funcs(funcMap).ParseFS(views, "static/views/*.html")),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (t *Template) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	w.WriteHeader(status)
	return t.templates.ExecuteTemplate(w, name, data)
}

// MarkdownToHTML renders tenant-authored markdown, sanitized for embedding
// in the public page.
func (t *Template) MarkdownToHTML(s string) stdtemplate.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink |
			blackfriday.NofollowLinks |
			blackfriday.NoreferrerLinks |
			blackfriday.HrefTargetBlank,
	})
	unsafe := blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer))
	return stdtemplate.HTML(t.sanitizer.SanitizeBytes(unsafe))
}
