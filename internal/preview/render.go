package preview

import (
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed resume.html.tmpl
var resumeTemplate string

var tmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"period": Period,
	// rich bodies hold formatting produced by the rich text editor
	"rich": func(s string) template.HTML { return template.HTML(s) },
}).Parse(resumeTemplate))

// RenderHTML renders the document to a standalone HTML page, the input for
// on-screen preview and PDF export alike.
func RenderHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
