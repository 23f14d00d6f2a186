package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"msgtool/internal/catalog"
)

var headerTmpl = template.Must(template.New("header").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta http-equiv="Content-Type" content="application/xhtml+xml; charset=UTF-8" />
<meta name="generator" content="msgtool" />
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 2em auto; }
code { background: #f4f4f4; }
</style>
</head>
<body>
<main>
`))

const footer = `</main>
</body>
</html>
`

func newGoldmark() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
}

// WriteHTML renders the markdown report as a standalone HTML page.
func WriteHTML(w io.Writer, rep *catalog.Report) error {
	var buf bytes.Buffer
	if err := headerTmpl.Execute(&buf, struct{ Title string }{
		Title: "Message catalog " + rep.Catalog,
	}); err != nil {
		return err
	}
	if err := newGoldmark().Convert(markdownSource(rep), &buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	buf.WriteString(footer)
	_, err := w.Write(buf.Bytes())
	return err
}
