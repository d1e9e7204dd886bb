package web

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/logger"
)

//go:embed docs/api.md
var apiDocs []byte

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var docsPage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sift API</title>
<style>body{font-family:sans-serif;max-width:46rem;margin:2rem auto;padding:0 1rem}code,pre{background:#f4f4f4}</style>
</head>
<body>
{{.Body}}
<footer><small>sift {{.Version}}</small></footer>
</body>
</html>
`))

// renderError writes an error as {"error": {"code", "message", "status"}}.
func renderError(w http.ResponseWriter, err error) {
	sErr := errors.As(err)
	if sErr.Code == errors.ErrInternal {
		logger.Logger.Errorw("request failed", "error", sErr.Details["internal_error"])
	}

	renderJSON(w, sErr.Status, map[string]any{
		"error": map[string]any{
			"code":    string(sErr.Code),
			"message": sErr.Message,
			"status":  sErr.Status,
		},
	})
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderMarkdown converts markdown text to HTML using goldmark (GitHub flavor).
func renderMarkdown(md []byte) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert(md, &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(string(md)))
	}
	return template.HTML(buf.String())
}

// renderDocs writes the API overview page.
func renderDocs(w http.ResponseWriter, version string) {
	var buf bytes.Buffer
	err := docsPage.Execute(&buf, struct {
		Body    template.HTML
		Version string
	}{
		Body:    renderMarkdown(apiDocs),
		Version: version,
	})
	if err != nil {
		logger.Logger.Errorw("docs template execution error", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
