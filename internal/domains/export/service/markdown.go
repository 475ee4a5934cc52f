package service

import (
	"bytes"
	"fmt"
	"strings"
	"tasknest/internal/domains/todo/model"
	"text/template"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultSlug = "project"

var markdownTemplate = template.Must(template.New("summary").Parse(`# {{ .Title }}

Summary: {{ .Done }} / {{ .Total }} todos completed

## Pending
{{ range .Pending }}
- [ ] {{ .Description }}
{{- end }}

## Completed
{{ range .Completed }}
- [x] {{ .Description }}
{{- end }}
`))

type summary struct {
	Title     string
	Done      int
	Total     int
	Pending   []model.Todo
	Completed []model.Todo
}

// renderMarkdown writes the project summary with pending items before completed ones.
// Todo order inside each section is preserved.
func renderMarkdown(title string, todos []model.Todo) ([]byte, error) {
	data := summary{Title: title, Total: len(todos)}

	for _, todo := range todos {
		if todo.IsDone() {
			data.Completed = append(data.Completed, todo)

			continue
		}

		data.Pending = append(data.Pending, todo)
	}

	data.Done = len(data.Completed)

	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	return buf.Bytes(), nil
}

// slugify turns title into a lowercase, dash separated file name.
func slugify(title string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(stripMarks, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder

	dash := false

	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)

			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')

			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return defaultSlug
	}

	return slug
}
