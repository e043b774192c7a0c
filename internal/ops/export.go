package ops

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/yuin/goldmark"

	"github.com/hpungsan/zotter/internal/config"
	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// ExportFormat selects the export file layout.
type ExportFormat string

const (
	ExportFormatJSONL ExportFormat = "jsonl"
	ExportFormatHTML  ExportFormat = "html"
)

// ExportSchemaVersion is written in the JSONL header line.
const ExportSchemaVersion = "1.0"

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path       string       // optional, default: <export_dir>/<collection>-<ulid>.<format>
	Format     ExportFormat // optional, default: jsonl
	Collection string       // optional, "active" (default) or "trash"
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path       string       `json:"path"`
	Format     ExportFormat `json:"format"`
	Collection string       `json:"collection"`
	Count      int          `json:"count"`
	ExportedAt int64        `json:"exported_at"`
}

// ExportHeader represents the header line in a JSONL export file.
type ExportHeader struct {
	ZotterExport  bool   `json:"_zotter_export"`
	SchemaVersion string `json:"schema_version"`
	Collection    string `json:"collection"`
	ExportedAt    int64  `json:"exported_at"`
}

// Export writes one collection to a JSONL or HTML file. The note files are only read.
func Export(store *storage.Store, cfg *config.Config, input ExportInput) (*ExportOutput, error) {
	now := timeNow()

	format := input.Format
	if format == "" {
		format = ExportFormatJSONL
	}
	if format != ExportFormatJSONL && format != ExportFormatHTML {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown export format %q (want jsonl or html)", format))
	}

	collection := input.Collection
	if collection == "" {
		collection = errors.CollectionActive
	}
	var notes []note.Note
	switch collection {
	case errors.CollectionActive:
		notes = store.LoadNotes()
	case errors.CollectionTrash:
		notes = store.LoadTrash()
	default:
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown collection %q (want active or trash)", collection))
	}

	exportPath := input.Path
	if exportPath == "" {
		exportPath = defaultExportPath(cfg.ExportDir, collection, format, now)
	}

	var (
		content []byte
		err     error
	)
	if format == ExportFormatHTML {
		content, err = renderHTML(collection, notes, now)
	} else {
		content, err = renderJSONL(collection, notes, now)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	if err := storage.WriteFile(exportPath, content); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export: %w", err))
	}

	return &ExportOutput{
		Path:       exportPath,
		Format:     format,
		Collection: collection,
		Count:      len(notes),
		ExportedAt: now.Unix(),
	}, nil
}

// defaultExportPath generates the default export path.
// Format: <dir>/<collection>-<ulid>.<ext>; the ULID keeps names unique and time-sortable.
func defaultExportPath(dir, collection string, format ExportFormat, now time.Time) string {
	id := ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0))
	return filepath.Join(dir, fmt.Sprintf("%s-%s.%s", collection, id.String(), format))
}

func renderJSONL(collection string, notes []note.Note, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	header := ExportHeader{
		ZotterExport:  true,
		SchemaVersion: ExportSchemaVersion,
		Collection:    collection,
		ExportedAt:    now.Unix(),
	}
	if err := enc.Encode(header); err != nil {
		return nil, err
	}
	for _, n := range notes {
		if err := enc.Encode(n); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

var exportPage = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>zotter: {{.Collection}} notes</title>
</head>
<body>
<h1>{{.Collection}} notes</h1>
<p>Exported {{.ExportedAt}}, {{len .Notes}} note(s).</p>
{{range .Notes}}<article>
<h2>{{.Index}}. {{.Title}}</h2>
<p><strong>{{.Category}}</strong> | {{.Date}}</p>
{{.Body}}
</article>
{{end}}</body>
</html>
`))

type htmlNote struct {
	Index    int
	Title    string
	Category string
	Date     string
	Body     template.HTML
}

func renderHTML(collection string, notes []note.Note, now time.Time) ([]byte, error) {
	rendered := make([]htmlNote, len(notes))
	for i, n := range notes {
		rendered[i] = htmlNote{
			Index:    i + 1,
			Title:    n.Title,
			Category: n.Category,
			Date:     n.Date,
			Body:     renderMarkdown(n.Content),
		}
	}

	var buf bytes.Buffer
	err := exportPage.Execute(&buf, map[string]any{
		"Collection": collection,
		"ExportedAt": now.Format(note.DateLayout),
		"Notes":      rendered,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderMarkdown converts note content to HTML using goldmark.
// goldmark drops raw HTML by default, so the output is safe to inline.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}
