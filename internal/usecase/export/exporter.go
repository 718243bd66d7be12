package export

import (
	"fmt"
	"sync"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/markup"
)

const (
	MIMEPDF      = "application/pdf"
	MIMEWord     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText     = "text/plain; charset=utf-8"
	MIMEMarkdown = "text/markdown; charset=utf-8"
)

// Document is the input of one export: the parsed paragraphs plus the HTML they came from
type Document struct {
	Nodes   []*markup.Node
	HTML    string
	Title   string
	VideoID string
}

// Exporter renders a Document into a downloadable artifact
type Exporter interface {
	Format() entities.ExportFormat
	Export(doc Document) (*entities.Artifact, error)
}

// Registry dispatches export requests to the exporter registered for each format
type Registry struct {
	mu        sync.RWMutex
	exporters map[entities.ExportFormat]Exporter
}

// NewRegistry creates a registry holding the given exporters
func NewRegistry(exporters ...Exporter) *Registry {
	r := &Registry{exporters: make(map[entities.ExportFormat]Exporter, len(exporters))}
	for _, e := range exporters {
		r.Register(e)
	}
	return r
}

// NewDefaultRegistry wires every built-in exporter with a shared header
func NewDefaultRegistry(site Site) *Registry {
	return NewRegistry(
		NewPDFExporter(site),
		NewWordExporter(site),
		NewTextExporter(site),
		NewMarkdownExporter(site),
	)
}

// Register adds or replaces the exporter for its format
func (r *Registry) Register(e Exporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exporters[e.Format()] = e
}

// Get returns the exporter for format
func (r *Registry) Get(format entities.ExportFormat) (Exporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedFormat, format)
	}
	return e, nil
}

// Formats lists the registered formats in display order
func (r *Registry) Formats() []entities.ExportFormat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.ExportFormat, 0, len(r.exporters))
	for _, f := range entities.ExportFormats {
		if _, ok := r.exporters[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
