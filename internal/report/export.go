package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/record"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// TypeAll exports every registered source in one JSON document.
const TypeAll = "all"

var (
	// ErrInvalidType is returned for an unknown export type.
	ErrInvalidType = errors.New("invalid export type")
	// ErrInvalidFormat is returned for a format other than csv or json.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrAllRequiresJSON is returned when TypeAll is requested as CSV.
	ErrAllRequiresJSON = errors.New(`export type "all" is only available in JSON format`)
)

// File is a rendered export ready to be sent as an attachment.
type File struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Exporter renders record tables as CSV or JSON.
type Exporter struct {
	sources []record.Repository
	byName  map[string]record.Repository
	now     func() time.Time
}

// NewExporter creates an Exporter over the given repositories. Their descriptor
// names are the accepted export types.
func NewExporter(sources ...record.Repository) *Exporter {
	e := &Exporter{byName: make(map[string]record.Repository, len(sources)), now: time.Now}
	for _, src := range sources {
		e.sources = append(e.sources, src)
		e.byName[src.Descriptor().Name] = src
	}
	return e
}

// Types returns the accepted export types, TypeAll last.
func (e *Exporter) Types() []string {
	types := make([]string, 0, len(e.sources)+1)
	for _, src := range e.sources {
		types = append(types, src.Descriptor().Name)
	}
	return append(types, TypeAll)
}

// Export renders one export. Empty typ and format default to the first source and CSV.
func (e *Exporter) Export(ctx context.Context, typ, format string) (*File, error) {
	if typ == "" && len(e.sources) > 0 {
		typ = e.sources[0].Descriptor().Name
	}
	if format == "" {
		format = FormatCSV
	}

	if typ != TypeAll {
		if _, ok := e.byName[typ]; !ok {
			return nil, ErrInvalidType
		}
	}
	if format != FormatCSV && format != FormatJSON {
		return nil, ErrInvalidFormat
	}
	if typ == TypeAll && format == FormatCSV {
		return nil, ErrAllRequiresJSON
	}

	date := e.now().UTC().Format("2006-01-02")

	if typ == TypeAll {
		body, err := e.exportAll(ctx)
		if err != nil {
			return nil, err
		}
		return &File{
			Filename:    fmt.Sprintf("all_data_export_%s.json", date),
			ContentType: "application/json",
			Body:        body,
		}, nil
	}

	table, err := e.byName[typ].Export(ctx)
	if err != nil {
		return nil, err
	}

	file := &File{Filename: fmt.Sprintf("%s_export_%s.%s", typ, date, format)}
	if format == FormatJSON {
		file.ContentType = "application/json"
		file.Body, err = json.MarshalIndent(table.Records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s export: %w", typ, err)
		}
		return file, nil
	}

	file.ContentType = "text/csv"
	file.Body = EncodeCSV(table)
	return file, nil
}

func (e *Exporter) exportAll(ctx context.Context) ([]byte, error) {
	tables := make([]*record.Table, len(e.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range e.sources {
		i, src := i, src
		g.Go(func() error {
			t, err := src.Export(gctx)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := make(map[string][]record.Record, len(tables))
	for i, t := range tables {
		doc[e.sources[i].Descriptor().Name] = t.Records
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return body, nil
}

// EncodeCSV writes the header row as-is, then every value double-quoted with
// embedded quotes doubled. NULL is written as an empty unquoted field. An empty
// table produces an empty body.
func EncodeCSV(t *record.Table) []byte {
	var buf bytes.Buffer
	if len(t.Records) == 0 {
		return buf.Bytes()
	}

	buf.WriteString(strings.Join(t.Columns, ","))
	buf.WriteByte('\n')
	for _, rec := range t.Records {
		for i, col := range t.Columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			v := rec[col]
			if v == nil {
				continue
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(formatValue(v), `"`, `""`))
			buf.WriteByte('"')
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}
