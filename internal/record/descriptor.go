package record

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

// identRegex restricts every column, table and alias name that is interpolated into
// SQL text. Values never pass through here; they always travel as parameters.
var identRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)

// MatchMode selects how a filter compares its column against the supplied value.
type MatchMode int

const (
	// Equals compares with `column = $n`.
	Equals MatchMode = iota
	// Contains compares with a case-insensitive `column ILIKE '%value%'`.
	Contains
)

// Filter maps one recognised query parameter onto one or more columns.
// A Contains filter over several columns matches when any of them matches.
type Filter struct {
	Param   string
	Columns []string
	Mode    MatchMode
}

// Sort is the default ordering of a list query.
type Sort struct {
	Column string
	Desc   bool
}

// Join enriches read queries with columns from related tables.
type Join struct {
	Clause string   // e.g. "LEFT JOIN customers cu ON c.client_id = cu.id"
	Select []string // e.g. "cu.customer_name"
	// Export replaces Select in bulk exports when set.
	Export []string
}

// Code describes a human-readable business identifier generated on create
// when the client does not supply one (e.g. CUST-1A2B3C4D).
type Code struct {
	Column string
	Prefix string
}

// Dependent is a table whose rows reference this entity and block its deletion.
type Dependent struct {
	Table  string
	Column string
	Label  string // plural noun used in the conflict message, e.g. "cases"
}

// Scope is a nested list route such as /cases/by-customer/{parentId}. The path
// parameter is fed into the named filter.
type Scope struct {
	Path   string
	Filter string
}

// Descriptor is the static configuration of one record type. It is built once at
// startup, validated, and only read afterwards.
type Descriptor struct {
	Name         string
	Label        string
	Table        string
	Alias        string
	PrimaryKey   string
	Columns      []string
	Required     []string
	Updatable    []string
	Filters      []Filter
	Sort         Sort
	DefaultLimit int
	Join         *Join
	Code         *Code
	Dependents   []Dependent
	Scopes       []Scope
}

// Validate checks the descriptor for identifiers that could not safely appear in SQL
// text and for inconsistent column sets.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("descriptor name is required")
	}
	idents := []string{d.Table, d.PrimaryKey, d.Sort.Column}
	if d.Alias != "" {
		idents = append(idents, d.Alias)
	}
	idents = append(idents, d.Columns...)
	for _, f := range d.Filters {
		if len(f.Columns) == 0 {
			return fmt.Errorf("%s: filter %q has no columns", d.Name, f.Param)
		}
		idents = append(idents, f.Columns...)
	}
	for _, dep := range d.Dependents {
		idents = append(idents, dep.Table, dep.Column)
	}
	if d.Code != nil {
		idents = append(idents, d.Code.Column)
	}
	for _, id := range idents {
		if !identRegex.MatchString(id) {
			return fmt.Errorf("%s: invalid identifier %q", d.Name, id)
		}
	}

	cols := make(map[string]bool, len(d.Columns))
	for _, c := range d.Columns {
		cols[c] = true
	}
	for _, c := range d.Required {
		if !cols[c] {
			return fmt.Errorf("%s: required column %q is not insertable", d.Name, c)
		}
	}
	for _, c := range d.Updatable {
		if c == d.PrimaryKey {
			return fmt.Errorf("%s: primary key %q must not be updatable", d.Name, c)
		}
		if !cols[c] {
			return fmt.Errorf("%s: updatable column %q is not a declared column", d.Name, c)
		}
	}
	if d.Code != nil && !cols[d.Code.Column] {
		return fmt.Errorf("%s: code column %q is not a declared column", d.Name, d.Code.Column)
	}

	params := make(map[string]bool, len(d.Filters))
	for _, f := range d.Filters {
		if params[f.Param] {
			return fmt.Errorf("%s: duplicate filter param %q", d.Name, f.Param)
		}
		params[f.Param] = true
	}
	for _, s := range d.Scopes {
		if !params[s.Filter] {
			return fmt.Errorf("%s: scope %q references unknown filter %q", d.Name, s.Path, s.Filter)
		}
	}

	return nil
}

// Title returns the capitalised singular label, e.g. "Customer" or "Compliance record".
func (d *Descriptor) Title() string {
	label := d.Label
	if label == "" {
		label = d.Name
	}
	words := strings.Fields(strcase.ToDelimited(label, ' '))
	if len(words) == 0 {
		return ""
	}
	words[0] = strcase.ToCamel(words[0])
	return strings.Join(words, " ")
}

// from returns the FROM target including the alias and join, if any.
func (d *Descriptor) from() string {
	from := d.Table
	if d.Alias != "" {
		from += " " + d.Alias
	}
	if d.Join != nil {
		from += " " + d.Join.Clause
	}
	return from
}

// selectList returns the projection used by read queries.
func (d *Descriptor) selectList() string {
	if d.Join == nil {
		return d.projection(nil)
	}
	return d.projection(d.Join.Select)
}

// exportList is selectList with the join's export columns, if it declares any.
func (d *Descriptor) exportList() string {
	if d.Join == nil {
		return d.projection(nil)
	}
	if d.Join.Export != nil {
		return d.projection(d.Join.Export)
	}
	return d.projection(d.Join.Select)
}

func (d *Descriptor) projection(extra []string) string {
	if d.Alias == "" {
		return "*"
	}
	return strings.Join(append([]string{d.Alias + ".*"}, extra...), ", ")
}

// qualify prefixes a bare column with the descriptor alias.
func (d *Descriptor) qualify(col string) string {
	if d.Alias == "" || strings.Contains(col, ".") {
		return col
	}
	return d.Alias + "." + col
}

// isRequired reports whether col is declared required.
func (d *Descriptor) isRequired(col string) bool {
	for _, c := range d.Required {
		if c == col {
			return true
		}
	}
	return false
}
