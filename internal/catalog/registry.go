// Package catalog declares every record type of the application and the fixed
// vocabularies the client offers in its forms.
package catalog

import (
	"fmt"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/database"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/record"
)

// Registry holds one repository per record type, keyed by name.
type Registry struct {
	order  []string
	byName map[string]record.Repository
}

// NewRegistry validates every descriptor and builds its repository.
func NewRegistry(db database.Beginner, opts ...record.Option) (*Registry, error) {
	return NewRegistryFrom(Descriptors(), func(d *record.Descriptor) record.Repository {
		return record.NewRepository(db, d, opts...)
	})
}

// NewRegistryFrom builds a registry from arbitrary descriptors using build to
// create each repository.
func NewRegistryFrom(descs []*record.Descriptor, build func(*record.Descriptor) record.Repository) (*Registry, error) {
	reg := &Registry{byName: make(map[string]record.Repository, len(descs))}
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid descriptor: %w", err)
		}
		if _, dup := reg.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate record type %q", d.Name)
		}
		reg.byName[d.Name] = build(d)
		reg.order = append(reg.order, d.Name)
	}
	return reg, nil
}

// Get returns the repository for name.
func (r *Registry) Get(name string) (record.Repository, bool) {
	repo, ok := r.byName[name]
	return repo, ok
}

// All returns every repository in registration order.
func (r *Registry) All() []record.Repository {
	out := make([]record.Repository, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns every record type name in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
