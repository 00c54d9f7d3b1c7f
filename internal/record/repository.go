package record

import (
	"context"

	"github.com/google/uuid"
)

// ListParams is one list request: recognised filter values plus the requested page.
type ListParams struct {
	Values map[string]string
	Page   int
	Limit  int
}

// ListResult holds one page of records and the size of the filtered set.
type ListResult struct {
	Records    []Record
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Table is a full, column-ordered result used for exports.
type Table struct {
	Columns []string
	Records []Record
}

// Repository provides CRUD operations for one record type.
type Repository interface {
	Descriptor() *Descriptor
	List(ctx context.Context, params ListParams) (*ListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (Record, error)
	Create(ctx context.Context, payload Payload) (Record, error)
	Update(ctx context.Context, id uuid.UUID, payload Payload) (Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context) (*Table, error)
}
