package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/database"
)

// Option configures a PostgresRepository.
type Option func(*PostgresRepository)

// WithMaxLimit caps the page size accepted by List.
func WithMaxLimit(n int) Option {
	return func(r *PostgresRepository) {
		if n > 0 {
			r.maxLimit = n
		}
	}
}

// PostgresRepository implements Repository for any Descriptor using pgx.
type PostgresRepository struct {
	db       database.Beginner
	desc     *Descriptor
	filters  []Filter
	maxLimit int
}

// NewRepository creates a Repository for desc backed by db. The descriptor must
// already be validated.
func NewRepository(db database.Beginner, desc *Descriptor, opts ...Option) Repository {
	r := &PostgresRepository{
		db:       db,
		desc:     desc,
		maxLimit: DefaultMaxLimit,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.filters = make([]Filter, len(desc.Filters))
	for i, f := range desc.Filters {
		cols := make([]string, len(f.Columns))
		for j, c := range f.Columns {
			cols[j] = desc.qualify(c)
		}
		r.filters[i] = Filter{Param: f.Param, Columns: cols, Mode: f.Mode}
	}

	return r
}

// Descriptor returns the descriptor this repository serves.
func (r *PostgresRepository) Descriptor() *Descriptor {
	return r.desc
}

// List returns one filtered, sorted page. The page query and the COUNT query share
// the same predicate and arguments and run concurrently.
func (r *PostgresRepository) List(ctx context.Context, params ListParams) (*ListResult, error) {
	d := r.desc
	win := Paginate(params.Page, params.Limit, d.DefaultLimit, r.maxLimit)
	where := BuildFilter(r.filters, params.Values)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", d.from(), where.SQL)
	dataQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		d.selectList(), d.from(), where.SQL, r.orderBy(), where.Next(), where.Next()+1)
	dataArgs := append(slices.Clone(where.Args), win.Limit, win.Offset)

	var (
		total   int
		records []Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		_, records, err = r.query(gctx, dataQuery, dataArgs...)
		return err
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, countQuery, where.Args...).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, r.translate(ctx, "list", err)
	}

	return &ListResult{
		Records:    records,
		Page:       win.Page,
		Limit:      win.Limit,
		Total:      total,
		TotalPages: TotalPages(total, win.Limit),
	}, nil
}

// GetByID returns the record with the given primary key, enriched by the join view.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (Record, error) {
	d := r.desc
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", d.selectList(), d.from(), d.qualify(d.PrimaryKey))

	_, records, err := r.query(ctx, query, id)
	if err != nil {
		return nil, r.translate(ctx, "get", err)
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// Create validates required fields and inserts one row. Columns not declared by the
// descriptor are ignored.
func (r *PostgresRepository) Create(ctx context.Context, payload Payload) (Record, error) {
	d := r.desc

	if d.Code != nil {
		if v, ok := payload.Get(d.Code.Column); !ok || isBlank(v) {
			payload = payload.with(d.Code.Column, generateCode(d.Code.Prefix))
		}
	}

	var missing []string
	for _, col := range d.Required {
		if v, ok := payload.Get(col); !ok || isBlank(v) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	var cols, placeholders []string
	var args []any
	for _, col := range d.Columns {
		v, ok := payload.Get(col)
		if !ok {
			continue
		}
		if !isScalar(v) {
			return nil, &ValidationError{Fields: []string{col}, Message: fmt.Sprintf("Field %s must be a scalar value", col)}
		}
		if isBlank(v) {
			v = nil
		}
		args = append(args, v)
		cols = append(cols, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	var query string
	if len(cols) == 0 {
		query = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING *", d.Table)
	} else {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
			d.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	}

	_, records, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, r.translate(ctx, "create", err)
	}
	if len(records) == 0 {
		return nil, r.translate(ctx, "create", errors.New("insert returned no row"))
	}

	return r.enrich(ctx, records[0])
}

// Update applies a partial update. An empty or non-whitelisted payload returns
// ErrEmptyUpdate without touching the database.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, payload Payload) (Record, error) {
	d := r.desc

	clean := Payload{}
	for _, key := range payload.Keys() {
		v, _ := payload.Get(key)
		if !slices.Contains(d.Updatable, key) {
			continue
		}
		if !isScalar(v) {
			return nil, &ValidationError{Fields: []string{key}, Message: fmt.Sprintf("Field %s must be a scalar value", key)}
		}
		if isBlank(v) {
			if d.isRequired(key) {
				return nil, &ValidationError{Fields: []string{key}, Message: fmt.Sprintf("Field %s cannot be empty", key)}
			}
			v = nil
		}
		clean.Set(key, v)
	}

	plan, err := BuildUpdate(d.Updatable, clean)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING *",
		d.Table, plan.Set, d.PrimaryKey, plan.IDPlaceholder)
	args := append(plan.Args, id)

	_, records, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, r.translate(ctx, "update", err)
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	return r.enrich(ctx, records[0])
}

// Delete removes one row. Dependent tables are counted first inside the same
// transaction and any reference refuses the deletion with a ConflictError.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	d := r.desc

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, dep := range d.Dependents {
			var count int
			query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", dep.Table, dep.Column)
			if err := tx.QueryRow(ctx, query, id).Scan(&count); err != nil {
				return fmt.Errorf("counting %s: %w", dep.Table, err)
			}
			if count > 0 {
				return &ConflictError{Reason: fmt.Sprintf("Cannot delete %s with existing %s", d.Label, dep.Label)}
			}
		}

		tag, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", d.Table, d.PrimaryKey), id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			return err
		}
		return r.translate(ctx, "delete", err)
	}

	return nil
}

// Export returns every row in default sort order, with column order preserved.
func (r *PostgresRepository) Export(ctx context.Context) (*Table, error) {
	d := r.desc
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", d.exportList(), d.from(), r.orderBy())

	cols, records, err := r.query(ctx, query)
	if err != nil {
		return nil, r.translate(ctx, "export", err)
	}
	return &Table{Columns: cols, Records: records}, nil
}

// enrich re-reads a written row through the join view when the descriptor has one.
func (r *PostgresRepository) enrich(ctx context.Context, rec Record) (Record, error) {
	if r.desc.Join == nil {
		return rec, nil
	}
	idStr, _ := rec[r.desc.PrimaryKey].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return rec, nil
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) orderBy() string {
	dir := "ASC"
	if r.desc.Sort.Desc {
		dir = "DESC"
	}
	return r.desc.qualify(r.desc.Sort.Column) + " " + dir
}

// query runs a statement and collects every row as a Record.
func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]string, []Record, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}

	records := []Record{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		rec := make(Record, len(values))
		for i, v := range values {
			rec[cols[i]] = normalizeValue(v, fields[i].DataTypeOID)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return cols, records, nil
}

// translate converts constraint violations into client errors and everything else
// into a logged SystemError.
func (r *PostgresRepository) translate(ctx context.Context, op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &ConflictError{Reason: fmt.Sprintf("%s with the same identifier already exists", r.desc.Title())}
		case pgerrcode.ForeignKeyViolation:
			if op == "delete" {
				return &ConflictError{Reason: fmt.Sprintf("Cannot delete %s while other records reference it", r.desc.Label)}
			}
			return &ValidationError{Message: "Referenced record does not exist"}
		case pgerrcode.NotNullViolation:
			return &ValidationError{Fields: []string{pgErr.ColumnName}, Message: fmt.Sprintf("Field %s is required", pgErr.ColumnName)}
		case pgerrcode.InvalidTextRepresentation,
			pgerrcode.InvalidDatetimeFormat,
			pgerrcode.DatetimeFieldOverflow,
			pgerrcode.NumericValueOutOfRange,
			pgerrcode.StringDataRightTruncationDataException,
			pgerrcode.CheckViolation:
			return &ValidationError{Message: "One or more fields have invalid values"}
		}
	}

	slog.ErrorContext(ctx, "record operation failed", "op", op, "entity", r.desc.Name, "error", err)
	return &SystemError{Op: op, Entity: r.desc.Name, Err: err}
}

// normalizeValue converts driver values into JSON-friendly forms.
func normalizeValue(v any, oid uint32) any {
	switch t := v.(type) {
	case [16]byte:
		return uuid.UUID(t).String()
	case pgtype.Numeric:
		if !t.Valid {
			return nil
		}
		f, err := t.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case time.Time:
		if oid == pgtype.DateOID {
			return t.Format("2006-01-02")
		}
		return t
	}
	return v
}

// isScalar reports whether v can bind directly to a column parameter.
func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool, int, int32, int64, float32, float64:
		return true
	}
	return false
}

// generateCode returns PREFIX-XXXXXXXX using random hex from a UUIDv4.
func generateCode(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + id[:8]
}

// with returns a copy of p with key set to value.
func (p Payload) with(key string, value any) Payload {
	out := Payload{}
	for _, k := range p.keys {
		out.Set(k, p.values[k])
	}
	out.Set(key, value)
	return out
}
