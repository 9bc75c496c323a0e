package handlers

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SimpleRow is a pgx.Row stand-in for handler tests. A nil scanner behaves like
// an empty result set.
type SimpleRow struct {
	scan func(dest ...any) error
}

func NewSimpleRow(scanner func(dest ...any) error) SimpleRow {
	return SimpleRow{scan: scanner}
}

func (r SimpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// ValueRow returns a row that scans the given values in order.
func ValueRow(vals ...any) SimpleRow {
	return NewSimpleRow(func(dest ...any) error {
		return ScanInto(dest, vals)
	})
}

type TestRowsBase struct{}

func (TestRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (TestRowsBase) Conn() *pgx.Conn { return nil }

func (TestRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (TestRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (TestRowsBase) RawValues() [][]byte { return nil }

// StaticRows is a pgx.Rows stand-in iterating over fixed value tuples.
type StaticRows struct {
	TestRowsBase
	Rows [][]any
	idx  int
}

func (r *StaticRows) Next() bool {
	if r.idx >= len(r.Rows) {
		return false
	}
	r.idx++
	return true
}

func (r *StaticRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.Rows) {
		return pgx.ErrNoRows
	}
	return ScanInto(dest, r.Rows[r.idx-1])
}

func (r *StaticRows) Err() error { return nil }

func (r *StaticRows) Close() {}

// ScanInto copies fixture values into scan destinations for the column types
// this service uses.
func ScanInto(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan destination count %d does not match %d values", len(dest), len(vals))
	}
	for i, v := range vals {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *float64:
			*d = v.(float64)
		case *int64:
			*d = v.(int64)
		case *time.Time:
			*d = v.(time.Time)
		case *[]byte:
			if v == nil {
				*d = nil
			} else {
				*d = append([]byte(nil), v.([]byte)...)
			}
		default:
			return fmt.Errorf("unsupported scan destination %T", dest[i])
		}
	}
	return nil
}

var _ pgx.Rows = (*StaticRows)(nil)
