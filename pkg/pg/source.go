package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the part of a pgx pool or connection used by Source.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Source snapshots one column of a table as registered usernames.
type Source struct {
	db    Querier
	query string
	table string
}

// NewSource returns a Source selecting column from table.
// Both identifiers are quoted, so they are matched case-sensitively.
func NewSource(db Querier, table, column string) (*Source, error) {
	if table == "" || column == "" {
		return nil, ErrEmptyIdentifier
	}
	query := fmt.Sprintf("SELECT %s FROM %s",
		pgx.Identifier{column}.Sanitize(),
		pgx.Identifier{table}.Sanitize(),
	)
	return &Source{db: db, query: query, table: table}, nil
}

// Name identifies the source in logs and errors.
func (s *Source) Name() string {
	return "postgres:" + s.table
}

// Usernames runs the select and collects every row.
func (s *Source) Usernames(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, s.query)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadUsernames, err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Join(ErrFailedToReadUsernames, err)
	}
	return names, nil
}
