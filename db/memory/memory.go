// Package memory implements the generated query interface on top of maps.
// It backs local runs without Postgres and the test suites, and mirrors
// the Postgres behaviour the store relies on: pgx.ErrNoRows for missing
// rows, primary and foreign key violations as *pgconn.PgError, and
// all-or-nothing units of work.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pocketbook/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type key = [16]byte

type dataset struct {
	accounts     map[key]generated.Account
	categories   map[key]generated.Category
	transactions map[key]generated.Transaction
	settings     map[key]generated.UserSetting
}

func newDataset() *dataset {
	return &dataset{
		accounts:     map[key]generated.Account{},
		categories:   map[key]generated.Category{},
		transactions: map[key]generated.Transaction{},
		settings:     map[key]generated.UserSetting{},
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.accounts {
		c.accounts[k] = v
	}
	for k, v := range d.categories {
		c.categories[k] = v
	}
	for k, v := range d.transactions {
		c.transactions[k] = v
	}
	for k, v := range d.settings {
		c.settings[k] = v
	}
	return c
}

// Store is safe for concurrent use. Units of work are serialized.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

// uncategorizedID matches the row seeded by the schema migrations.
var uncategorizedID = uuid.MustParse("00000000-0000-0000-0000-000000000002")

// New returns an empty store holding only the Uncategorized category, the
// same state the migrations leave behind.
func New() *Store {
	d := newDataset()
	d.categories[uncategorizedID] = generated.Category{
		ID:        pgtype.UUID{Bytes: uncategorizedID, Valid: true},
		Name:      "Uncategorized",
		Type:      "expense",
		CreatedAt: pgtype.Timestamptz{Time: time.Now().UTC().Truncate(time.Microsecond), Valid: true},
	}
	return &Store{data: d}
}

func (s *Store) Queries() generated.Querier {
	return &queries{store: s}
}

// InTx runs fn against the live data while holding the lock and restores
// the previous state if fn fails or ctx is done.
func (s *Store) InTx(ctx context.Context, fn func(q generated.Querier) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(&queries{store: s, inTx: true}); err != nil {
		s.data = snapshot
		return err
	}
	if err := ctx.Err(); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// InReadTx runs fn while holding the lock. Writes fail the way they do in
// a read-only Postgres transaction.
func (s *Store) InReadTx(ctx context.Context, fn func(q generated.Querier) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&queries{store: s, inTx: true, readOnly: true})
}

type queries struct {
	store    *Store
	inTx     bool
	readOnly bool
}

var _ generated.Querier = (*queries)(nil)

// with runs fn on the dataset, taking the lock unless a unit of work
// already holds it.
func (q *queries) with(ctx context.Context, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !q.inTx {
		q.store.mu.Lock()
		defer q.store.mu.Unlock()
	}
	return fn(q.store.data)
}

// write is with for statements that modify rows.
func (q *queries) write(ctx context.Context, fn func(d *dataset) error) error {
	if q.readOnly {
		return readOnlyViolation()
	}
	return q.with(ctx, fn)
}

func uniqueViolation(table string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        fmt.Sprintf("duplicate key value violates unique constraint \"%s_pkey\"", table),
		TableName:      table,
		ConstraintName: table + "_pkey",
	}
}

func readOnlyViolation() error {
	return &pgconn.PgError{
		Severity: "ERROR",
		Code:     "25006",
		Message:  "cannot execute statement in a read-only transaction",
	}
}

func foreignKeyViolation(table, constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        fmt.Sprintf("insert or update on table \"%s\" violates foreign key constraint \"%s\"", table, constraint),
		TableName:      table,
		ConstraintName: constraint,
	}
}

func idSet(ids []pgtype.UUID) map[key]struct{} {
	set := make(map[key]struct{}, len(ids))
	for _, id := range ids {
		if id.Valid {
			set[id.Bytes] = struct{}{}
		}
	}
	return set
}
