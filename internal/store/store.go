// Package store holds the domain operations of the tracker: CRUD for
// accounts, categories and transactions, the archive cascade, paged
// transaction queries, the settings singleton and demo data.
package store

import (
	"context"
	"errors"
	"time"

	"pocketbook/db/generated"
	"pocketbook/internal/events"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound is returned when the target row does not exist or is
	// archived for a filtered read.
	ErrNotFound = errors.New("not found")
	// ErrDemoDataExists is returned when demo data was already seeded.
	ErrDemoDataExists = errors.New("demo data already exists")
	// ErrAccountUnavailable and ErrCategoryUnavailable are returned when a
	// transaction write references a missing or archived row.
	ErrAccountUnavailable  = errors.New("account does not exist or is archived")
	ErrCategoryUnavailable = errors.New("category does not exist or is archived")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TxRunner gives access to queries outside and inside a unit of work.
// InTx commits when fn returns nil and rolls back otherwise. InReadTx runs
// fn against one consistent snapshot and rejects writes.
type TxRunner interface {
	Queries() generated.Querier
	InTx(ctx context.Context, fn func(q generated.Querier) error) error
	InReadTx(ctx context.Context, fn func(q generated.Querier) error) error
}

// PostgresRunner runs queries against a pgx pool.
type PostgresRunner struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

func NewPostgresRunner(pool *pgxpool.Pool) *PostgresRunner {
	return &PostgresRunner{pool: pool, queries: generated.New(pool)}
}

func (r *PostgresRunner) Queries() generated.Querier {
	return r.queries
}

func (r *PostgresRunner) InTx(ctx context.Context, fn func(q generated.Querier) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(r.queries.WithTx(tx))
	})
}

var readTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

func (r *PostgresRunner) InReadTx(ctx context.Context, fn func(q generated.Querier) error) error {
	return pgx.BeginTxFunc(ctx, r.pool, readTxOptions, func(tx pgx.Tx) error {
		return fn(r.queries.WithTx(tx))
	})
}

type Store struct {
	runner    TxRunner
	publisher events.Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

type Option func(*Store)

func WithPublisher(p events.Publisher) Option {
	return func(s *Store) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(runner TxRunner, opts ...Option) *Store {
	s := &Store{
		runner:    runner,
		publisher: events.Nop{},
		logger:    zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp returns the current time truncated to what Postgres stores.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// publish is best effort: the unit of work already committed.
func (s *Store) publish(ctx context.Context, t events.Type, ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events.New(t, ids, s.timestamp())); err != nil {
		s.logger.Warn().Err(err).Str("event", string(t)).Msg("Failed to publish event")
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation reports whether err is a primary key or unique
// constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key failure.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func distinctIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
