package store

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"pocketbook/db"
	"pocketbook/db/memory"
	"pocketbook/internal/events"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testBackend builds a fresh, empty runner for one test.
type testBackend struct {
	name      string
	newRunner func(t *testing.T) TxRunner
}

// backends always includes the in-memory store. Postgres is added when
// TEST_DATABASE_URL points at a scratch database.
func backends(t *testing.T) []testBackend {
	t.Helper()

	list := []testBackend{{
		name:      "memory",
		newRunner: func(*testing.T) TxRunner { return memory.New() },
	}}

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		return list
	}

	return append(list, testBackend{
		name: "postgres",
		newRunner: func(t *testing.T) TxRunner {
			pool := postgresPool(t, url)
			_, err := pool.Exec(context.Background(), "TRUNCATE transactions, accounts, categories, user_settings")
			require.NoError(t, err)

			runner := NewPostgresRunner(pool)
			_, err = New(runner).EnsureUncategorized(context.Background())
			require.NoError(t, err)
			return runner
		},
	})
}

var (
	migrateOnce sync.Once
	migrateErr  error
)

func postgresPool(t *testing.T, url string) *pgxpool.Pool {
	t.Helper()

	migrateOnce.Do(func() { migrateErr = db.RunMigrations(url) })
	require.NoError(t, migrateErr)

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// forEachBackend runs fn once per backend against a fresh store.
func forEachBackend(t *testing.T, fn func(t *testing.T, runner TxRunner, s *Store)) {
	for _, b := range backends(t) {
		b := b
		t.Run(b.name, func(t *testing.T) {
			runner := b.newRunner(t)
			fn(t, runner, New(runner))
		})
	}
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// ids returns the ids carried by each event, in publish order.
func (p *recordingPublisher) ids() [][]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.IDs)
	}
	return out
}

func mustAccount(t *testing.T, s *Store, name string) Account {
	t.Helper()
	a, err := s.CreateAccount(context.Background(), AccountInput{Name: name, Balance: decimal.Zero})
	require.NoError(t, err)
	return a
}

func mustCategory(t *testing.T, s *Store, name string, entryType EntryType) Category {
	t.Helper()
	c, err := s.CreateCategory(context.Background(), CategoryInput{Name: name, Type: entryType})
	require.NoError(t, err)
	return c
}

func mustTransaction(t *testing.T, s *Store, account Account, category Category, bookedOn, amount string) Transaction {
	t.Helper()
	date, err := time.Parse("2006-01-02", bookedOn)
	require.NoError(t, err)

	tx, err := s.CreateTransaction(context.Background(), TransactionInput{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Type:       category.Type,
		BookedOn:   date,
		Amount:     decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return tx
}
