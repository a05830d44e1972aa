package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	AccountsArchived     Type = "accounts.archived"
	CategoriesArchived   Type = "categories.archived"
	TransactionsArchived Type = "transactions.archived"
)

// Event notifies other services that a set of entities changed state.
type Event struct {
	Type       Type      `json:"type"`
	IDs        []string  `json:"ids"`
	OccurredAt time.Time `json:"occurredAt"`
}

func New(t Type, ids []uuid.UUID, occurredAt time.Time) Event {
	e := Event{
		Type:       t,
		IDs:        make([]string, 0, len(ids)),
		OccurredAt: occurredAt.UTC(),
	}
	for _, id := range ids {
		e.IDs = append(e.IDs, id.String())
	}
	return e
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
