package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionAdd, ActionEdit, ActionDelete:
		return true
	default:
		return false
	}
}

// Mutation is one successful write against the record store.
type Mutation struct {
	ID        uuid.UUID `json:"id"`
	Entity    Name      `json:"entity"`
	Key       string    `json:"key"`
	Action    Action    `json:"action"`
	Actor     string    `json:"actor"`
	Payload   Record    `json:"payload,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type JournalFilter struct {
	Entity Name
	Key    string
	Action Action
	Page   uint64
	Limit  uint64
}
