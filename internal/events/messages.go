package events

import (
	"encoding/json"
	"time"
)

// Entity names carried by change messages.
const (
	EntityPerson   = "person"
	EntityCategory = "category"
	EntityExpense  = "expense"
	EntityPayment  = "payment"
	EntityMode     = "division_mode"
)

// Operation names carried by change messages.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// ChangeMessage is a lightweight notification that the ledger changed.
// It carries only the entity and id, consumers fetch the current state
// from the service if they need it.
type ChangeMessage struct {
	Entity    string    `json:"entity"`
	Op        string    `json:"op"`
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeMessage creates a change message for an entity mutation.
func NewChangeMessage(entity, op string, id int64) *ChangeMessage {
	return &ChangeMessage{
		Entity:    entity,
		Op:        op,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON creates a message from JSON bytes
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
