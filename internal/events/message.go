package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

// ChangeMessage announces a committed ledger mutation. It names what changed,
// never the new values; consumers re-read what they need.
type ChangeMessage struct {
	OperationID string          `json:"operationID"`
	Action      string          `json:"action"`
	Entities    []ledger.Entity `json:"entities"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

func NewChangeMessage(operationID, action string, entities []ledger.Entity, at time.Time) *ChangeMessage {
	return &ChangeMessage{
		OperationID: operationID,
		Action:      action,
		Entities:    entities,
		OccurredAt:  at.UTC(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal change message: %w", err)
	}
	return &msg, nil
}
