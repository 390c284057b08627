package events

import "time"

const BalanceChangedTopic = "construction.ledger.balance.v1"

const BalanceChangedEventType = "ledger.balance_changed"

// BalanceChangedEvent is emitted once per balance touched by a committed
// ledger plan. Amounts are decimal strings.
type BalanceChangedEvent struct {
	EventType  string    `json:"event_type"`
	Account    string    `json:"account"`
	OwnerID    string    `json:"owner_id"`
	Delta      string    `json:"delta"`
	Balance    string    `json:"balance"`
	Reason     string    `json:"reason"`
	SourceType string    `json:"source_type,omitempty"`
	SourceID   string    `json:"source_id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
