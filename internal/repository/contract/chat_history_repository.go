package contract

import "context"

// ChatTurn is one entry of the per-user conversation log.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatHistoryRepository keeps the ordered conversation log per user with a
// sliding expiry reset on every append.
type ChatHistoryRepository interface {
	Get(ctx context.Context, userId string) ([]ChatTurn, error)
	Append(ctx context.Context, userId string, turns ...ChatTurn) error
	Clear(ctx context.Context, userId string) error
}
