// Package messages provides persistence for encrypted message rows.
package messages

import (
	"context"

	"securechat/internal/models"
)

type Repository interface {
	// Create inserts a new message row and fills in the store-assigned
	// id and timestamp. A failed insert means the message was not recorded.
	Create(ctx context.Context, message *models.Message) (*models.Message, error)

	// Conversation returns every message exchanged between the two accounts
	// in either direction, ordered ascending by sent_at with ties broken by
	// message id.
	Conversation(ctx context.Context, userA, userB int64) ([]*models.Message, error)
}
