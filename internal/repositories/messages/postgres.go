package messages

import (
	"context"
	"fmt"

	"securechat/internal/dbx"
	"securechat/internal/models"
)

// PostgresRepository implements message storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, ciphertext_payload)
		VALUES ($1, $2, $3)
		RETURNING message_id, sent_at
	`

	err := r.db.QueryRowContext(ctx, query,
		message.SenderID, message.ReceiverID, message.CiphertextPayload).Scan(&message.ID, &message.SentAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return message, nil
}

func (r *PostgresRepository) Conversation(ctx context.Context, userA, userB int64) ([]*models.Message, error) {
	query := `
		SELECT message_id, sender_id, receiver_id, ciphertext_payload, sent_at FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY sent_at ASC, message_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		item := &models.Message{}
		if err := rows.Scan(&item.ID, &item.SenderID, &item.ReceiverID, &item.CiphertextPayload, &item.SentAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
