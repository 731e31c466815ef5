package messages

import (
	"context"
	"fmt"
	"time"

	"securechat/internal/dbx"
	"securechat/internal/models"
)

// SQLiteRepository implements message storage for the embedded backend.
// sent_at is a microsecond Unix integer assigned at insert; in embedded mode
// the process is the store, so the ordering contract is preserved.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, ciphertext_payload, sent_at)
		VALUES (?, ?, ?, ?)
		RETURNING message_id
	`

	sentAt := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		message.SenderID, message.ReceiverID, message.CiphertextPayload, sentAt.UnixMicro()).Scan(&message.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	message.SentAt = sentAt
	return message, nil
}

func (r *SQLiteRepository) Conversation(ctx context.Context, userA, userB int64) ([]*models.Message, error) {
	query := `
		SELECT message_id, sender_id, receiver_id, ciphertext_payload, sent_at FROM messages
		WHERE (sender_id = ? AND receiver_id = ?)
		   OR (sender_id = ? AND receiver_id = ?)
		ORDER BY sent_at ASC, message_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userA, userB, userB, userA)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		item := &models.Message{}
		var sentAt int64
		if err := rows.Scan(&item.ID, &item.SenderID, &item.ReceiverID, &item.CiphertextPayload, &sentAt); err != nil {
			return nil, err
		}
		item.SentAt = time.UnixMicro(sentAt).UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
