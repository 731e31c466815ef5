package messages

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"securechat/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	sent := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO messages .* RETURNING message_id, sent_at`).
		WithArgs(int64(1), int64(2), "payload").
		WillReturnRows(sqlmock.NewRows([]string{"message_id", "sent_at"}).AddRow(int64(10), sent))

	got, err := repo.Create(context.Background(), &models.Message{
		SenderID:          1,
		ReceiverID:        2,
		CiphertextPayload: "payload",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 10 || !got.SentAt.Equal(sent) {
		t.Fatalf("store-assigned fields not filled in: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs(int64(1), int64(2), "payload").
		WillReturnError(errors.New("db is down"))

	_, err := repo.Create(context.Background(), &models.Message{
		SenderID:          1,
		ReceiverID:        2,
		CiphertextPayload: "payload",
	})
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestConversation_BothDirectionsOrdered(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t1 := time.Now().UTC()
	t2 := t1.Add(time.Second)
	mock.ExpectQuery(`SELECT message_id, sender_id, receiver_id, ciphertext_payload, sent_at FROM messages .* ORDER BY sent_at ASC, message_id ASC`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"message_id", "sender_id", "receiver_id", "ciphertext_payload", "sent_at"}).
			AddRow(int64(10), int64(1), int64(2), "p1", t1).
			AddRow(int64(11), int64(2), int64(1), "p2", t2))

	got, err := repo.Conversation(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 10 || got[1].ID != 11 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got[1].SenderID != 2 || got[1].ReceiverID != 1 {
		t.Fatalf("reverse direction row missing: %+v", got[1])
	}
}

func TestConversation_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT message_id`).
		WithArgs(int64(1), int64(2)).
		WillReturnError(errors.New("db is down"))

	_, err := repo.Conversation(context.Background(), 1, 2)
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
