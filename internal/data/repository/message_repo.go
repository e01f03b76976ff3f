package repository

import (
	"context"
	"errors"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var messageColumns = []string{"id", "sender", "content", "timestamp", "is_read"}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func scanMessage(row pgx.Row) (*entity.Message, error) {
	var m entity.Message
	err := row.Scan(&m.ID, &m.Sender, &m.Content, &m.Timestamp, &m.IsRead)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepository) FindAll(ctx context.Context) ([]entity.Message, error) {
	query, args, err := psql.Select(messageColumns...).From("messages").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select messages: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all messages", zap.Error(err))
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	defer rows.Close()

	messages := []entity.Message{}
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Content, &m.Timestamp, &m.IsRead); err != nil {
			r.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) FindByID(ctx context.Context, id string) (*entity.Message, error) {
	query, args, err := psql.Select(messageColumns...).From("messages").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select message: %w", err)
	}

	msg, err := scanMessage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		r.log.Error("Failed to find message by ID", zap.Error(err), zap.String("message_id", id))
		return nil, fmt.Errorf("failed to find message: %w", err)
	}

	return msg, nil
}

// AppendReply appends the reply to the stored content in a single statement
func (r *messageRepository) AppendReply(ctx context.Context, id, reply string) (*entity.Message, error) {
	query, args, err := psql.Update("messages").
		Set("content", sq.Expr("content || ?", entity.ReplySeparator+reply)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, sender, content, timestamp, is_read").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build append reply: %w", err)
	}

	msg, err := scanMessage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		r.log.Error("Failed to append reply", zap.Error(err), zap.String("message_id", id))
		return nil, fmt.Errorf("failed to append reply: %w", err)
	}
	if msg == nil {
		return nil, ErrNotFound
	}

	return msg, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id string) (*entity.Message, error) {
	query, args, err := psql.Update("messages").
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, sender, content, timestamp, is_read").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mark read: %w", err)
	}

	msg, err := scanMessage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		r.log.Error("Failed to mark message read", zap.Error(err), zap.String("message_id", id))
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}
	if msg == nil {
		return nil, ErrNotFound
	}

	return msg, nil
}
