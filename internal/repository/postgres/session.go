package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/messenger-service/internal/model"
)

func (r *Repository) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query, args, err := sq.Select(
		"id",
		"user_id",
		"expires_at",
		"deleted_at",
	).
		From("sessions").
		Where(sq.Eq{"id": sessionID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var session model.Session
	err = r.Chk(ctx).GetContext(ctx, &session, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %v", err)
	}

	return &session, nil
}

func (r *Repository) SoftDeleteSession(ctx context.Context, sessionID string) error {
	query, args, err := sq.Update("sessions").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": sessionID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to soft delete session: %v", err)
	}

	return nil
}
