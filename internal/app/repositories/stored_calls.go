package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/apperrors"
	"github.com/yigit/academico/internal/pkg/dberrors"
	"github.com/yigit/academico/internal/pkg/logger"
)

// storedCalls runs one entity's stored functions and translates the codes they raise
type storedCalls struct {
	db       db.Pool
	sb       squirrel.StatementBuilderType
	entity   string
	messages dberrors.Messages
}

func newStoredCalls(pool db.Pool, entity string, messages dberrors.Messages) storedCalls {
	return storedCalls{
		db:       pool,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		entity:   entity,
		messages: messages,
	}
}

// translate logs a failed call and converts it through the entity's code table
func (s *storedCalls) translate(err error, operation string) error {
	if code, ok := dberrors.Code(err); ok {
		logger.Debug().Int("code", code).Str("entity", s.entity).Str("operation", operation).
			Msg("Stored function rejected the call")
	} else {
		logger.Error().Err(err).Str("entity", s.entity).Str("operation", operation).
			Msg("Error calling stored function")
	}
	return dberrors.Translate(err, s.messages, operation)
}

// insert runs a function that returns the new row id
func (s *storedCalls) insert(ctx context.Context, q db.Querier, operation, sql string, args ...any) (int64, error) {
	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, s.translate(err, operation)
	}
	if id == 0 {
		return 0, apperrors.NewBusinessRuleErrorf("No se pudo %s: no se realizó la inserción", operation)
	}
	return id, nil
}

// affected runs a function that returns the number of rows it changed.
// Zero rows means the target does not exist.
func (s *storedCalls) affected(ctx context.Context, q db.Querier, operation, notFound, sql string, args ...any) error {
	var rows int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&rows); err != nil {
		return s.translate(err, operation)
	}
	if rows == 0 {
		return apperrors.NewNotFoundError(notFound)
	}
	return nil
}

// dependency is a pre-flight check that blocks a delete when its query finds a row
type dependency struct {
	query   squirrel.SelectBuilder
	message string
}

// exists builds SELECT EXISTS (SELECT 1 FROM from WHERE where LIMIT 1)
func (s *storedCalls) exists(from string, where squirrel.Sqlizer) squirrel.SelectBuilder {
	return s.sb.Select("1").
		From(from).
		Where(where).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1)
}

func (s *storedCalls) checkDependencies(ctx context.Context, q db.Querier, operation string, deps ...dependency) error {
	for _, d := range deps {
		sql, args, err := d.query.ToSql()
		if err != nil {
			logger.Error().Err(err).Str("entity", s.entity).Msg("Error building dependency check SQL")
			return fmt.Errorf("failed to build dependency check: %w", err)
		}

		var found bool
		if err := q.QueryRow(ctx, sql, args...).Scan(&found); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return s.translate(err, operation)
		}
		if found {
			return apperrors.NewBusinessRuleError(d.message)
		}
	}
	return nil
}

// remove runs the pre-flight checks and the delete function in one transaction.
// The function still rejects with its own code if a dependency appears in between.
func (s *storedCalls) remove(ctx context.Context, operation, notFound, sql string, id int64, deps ...dependency) error {
	return db.WithTransaction(ctx, s.db, func(ctx context.Context, q db.Querier) error {
		if err := s.checkDependencies(ctx, q, operation, deps...); err != nil {
			return err
		}
		return s.affected(ctx, q, operation, notFound, sql, id)
	})
}

// queryOne returns the first row of a lookup function, or NotFound
func queryOne[T any](ctx context.Context, s *storedCalls, operation, notFound string, scan func(pgx.Row) (*T, error), sql string, args ...any) (*T, error) {
	item, err := scan(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(notFound)
		}
		return nil, s.translate(err, operation)
	}
	return item, nil
}

// queryList returns every row of a lookup function; an empty result is NotFound
func queryList[T any](ctx context.Context, s *storedCalls, operation, notFound string, scan func(pgx.Row) (*T, error), sql string, args ...any) ([]*T, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, s.translate(err, operation)
	}
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, s.translate(err, operation)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, s.translate(err, operation)
	}

	if len(items) == 0 {
		return nil, apperrors.NewNotFoundError(notFound)
	}
	return items, nil
}
