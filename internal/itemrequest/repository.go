package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, req *ItemRequest) error
	GetByID(ctx context.Context, id int64) (*ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error)
	ListOthers(ctx context.Context, excludeRequestorID int64, from, size int) ([]*ItemRequest, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.item_requests").
		Columns("requestor_id", "description").
		Values(req.RequestorID, req.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item request query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&req.ID, &req.Created)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "requestor_id", "description", "created_at").
		From("public.item_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item request query failed: %w", err)
	}

	var req ItemRequest
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&req.ID, &req.RequestorID, &req.Description, &req.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "requestor_id", "description", "created_at").
		From("public.item_requests").
		Where(squirrel.Eq{"requestor_id": requestorID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list item requests query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.RequestorID, &req.Description, &req.Created); err != nil {
			return nil, fmt.Errorf("scan item request failed: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}

func (r *pgxRepository) ListOthers(ctx context.Context, excludeRequestorID int64, from, size int) ([]*ItemRequest, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "requestor_id", "description", "created_at",
		"count(*) OVER() AS total_count",
	).
		From("public.item_requests").
		Where(squirrel.NotEq{"requestor_id": excludeRequestorID}).
		OrderBy("created_at DESC").
		Limit(uint64(size)).
		Offset(uint64(from)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list other item requests query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list other item requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	var total int
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.RequestorID, &req.Description, &req.Created, &total); err != nil {
			return nil, 0, fmt.Errorf("scan item request failed: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, total, rows.Err()
}
