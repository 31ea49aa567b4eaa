package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	// List returns the bookings selected by the filter, ordered by start
	// descending. One call per listing category; no client-side filtering.
	List(ctx context.Context, f Filter) ([]*Booking, error)
	// ListByItem returns every booking of the item, for the window resolver.
	ListByItem(ctx context.Context, itemID int64) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "b.id, b.item_id, i.name, i.owner_id, b.booker_id, u.name, u.email, " +
	"b.start_at, b.end_at, b.status"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("item_id", "booker_id", "start_at", "end_at", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&b.ID)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName, &b.BookerEmail,
		&b.Start, &b.End, &b.Status,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, f Filter) ([]*Booking, error) {
	query := r.selectBookings()

	if f.BookerID != 0 {
		query = query.Where(squirrel.Eq{"b.booker_id": f.BookerID})
	}
	if f.OwnerID != 0 {
		query = query.Where(squirrel.Eq{"i.owner_id": f.OwnerID})
	}
	if f.ItemID != 0 {
		query = query.Where(squirrel.Eq{"b.item_id": f.ItemID})
	}
	if f.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": f.Status})
	}
	if f.EndBefore != nil {
		query = query.Where(squirrel.Lt{"b.end_at": *f.EndBefore})
	}
	if f.StartAfter != nil {
		query = query.Where(squirrel.Gt{"b.start_at": *f.StartAfter})
	}
	if f.ActiveAt != nil {
		query = query.
			Where(squirrel.LtOrEq{"b.start_at": *f.ActiveAt}).
			Where(squirrel.GtOrEq{"b.end_at": *f.ActiveAt})
	}

	sql, args, err := query.OrderBy("b.start_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryBookings(ctx, sql, args)
}

func (r *pgxRepository) ListByItem(ctx context.Context, itemID int64) ([]*Booking, error) {
	sql, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID}).
		OrderBy("b.start_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list item bookings query failed: %w", err)
	}

	return r.queryBookings(ctx, sql, args)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func (r *pgxRepository) queryBookings(ctx context.Context, sql string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ItemID, &b.ItemName, &b.ItemOwnerID,
			&b.BookerID, &b.BookerName, &b.BookerEmail,
			&b.Start, &b.End, &b.Status,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}
