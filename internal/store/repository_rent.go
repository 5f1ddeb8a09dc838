package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/models"
)

// rentColumns are the rent columns joined with the reduced owner projection.
var rentColumns = []string{
	"r.id", "r.user_id", "r.amount", "r.period", "r.due_day", "r.status",
	"r.created_at", "r.updated_at",
	"u.id", "u.name", "u.email", "u.shop_name",
}

// rentRepository is the PostgreSQL-backed implementation of [RentRepository].
type rentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRentRepository constructs a [RentRepository] backed by the provided
// database connection and logger.
func NewRentRepository(db *DB, logger *logger.Logger) RentRepository {
	logger.Debug().Msg("creating rent repository")
	return &rentRepository{
		db:     db,
		logger: logger,
	}
}

// List retrieves all rent records with their owner projection, newest
// period first.
func (r *rentRepository) List(ctx context.Context) ([]models.Rent, error) {
	return r.list(ctx, nil)
}

// ListByUser retrieves the rent records owned by userID, newest period first.
func (r *rentRepository) ListByUser(ctx context.Context, userID string) ([]models.Rent, error) {
	return r.list(ctx, sq.Eq{"r.user_id": userID})
}

// ListByPeriod retrieves the rent records for one "YYYY-MM" period token.
func (r *rentRepository) ListByPeriod(ctx context.Context, period string) ([]models.Rent, error) {
	return r.list(ctx, sq.Eq{"r.period": period})
}

func (r *rentRepository) list(ctx context.Context, where any) ([]models.Rent, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(rentColumns...).
		From("rents r").
		Join("users u ON u.id = r.user_id").
		OrderBy("r.period DESC")

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error listing rents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	rents := make([]models.Rent, 0)
	for rows.Next() {
		var rent models.Rent
		var ref models.UserRef

		err := rows.Scan(
			&rent.ID, &rent.UserID, &rent.Amount, &rent.Period, &rent.DueDay, &rent.Status,
			&rent.CreatedAt, &rent.UpdatedAt,
			&ref.ID, &ref.Name, &ref.Email, &ref.ShopName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		rent.User = &ref
		rents = append(rents, rent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return rents, nil
}

// GetByID retrieves a single rent record without the owner projection.
// Returns [ErrRentNotFound] when no row matches.
func (r *rentRepository) GetByID(ctx context.Context, id string) (models.Rent, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("id", "user_id", "amount", "period", "due_day", "status",
		"created_at", "updated_at").
		From("rents").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Rent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rent models.Rent
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&rent.ID, &rent.UserID, &rent.Amount, &rent.Period, &rent.DueDay, &rent.Status,
		&rent.CreatedAt, &rent.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rent{}, ErrRentNotFound
		}
		log.Err(err).Str("id", id).Msg("error getting rent")
		return models.Rent{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rent, nil
}

// Update persists the amount and status of the rent record and returns it
// with the refreshed updated_at timestamp.
// Returns [ErrRentNotFound] when no row matches.
func (r *rentRepository) Update(ctx context.Context, rent models.Rent) (models.Rent, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("rents").
		Set("amount", rent.Amount).
		Set("status", rent.Status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": rent.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return models.Rent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&rent.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rent{}, ErrRentNotFound
		}
		log.Err(err).Str("id", rent.ID).Msg("error updating rent")
		return models.Rent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rent, nil
}
