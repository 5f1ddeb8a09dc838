package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/models"
	"github.com/jackc/pgerrcode"
)

// psql builds queries with PostgreSQL-style $N placeholders. Shared by all
// repositories in this package.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns are the columns selected for every user read except the
// credentialed lookup; the password hash never travels with regular reads.
var userColumns = []string{
	"id", "name", "email", "phone", "shop_name",
	"monthly_rent", "due_day", "role", "status", "created_at", "updated_at",
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and returns it with the
// server-assigned timestamps filled in.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("users").
		Columns("id", "name", "email", "password_hash", "phone", "shop_name",
			"monthly_rent", "due_day", "role", "status").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.Phone, user.ShopName,
			user.MonthlyRent, user.DueDay, user.Role, user.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("email", user.Email).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// List retrieves all users matching the filter, password excluded.
// The free-text search matches name, email, and shop name by
// case-insensitive substring.
func (r *userRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC")

	if filter.Role != "" {
		builder = builder.Where(sq.Eq{"role": filter.Role})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"shop_name": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// GetByID retrieves a single user by id, password excluded.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("id", id).Msg("error getting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// GetByEmailWithPassword retrieves a user by email, case-insensitively,
// including the password hash. Only the login and password-change flows may
// call this. Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetByEmailWithPassword(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	columns := append([]string{"password_hash"}, userColumns...)
	query, args, err := psql.Select(columns...).
		From("users").
		Where(sq.Expr("lower(email) = lower(?)", email)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&user.PasswordHash,
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.ShopName,
		&user.MonthlyRent, &user.DueDay, &user.Role, &user.Status,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Msg("error getting user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// Update persists the mutable profile fields of user and returns the record
// with the refreshed updated_at timestamp.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - unique_violation on email → [ErrEmailAlreadyExists].
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("phone", user.Phone).
		Set("shop_name", user.ShopName).
		Set("monthly_rent", user.MonthlyRent).
		Set("due_day", user.DueDay).
		Set("status", user.Status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("id", user.ID).Msg("error updating user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// UpdatePassword replaces the stored password hash of the user.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes the user with the given id.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.ShopName,
		&user.MonthlyRent, &user.DueDay, &user.Role, &user.Status,
		&user.CreatedAt, &user.UpdatedAt,
	)
}
