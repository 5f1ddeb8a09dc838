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

// paymentColumns are the payment columns joined with the reduced owner
// projection.
var paymentColumns = []string{
	"p.id", "p.user_id", "p.amount", "p.month", "p.payment_method",
	"p.receipt_file", "p.notes", "p.status", "p.payment_date",
	"p.verified_by", "p.verified_at", "p.created_at", "p.updated_at",
	"u.id", "u.name", "u.email", "u.shop_name",
}

// paymentRepository is the PostgreSQL-backed implementation of
// [PaymentRepository].
type paymentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPaymentRepository constructs a [PaymentRepository] backed by the
// provided database connection and logger.
func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating payment repository")
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new payment record and returns it with the
// server-assigned timestamps filled in.
func (r *paymentRepository) Create(ctx context.Context, payment models.Payment) (models.Payment, error) {
	log := logger.FromContext(ctx)

	verifiedBy := sql.NullString{String: payment.VerifiedBy, Valid: payment.VerifiedBy != ""}
	verifiedAt := sql.NullTime{}
	if payment.VerifiedAt != nil {
		verifiedAt = sql.NullTime{Time: *payment.VerifiedAt, Valid: true}
	}

	query, args, err := psql.Insert("payments").
		Columns("id", "user_id", "amount", "month", "payment_method",
			"receipt_file", "notes", "status", "verified_by", "verified_at").
		Values(payment.ID, payment.UserID, payment.Amount, payment.Month, payment.Method,
			payment.ReceiptFile, payment.Notes, payment.Status, verifiedBy, verifiedAt).
		Suffix("RETURNING payment_date, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Payment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&payment.PaymentDate, &payment.CreatedAt, &payment.UpdatedAt); err != nil {
		log.Err(err).Str("userID", payment.UserID).Msg("error creating payment")
		return models.Payment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return payment, nil
}

// List retrieves one page of payments matching the filter together with the
// total number of matching records, newest first.
func (r *paymentRepository) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error) {
	log := logger.FromContext(ctx)

	where := sq.And{}
	if filter.Status != "" {
		where = append(where, sq.Eq{"p.status": filter.Status})
	}
	if filter.Month != "" {
		where = append(where, sq.Eq{"p.month": filter.Month})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	countBuilder := psql.Select("count(*)").From("payments p")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("error counting payments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	builder := psql.Select(paymentColumns...).
		From("payments p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	payments, err := r.query(ctx, builder)
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// ListAll retrieves every payment without the owner projection. Used by the
// statistics scans.
func (r *paymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("id", "user_id", "amount", "month", "payment_method",
		"receipt_file", "notes", "status", "payment_date",
		"verified_by", "verified_at", "created_at", "updated_at").
		From("payments").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error listing payments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		var payment models.Payment
		if err := scanPayment(rows, &payment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return payments, nil
}

// ListByUser retrieves the payments owned by userID with the owner
// projection, newest first.
func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	builder := psql.Select(paymentColumns...).
		From("payments p").
		Join("users u ON u.id = p.user_id").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("p.created_at DESC")

	return r.query(ctx, builder)
}

// GetByID retrieves a single payment without the owner projection.
// Returns [ErrPaymentNotFound] when no row matches.
func (r *paymentRepository) GetByID(ctx context.Context, id string) (models.Payment, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("id", "user_id", "amount", "month", "payment_method",
		"receipt_file", "notes", "status", "payment_date",
		"verified_by", "verified_at", "created_at", "updated_at").
		From("payments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Payment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payment models.Payment
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanPayment(row, &payment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, ErrPaymentNotFound
		}
		log.Err(err).Str("id", id).Msg("error getting payment")
		return models.Payment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return payment, nil
}

// SetVerification applies a verify/reject verdict: status, verifier, and
// verification time. Re-applying the same verdict overwrites the verifier
// fields without error. Returns [ErrPaymentNotFound] when no row matches.
func (r *paymentRepository) SetVerification(ctx context.Context, payment models.Payment) (models.Payment, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("payments").
		Set("status", payment.Status).
		Set("verified_by", payment.VerifiedBy).
		Set("verified_at", payment.VerifiedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": payment.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return models.Payment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&payment.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, ErrPaymentNotFound
		}
		log.Err(err).Str("id", payment.ID).Msg("error verifying payment")
		return models.Payment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return payment, nil
}

// Delete removes the payment with the given id.
// Returns [ErrPaymentNotFound] when no row matches.
func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("payments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error deleting payment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// query runs a joined payment select and scans rows with their owner
// projections.
func (r *paymentRepository) query(ctx context.Context, builder sq.SelectBuilder) ([]models.Payment, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error listing payments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		var payment models.Payment
		var ref models.UserRef
		var verifiedBy sql.NullString
		var verifiedAt sql.NullTime

		err := rows.Scan(
			&payment.ID, &payment.UserID, &payment.Amount, &payment.Month, &payment.Method,
			&payment.ReceiptFile, &payment.Notes, &payment.Status, &payment.PaymentDate,
			&verifiedBy, &verifiedAt, &payment.CreatedAt, &payment.UpdatedAt,
			&ref.ID, &ref.Name, &ref.Email, &ref.ShopName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		payment.VerifiedBy = verifiedBy.String
		if verifiedAt.Valid {
			t := verifiedAt.Time
			payment.VerifiedAt = &t
		}
		payment.User = &ref
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return payments, nil
}

func scanPayment(row rowScanner, payment *models.Payment) error {
	var verifiedBy sql.NullString
	var verifiedAt sql.NullTime

	err := row.Scan(
		&payment.ID, &payment.UserID, &payment.Amount, &payment.Month, &payment.Method,
		&payment.ReceiptFile, &payment.Notes, &payment.Status, &payment.PaymentDate,
		&verifiedBy, &verifiedAt, &payment.CreatedAt, &payment.UpdatedAt,
	)
	if err != nil {
		return err
	}

	payment.VerifiedBy = verifiedBy.String
	if verifiedAt.Valid {
		t := verifiedAt.Time
		payment.VerifiedAt = &t
	}

	return nil
}
