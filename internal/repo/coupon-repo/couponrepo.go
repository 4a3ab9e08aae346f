package couponrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetByCodeForUpdate locks the coupon row for the remainder of the enclosing
// transaction so two redemptions cannot both pass the max-uses check.
func (r *Repository) GetByCodeForUpdate(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `
        SELECT id, code, amount, max_uses, used_count, created_at
        FROM coupons
        WHERE code = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, code)

	var coupon domain.Coupon
	err := row.Scan(&coupon.ID, &coupon.Code, &coupon.Amount, &coupon.MaxUses, &coupon.UsedCount, &coupon.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find coupon", zap.Error(err))
		return nil, err
	}
	return &coupon, nil
}

func (r *Repository) HasRedemption(ctx context.Context, couponID, userID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM coupon_redemptions
            WHERE coupon_id = $1 AND user_id = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, couponID, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check coupon redemption", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CreateRedemption(ctx context.Context, couponID, userID int) error {
	query := `
        INSERT INTO coupon_redemptions (coupon_id, user_id)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, couponID, userID)
	if err != nil {
		zap.L().Error("can't create coupon redemption", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementUsedCount(ctx context.Context, couponID int) error {
	query := `
        UPDATE coupons
        SET used_count = used_count + 1
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, couponID)
	if err != nil {
		zap.L().Error("can't increment coupon used count", zap.Error(err))
		return err
	}
	return nil
}
