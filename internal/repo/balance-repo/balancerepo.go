package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, recharged_total, spent_total
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.RechargedTotal, &balance.SpentTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int, seed float64) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, current_balance, recharged_total, spent_total)
        VALUES ($1, $2, $2, 0)
        RETURNING id, user_id, current_balance, recharged_total, spent_total
    `
	row := r.db.QueryRow(ctx, query, userID, seed)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.RechargedTotal, &balance.SpentTotal)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Deduct decrements the balance only when it still covers the amount; the
// guard in the WHERE clause is what keeps two concurrent deductions from
// driving the balance negative. A nil result means insufficient balance.
func (r *Repository) Deduct(ctx context.Context, userID int, amount float64) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET current_balance = current_balance - $1, spent_total = spent_total + $1
        WHERE user_id = $2 AND current_balance >= $1
        RETURNING id, user_id, current_balance, recharged_total, spent_total
    `
	row := r.db.QueryRow(ctx, query, amount, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.RechargedTotal, &balance.SpentTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to deduct balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit adds amount to the balance; rechargedDelta is added to the lifetime
// recharged total and is zero for admin adjustments.
func (r *Repository) Credit(ctx context.Context, userID int, amount, rechargedDelta float64) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET current_balance = current_balance + $1, recharged_total = recharged_total + $2
        WHERE user_id = $3
        RETURNING id, user_id, current_balance, recharged_total, spent_total
    `
	row := r.db.QueryRow(ctx, query, amount, rechargedDelta, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.RechargedTotal, &balance.SpentTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to credit balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, transaction *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
	query := `
        INSERT INTO balance_transactions (user_id, type, amount, balance_before, balance_after, description, metadata, reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		transaction.UserID, transaction.Type, transaction.Amount,
		transaction.BalanceBefore, transaction.BalanceAfter,
		transaction.Description, transaction.Metadata, transaction.Reference).
		Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create balance transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) GetTransactions(ctx context.Context, userID int, limit, offset int, typeFilter string) ([]domain.BalanceTransaction, int, error) {
	countQuery := `
        SELECT count(*)
        FROM balance_transactions
        WHERE user_id = $1 AND ($2 = '' OR type = $2)
    `
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID, typeFilter).Scan(&total); err != nil {
		zap.L().Error("failed to count balance transactions", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT id, user_id, type, amount, balance_before, balance_after, description, metadata, reference, created_at
        FROM balance_transactions
        WHERE user_id = $1 AND ($2 = '' OR type = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, userID, typeFilter, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch balance transactions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var transactions []domain.BalanceTransaction
	for rows.Next() {
		var tr domain.BalanceTransaction
		err := rows.Scan(&tr.ID, &tr.UserID, &tr.Type, &tr.Amount, &tr.BalanceBefore, &tr.BalanceAfter,
			&tr.Description, &tr.Metadata, &tr.Reference, &tr.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan balance transaction row", zap.Error(err))
			return nil, 0, err
		}
		transactions = append(transactions, tr)
	}
	return transactions, total, nil
}
