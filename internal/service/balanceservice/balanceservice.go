package balanceservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/notify"
	"github.com/akazarov/serptrack/internal/pg"
	"github.com/akazarov/serptrack/internal/service/pricingservice"
	"github.com/akazarov/serptrack/pkg/metrics"
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int, seed float64) (*domain.Balance, error)
	Deduct(ctx context.Context, userID int, amount float64) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount, rechargedDelta float64) (*domain.Balance, error)
	CreateTransaction(ctx context.Context, transaction *domain.BalanceTransaction) (*domain.BalanceTransaction, error)
	GetTransactions(ctx context.Context, userID int, limit, offset int, typeFilter string) ([]domain.BalanceTransaction, int, error)
}

type CouponRepo interface {
	GetByCodeForUpdate(ctx context.Context, code string) (*domain.Coupon, error)
	HasRedemption(ctx context.Context, couponID, userID int) (bool, error)
	CreateRedemption(ctx context.Context, couponID, userID int) error
	IncrementUsedCount(ctx context.Context, couponID int) error
}

type Pricing interface {
	Cost(ctx context.Context, kind pricingservice.ActionKind) float64
}

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCouponExhausted       = errors.New("coupon exhausted")
	ErrCouponAlreadyRedeemed = errors.New("coupon already redeemed")

	ErrInvalidAmount          = errors.New("credit amount must be positive")
	ErrInvalidTransactionType = errors.New("unsupported credit type")
)

// InsufficientBalanceError carries the amounts so the caller can render an
// actionable message. errors.Is(err, ErrInsufficientBalance) matches it.
type InsufficientBalanceError struct {
	Required  float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %.2f, available %.2f", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

type DeductResult struct {
	NewBalance    float64
	TransactionID int
	Reference     string
}

type History struct {
	Transactions []domain.BalanceTransaction
	Total        int
	HasMore      bool
}

type Service struct {
	balanceRepo     BalanceRepo
	couponRepo      CouponRepo
	pricing         Pricing
	txManager       pg.TXManager
	notifier        notify.Notifier
	welcomeCredit   float64
	lowBalanceLevel float64
}

func New(balanceRepo BalanceRepo, couponRepo CouponRepo, pricing Pricing, txManager pg.TXManager, notifier notify.Notifier, welcomeCredit, lowBalanceLevel float64) *Service {
	return &Service{
		balanceRepo:     balanceRepo,
		couponRepo:      couponRepo,
		pricing:         pricing,
		txManager:       txManager,
		notifier:        notifier,
		welcomeCredit:   welcomeCredit,
		lowBalanceLevel: lowBalanceLevel,
	}
}

// ensureBalance returns the user's balance row, creating it with the welcome
// credit on first contact. The welcome credit gets its own ledger row so the
// transaction chain still sums to the current balance.
func (s *Service) ensureBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance != nil {
		return balance, nil
	}

	balance, err = s.balanceRepo.CreateUserBalance(ctx, userID, s.welcomeCredit)
	if err != nil {
		return nil, err
	}
	if s.welcomeCredit > 0 {
		_, err = s.balanceRepo.CreateTransaction(ctx, &domain.BalanceTransaction{
			UserID:        userID,
			Type:          domain.TransactionRecharge,
			Amount:        s.welcomeCredit,
			BalanceBefore: 0,
			BalanceAfter:  s.welcomeCredit,
			Description:   "welcome credit",
			Metadata:      "{}",
			Reference:     uuid.NewString(),
		})
		if err != nil {
			return nil, err
		}
	}
	return balance, nil
}

// Deduct bills one action against the user's balance. The sufficiency check,
// the balance update and the ledger append commit as one unit; insufficient
// balance is a reported outcome, not a failure of the service.
func (s *Service) Deduct(ctx context.Context, userID int, kind pricingservice.ActionKind, metadata string) (*DeductResult, error) {
	cost := s.pricing.Cost(ctx, kind)
	if metadata == "" {
		metadata = "{}"
	}

	var result DeductResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.ensureBalance(ctx, userID)
		if err != nil {
			return err
		}

		if balance.CurrentBalance < cost {
			return &InsufficientBalanceError{Required: cost, Available: balance.CurrentBalance}
		}

		updated, err := s.balanceRepo.Deduct(ctx, userID, cost)
		if err != nil {
			return err
		}
		if updated == nil {
			// lost a race with a concurrent deduction
			return &InsufficientBalanceError{Required: cost, Available: balance.CurrentBalance}
		}

		transaction, err := s.balanceRepo.CreateTransaction(ctx, &domain.BalanceTransaction{
			UserID:        userID,
			Type:          domain.TransactionUsage,
			Amount:        -cost,
			BalanceBefore: updated.CurrentBalance + cost,
			BalanceAfter:  updated.CurrentBalance,
			Description:   string(kind),
			Metadata:      metadata,
			Reference:     uuid.NewString(),
		})
		if err != nil {
			return err
		}

		result = DeductResult{
			NewBalance:    updated.CurrentBalance,
			TransactionID: transaction.ID,
			Reference:     transaction.Reference,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			metrics.Deductions.WithLabelValues("insufficient").Inc()
		} else {
			metrics.Deductions.WithLabelValues("error").Inc()
			zap.L().Error("failed to deduct balance", zap.Error(err), zap.Int("userID", userID))
		}
		return nil, err
	}
	metrics.Deductions.WithLabelValues("ok").Inc()

	if result.NewBalance < s.lowBalanceLevel {
		if err := s.notifier.LowBalance(ctx, userID, result.NewBalance); err != nil {
			zap.L().Error("low balance notification failed", zap.Error(err))
		}
	}
	return &result, nil
}

// Credit adds funds. The lifetime recharged total only grows for genuine
// recharges; admin adjustments stay out of revenue metrics.
func (s *Service) Credit(ctx context.Context, userID int, amount float64, txType, description, metadata string) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w, got %f", ErrInvalidAmount, amount)
	}
	if txType != domain.TransactionRecharge && txType != domain.TransactionAdminAdjustment {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransactionType, txType)
	}
	if metadata == "" {
		metadata = "{}"
	}

	var updated *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ensureBalance(ctx, userID); err != nil {
			return err
		}

		rechargedDelta := 0.0
		if txType == domain.TransactionRecharge {
			rechargedDelta = amount
		}

		var err error
		updated, err = s.balanceRepo.Credit(ctx, userID, amount, rechargedDelta)
		if err != nil {
			return err
		}

		// derived from the update's own result so a concurrent mutation
		// committing after the read cannot skew the snapshot pair
		_, err = s.balanceRepo.CreateTransaction(ctx, &domain.BalanceTransaction{
			UserID:        userID,
			Type:          txType,
			Amount:        amount,
			BalanceBefore: updated.CurrentBalance - amount,
			BalanceAfter:  updated.CurrentBalance,
			Description:   description,
			Metadata:      metadata,
			Reference:     uuid.NewString(),
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Error(err), zap.Int("userID", userID))
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	var balance *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.ensureBalance(ctx, userID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int, limit, offset int, typeFilter string) (*History, error) {
	if limit <= 0 {
		limit = 20
	}
	transactions, total, err := s.balanceRepo.GetTransactions(ctx, userID, limit, offset, typeFilter)
	if err != nil {
		zap.L().Error("failed to fetch balance history", zap.Error(err))
		return nil, err
	}
	return &History{
		Transactions: transactions,
		Total:        total,
		HasMore:      offset+len(transactions) < total,
	}, nil
}

// RedeemCoupon grants the coupon credit at most maxUses times in total and
// once per user. The coupon row stays locked until commit.
func (s *Service) RedeemCoupon(ctx context.Context, userID int, code string) (*domain.Balance, error) {
	var updated *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		coupon, err := s.couponRepo.GetByCodeForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if coupon == nil {
			return ErrCouponNotFound
		}

		redeemed, err := s.couponRepo.HasRedemption(ctx, coupon.ID, userID)
		if err != nil {
			return err
		}
		if redeemed {
			return ErrCouponAlreadyRedeemed
		}
		if coupon.UsedCount >= coupon.MaxUses {
			return ErrCouponExhausted
		}

		if err := s.couponRepo.CreateRedemption(ctx, coupon.ID, userID); err != nil {
			return err
		}
		if err := s.couponRepo.IncrementUsedCount(ctx, coupon.ID); err != nil {
			return err
		}

		if _, err := s.ensureBalance(ctx, userID); err != nil {
			return err
		}
		updated, err = s.balanceRepo.Credit(ctx, userID, coupon.Amount, coupon.Amount)
		if err != nil {
			return err
		}
		_, err = s.balanceRepo.CreateTransaction(ctx, &domain.BalanceTransaction{
			UserID:        userID,
			Type:          domain.TransactionRecharge,
			Amount:        coupon.Amount,
			BalanceBefore: updated.CurrentBalance - coupon.Amount,
			BalanceAfter:  updated.CurrentBalance,
			Description:   "coupon " + coupon.Code,
			Metadata:      "{}",
			Reference:     uuid.NewString(),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrCouponNotFound) && !errors.Is(err, ErrCouponExhausted) && !errors.Is(err, ErrCouponAlreadyRedeemed) {
			zap.L().Error("failed to redeem coupon", zap.Error(err), zap.Int("userID", userID))
		}
		return nil, err
	}
	return updated, nil
}
