package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/dto"
	"github.com/akazarov/serptrack/internal/service/balanceservice"
	"github.com/akazarov/serptrack/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount float64, txType, description, metadata string) (*domain.Balance, error)
	GetHistory(ctx context.Context, userID int, limit, offset int, typeFilter string) (*balanceservice.History, error)
	RedeemCoupon(ctx context.Context, userID int, code string) (*domain.Balance, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get user balance
//	@Description	Retrieve the prepaid balance of a user. The account is created with the welcome credit on first access.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int						true	"User ID"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		400		{object}	utils.Response			"Invalid user ID"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{userID}/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:   balance.CurrentBalance,
		Recharged: balance.RechargedTotal,
		Spent:     balance.SpentTotal,
	})
}

// Recharge godoc
//
//	@Summary		Credit a user balance
//	@Description	Add funds after a confirmed payment, or apply an admin adjustment.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"User ID"
//	@Param			request	body		dto.RechargeRequestDTO	true	"Recharge payload"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Balance after the credit"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{userID}/balance/recharge [post]
func (h *BalanceHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.RechargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Type == "" {
		req.Type = domain.TransactionRecharge
	}

	balance, err := h.balanceService.Credit(r.Context(), userID, req.Amount, req.Type, req.Description, req.Metadata)
	if err != nil {
		if errors.Is(err, balanceservice.ErrInvalidAmount) || errors.Is(err, balanceservice.ErrInvalidTransactionType) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:   balance.CurrentBalance,
		Recharged: balance.RechargedTotal,
		Spent:     balance.SpentTotal,
	})
}

// GetHistory godoc
//
//	@Summary		Get balance transaction history
//	@Description	List ledger rows for a user, newest first, optionally filtered by type.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int		true	"User ID"
//	@Param			limit	query		int		false	"Page size (default 20)"
//	@Param			offset	query		int		false	"Rows to skip"
//	@Param			type	query		string	false	"Transaction type filter"
//	@Success		200		{object}	dto.HistoryResponseDTO	"Transaction page"
//	@Failure		400		{object}	utils.Response			"Invalid user ID"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{userID}/balance/history [get]
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	history, err := h.balanceService.GetHistory(r.Context(), userID, limit, offset, r.URL.Query().Get("type"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	transactions := make([]dto.TransactionDTO, 0, len(history.Transactions))
	for _, tx := range history.Transactions {
		transactions = append(transactions, dto.TransactionDTO{
			ID:            tx.ID,
			Type:          tx.Type,
			Amount:        tx.Amount,
			BalanceBefore: tx.BalanceBefore,
			BalanceAfter:  tx.BalanceAfter,
			Description:   tx.Description,
			Reference:     tx.Reference,
			CreatedAt:     tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HistoryResponseDTO{
		Transactions: transactions,
		Total:        history.Total,
		HasMore:      history.HasMore,
	})
}

// RedeemCoupon godoc
//
//	@Summary		Redeem a coupon code
//	@Description	Credit the coupon amount to the user. Each coupon is redeemable once per user, up to its global use limit.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int							true	"User ID"
//	@Param			request	body		dto.RedeemCouponRequestDTO	true	"Coupon payload"
//	@Success		200		{object}	dto.BalanceResponseDTO		"Balance after the credit"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Caller not authorized"
//	@Failure		404		{object}	utils.Response				"Coupon not found"
//	@Failure		409		{object}	utils.Response				"Coupon exhausted or already redeemed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users/{userID}/coupons/redeem [post]
func (h *BalanceHandler) RedeemCoupon(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.RedeemCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.balanceService.RedeemCoupon(r.Context(), userID, req.Code)
	switch {
	case errors.Is(err, balanceservice.ErrCouponNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, balanceservice.ErrCouponExhausted), errors.Is(err, balanceservice.ErrCouponAlreadyRedeemed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:   balance.CurrentBalance,
		Recharged: balance.RechargedTotal,
		Spent:     balance.SpentTotal,
	})
}
