package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akazarov/serptrack/internal/dto"
	"github.com/akazarov/serptrack/internal/service/pricingservice"
	"github.com/akazarov/serptrack/pkg/utils"
)

type Service interface {
	Cost(ctx context.Context, kind pricingservice.ActionKind) float64
	SetCost(ctx context.Context, kind pricingservice.ActionKind, cost float64) error
}

type PricingHandler struct {
	pricingService Service
}

func New(pricingService Service) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// GetPrice godoc
//
//	@Summary		Get the current cost of an action
//	@Tags			Pricing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			action	path		string					true	"Action kind"
//	@Success		200		{object}	dto.PriceResponseDTO	"Current cost"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		404		{object}	utils.Response			"Unknown action"
//	@Router			/api/pricing/{action} [get]
func (h *PricingHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	kind, err := pricingservice.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PriceResponseDTO{
		Action: string(kind),
		Cost:   h.pricingService.Cost(r.Context(), kind),
	})
}

// SetPrice godoc
//
//	@Summary		Override the cost of an action
//	@Description	Stores a persistent override that takes precedence over the compiled-in price table.
//	@Tags			Pricing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			action	path		string					true	"Action kind"
//	@Param			request	body		dto.SetPriceRequestDTO	true	"New cost"
//	@Success		200		{object}	dto.PriceResponseDTO	"Stored cost"
//	@Failure		400		{object}	utils.Response			"Invalid payload or cost"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		404		{object}	utils.Response			"Unknown action"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/pricing/{action} [put]
func (h *PricingHandler) SetPrice(w http.ResponseWriter, r *http.Request) {
	kind, err := pricingservice.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	var req dto.SetPriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch err := h.pricingService.SetCost(r.Context(), kind, req.Cost); {
	case errors.Is(err, pricingservice.ErrInvalidCost):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PriceResponseDTO{
		Action: string(kind),
		Cost:   req.Cost,
	})
}
