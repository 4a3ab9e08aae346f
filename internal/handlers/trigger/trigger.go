package trigger

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akazarov/serptrack/internal/dto"
	"github.com/akazarov/serptrack/internal/worker"
	"github.com/akazarov/serptrack/pkg/utils"
)

type Service interface {
	Enqueue(ctx context.Context, projectID *int, keywordIDs []int) (*worker.Summary, error)
	Live(ctx context.Context, keywordIDs []int) (*worker.Summary, error)
	AutoTracking(ctx context.Context) (*worker.Summary, error)
	SyncPending(ctx context.Context) (*worker.Summary, error)
}

type TriggerHandler struct {
	workerService Service
}

func New(workerService Service) *TriggerHandler {
	return &TriggerHandler{
		workerService: workerService,
	}
}

// Enqueue godoc
//
//	@Summary		Run standard checks for a batch of keywords
//	@Description	Bill and check the listed keywords, or every keyword of a project. Recently checked keywords are skipped.
//	@Tags			Worker
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EnqueueRequestDTO	true	"Batch selection"
//	@Success		200		{object}	dto.BatchSummaryDTO		"Batch summary"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/worker/enqueue [post]
func (h *TriggerHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	var req dto.EnqueueRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProjectID == nil && len(req.KeywordIDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "project_id or keyword_ids required")
		return
	}

	summary, err := h.workerService.Enqueue(r.Context(), req.ProjectID, req.KeywordIDs)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondSummary(w, summary)
}

// Live godoc
//
//	@Summary		Run live checks for a batch of keywords
//	@Description	Check the listed keywords immediately at the live rate, ignoring the recency throttle.
//	@Tags			Worker
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LiveCheckRequestDTO	true	"Keyword selection"
//	@Success		200		{object}	dto.BatchSummaryDTO		"Batch summary"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		429		{object}	utils.Response			"Rate limit exceeded"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/worker/live [post]
func (h *TriggerHandler) Live(w http.ResponseWriter, r *http.Request) {
	var req dto.LiveCheckRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.KeywordIDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "keyword_ids required")
		return
	}

	summary, err := h.workerService.Live(r.Context(), req.KeywordIDs)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondSummary(w, summary)
}

// AutoTracking godoc
//
//	@Summary		Run one auto-tracking cycle
//	@Description	Bill and check every keyword whose tracking schedule has come due.
//	@Tags			Worker
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BatchSummaryDTO	"Batch summary"
//	@Failure		401	{object}	utils.Response		"Caller not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/worker/auto-tracking [post]
func (h *TriggerHandler) AutoTracking(w http.ResponseWriter, r *http.Request) {
	summary, err := h.workerService.AutoTracking(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondSummary(w, summary)
}

// SyncPending godoc
//
//	@Summary		Re-run checks that were billed but never completed
//	@Description	Pick up keywords stuck in the queued state and finish them without charging again.
//	@Tags			Worker
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BatchSummaryDTO	"Batch summary"
//	@Failure		401	{object}	utils.Response		"Caller not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/worker/sync-pending [post]
func (h *TriggerHandler) SyncPending(w http.ResponseWriter, r *http.Request) {
	summary, err := h.workerService.SyncPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondSummary(w, summary)
}

func respondSummary(w http.ResponseWriter, summary *worker.Summary) {
	utils.RespondWithJSON(w, http.StatusOK, dto.BatchSummaryDTO{
		Processed: summary.Processed,
		Skipped:   summary.Skipped,
		Failed:    summary.Failed,
	})
}
