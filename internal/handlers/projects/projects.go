package projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/dto"
	"github.com/akazarov/serptrack/internal/service/projectservice"
	"github.com/akazarov/serptrack/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, rawDomain, country, frequency string) (*domain.Project, error)
	Get(ctx context.Context, id int) (*domain.Project, error)
}

type ProjectHandler struct {
	projectService Service
}

func New(projectService Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create godoc
//
//	@Summary		Create a tracking project
//	@Description	Register a domain for tracking. A domain stays locked to the first account that tracked it, even after the project is deleted.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProjectRequestDTO	true	"Project payload"
//	@Success		201		{object}	dto.ProjectResponseDTO		"Created project"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Caller not authorized"
//	@Failure		409		{object}	utils.Response				"Domain reserved by another account"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.projectService.Create(r.Context(), req.UserID, req.Domain, req.Country, req.Frequency)
	switch {
	case errors.Is(err, projectservice.ErrInvalidDomain):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, projectservice.ErrDomainLocked):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(project))
}

// Get godoc
//
//	@Summary		Get a project
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			projectID	path		int						true	"Project ID"
//	@Success		200			{object}	dto.ProjectResponseDTO	"Project"
//	@Failure		400			{object}	utils.Response			"Invalid project ID"
//	@Failure		401			{object}	utils.Response			"Caller not authorized"
//	@Failure		404			{object}	utils.Response			"Project not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/projects/{projectID} [get]
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "projectID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if project == nil {
		utils.RespondWithError(w, http.StatusNotFound, "project not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(project))
}

func toResponse(project *domain.Project) dto.ProjectResponseDTO {
	return dto.ProjectResponseDTO{
		ID:        project.ID,
		UserID:    project.UserID,
		Domain:    project.Domain,
		Country:   project.Country,
		Frequency: project.Frequency,
		CreatedAt: project.CreatedAt,
	}
}
