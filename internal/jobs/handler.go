package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.create)
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
	rg.PUT("/jobs/:id", h.update)
	rg.DELETE("/jobs/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var req NewJob
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	job, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to create job")
		return
	}
	respond.Created(c, job)
}

func (h *Handler) get(c *gin.Context) {
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}
	job, err := h.Svc.GetByID(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, err, "failed to fetch job")
		return
	}
	respond.OK(c, job)
}

func (h *Handler) list(c *gin.Context) {
	var limit *int32
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil || parsed < 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a non-negative integer", nil)
			return
		}
		l := int32(parsed)
		limit = &l
	}
	var offset int32
	if v := c.Query("offset"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil || parsed < 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "offset must be a non-negative integer", nil)
			return
		}
		offset = int32(parsed)
	}

	list := h.Svc.List
	if c.Query("include_deleted") == "true" {
		list = h.Svc.ListIncludingDeleted
	}
	jobs, err := list(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err, "failed to list jobs")
		return
	}
	respond.OK(c, jobs)
}

func (h *Handler) update(c *gin.Context) {
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}
	var req Job
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ID != nil && *req.ID != jobID {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id in body does not match path", nil)
		return
	}
	req.ID = &jobID
	job, err := h.Svc.Update(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to update job")
		return
	}
	respond.OK(c, job)
}

func (h *Handler) delete(c *gin.Context) {
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}
	deleted, err := h.Svc.Delete(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, err, "failed to delete job")
		return
	}
	respond.OK(c, gin.H{"deleted": deleted})
}

func parseJobID(c *gin.Context) (JobID, bool) {
	parsed, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job id", nil)
		return 0, false
	}
	return JobID(parsed), true
}

func writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	}
}
