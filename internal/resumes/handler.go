package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/ids"
	"jobboard-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.delete)
	rg.GET("/users/:userId/resume", h.getByUser)
}

func (h *Handler) create(c *gin.Context) {
	var req ResumeInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	resume, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to create resume")
		return
	}
	respond.Created(c, resume)
}

func (h *Handler) get(c *gin.Context) {
	resumeID, ok := parseID(c, "id", "invalid resume id")
	if !ok {
		return
	}
	resume, err := h.Svc.GetByID(c.Request.Context(), ResumeID(resumeID))
	if err != nil {
		writeError(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) getByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId", "invalid user id")
	if !ok {
		return
	}
	resume, err := h.Svc.GetByUserID(c.Request.Context(), ids.UserID(userID))
	if err != nil {
		writeError(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) list(c *gin.Context) {
	list := h.Svc.List
	if c.Query("include_deleted") == "true" {
		list = h.Svc.ListIncludingDeleted
	}
	out, err := list(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list resumes")
		return
	}
	respond.OK(c, out)
}

func (h *Handler) update(c *gin.Context) {
	resumeID, ok := parseID(c, "id", "invalid resume id")
	if !ok {
		return
	}
	var req ResumeInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	resume, err := h.Svc.Update(c.Request.Context(), ResumeID(resumeID), req)
	if err != nil {
		writeError(c, err, "failed to update resume")
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) delete(c *gin.Context) {
	resumeID, ok := parseID(c, "id", "invalid resume id")
	if !ok {
		return
	}
	deleted, err := h.Svc.Delete(c.Request.Context(), ResumeID(resumeID))
	if err != nil {
		writeError(c, err, "failed to delete resume")
		return
	}
	respond.OK(c, gin.H{"deleted": deleted})
}

func parseID(c *gin.Context, param, message string) (int32, bool) {
	parsed, err := strconv.ParseInt(c.Param(param), 10, 32)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", message, nil)
		return 0, false
	}
	return int32(parsed), true
}

func writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrMultipleRows):
		respond.Error(c, http.StatusConflict, "conflict", "more than one resume matched", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	}
}
