package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const maxBodySize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the version store.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to a group mounted at /resume.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/latest", h.latest)
	rg.GET("/:version", h.get)
	rg.PUT("/:version", h.update)
	rg.DELETE("/:version", h.delete)
	rg.POST("/:version/duplicate", h.duplicate)
	rg.POST("/:version/rollback", h.rollback)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bodyError(c, err)
		return
	}

	doc, err := h.Svc.Create(c.Request.Context(), userID, Draft{
		Template: req.Template,
		Content:  req.Content,
		Active:   req.IsActive,
	})
	observe("create", err)
	if err != nil {
		writeError(c, err, "Server error during resume creation")
		return
	}

	c.Set("resumeVersion", doc.Version)
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Resume created successfully",
		"resume":  toResponse(doc),
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	summaries, err := h.Svc.ListVersions(c.Request.Context(), userID)
	observe("list", err)
	if err != nil {
		writeError(c, err, "Server error while fetching resumes")
		return
	}

	resp := make([]SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, toSummaryResponse(s))
	}
	respond.JSON(c, http.StatusOK, gin.H{"resumes": resp})
}

func (h *Handler) latest(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.GetLatest(c.Request.Context(), userID)
	observe("latest", err)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "No resume found", nil)
			return
		}
		writeError(c, err, "Server error while fetching latest resume")
		return
	}

	c.Set("resumeVersion", doc.Version)
	respond.JSON(c, http.StatusOK, gin.H{"resume": toResponse(doc)})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	version, ok := versionParam(c)
	if !ok {
		return
	}

	doc, err := h.Svc.GetVersion(c.Request.Context(), userID, version)
	observe("get", err)
	if err != nil {
		writeError(c, err, "Server error while fetching resume version")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"resume": toResponse(doc)})
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	version, ok := versionParam(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bodyError(c, err)
		return
	}

	doc, err := h.Svc.UpdateVersion(c.Request.Context(), userID, version, patch)
	observe("update", err)
	if err != nil {
		writeError(c, err, "Server error during resume update")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message": "Resume updated successfully",
		"resume":  toResponse(doc),
	})
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	version, ok := versionParam(c)
	if !ok {
		return
	}

	err := h.Svc.DeleteVersion(c.Request.Context(), userID, version)
	observe("delete", err)
	if err != nil {
		writeError(c, err, "Server error during resume deletion")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "Resume version deleted successfully"})
}

func (h *Handler) duplicate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	version, ok := versionParam(c)
	if !ok {
		return
	}

	doc, err := h.Svc.DuplicateVersion(c.Request.Context(), userID, version)
	observe("duplicate", err)
	if err != nil {
		writeError(c, err, "Server error during resume duplication")
		return
	}

	c.Set("resumeVersion", doc.Version)
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Resume duplicated successfully",
		"resume":  toResponse(doc),
	})
}

func (h *Handler) rollback(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	version, ok := versionParam(c)
	if !ok {
		return
	}

	doc, err := h.Svc.RollbackTo(c.Request.Context(), userID, version)
	observe("rollback", err)
	if err != nil {
		writeError(c, err, "Server error during rollback")
		return
	}

	c.Set("resumeVersion", doc.Version)
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Rollback successful",
		"resume":  toResponse(doc),
	})
}

func versionParam(c *gin.Context) (int, bool) {
	version, err := ParseVersion(c.Param("version"))
	if err != nil {
		writeError(c, err, "")
		return 0, false
	}
	c.Set("resumeVersion", version)
	return version, true
}

func writeError(c *gin.Context, err error, internalMsg string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", verr.Error(), verr.Fields)
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Resume version not found", nil)
	case errors.Is(err, ErrVersionConflict):
		respond.Error(c, http.StatusConflict, "version_conflict", "Another write claimed this version; retry the request", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", internalMsg, nil)
	}
}

func observe(op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrValidation):
		outcome = "invalid"
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrVersionConflict):
		outcome = "conflict"
	case errors.Is(err, ErrStorageUnavailable):
		outcome = "unavailable"
	default:
		outcome = "error"
	}
	metrics.ObserveResumeOp(op, outcome)
}

func bodyError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "request body exceeds 10MB", nil)
		return
	}
	respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
}
