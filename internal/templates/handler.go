package templates

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

type Handler struct {
	Catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

// RegisterRoutes mounts the public catalog routes on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.GET("/category/:category", h.byCategory)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, gin.H{"templates": h.Catalog.All()})
}

func (h *Handler) get(c *gin.Context) {
	t, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "Template not found", nil)
		return
	}
	respond.OK(c, gin.H{"template": t})
}

func (h *Handler) byCategory(c *gin.Context) {
	respond.OK(c, gin.H{"templates": h.Catalog.ByCategory(c.Param("category"))})
}
