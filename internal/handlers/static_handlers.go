package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/handlers/response"
)

// @Summary Landing page
// @Description Serves index.html from the static directory.
// @Tags Pages
// @Produce html
// @Success 200 {string} string "index.html"
// @Failure 404 {object} response.HTTPResponse "Page not found"
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		h.NotFound(c)
		return
	}
	c.File(index)
}

// @Summary Health check
// @Tags Pages
// @Produce json
// @Success 200 {object} response.HTTPResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success())
}
func (h *Handler) NotFound(c *gin.Context) {
	response.SendResponse(c, http.StatusNotFound, response.Failure(erro.ErrorPageNotFound), c.GetString("traceID"), API_NotFound, h.logproducer)
}
