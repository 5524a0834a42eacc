package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the fixed liveness response body.
const Message = "PhotoSync server up and running..."

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Test godoc
// @Summary Liveness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string
// @Router /test [get]
func (h *Handler) Test(c *gin.Context) {
	c.String(http.StatusOK, Message)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/test", h.Test)
}
