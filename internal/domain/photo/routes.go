package photo

import "github.com/gin-gonic/gin"

// RegisterRoutes registers photo routes under the /api group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/upload", h.Upload)
	r.GET("/photos", h.List)
}
