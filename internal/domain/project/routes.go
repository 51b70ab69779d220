package project

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the listing on the public group and the
// mutations on the admin-gated group.
func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/projects", h.List)

	admin.POST("/projects", h.Create)
	admin.PUT("/projects/:id", h.Update)
	admin.DELETE("/projects/:id", h.Delete)
}
