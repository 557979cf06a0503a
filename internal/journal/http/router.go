package http

import "github.com/gin-gonic/gin"

// Register mounts the journal routes. writes guard the mutating endpoints.
func (h *Handler) Register(rg *gin.RouterGroup, writes ...gin.HandlerFunc) {
	projects := rg.Group("/projects")

	projects.GET("", h.listProjects)
	projects.GET("/:id", h.getProject)
	projects.GET("/:id/stats", h.projectStats)
	projects.GET("/:id/share", h.shareProject)

	guarded := projects.Group("", writes...)
	guarded.POST("", h.createProject)
	guarded.POST("/:id/entries", h.addEntry)
}
