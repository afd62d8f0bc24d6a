package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
)

// ResourcePaths lists the collection roots advertised by GET /api.
var ResourcePaths = []string{
	"/artists",
	"/albums",
	"/tracks",
	"/customers",
	"/employees",
	"/invoices",
	"/playlists",
	"/genres",
	"/media-types",
}

type APIInfo struct {
	Message       string   `json:"message"`
	Documentation string   `json:"documentation"`
	Endpoints     []string `json:"endpoints"`
}

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler { return &InfoHandler{} }

// GET /api
func (h *InfoHandler) Info(c *gin.Context) {
	response.RespondOK(c, APIInfo{
		Message:       "Welcome to the Chinook API",
		Documentation: "/docs",
		Endpoints:     ResourcePaths,
	})
}
