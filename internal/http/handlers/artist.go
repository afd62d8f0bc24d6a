package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type ArtistHandler struct {
	log     *logger.Logger
	artists services.ArtistService
}

func NewArtistHandler(log *logger.Logger, artists services.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		log:     log.With("handler", "ArtistHandler"),
		artists: artists,
	}
}

// GET /artists?skip=0&limit=100
func (h *ArtistHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.artists.List(c.Request.Context(), page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /artists/:id
func (h *ArtistHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.artists.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /artists
func (h *ArtistHandler) Create(c *gin.Context) {
	var in services.ArtistInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.artists.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /artists/:id
func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.ArtistInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.artists.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /artists/:id
func (h *ArtistHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.artists.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}
