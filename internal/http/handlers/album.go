package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type AlbumHandler struct {
	log    *logger.Logger
	albums services.AlbumService
}

func NewAlbumHandler(log *logger.Logger, albums services.AlbumService) *AlbumHandler {
	return &AlbumHandler{
		log:    log.With("handler", "AlbumHandler"),
		albums: albums,
	}
}

// GET /albums?skip=0&limit=100
func (h *AlbumHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.albums.List(c.Request.Context(), page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /albums/:id
func (h *AlbumHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.albums.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /albums
func (h *AlbumHandler) Create(c *gin.Context) {
	var in services.AlbumInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.albums.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /albums/:id
func (h *AlbumHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.AlbumInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.albums.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /albums/:id
func (h *AlbumHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.albums.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /albums/by-artist/:artist_id
func (h *AlbumHandler) ListByArtist(c *gin.Context) {
	artistID, ok := pathID(c, "artist_id")
	if !ok {
		return
	}
	rows, err := h.albums.ListByArtist(c.Request.Context(), artistID)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}
