package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type TrackHandler struct {
	log    *logger.Logger
	tracks services.TrackService
}

func NewTrackHandler(log *logger.Logger, tracks services.TrackService) *TrackHandler {
	return &TrackHandler{
		log:    log.With("handler", "TrackHandler"),
		tracks: tracks,
	}
}

// GET /tracks?skip=0&limit=100&album_id=&genre_id=&media_type_id=
func (h *TrackHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	var filter repos.TrackFilter
	if filter.AlbumID, ok = queryInt(c, "album_id"); !ok {
		return
	}
	if filter.GenreID, ok = queryInt(c, "genre_id"); !ok {
		return
	}
	if filter.MediaTypeID, ok = queryInt(c, "media_type_id"); !ok {
		return
	}
	rows, err := h.tracks.List(c.Request.Context(), filter, page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /tracks/search?query=
func (h *TrackHandler) Search(c *gin.Context) {
	rows, err := h.tracks.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /tracks/:id
func (h *TrackHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.tracks.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /tracks
func (h *TrackHandler) Create(c *gin.Context) {
	var in services.TrackInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.tracks.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /tracks/:id
func (h *TrackHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.TrackInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.tracks.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /tracks/:id
func (h *TrackHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.tracks.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}
