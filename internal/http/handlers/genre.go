package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type GenreHandler struct {
	log    *logger.Logger
	genres services.GenreService
}

func NewGenreHandler(log *logger.Logger, genres services.GenreService) *GenreHandler {
	return &GenreHandler{
		log:    log.With("handler", "GenreHandler"),
		genres: genres,
	}
}

// GET /genres?skip=0&limit=100
func (h *GenreHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.genres.List(c.Request.Context(), page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /genres/:id
func (h *GenreHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.genres.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /genres
func (h *GenreHandler) Create(c *gin.Context) {
	var in services.GenreInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.genres.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.GenreInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.genres.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.genres.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /genres/:id/tracks?skip=0&limit=100
func (h *GenreHandler) Tracks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.genres.Tracks(c.Request.Context(), id, page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}
