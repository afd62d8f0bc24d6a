package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type MediaTypeHandler struct {
	log        *logger.Logger
	mediaTypes services.MediaTypeService
}

func NewMediaTypeHandler(log *logger.Logger, mediaTypes services.MediaTypeService) *MediaTypeHandler {
	return &MediaTypeHandler{
		log:        log.With("handler", "MediaTypeHandler"),
		mediaTypes: mediaTypes,
	}
}

// GET /media-types?skip=0&limit=100
func (h *MediaTypeHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.mediaTypes.List(c.Request.Context(), page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /media-types/:id
func (h *MediaTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.mediaTypes.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /media-types
func (h *MediaTypeHandler) Create(c *gin.Context) {
	var in services.MediaTypeInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.mediaTypes.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /media-types/:id
func (h *MediaTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.MediaTypeInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.mediaTypes.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /media-types/:id
func (h *MediaTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.mediaTypes.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /media-types/:id/tracks?skip=0&limit=100
func (h *MediaTypeHandler) Tracks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.mediaTypes.Tracks(c.Request.Context(), id, page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}
