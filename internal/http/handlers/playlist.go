package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type PlaylistHandler struct {
	log       *logger.Logger
	playlists services.PlaylistService
}

func NewPlaylistHandler(log *logger.Logger, playlists services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		log:       log.With("handler", "PlaylistHandler"),
		playlists: playlists,
	}
}

// GET /playlists?skip=0&limit=100
func (h *PlaylistHandler) List(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	rows, err := h.playlists.List(c.Request.Context(), page)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// GET /playlists/:id
func (h *PlaylistHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.playlists.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /playlists
func (h *PlaylistHandler) Create(c *gin.Context) {
	var in services.PlaylistInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.playlists.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /playlists/:id
func (h *PlaylistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.PlaylistInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := h.playlists.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /playlists/:id
func (h *PlaylistHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.playlists.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /playlists/:id/with-tracks
func (h *PlaylistHandler) GetWithTracks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.playlists.GetWithTracks(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /playlists/:id/tracks
func (h *PlaylistHandler) Tracks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := h.playlists.Tracks(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	list(c, rows)
}

// POST /playlists/:id/tracks?track_id=
// The track id may also be sent as {"TrackId": n}.
func (h *PlaylistHandler) AddTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	trackID, ok := queryInt(c, "track_id")
	if !ok {
		return
	}
	if trackID == nil {
		var in services.PlaylistTrackInput
		if !bindJSON(c, &in) {
			return
		}
		trackID = in.TrackID
	}
	if err := h.playlists.AddTrack(c.Request.Context(), id, *trackID); err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondMessage(c, services.MsgTrackAdded)
}

// DELETE /playlists/:id/tracks/:track_id
func (h *PlaylistHandler) RemoveTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	trackID, ok := pathID(c, "track_id")
	if !ok {
		return
	}
	if err := h.playlists.RemoveTrack(c.Request.Context(), id, trackID); err != nil {
		response.RespondErr(c, h.log, err)
		return
	}
	response.RespondMessage(c, services.MsgTrackRemoved)
}
