package services

import (
	"context"
	"fmt"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

const (
	MsgTrackAdded   = "Track added to playlist successfully"
	MsgTrackRemoved = "Track removed from playlist successfully"
)

type PlaylistInput struct {
	Name string `json:"Name" binding:"required,notblank,max=120"`
}

type PlaylistTrackInput struct {
	TrackID *int `json:"TrackId" binding:"required"`
}

type PlaylistService interface {
	List(ctx context.Context, page repos.Page) ([]*types.Playlist, error)
	Get(ctx context.Context, id int) (*types.Playlist, error)
	GetWithTracks(ctx context.Context, id int) (*types.PlaylistWithTracks, error)
	Create(ctx context.Context, in PlaylistInput) (*types.Playlist, error)
	Update(ctx context.Context, id int, in PlaylistInput) (*types.Playlist, error)
	Delete(ctx context.Context, id int) (*types.Playlist, error)

	Tracks(ctx context.Context, id int) ([]*types.Track, error)
	AddTrack(ctx context.Context, id, trackID int) error
	RemoveTrack(ctx context.Context, id, trackID int) error
}

type playlistService struct {
	log            *logger.Logger
	playlists      repos.PlaylistRepo
	playlistTracks repos.PlaylistTrackRepo
	tracks         repos.TrackRepo
}

func NewPlaylistService(
	baseLog *logger.Logger,
	playlists repos.PlaylistRepo,
	playlistTracks repos.PlaylistTrackRepo,
	tracks repos.TrackRepo,
) PlaylistService {
	return &playlistService{
		log:            baseLog.With("service", "PlaylistService"),
		playlists:      playlists,
		playlistTracks: playlistTracks,
		tracks:         tracks,
	}
}

func (s *playlistService) List(ctx context.Context, page repos.Page) ([]*types.Playlist, error) {
	rows, err := s.playlists.List(dbcOf(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return rows, nil
}

func (s *playlistService) Get(ctx context.Context, id int) (*types.Playlist, error) {
	row, err := s.playlists.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "playlist", "playlist_not_found", "Playlist not found")
}

func (s *playlistService) GetWithTracks(ctx context.Context, id int) (*types.PlaylistWithTracks, error) {
	pl, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tracks, err := s.loadTracks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &types.PlaylistWithTracks{Playlist: *pl, Tracks: tracks}, nil
}

func (s *playlistService) Tracks(ctx context.Context, id int) ([]*types.Track, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.loadTracks(ctx, id)
}

// loadTracks resolves the join rows of a playlist. Pairs pointing at deleted
// tracks are skipped.
func (s *playlistService) loadTracks(ctx context.Context, id int) ([]*types.Track, error) {
	dbc := dbcOf(ctx)
	ids, err := s.playlistTracks.ListTrackIDs(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("list playlist track ids: %w", err)
	}
	rows, err := s.tracks.GetByIDs(dbc, ids)
	if err != nil {
		return nil, fmt.Errorf("load playlist tracks: %w", err)
	}
	return rows, nil
}

func (s *playlistService) Create(ctx context.Context, in PlaylistInput) (*types.Playlist, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	row := &types.Playlist{Name: in.Name}
	if err := s.playlists.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	return row, nil
}

func (s *playlistService) Update(ctx context.Context, id int, in PlaylistInput) (*types.Playlist, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	row.Name = in.Name
	if err := s.playlists.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}
	return row, nil
}

func (s *playlistService) Delete(ctx context.Context, id int) (*types.Playlist, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.playlists.Delete(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("delete playlist: %w", err)
	}
	return row, nil
}

func (s *playlistService) checkPair(ctx context.Context, id, trackID int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	ok, err := s.tracks.Exists(dbcOf(ctx), trackID)
	return referenced(ok, err, "track", "track_not_found", "Track not found")
}

func (s *playlistService) AddTrack(ctx context.Context, id, trackID int) error {
	dbc := dbcOf(ctx)
	if err := s.checkPair(ctx, id, trackID); err != nil {
		return err
	}
	exists, err := s.playlistTracks.Exists(dbc, id, trackID)
	if err != nil {
		return fmt.Errorf("check playlist track: %w", err)
	}
	if exists {
		return apierr.InvalidOperation("track_already_in_playlist", "Track already in playlist")
	}
	if err := s.playlistTracks.Create(dbc, &types.PlaylistTrack{PlaylistID: id, TrackID: trackID}); err != nil {
		return fmt.Errorf("add playlist track: %w", err)
	}
	s.log.Debug("Track added to playlist", "playlist_id", id, "track_id", trackID)
	return nil
}

func (s *playlistService) RemoveTrack(ctx context.Context, id, trackID int) error {
	if err := s.checkPair(ctx, id, trackID); err != nil {
		return err
	}
	n, err := s.playlistTracks.Delete(dbcOf(ctx), id, trackID)
	if err != nil {
		return fmt.Errorf("remove playlist track: %w", err)
	}
	if n == 0 {
		return apierr.NotFound("track_not_in_playlist", "Track not in playlist")
	}
	return nil
}
