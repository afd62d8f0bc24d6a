package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type TrackInput struct {
	Name         string   `json:"Name" binding:"required,notblank,max=200"`
	AlbumID      *int     `json:"AlbumId"`
	MediaTypeID  *int     `json:"MediaTypeId" binding:"required"`
	GenreID      *int     `json:"GenreId"`
	Composer     *string  `json:"Composer" binding:"omitempty,max=220"`
	Milliseconds *int     `json:"Milliseconds" binding:"required,gte=0"`
	Bytes        *int     `json:"Bytes" binding:"omitempty,gte=0"`
	UnitPrice    *float64 `json:"UnitPrice" binding:"required,gte=0"`
}

func (in TrackInput) apply(row *types.Track) {
	row.Name = in.Name
	row.AlbumID = optionalID(in.AlbumID)
	row.MediaTypeID = deref(in.MediaTypeID)
	row.GenreID = optionalID(in.GenreID)
	row.Composer = in.Composer
	row.Milliseconds = deref(in.Milliseconds)
	row.Bytes = in.Bytes
	row.UnitPrice = deref(in.UnitPrice)
}

type TrackService interface {
	List(ctx context.Context, filter repos.TrackFilter, page repos.Page) ([]*types.Track, error)
	Search(ctx context.Context, query string) ([]*types.Track, error)
	Get(ctx context.Context, id int) (*types.TrackDetail, error)
	Create(ctx context.Context, in TrackInput) (*types.Track, error)
	Update(ctx context.Context, id int, in TrackInput) (*types.Track, error)
	Delete(ctx context.Context, id int) (*types.Track, error)
}

type trackService struct {
	log        *logger.Logger
	tracks     repos.TrackRepo
	albums     repos.AlbumRepo
	genres     repos.GenreRepo
	mediaTypes repos.MediaTypeRepo
}

func NewTrackService(
	baseLog *logger.Logger,
	tracks repos.TrackRepo,
	albums repos.AlbumRepo,
	genres repos.GenreRepo,
	mediaTypes repos.MediaTypeRepo,
) TrackService {
	return &trackService{
		log:        baseLog.With("service", "TrackService"),
		tracks:     tracks,
		albums:     albums,
		genres:     genres,
		mediaTypes: mediaTypes,
	}
}

func (s *trackService) List(ctx context.Context, filter repos.TrackFilter, page repos.Page) ([]*types.Track, error) {
	rows, err := s.tracks.List(dbcOf(ctx), filter, page)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	return rows, nil
}

// Search matches tracks whose name or composer contains query, ignoring case.
func (s *trackService) Search(ctx context.Context, query string) ([]*types.Track, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apierr.InvalidOperation("invalid_query", "Search query must not be empty")
	}
	rows, err := s.tracks.Search(dbcOf(ctx), query, repos.All)
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	return rows, nil
}

func (s *trackService) Get(ctx context.Context, id int) (*types.TrackDetail, error) {
	dbc := dbcOf(ctx)
	track, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &types.TrackDetail{Track: *track}
	if track.AlbumID != nil {
		if out.Album, err = s.albums.GetByID(dbc, *track.AlbumID); err != nil {
			return nil, fmt.Errorf("load track album: %w", err)
		}
	}
	if track.GenreID != nil {
		if out.Genre, err = s.genres.GetByID(dbc, *track.GenreID); err != nil {
			return nil, fmt.Errorf("load track genre: %w", err)
		}
	}
	if out.MediaType, err = s.mediaTypes.GetByID(dbc, track.MediaTypeID); err != nil {
		return nil, fmt.Errorf("load track media type: %w", err)
	}
	return out, nil
}

func (s *trackService) get(ctx context.Context, id int) (*types.Track, error) {
	row, err := s.tracks.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "track", "track_not_found", "Track not found")
}

// checkRefs verifies album, genre and media type in that order. Album and
// genre are only checked when set and non-zero.
func (s *trackService) checkRefs(ctx context.Context, in TrackInput) error {
	dbc := dbcOf(ctx)
	if albumID := optionalID(in.AlbumID); albumID != nil {
		ok, err := s.albums.Exists(dbc, *albumID)
		if err := referenced(ok, err, "album", "album_not_found", "Album not found"); err != nil {
			return err
		}
	}
	if genreID := optionalID(in.GenreID); genreID != nil {
		ok, err := s.genres.Exists(dbc, *genreID)
		if err := referenced(ok, err, "genre", "genre_not_found", "Genre not found"); err != nil {
			return err
		}
	}
	ok, err := s.mediaTypes.Exists(dbc, deref(in.MediaTypeID))
	return referenced(ok, err, "media type", "media_type_not_found", "MediaType not found")
}

func (s *trackService) Create(ctx context.Context, in TrackInput) (*types.Track, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, in); err != nil {
		return nil, err
	}
	row := &types.Track{}
	in.apply(row)
	if err := s.tracks.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create track: %w", err)
	}
	return row, nil
}

func (s *trackService) Update(ctx context.Context, id int, in TrackInput) (*types.Track, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, in); err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.tracks.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update track: %w", err)
	}
	return row, nil
}

func (s *trackService) Delete(ctx context.Context, id int) (*types.Track, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.tracks.Delete(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("delete track: %w", err)
	}
	return row, nil
}
