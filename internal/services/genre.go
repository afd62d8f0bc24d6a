package services

import (
	"context"
	"fmt"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type GenreInput struct {
	Name string `json:"Name" binding:"required,notblank,max=120"`
}

type GenreService interface {
	List(ctx context.Context, page repos.Page) ([]*types.Genre, error)
	Get(ctx context.Context, id int) (*types.Genre, error)
	Tracks(ctx context.Context, id int, page repos.Page) ([]*types.Track, error)
	Create(ctx context.Context, in GenreInput) (*types.Genre, error)
	Update(ctx context.Context, id int, in GenreInput) (*types.Genre, error)
	Delete(ctx context.Context, id int) (*types.Genre, error)
}

type genreService struct {
	log    *logger.Logger
	genres repos.GenreRepo
	tracks repos.TrackRepo
}

func NewGenreService(baseLog *logger.Logger, genres repos.GenreRepo, tracks repos.TrackRepo) GenreService {
	return &genreService{
		log:    baseLog.With("service", "GenreService"),
		genres: genres,
		tracks: tracks,
	}
}

func (s *genreService) List(ctx context.Context, page repos.Page) ([]*types.Genre, error) {
	rows, err := s.genres.List(dbcOf(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return rows, nil
}

func (s *genreService) Get(ctx context.Context, id int) (*types.Genre, error) {
	row, err := s.genres.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "genre", "genre_not_found", "Genre not found")
}

func (s *genreService) Tracks(ctx context.Context, id int, page repos.Page) ([]*types.Track, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.tracks.List(dbcOf(ctx), repos.TrackFilter{GenreID: &id}, page)
	if err != nil {
		return nil, fmt.Errorf("list genre tracks: %w", err)
	}
	return rows, nil
}

func (s *genreService) Create(ctx context.Context, in GenreInput) (*types.Genre, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	row := &types.Genre{Name: in.Name}
	if err := s.genres.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}
	return row, nil
}

func (s *genreService) Update(ctx context.Context, id int, in GenreInput) (*types.Genre, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	row.Name = in.Name
	if err := s.genres.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update genre: %w", err)
	}
	return row, nil
}

// Delete refuses while any track still references the genre.
func (s *genreService) Delete(ctx context.Context, id int) (*types.Genre, error) {
	dbc := dbcOf(ctx)
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.tracks.Count(dbc, repos.TrackFilter{GenreID: &id})
	if err != nil {
		return nil, fmt.Errorf("count genre tracks: %w", err)
	}
	if n > 0 {
		s.log.Debug("Genre delete blocked", "genre_id", id, "tracks", n)
		return nil, apierr.InvalidOperation("genre_in_use", "Cannot delete genre with associated tracks. Update or delete tracks first.")
	}
	if err := s.genres.Delete(dbc, row); err != nil {
		return nil, fmt.Errorf("delete genre: %w", err)
	}
	return row, nil
}
