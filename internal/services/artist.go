package services

import (
	"context"
	"fmt"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type ArtistInput struct {
	Name string `json:"Name" binding:"required,notblank,max=120"`
}

type ArtistService interface {
	List(ctx context.Context, page repos.Page) ([]*types.Artist, error)
	Get(ctx context.Context, id int) (*types.Artist, error)
	Create(ctx context.Context, in ArtistInput) (*types.Artist, error)
	Update(ctx context.Context, id int, in ArtistInput) (*types.Artist, error)
	Delete(ctx context.Context, id int) (*types.Artist, error)
}

type artistService struct {
	log     *logger.Logger
	artists repos.ArtistRepo
}

func NewArtistService(baseLog *logger.Logger, artists repos.ArtistRepo) ArtistService {
	return &artistService{
		log:     baseLog.With("service", "ArtistService"),
		artists: artists,
	}
}

func (s *artistService) List(ctx context.Context, page repos.Page) ([]*types.Artist, error) {
	rows, err := s.artists.List(dbcOf(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return rows, nil
}

func (s *artistService) Get(ctx context.Context, id int) (*types.Artist, error) {
	row, err := s.artists.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "artist", "artist_not_found", "Artist not found")
}

func (s *artistService) Create(ctx context.Context, in ArtistInput) (*types.Artist, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	row := &types.Artist{Name: in.Name}
	if err := s.artists.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	s.log.Debug("Artist created", "artist_id", row.ArtistID)
	return row, nil
}

func (s *artistService) Update(ctx context.Context, id int, in ArtistInput) (*types.Artist, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	row.Name = in.Name
	if err := s.artists.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update artist: %w", err)
	}
	return row, nil
}

func (s *artistService) Delete(ctx context.Context, id int) (*types.Artist, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.artists.Delete(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("delete artist: %w", err)
	}
	s.log.Debug("Artist deleted", "artist_id", id)
	return row, nil
}
