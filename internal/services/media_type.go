package services

import (
	"context"
	"fmt"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type MediaTypeInput struct {
	Name string `json:"Name" binding:"required,notblank,max=120"`
}

type MediaTypeService interface {
	List(ctx context.Context, page repos.Page) ([]*types.MediaType, error)
	Get(ctx context.Context, id int) (*types.MediaType, error)
	Tracks(ctx context.Context, id int, page repos.Page) ([]*types.Track, error)
	Create(ctx context.Context, in MediaTypeInput) (*types.MediaType, error)
	Update(ctx context.Context, id int, in MediaTypeInput) (*types.MediaType, error)
	Delete(ctx context.Context, id int) (*types.MediaType, error)
}

type mediaTypeService struct {
	log        *logger.Logger
	mediaTypes repos.MediaTypeRepo
	tracks     repos.TrackRepo
}

func NewMediaTypeService(baseLog *logger.Logger, mediaTypes repos.MediaTypeRepo, tracks repos.TrackRepo) MediaTypeService {
	return &mediaTypeService{
		log:        baseLog.With("service", "MediaTypeService"),
		mediaTypes: mediaTypes,
		tracks:     tracks,
	}
}

func (s *mediaTypeService) List(ctx context.Context, page repos.Page) ([]*types.MediaType, error) {
	rows, err := s.mediaTypes.List(dbcOf(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list media types: %w", err)
	}
	return rows, nil
}

func (s *mediaTypeService) Get(ctx context.Context, id int) (*types.MediaType, error) {
	row, err := s.mediaTypes.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "media type", "media_type_not_found", "MediaType not found")
}

func (s *mediaTypeService) Tracks(ctx context.Context, id int, page repos.Page) ([]*types.Track, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.tracks.List(dbcOf(ctx), repos.TrackFilter{MediaTypeID: &id}, page)
	if err != nil {
		return nil, fmt.Errorf("list media type tracks: %w", err)
	}
	return rows, nil
}

func (s *mediaTypeService) Create(ctx context.Context, in MediaTypeInput) (*types.MediaType, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	row := &types.MediaType{Name: in.Name}
	if err := s.mediaTypes.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create media type: %w", err)
	}
	return row, nil
}

func (s *mediaTypeService) Update(ctx context.Context, id int, in MediaTypeInput) (*types.MediaType, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	row.Name = in.Name
	if err := s.mediaTypes.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update media type: %w", err)
	}
	return row, nil
}

func (s *mediaTypeService) Delete(ctx context.Context, id int) (*types.MediaType, error) {
	dbc := dbcOf(ctx)
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.tracks.Count(dbc, repos.TrackFilter{MediaTypeID: &id})
	if err != nil {
		return nil, fmt.Errorf("count media type tracks: %w", err)
	}
	if n > 0 {
		return nil, apierr.InvalidOperation("media_type_in_use", "Cannot delete media type with associated tracks. Update or delete tracks first.")
	}
	if err := s.mediaTypes.Delete(dbc, row); err != nil {
		return nil, fmt.Errorf("delete media type: %w", err)
	}
	return row, nil
}
