package services

import (
	"context"
	"fmt"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type AlbumInput struct {
	Title    string `json:"Title" binding:"required,notblank,max=160"`
	ArtistID *int   `json:"ArtistId" binding:"required"`
}

type AlbumService interface {
	List(ctx context.Context, page repos.Page) ([]*types.Album, error)
	ListByArtist(ctx context.Context, artistID int) ([]*types.Album, error)
	Get(ctx context.Context, id int) (*types.AlbumWithArtist, error)
	Create(ctx context.Context, in AlbumInput) (*types.Album, error)
	Update(ctx context.Context, id int, in AlbumInput) (*types.Album, error)
	Delete(ctx context.Context, id int) (*types.Album, error)
}

type albumService struct {
	log     *logger.Logger
	albums  repos.AlbumRepo
	artists repos.ArtistRepo
}

func NewAlbumService(baseLog *logger.Logger, albums repos.AlbumRepo, artists repos.ArtistRepo) AlbumService {
	return &albumService{
		log:     baseLog.With("service", "AlbumService"),
		albums:  albums,
		artists: artists,
	}
}

func (s *albumService) List(ctx context.Context, page repos.Page) ([]*types.Album, error) {
	rows, err := s.albums.List(dbcOf(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return rows, nil
}

func (s *albumService) ListByArtist(ctx context.Context, artistID int) ([]*types.Album, error) {
	dbc := dbcOf(ctx)
	ok, err := s.artists.Exists(dbc, artistID)
	if err := referenced(ok, err, "artist", "artist_not_found", "Artist not found"); err != nil {
		return nil, err
	}
	rows, err := s.albums.ListByArtist(dbc, artistID, repos.All)
	if err != nil {
		return nil, fmt.Errorf("list albums by artist: %w", err)
	}
	return rows, nil
}

// Get returns the album with its artist. Artist is nil when the album points
// at a row that no longer exists.
func (s *albumService) Get(ctx context.Context, id int) (*types.AlbumWithArtist, error) {
	dbc := dbcOf(ctx)
	album, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	artist, err := s.artists.GetByID(dbc, album.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("load album artist: %w", err)
	}
	return &types.AlbumWithArtist{Album: *album, Artist: artist}, nil
}

func (s *albumService) get(ctx context.Context, id int) (*types.Album, error) {
	row, err := s.albums.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "album", "album_not_found", "Album not found")
}

func (s *albumService) checkArtist(ctx context.Context, in AlbumInput) error {
	ok, err := s.artists.Exists(dbcOf(ctx), deref(in.ArtistID))
	return referenced(ok, err, "artist", "artist_not_found", "Artist not found")
}

func (s *albumService) Create(ctx context.Context, in AlbumInput) (*types.Album, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkArtist(ctx, in); err != nil {
		return nil, err
	}
	row := &types.Album{Title: in.Title, ArtistID: deref(in.ArtistID)}
	if err := s.albums.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	return row, nil
}

func (s *albumService) Update(ctx context.Context, id int, in AlbumInput) (*types.Album, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkArtist(ctx, in); err != nil {
		return nil, err
	}
	row.Title = in.Title
	row.ArtistID = deref(in.ArtistID)
	if err := s.albums.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update album: %w", err)
	}
	return row, nil
}

func (s *albumService) Delete(ctx context.Context, id int) (*types.Album, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.albums.Delete(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("delete album: %w", err)
	}
	return row, nil
}
