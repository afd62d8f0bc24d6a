package catalog

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type AlbumRepo interface {
	List(dbc dbctx.Context, page crud.Page) ([]*types.Album, error)
	ListByArtist(dbc dbctx.Context, artistID int, page crud.Page) ([]*types.Album, error)
	GetByID(dbc dbctx.Context, id int) (*types.Album, error)
	GetByIDs(dbc dbctx.Context, ids []int) ([]*types.Album, error)
	Exists(dbc dbctx.Context, id int) (bool, error)
	Create(dbc dbctx.Context, row *types.Album) error
	Update(dbc dbctx.Context, row *types.Album) error
	Delete(dbc dbctx.Context, row *types.Album) error
}

type albumRepo struct {
	crud.Table[types.Album]
	log *logger.Logger
}

func NewAlbumRepo(db *gorm.DB, baseLog *logger.Logger) AlbumRepo {
	return &albumRepo{
		Table: crud.NewTable[types.Album](db, colAlbumID),
		log:   baseLog.With("repo", "AlbumRepo"),
	}
}

func (r *albumRepo) List(dbc dbctx.Context, page crud.Page) ([]*types.Album, error) {
	return r.Table.List(dbc, page)
}

func (r *albumRepo) ListByArtist(dbc dbctx.Context, artistID int, page crud.Page) ([]*types.Album, error) {
	return r.Table.List(dbc, page, crud.Eq(colArtistID, artistID))
}
