package catalog

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type PlaylistRepo interface {
	List(dbc dbctx.Context, page crud.Page) ([]*types.Playlist, error)
	GetByID(dbc dbctx.Context, id int) (*types.Playlist, error)
	Exists(dbc dbctx.Context, id int) (bool, error)
	Create(dbc dbctx.Context, row *types.Playlist) error
	Update(dbc dbctx.Context, row *types.Playlist) error
	Delete(dbc dbctx.Context, row *types.Playlist) error
}

type playlistRepo struct {
	crud.Table[types.Playlist]
	log *logger.Logger
}

func NewPlaylistRepo(db *gorm.DB, baseLog *logger.Logger) PlaylistRepo {
	return &playlistRepo{
		Table: crud.NewTable[types.Playlist](db, colPlaylistID),
		log:   baseLog.With("repo", "PlaylistRepo"),
	}
}

func (r *playlistRepo) List(dbc dbctx.Context, page crud.Page) ([]*types.Playlist, error) {
	return r.Table.List(dbc, page)
}
