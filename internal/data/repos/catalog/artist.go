package catalog

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type ArtistRepo interface {
	List(dbc dbctx.Context, page crud.Page) ([]*types.Artist, error)
	GetByID(dbc dbctx.Context, id int) (*types.Artist, error)
	Exists(dbc dbctx.Context, id int) (bool, error)
	Create(dbc dbctx.Context, row *types.Artist) error
	Update(dbc dbctx.Context, row *types.Artist) error
	Delete(dbc dbctx.Context, row *types.Artist) error
}

type artistRepo struct {
	crud.Table[types.Artist]
	log *logger.Logger
}

func NewArtistRepo(db *gorm.DB, baseLog *logger.Logger) ArtistRepo {
	return &artistRepo{
		Table: crud.NewTable[types.Artist](db, colArtistID),
		log:   baseLog.With("repo", "ArtistRepo"),
	}
}

func (r *artistRepo) List(dbc dbctx.Context, page crud.Page) ([]*types.Artist, error) {
	return r.Table.List(dbc, page)
}
