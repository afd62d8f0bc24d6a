package catalog

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type MediaTypeRepo interface {
	List(dbc dbctx.Context, page crud.Page) ([]*types.MediaType, error)
	GetByID(dbc dbctx.Context, id int) (*types.MediaType, error)
	GetByIDs(dbc dbctx.Context, ids []int) ([]*types.MediaType, error)
	Exists(dbc dbctx.Context, id int) (bool, error)
	Create(dbc dbctx.Context, row *types.MediaType) error
	Update(dbc dbctx.Context, row *types.MediaType) error
	Delete(dbc dbctx.Context, row *types.MediaType) error
}

type mediaTypeRepo struct {
	crud.Table[types.MediaType]
	log *logger.Logger
}

func NewMediaTypeRepo(db *gorm.DB, baseLog *logger.Logger) MediaTypeRepo {
	return &mediaTypeRepo{
		Table: crud.NewTable[types.MediaType](db, colMediaTypeID),
		log:   baseLog.With("repo", "MediaTypeRepo"),
	}
}

func (r *mediaTypeRepo) List(dbc dbctx.Context, page crud.Page) ([]*types.MediaType, error) {
	return r.Table.List(dbc, page)
}
