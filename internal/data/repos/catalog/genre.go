package catalog

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type GenreRepo interface {
	List(dbc dbctx.Context, page crud.Page) ([]*types.Genre, error)
	GetByID(dbc dbctx.Context, id int) (*types.Genre, error)
	GetByIDs(dbc dbctx.Context, ids []int) ([]*types.Genre, error)
	Exists(dbc dbctx.Context, id int) (bool, error)
	Create(dbc dbctx.Context, row *types.Genre) error
	Update(dbc dbctx.Context, row *types.Genre) error
	Delete(dbc dbctx.Context, row *types.Genre) error
}

type genreRepo struct {
	crud.Table[types.Genre]
	log *logger.Logger
}

func NewGenreRepo(db *gorm.DB, baseLog *logger.Logger) GenreRepo {
	return &genreRepo{
		Table: crud.NewTable[types.Genre](db, colGenreID),
		log:   baseLog.With("repo", "GenreRepo"),
	}
}

func (r *genreRepo) List(dbc dbctx.Context, page crud.Page) ([]*types.Genre, error) {
	return r.Table.List(dbc, page)
}
