package catalog

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

// TrackFilter narrows a track listing. Nil fields do not filter.
type TrackFilter struct {
	AlbumID     *int
	GenreID     *int
	MediaTypeID *int
}

func (f TrackFilter) conditions() []clause.Expression {
	var out []clause.Expression
	if f.AlbumID != nil {
		out = append(out, crud.Eq(colAlbumID, *f.AlbumID))
	}
	if f.GenreID != nil {
		out = append(out, crud.Eq(colGenreID, *f.GenreID))
	}
	if f.MediaTypeID != nil {
		out = append(out, crud.Eq(colMediaTypeID, *f.MediaTypeID))
	}
	return out
}

type TrackRepo interface {
	List(dbc dbctx.Context, filter TrackFilter, page crud.Page) ([]*types.Track, error)
	Search(dbc dbctx.Context, query string, page crud.Page) ([]*types.Track, error)
	Count(dbc dbctx.Context, filter TrackFilter) (int64, error)

	GetByID(dbc dbctx.Context, id int) (*types.Track, error)
	GetByIDs(dbc dbctx.Context, ids []int) ([]*types.Track, error)
	Exists(dbc dbctx.Context, id int) (bool, error)

	Create(dbc dbctx.Context, row *types.Track) error
	Update(dbc dbctx.Context, row *types.Track) error
	Delete(dbc dbctx.Context, row *types.Track) error
}

type trackRepo struct {
	crud.Table[types.Track]
	log *logger.Logger
}

func NewTrackRepo(db *gorm.DB, baseLog *logger.Logger) TrackRepo {
	return &trackRepo{
		Table: crud.NewTable[types.Track](db, colTrackID),
		log:   baseLog.With("repo", "TrackRepo"),
	}
}

func (r *trackRepo) List(dbc dbctx.Context, filter TrackFilter, page crud.Page) ([]*types.Track, error) {
	return r.Table.List(dbc, page, filter.conditions()...)
}

// Search matches query against Name or Composer.
func (r *trackRepo) Search(dbc dbctx.Context, query string, page crud.Page) ([]*types.Track, error) {
	return r.Table.List(dbc, page, crud.ContainsFold(query, colName, colComposer))
}

func (r *trackRepo) Count(dbc dbctx.Context, filter TrackFilter) (int64, error) {
	return r.Table.Count(dbc, filter.conditions()...)
}
