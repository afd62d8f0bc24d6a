package catalog

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type PlaylistTrackRepo interface {
	Exists(dbc dbctx.Context, playlistID, trackID int) (bool, error)
	ListTrackIDs(dbc dbctx.Context, playlistID int) ([]int, error)
	Create(dbc dbctx.Context, row *types.PlaylistTrack) error
	Delete(dbc dbctx.Context, playlistID, trackID int) (int64, error)
}

type playlistTrackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlaylistTrackRepo(db *gorm.DB, baseLog *logger.Logger) PlaylistTrackRepo {
	return &playlistTrackRepo{db: db, log: baseLog.With("repo", "PlaylistTrackRepo")}
}

func pairConditions(playlistID, trackID int) clause.Where {
	return clause.Where{Exprs: []clause.Expression{
		crud.Eq(colPlaylistID, playlistID),
		crud.Eq(colTrackID, trackID),
	}}
}

func (r *playlistTrackRepo) Exists(dbc dbctx.Context, playlistID, trackID int) (bool, error) {
	var n int64
	err := dbc.DB(r.db).
		Model(&types.PlaylistTrack{}).
		Clauses(pairConditions(playlistID, trackID)).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListTrackIDs returns the track ids of a playlist in ascending order.
func (r *playlistTrackRepo) ListTrackIDs(dbc dbctx.Context, playlistID int) ([]int, error) {
	var rows []*types.PlaylistTrack
	err := dbc.DB(r.db).
		Clauses(clause.Where{Exprs: []clause.Expression{crud.Eq(colPlaylistID, playlistID)}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: colTrackID}}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.TrackID)
	}
	return out, nil
}

func (r *playlistTrackRepo) Create(dbc dbctx.Context, row *types.PlaylistTrack) error {
	return dbc.DB(r.db).Create(row).Error
}

// Delete removes the pair and reports how many rows went away.
func (r *playlistTrackRepo) Delete(dbc dbctx.Context, playlistID, trackID int) (int64, error) {
	res := dbc.DB(r.db).
		Clauses(pairConditions(playlistID, trackID)).
		Delete(&types.PlaylistTrack{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
