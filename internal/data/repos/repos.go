package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/catalog"
	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	"github.com/yungbote/chinook-backend/internal/data/repos/sales"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type Page = crud.Page

const DefaultLimit = crud.DefaultLimit

// All selects every row of a listing.
var All = crud.All

func DefaultPage() Page { return crud.DefaultPage() }

type ArtistRepo = catalog.ArtistRepo
type AlbumRepo = catalog.AlbumRepo
type GenreRepo = catalog.GenreRepo
type MediaTypeRepo = catalog.MediaTypeRepo
type TrackRepo = catalog.TrackRepo
type TrackFilter = catalog.TrackFilter
type PlaylistRepo = catalog.PlaylistRepo
type PlaylistTrackRepo = catalog.PlaylistTrackRepo

type EmployeeRepo = sales.EmployeeRepo
type CustomerRepo = sales.CustomerRepo
type InvoiceRepo = sales.InvoiceRepo
type InvoiceLineRepo = sales.InvoiceLineRepo

func NewArtistRepo(db *gorm.DB, baseLog *logger.Logger) ArtistRepo {
	return catalog.NewArtistRepo(db, baseLog)
}
func NewAlbumRepo(db *gorm.DB, baseLog *logger.Logger) AlbumRepo {
	return catalog.NewAlbumRepo(db, baseLog)
}
func NewGenreRepo(db *gorm.DB, baseLog *logger.Logger) GenreRepo {
	return catalog.NewGenreRepo(db, baseLog)
}
func NewMediaTypeRepo(db *gorm.DB, baseLog *logger.Logger) MediaTypeRepo {
	return catalog.NewMediaTypeRepo(db, baseLog)
}
func NewTrackRepo(db *gorm.DB, baseLog *logger.Logger) TrackRepo {
	return catalog.NewTrackRepo(db, baseLog)
}
func NewPlaylistRepo(db *gorm.DB, baseLog *logger.Logger) PlaylistRepo {
	return catalog.NewPlaylistRepo(db, baseLog)
}
func NewPlaylistTrackRepo(db *gorm.DB, baseLog *logger.Logger) PlaylistTrackRepo {
	return catalog.NewPlaylistTrackRepo(db, baseLog)
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return sales.NewEmployeeRepo(db, baseLog)
}
func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return sales.NewCustomerRepo(db, baseLog)
}
func NewInvoiceRepo(db *gorm.DB, baseLog *logger.Logger) InvoiceRepo {
	return sales.NewInvoiceRepo(db, baseLog)
}
func NewInvoiceLineRepo(db *gorm.DB, baseLog *logger.Logger) InvoiceLineRepo {
	return sales.NewInvoiceLineRepo(db, baseLog)
}
