package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type Repos struct {
	Artist        repos.ArtistRepo
	Album         repos.AlbumRepo
	Genre         repos.GenreRepo
	MediaType     repos.MediaTypeRepo
	Track         repos.TrackRepo
	Playlist      repos.PlaylistRepo
	PlaylistTrack repos.PlaylistTrackRepo
	Employee      repos.EmployeeRepo
	Customer      repos.CustomerRepo
	Invoice       repos.InvoiceRepo
	InvoiceLine   repos.InvoiceLineRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Artist:        repos.NewArtistRepo(db, log),
		Album:         repos.NewAlbumRepo(db, log),
		Genre:         repos.NewGenreRepo(db, log),
		MediaType:     repos.NewMediaTypeRepo(db, log),
		Track:         repos.NewTrackRepo(db, log),
		Playlist:      repos.NewPlaylistRepo(db, log),
		PlaylistTrack: repos.NewPlaylistTrackRepo(db, log),
		Employee:      repos.NewEmployeeRepo(db, log),
		Customer:      repos.NewCustomerRepo(db, log),
		Invoice:       repos.NewInvoiceRepo(db, log),
		InvoiceLine:   repos.NewInvoiceLineRepo(db, log),
	}
}
