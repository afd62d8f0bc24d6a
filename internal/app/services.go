package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/services"
)

type Services struct {
	Artist    services.ArtistService
	Album     services.AlbumService
	Genre     services.GenreService
	MediaType services.MediaTypeService
	Track     services.TrackService
	Playlist  services.PlaylistService
	Employee  services.EmployeeService
	Customer  services.CustomerService
	Invoice   services.InvoiceService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Artist:    services.NewArtistService(log, r.Artist),
		Album:     services.NewAlbumService(log, r.Album, r.Artist),
		Genre:     services.NewGenreService(log, r.Genre, r.Track),
		MediaType: services.NewMediaTypeService(log, r.MediaType, r.Track),
		Track:     services.NewTrackService(log, r.Track, r.Album, r.Genre, r.MediaType),
		Playlist:  services.NewPlaylistService(log, r.Playlist, r.PlaylistTrack, r.Track),
		Employee:  services.NewEmployeeService(log, r.Employee),
		Customer:  services.NewCustomerService(log, r.Customer, r.Employee, r.Invoice),
		Invoice:   services.NewInvoiceService(db, log, r.Invoice, r.InvoiceLine, r.Customer, r.Track),
	}
}
