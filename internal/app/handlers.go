package app

import (
	httpH "github.com/yungbote/chinook-backend/internal/http/handlers"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Info      *httpH.InfoHandler
	Artist    *httpH.ArtistHandler
	Album     *httpH.AlbumHandler
	Track     *httpH.TrackHandler
	Genre     *httpH.GenreHandler
	MediaType *httpH.MediaTypeHandler
	Playlist  *httpH.PlaylistHandler
	Employee  *httpH.EmployeeHandler
	Customer  *httpH.CustomerHandler
	Invoice   *httpH.InvoiceHandler
}

func wireHandlers(log *logger.Logger, s Services, db httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(log, db),
		Info:      httpH.NewInfoHandler(),
		Artist:    httpH.NewArtistHandler(log, s.Artist),
		Album:     httpH.NewAlbumHandler(log, s.Album),
		Track:     httpH.NewTrackHandler(log, s.Track),
		Genre:     httpH.NewGenreHandler(log, s.Genre),
		MediaType: httpH.NewMediaTypeHandler(log, s.MediaType),
		Playlist:  httpH.NewPlaylistHandler(log, s.Playlist),
		Employee:  httpH.NewEmployeeHandler(log, s.Employee),
		Customer:  httpH.NewCustomerHandler(log, s.Customer),
		Invoice:   httpH.NewInvoiceHandler(log, s.Invoice),
	}
}
