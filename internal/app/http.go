package app

import (
	"io/fs"

	"github.com/yungbote/chinook-backend/internal/http"
	"github.com/yungbote/chinook-backend/internal/observability"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

func routerConfig(cfg Config, log *logger.Logger, h Handlers, metrics *observability.Metrics, static fs.FS) http.RouterConfig {
	tracing := ""
	if cfg.Otel.Enabled {
		tracing = cfg.Otel.ServiceName
	}
	return http.RouterConfig{
		Log:              log,
		ArtistHandler:    h.Artist,
		AlbumHandler:     h.Album,
		TrackHandler:     h.Track,
		GenreHandler:     h.Genre,
		MediaTypeHandler: h.MediaType,
		PlaylistHandler:  h.Playlist,
		EmployeeHandler:  h.Employee,
		CustomerHandler:  h.Customer,
		InvoiceHandler:   h.Invoice,
		InfoHandler:      h.Info,
		HealthHandler:    h.Health,
		CORSOrigins:      cfg.CORSOrigins,
		Metrics:          metrics,
		TracingService:   tracing,
		Static:           static,
	}
}
