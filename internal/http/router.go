package http

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/chinook-backend/internal/http/handlers"
	httpMW "github.com/yungbote/chinook-backend/internal/http/middleware"
	"github.com/yungbote/chinook-backend/internal/http/response"
	"github.com/yungbote/chinook-backend/internal/observability"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/internal/platform/validate"
)

const landingPage = "/static/index.html"

type RouterConfig struct {
	Log *logger.Logger

	ArtistHandler    *httpH.ArtistHandler
	AlbumHandler     *httpH.AlbumHandler
	TrackHandler     *httpH.TrackHandler
	GenreHandler     *httpH.GenreHandler
	MediaTypeHandler *httpH.MediaTypeHandler
	PlaylistHandler  *httpH.PlaylistHandler
	EmployeeHandler  *httpH.EmployeeHandler
	CustomerHandler  *httpH.CustomerHandler
	InvoiceHandler   *httpH.InvoiceHandler

	InfoHandler   *httpH.InfoHandler
	HealthHandler *httpH.HealthHandler

	CORSOrigins []string
	// Metrics is nil when metrics are disabled; /metrics is then not mounted.
	Metrics *observability.Metrics
	// TracingService names the otelgin middleware. Empty disables it.
	TracingService string
	// Static holds the landing page assets served under /static.
	Static fs.FS
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validate.Configure(v)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Landing page
	if cfg.Static != nil {
		r.StaticFS("/static", http.FS(cfg.Static))
		r.GET("/", redirectTo(landingPage))
		r.GET("/docs", redirectTo(landingPage))
	}

	// Operations
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	if cfg.InfoHandler != nil {
		r.GET("/api", cfg.InfoHandler.Info)
	}

	// Catalog
	if h := cfg.ArtistHandler; h != nil {
		g := r.Group("/artists")
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	if h := cfg.AlbumHandler; h != nil {
		g := r.Group("/albums")
		g.GET("", h.List)
		g.GET("/by-artist/:artist_id", h.ListByArtist)
		g.GET("/:id", h.Get)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	if h := cfg.TrackHandler; h != nil {
		g := r.Group("/tracks")
		g.GET("", h.List)
		g.GET("/search", h.Search)
		g.GET("/:id", h.Get)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	if h := cfg.GenreHandler; h != nil {
		g := r.Group("/genres")
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.GET("/:id/tracks", h.Tracks)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	if h := cfg.MediaTypeHandler; h != nil {
		g := r.Group("/media-types")
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.GET("/:id/tracks", h.Tracks)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	if h := cfg.PlaylistHandler; h != nil {
		g := r.Group("/playlists")
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.GET("/:id/with-tracks", h.GetWithTracks)
		g.GET("/:id/tracks", h.Tracks)
		g.POST("", h.Create)
		g.POST("/:id/tracks", h.AddTrack)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.DELETE("/:id/tracks/:track_id", h.RemoveTrack)
	}

	// Sales
	if h := cfg.EmployeeHandler; h != nil {
		g := r.Group("/employees")
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.GET("/:id/subordinates", h.Subordinates)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	if h := cfg.CustomerHandler; h != nil {
		g := r.Group("/customers")
		g.GET("", h.List)
		g.GET("/search/:query", h.Search)
		g.GET("/:id", h.Get)
		g.GET("/:id/with-invoices", h.GetWithInvoices)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	if h := cfg.InvoiceHandler; h != nil {
		g := r.Group("/invoices")
		g.GET("", h.List)
		g.GET("/customer/:customer_id", h.ListByCustomer)
		g.GET("/:id", h.Get)
		g.GET("/:id/lines", h.Lines)
		g.POST("", h.Create)
		g.POST("/:id/lines", h.AddLine)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, "route_not_found", errors.New("Not Found"))
	})
	return r
}

func redirectTo(location string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, location)
	}
}
