package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	"github.com/yungbote/chinook-backend/internal/data/repos/testutil"
	errs "github.com/yungbote/chinook-backend/internal/pkg/errors"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
)

type fixture struct {
	ctx context.Context
	db  *gorm.DB

	artists    ArtistService
	albums     AlbumService
	genres     GenreService
	mediaTypes MediaTypeService
	tracks     TrackService
	playlists  PlaylistService
	employees  EmployeeService
	customers  CustomerService
	invoices   InvoiceService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	artistRepo := repos.NewArtistRepo(db, log)
	albumRepo := repos.NewAlbumRepo(db, log)
	genreRepo := repos.NewGenreRepo(db, log)
	mediaTypeRepo := repos.NewMediaTypeRepo(db, log)
	trackRepo := repos.NewTrackRepo(db, log)
	playlistRepo := repos.NewPlaylistRepo(db, log)
	playlistTrackRepo := repos.NewPlaylistTrackRepo(db, log)
	employeeRepo := repos.NewEmployeeRepo(db, log)
	customerRepo := repos.NewCustomerRepo(db, log)
	invoiceRepo := repos.NewInvoiceRepo(db, log)
	invoiceLineRepo := repos.NewInvoiceLineRepo(db, log)

	return &fixture{
		ctx:        context.Background(),
		db:         db,
		artists:    NewArtistService(log, artistRepo),
		albums:     NewAlbumService(log, albumRepo, artistRepo),
		genres:     NewGenreService(log, genreRepo, trackRepo),
		mediaTypes: NewMediaTypeService(log, mediaTypeRepo, trackRepo),
		tracks:     NewTrackService(log, trackRepo, albumRepo, genreRepo, mediaTypeRepo),
		playlists:  NewPlaylistService(log, playlistRepo, playlistTrackRepo, trackRepo),
		employees:  NewEmployeeService(log, employeeRepo),
		customers:  NewCustomerService(log, customerRepo, employeeRepo, invoiceRepo),
		invoices:   NewInvoiceService(db, log, invoiceRepo, invoiceLineRepo, customerRepo, trackRepo),
	}
}

func requireKind(t *testing.T, err error, kind error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v (%s), got nil", kind, code)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != code {
		t.Fatalf("expected code %q, got %v", code, err)
	}
}

func requireNotFound(t *testing.T, err error, code string) {
	t.Helper()
	requireKind(t, err, errs.ErrNotFound, code)
}

func requireInvalid(t *testing.T, err error, code string) {
	t.Helper()
	requireKind(t, err, errs.ErrInvalidOperation, code)
}
