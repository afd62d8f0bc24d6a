package testutil

import (
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/chinook-backend/internal/domain"
)

func create(tb testing.TB, tx *gorm.DB, what string, row interface{}) {
	tb.Helper()
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed %s: %v", what, err)
	}
}

func SeedArtist(tb testing.TB, tx *gorm.DB, name string) *types.Artist {
	tb.Helper()
	a := &types.Artist{Name: name}
	create(tb, tx, "artist", a)
	return a
}

func SeedAlbum(tb testing.TB, tx *gorm.DB, artistID int, title string) *types.Album {
	tb.Helper()
	a := &types.Album{Title: title, ArtistID: artistID}
	create(tb, tx, "album", a)
	return a
}

func SeedGenre(tb testing.TB, tx *gorm.DB, name string) *types.Genre {
	tb.Helper()
	g := &types.Genre{Name: name}
	create(tb, tx, "genre", g)
	return g
}

func SeedMediaType(tb testing.TB, tx *gorm.DB, name string) *types.MediaType {
	tb.Helper()
	m := &types.MediaType{Name: name}
	create(tb, tx, "media type", m)
	return m
}

// SeedTrack inserts a track priced at 0.99. albumID and genreID may be nil.
func SeedTrack(tb testing.TB, tx *gorm.DB, name string, mediaTypeID int, albumID, genreID *int) *types.Track {
	tb.Helper()
	t := &types.Track{
		Name:         name,
		AlbumID:      albumID,
		MediaTypeID:  mediaTypeID,
		GenreID:      genreID,
		Milliseconds: 200000,
		UnitPrice:    0.99,
	}
	create(tb, tx, "track", t)
	return t
}

func SeedPlaylist(tb testing.TB, tx *gorm.DB, name string) *types.Playlist {
	tb.Helper()
	p := &types.Playlist{Name: name}
	create(tb, tx, "playlist", p)
	return p
}

func SeedPlaylistTrack(tb testing.TB, tx *gorm.DB, playlistID, trackID int) *types.PlaylistTrack {
	tb.Helper()
	pt := &types.PlaylistTrack{PlaylistID: playlistID, TrackID: trackID}
	create(tb, tx, "playlist track", pt)
	return pt
}

func SeedEmployee(tb testing.TB, tx *gorm.DB, first, last string, reportsTo *int) *types.Employee {
	tb.Helper()
	e := &types.Employee{FirstName: first, LastName: last, ReportsTo: reportsTo}
	create(tb, tx, "employee", e)
	return e
}

func SeedCustomer(tb testing.TB, tx *gorm.DB, first, last, email string, company *string) *types.Customer {
	tb.Helper()
	c := &types.Customer{FirstName: first, LastName: last, Email: email, Company: company}
	create(tb, tx, "customer", c)
	return c
}

func SeedInvoice(tb testing.TB, tx *gorm.DB, customerID int) *types.Invoice {
	tb.Helper()
	inv := &types.Invoice{
		CustomerID:  customerID,
		InvoiceDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	create(tb, tx, "invoice", inv)
	return inv
}

func SeedInvoiceLine(tb testing.TB, tx *gorm.DB, invoiceID, trackID int, unitPrice float64, qty int) *types.InvoiceLine {
	tb.Helper()
	l := &types.InvoiceLine{InvoiceID: invoiceID, TrackID: trackID, UnitPrice: unitPrice, Quantity: qty}
	create(tb, tx, "invoice line", l)
	return l
}
