package domain

import (
	"github.com/yungbote/chinook-backend/internal/domain/catalog"
	"github.com/yungbote/chinook-backend/internal/domain/sales"
)

// Catalog
type Artist = catalog.Artist
type Album = catalog.Album
type AlbumWithArtist = catalog.AlbumWithArtist
type Genre = catalog.Genre
type MediaType = catalog.MediaType
type Track = catalog.Track
type TrackDetail = catalog.TrackDetail
type Playlist = catalog.Playlist
type PlaylistTrack = catalog.PlaylistTrack
type PlaylistWithTracks = catalog.PlaylistWithTracks

// Sales
type Employee = sales.Employee
type Customer = sales.Customer
type CustomerWithInvoices = sales.CustomerWithInvoices
type Invoice = sales.Invoice
type InvoiceLine = sales.InvoiceLine
type InvoiceWithLines = sales.InvoiceWithLines

// Models lists every table in migration order.
func Models() []interface{} {
	return []interface{}{
		&Artist{},
		&Album{},
		&Genre{},
		&MediaType{},
		&Track{},
		&Playlist{},
		&PlaylistTrack{},
		&Employee{},
		&Customer{},
		&Invoice{},
		&InvoiceLine{},
	}
}
