package catalog

const (
	colArtistID    = "ArtistId"
	colAlbumID     = "AlbumId"
	colGenreID     = "GenreId"
	colMediaTypeID = "MediaTypeId"
	colTrackID     = "TrackId"
	colPlaylistID  = "PlaylistId"
	colName        = "Name"
	colComposer    = "Composer"
)
