package catalog

type Album struct {
	AlbumID  int    `gorm:"column:AlbumId;primaryKey;autoIncrement" json:"AlbumId"`
	Title    string `gorm:"column:Title;type:varchar(160);not null" json:"Title"`
	ArtistID int    `gorm:"column:ArtistId;not null;index" json:"ArtistId"`
}

func (Album) TableName() string { return "Album" }

// AlbumWithArtist is the single-album view with its artist joined in.
type AlbumWithArtist struct {
	Album
	Artist *Artist `json:"artist"`
}
