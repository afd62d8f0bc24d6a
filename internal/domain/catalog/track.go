package catalog

// Track belongs to a media type and optionally to an album and a genre.
type Track struct {
	TrackID      int     `gorm:"column:TrackId;primaryKey;autoIncrement" json:"TrackId"`
	Name         string  `gorm:"column:Name;type:varchar(200);not null" json:"Name"`
	AlbumID      *int    `gorm:"column:AlbumId;index" json:"AlbumId"`
	MediaTypeID  int     `gorm:"column:MediaTypeId;not null;index" json:"MediaTypeId"`
	GenreID      *int    `gorm:"column:GenreId;index" json:"GenreId"`
	Composer     *string `gorm:"column:Composer;type:varchar(220)" json:"Composer"`
	Milliseconds int     `gorm:"column:Milliseconds;not null" json:"Milliseconds"`
	Bytes        *int    `gorm:"column:Bytes" json:"Bytes"`
	UnitPrice    float64 `gorm:"column:UnitPrice;type:numeric(10,2);not null" json:"UnitPrice"`
}

func (Track) TableName() string { return "Track" }

// TrackDetail is the single-track view. Album and Genre stay null when the
// track has none.
type TrackDetail struct {
	Track
	Album     *Album     `json:"album"`
	Genre     *Genre     `json:"genre"`
	MediaType *MediaType `json:"media_type"`
}
