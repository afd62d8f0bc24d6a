package catalog

type Playlist struct {
	PlaylistID int    `gorm:"column:PlaylistId;primaryKey;autoIncrement" json:"PlaylistId"`
	Name       string `gorm:"column:Name;type:varchar(120)" json:"Name"`
}

func (Playlist) TableName() string { return "Playlist" }

// PlaylistTrack is the join row between a playlist and a track. The pair is
// the primary key, so the store itself rejects duplicates.
type PlaylistTrack struct {
	PlaylistID int `gorm:"column:PlaylistId;primaryKey;autoIncrement:false" json:"PlaylistId"`
	TrackID    int `gorm:"column:TrackId;primaryKey;autoIncrement:false;index" json:"TrackId"`
}

func (PlaylistTrack) TableName() string { return "PlaylistTrack" }

type PlaylistWithTracks struct {
	Playlist
	Tracks []*Track `json:"tracks"`
}
