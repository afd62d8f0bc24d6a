package catalog

type Artist struct {
	ArtistID int    `gorm:"column:ArtistId;primaryKey;autoIncrement" json:"ArtistId"`
	Name     string `gorm:"column:Name;type:varchar(120)" json:"Name"`
}

func (Artist) TableName() string { return "Artist" }
