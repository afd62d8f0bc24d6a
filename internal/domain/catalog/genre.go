package catalog

type Genre struct {
	GenreID int    `gorm:"column:GenreId;primaryKey;autoIncrement" json:"GenreId"`
	Name    string `gorm:"column:Name;type:varchar(120)" json:"Name"`
}

func (Genre) TableName() string { return "Genre" }
