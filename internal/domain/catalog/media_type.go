package catalog

type MediaType struct {
	MediaTypeID int    `gorm:"column:MediaTypeId;primaryKey;autoIncrement" json:"MediaTypeId"`
	Name        string `gorm:"column:Name;type:varchar(120)" json:"Name"`
}

func (MediaType) TableName() string { return "MediaType" }
