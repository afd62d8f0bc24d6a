package sales

import "time"

// Employee rows form a management tree through ReportsTo.
type Employee struct {
	EmployeeID int        `gorm:"column:EmployeeId;primaryKey;autoIncrement" json:"EmployeeId"`
	LastName   string     `gorm:"column:LastName;type:varchar(20);not null" json:"LastName"`
	FirstName  string     `gorm:"column:FirstName;type:varchar(20);not null" json:"FirstName"`
	Title      *string    `gorm:"column:Title;type:varchar(30)" json:"Title"`
	ReportsTo  *int       `gorm:"column:ReportsTo;index" json:"ReportsTo"`
	BirthDate  *time.Time `gorm:"column:BirthDate" json:"BirthDate"`
	HireDate   *time.Time `gorm:"column:HireDate" json:"HireDate"`
	Address    *string    `gorm:"column:Address;type:varchar(70)" json:"Address"`
	City       *string    `gorm:"column:City;type:varchar(40)" json:"City"`
	State      *string    `gorm:"column:State;type:varchar(40)" json:"State"`
	Country    *string    `gorm:"column:Country;type:varchar(40)" json:"Country"`
	PostalCode *string    `gorm:"column:PostalCode;type:varchar(10)" json:"PostalCode"`
	Phone      *string    `gorm:"column:Phone;type:varchar(24)" json:"Phone"`
	Fax        *string    `gorm:"column:Fax;type:varchar(24)" json:"Fax"`
	Email      *string    `gorm:"column:Email;type:varchar(60)" json:"Email"`
}

func (Employee) TableName() string { return "Employee" }
