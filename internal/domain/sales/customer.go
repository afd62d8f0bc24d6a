package sales

type Customer struct {
	CustomerID   int     `gorm:"column:CustomerId;primaryKey;autoIncrement" json:"CustomerId"`
	FirstName    string  `gorm:"column:FirstName;type:varchar(40);not null" json:"FirstName"`
	LastName     string  `gorm:"column:LastName;type:varchar(20);not null" json:"LastName"`
	Company      *string `gorm:"column:Company;type:varchar(80)" json:"Company"`
	Address      *string `gorm:"column:Address;type:varchar(70)" json:"Address"`
	City         *string `gorm:"column:City;type:varchar(40)" json:"City"`
	State        *string `gorm:"column:State;type:varchar(40)" json:"State"`
	Country      *string `gorm:"column:Country;type:varchar(40)" json:"Country"`
	PostalCode   *string `gorm:"column:PostalCode;type:varchar(10)" json:"PostalCode"`
	Phone        *string `gorm:"column:Phone;type:varchar(24)" json:"Phone"`
	Fax          *string `gorm:"column:Fax;type:varchar(24)" json:"Fax"`
	Email        string  `gorm:"column:Email;type:varchar(60);not null" json:"Email"`
	SupportRepID *int    `gorm:"column:SupportRepId;index" json:"SupportRepId"`
}

func (Customer) TableName() string { return "Customer" }

type CustomerWithInvoices struct {
	Customer
	Invoices []*Invoice `json:"invoices"`
}
