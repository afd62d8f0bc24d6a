package sales

import "time"

// Invoice.Total is derived from the invoice's lines and is recomputed each
// time a line is added.
type Invoice struct {
	InvoiceID         int       `gorm:"column:InvoiceId;primaryKey;autoIncrement" json:"InvoiceId"`
	CustomerID        int       `gorm:"column:CustomerId;not null;index" json:"CustomerId"`
	InvoiceDate       time.Time `gorm:"column:InvoiceDate;not null" json:"InvoiceDate"`
	BillingAddress    *string   `gorm:"column:BillingAddress;type:varchar(70)" json:"BillingAddress"`
	BillingCity       *string   `gorm:"column:BillingCity;type:varchar(40)" json:"BillingCity"`
	BillingState      *string   `gorm:"column:BillingState;type:varchar(40)" json:"BillingState"`
	BillingCountry    *string   `gorm:"column:BillingCountry;type:varchar(40)" json:"BillingCountry"`
	BillingPostalCode *string   `gorm:"column:BillingPostalCode;type:varchar(10)" json:"BillingPostalCode"`
	Total             float64   `gorm:"column:Total;type:numeric(10,2);not null" json:"Total"`
}

func (Invoice) TableName() string { return "Invoice" }

type InvoiceLine struct {
	InvoiceLineID int     `gorm:"column:InvoiceLineId;primaryKey;autoIncrement" json:"InvoiceLineId"`
	InvoiceID     int     `gorm:"column:InvoiceId;not null;index" json:"InvoiceId"`
	TrackID       int     `gorm:"column:TrackId;not null;index" json:"TrackId"`
	UnitPrice     float64 `gorm:"column:UnitPrice;type:numeric(10,2);not null" json:"UnitPrice"`
	Quantity      int     `gorm:"column:Quantity;not null" json:"Quantity"`
}

func (InvoiceLine) TableName() string { return "InvoiceLine" }

type InvoiceWithLines struct {
	Invoice
	InvoiceLines []*InvoiceLine `json:"invoice_lines"`
	Customer     *Customer      `json:"customer"`
}
