package sales

const (
	colEmployeeID    = "EmployeeId"
	colReportsTo     = "ReportsTo"
	colCustomerID    = "CustomerId"
	colInvoiceID     = "InvoiceId"
	colInvoiceLineID = "InvoiceLineId"
	colFirstName     = "FirstName"
	colLastName      = "LastName"
	colEmail         = "Email"
	colCompany       = "Company"
	colTotal         = "Total"
)
