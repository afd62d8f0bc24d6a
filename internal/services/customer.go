package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type CustomerInput struct {
	FirstName    string  `json:"FirstName" binding:"required,notblank,max=40"`
	LastName     string  `json:"LastName" binding:"required,notblank,max=20"`
	Company      *string `json:"Company" binding:"omitempty,max=80"`
	Address      *string `json:"Address" binding:"omitempty,max=70"`
	City         *string `json:"City" binding:"omitempty,max=40"`
	State        *string `json:"State" binding:"omitempty,max=40"`
	Country      *string `json:"Country" binding:"omitempty,max=40"`
	PostalCode   *string `json:"PostalCode" binding:"omitempty,max=10"`
	Phone        *string `json:"Phone" binding:"omitempty,max=24"`
	Fax          *string `json:"Fax" binding:"omitempty,max=24"`
	Email        string  `json:"Email" binding:"required,notblank,max=60"`
	SupportRepID *int    `json:"SupportRepId"`
}

func (in CustomerInput) apply(row *types.Customer) {
	row.FirstName = in.FirstName
	row.LastName = in.LastName
	row.Company = in.Company
	row.Address = in.Address
	row.City = in.City
	row.State = in.State
	row.Country = in.Country
	row.PostalCode = in.PostalCode
	row.Phone = in.Phone
	row.Fax = in.Fax
	row.Email = in.Email
	row.SupportRepID = optionalID(in.SupportRepID)
}

type CustomerService interface {
	List(ctx context.Context, page repos.Page) ([]*types.Customer, error)
	Search(ctx context.Context, query string) ([]*types.Customer, error)
	Get(ctx context.Context, id int) (*types.Customer, error)
	GetWithInvoices(ctx context.Context, id int) (*types.CustomerWithInvoices, error)
	Create(ctx context.Context, in CustomerInput) (*types.Customer, error)
	Update(ctx context.Context, id int, in CustomerInput) (*types.Customer, error)
	Delete(ctx context.Context, id int) (*types.Customer, error)
}

type customerService struct {
	log       *logger.Logger
	customers repos.CustomerRepo
	employees repos.EmployeeRepo
	invoices  repos.InvoiceRepo
}

func NewCustomerService(
	baseLog *logger.Logger,
	customers repos.CustomerRepo,
	employees repos.EmployeeRepo,
	invoices repos.InvoiceRepo,
) CustomerService {
	return &customerService{
		log:       baseLog.With("service", "CustomerService"),
		customers: customers,
		employees: employees,
		invoices:  invoices,
	}
}

func (s *customerService) List(ctx context.Context, page repos.Page) ([]*types.Customer, error) {
	rows, err := s.customers.List(dbcOf(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return rows, nil
}

// Search returns customers whose first name, last name, email or company
// contains query, ignoring case.
func (s *customerService) Search(ctx context.Context, query string) ([]*types.Customer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apierr.InvalidOperation("invalid_query", "Search query must not be empty")
	}
	rows, err := s.customers.Search(dbcOf(ctx), query, repos.All)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return rows, nil
}

func (s *customerService) Get(ctx context.Context, id int) (*types.Customer, error) {
	row, err := s.customers.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "customer", "customer_not_found", "Customer not found")
}

func (s *customerService) GetWithInvoices(ctx context.Context, id int) (*types.CustomerWithInvoices, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.ListByCustomer(dbcOf(ctx), id, repos.All)
	if err != nil {
		return nil, fmt.Errorf("list customer invoices: %w", err)
	}
	return &types.CustomerWithInvoices{Customer: *c, Invoices: invoices}, nil
}

func (s *customerService) checkSupportRep(ctx context.Context, in CustomerInput) error {
	repID := optionalID(in.SupportRepID)
	if repID == nil {
		return nil
	}
	ok, err := s.employees.Exists(dbcOf(ctx), *repID)
	return referenced(ok, err, "support rep", "support_rep_not_found", "Support representative not found")
}

func (s *customerService) Create(ctx context.Context, in CustomerInput) (*types.Customer, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkSupportRep(ctx, in); err != nil {
		return nil, err
	}
	row := &types.Customer{}
	in.apply(row)
	if err := s.customers.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	s.log.Debug("Customer created", "customer_id", row.CustomerID, "email", row.Email)
	return row, nil
}

func (s *customerService) Update(ctx context.Context, id int, in CustomerInput) (*types.Customer, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkSupportRep(ctx, in); err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.customers.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return row, nil
}

func (s *customerService) Delete(ctx context.Context, id int) (*types.Customer, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Delete(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("delete customer: %w", err)
	}
	return row, nil
}
