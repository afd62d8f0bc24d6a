package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/observability"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type InvoiceInput struct {
	CustomerID        *int       `json:"CustomerId" binding:"required"`
	InvoiceDate       *Timestamp `json:"InvoiceDate" binding:"required"`
	BillingAddress    *string    `json:"BillingAddress" binding:"omitempty,max=70"`
	BillingCity       *string    `json:"BillingCity" binding:"omitempty,max=40"`
	BillingState      *string    `json:"BillingState" binding:"omitempty,max=40"`
	BillingCountry    *string    `json:"BillingCountry" binding:"omitempty,max=40"`
	BillingPostalCode *string    `json:"BillingPostalCode" binding:"omitempty,max=10"`
	Total             *float64   `json:"Total" binding:"required,gte=0"`
}

func (in InvoiceInput) apply(row *types.Invoice) {
	row.CustomerID = deref(in.CustomerID)
	if in.InvoiceDate != nil {
		row.InvoiceDate = in.InvoiceDate.Time
	}
	row.BillingAddress = in.BillingAddress
	row.BillingCity = in.BillingCity
	row.BillingState = in.BillingState
	row.BillingCountry = in.BillingCountry
	row.BillingPostalCode = in.BillingPostalCode
	row.Total = deref(in.Total)
}

type InvoiceLineInput struct {
	InvoiceID *int     `json:"InvoiceId" binding:"required"`
	TrackID   *int     `json:"TrackId" binding:"required"`
	UnitPrice *float64 `json:"UnitPrice" binding:"required,gte=0"`
	Quantity  *int     `json:"Quantity" binding:"required,gte=1"`
}

type InvoiceService interface {
	List(ctx context.Context, page repos.Page) ([]*types.Invoice, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*types.Invoice, error)
	Get(ctx context.Context, id int) (*types.InvoiceWithLines, error)
	Create(ctx context.Context, in InvoiceInput) (*types.Invoice, error)
	Update(ctx context.Context, id int, in InvoiceInput) (*types.Invoice, error)
	Delete(ctx context.Context, id int) (*types.Invoice, error)

	Lines(ctx context.Context, id int) ([]*types.InvoiceLine, error)
	AddLine(ctx context.Context, id int, in InvoiceLineInput) (*types.InvoiceLine, error)
}

type invoiceService struct {
	db        *gorm.DB
	log       *logger.Logger
	invoices  repos.InvoiceRepo
	lines     repos.InvoiceLineRepo
	customers repos.CustomerRepo
	tracks    repos.TrackRepo
}

func NewInvoiceService(
	db *gorm.DB,
	baseLog *logger.Logger,
	invoices repos.InvoiceRepo,
	lines repos.InvoiceLineRepo,
	customers repos.CustomerRepo,
	tracks repos.TrackRepo,
) InvoiceService {
	return &invoiceService{
		db:        db,
		log:       baseLog.With("service", "InvoiceService"),
		invoices:  invoices,
		lines:     lines,
		customers: customers,
		tracks:    tracks,
	}
}

func (s *invoiceService) List(ctx context.Context, page repos.Page) ([]*types.Invoice, error) {
	rows, err := s.invoices.List(dbcOf(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return rows, nil
}

func (s *invoiceService) ListByCustomer(ctx context.Context, customerID int) ([]*types.Invoice, error) {
	dbc := dbcOf(ctx)
	ok, err := s.customers.Exists(dbc, customerID)
	if err := referenced(ok, err, "customer", "customer_not_found", "Customer not found"); err != nil {
		return nil, err
	}
	rows, err := s.invoices.ListByCustomer(dbc, customerID, repos.All)
	if err != nil {
		return nil, fmt.Errorf("list customer invoices: %w", err)
	}
	return rows, nil
}

// Get returns the invoice with its lines and customer.
func (s *invoiceService) Get(ctx context.Context, id int) (*types.InvoiceWithLines, error) {
	dbc := dbcOf(ctx)
	inv, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := s.lines.ListByInvoice(dbc, id, repos.All)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	customer, err := s.customers.GetByID(dbc, inv.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("load invoice customer: %w", err)
	}
	return &types.InvoiceWithLines{Invoice: *inv, InvoiceLines: lines, Customer: customer}, nil
}

func (s *invoiceService) get(ctx context.Context, id int) (*types.Invoice, error) {
	row, err := s.invoices.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "invoice", "invoice_not_found", "Invoice not found")
}

func (s *invoiceService) checkCustomer(ctx context.Context, in InvoiceInput) error {
	ok, err := s.customers.Exists(dbcOf(ctx), deref(in.CustomerID))
	return referenced(ok, err, "customer", "customer_not_found", "Customer not found")
}

func (s *invoiceService) Create(ctx context.Context, in InvoiceInput) (*types.Invoice, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkCustomer(ctx, in); err != nil {
		return nil, err
	}
	row := &types.Invoice{}
	in.apply(row)
	if err := s.invoices.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return row, nil
}

func (s *invoiceService) Update(ctx context.Context, id int, in InvoiceInput) (*types.Invoice, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkCustomer(ctx, in); err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.invoices.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return row, nil
}

func (s *invoiceService) Delete(ctx context.Context, id int) (*types.Invoice, error) {
	row, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.invoices.Delete(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("delete invoice: %w", err)
	}
	return row, nil
}

func (s *invoiceService) Lines(ctx context.Context, id int) ([]*types.InvoiceLine, error) {
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.lines.ListByInvoice(dbcOf(ctx), id, repos.All)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	return rows, nil
}

// AddLine inserts a line and rewrites the invoice total in one transaction.
func (s *invoiceService) AddLine(ctx context.Context, id int, in InvoiceLineInput) (*types.InvoiceLine, error) {
	dbc := dbcOf(ctx)
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if deref(in.InvoiceID) != id {
		return nil, apierr.InvalidOperation("invoice_id_mismatch", "Invoice ID in path does not match Invoice ID in request body")
	}
	ok, err := s.tracks.Exists(dbc, deref(in.TrackID))
	if err := referenced(ok, err, "track", "track_not_found", "Track not found"); err != nil {
		return nil, err
	}

	line := &types.InvoiceLine{
		InvoiceID: id,
		TrackID:   deref(in.TrackID),
		UnitPrice: deref(in.UnitPrice),
		Quantity:  deref(in.Quantity),
	}
	var total decimal.Decimal
	err = dbc.DB(s.db).Transaction(func(tx *gorm.DB) error {
		txc := dbc.WithTx(tx)
		if err := s.lines.Create(txc, line); err != nil {
			return fmt.Errorf("create invoice line: %w", err)
		}
		lines, err := s.lines.ListByInvoice(txc, id, repos.All)
		if err != nil {
			return fmt.Errorf("list invoice lines: %w", err)
		}
		total = InvoiceTotal(lines)
		if err := s.invoices.UpdateTotal(txc, id, total.InexactFloat64()); err != nil {
			return fmt.Errorf("update invoice total: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	observability.Current().ObserveInvoiceTotal(total.InexactFloat64())
	s.log.Debug("Invoice line added", "invoice_id", id, "invoice_line_id", line.InvoiceLineID, "total", total.String())
	return line, nil
}

// InvoiceTotal sums UnitPrice x Quantity over lines in decimal arithmetic.
func InvoiceTotal(lines []*types.InvoiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l == nil {
			continue
		}
		total = total.Add(decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
