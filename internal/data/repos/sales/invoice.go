package sales

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type InvoiceRepo interface {
	List(dbc dbctx.Context, page crud.Page) ([]*types.Invoice, error)
	ListByCustomer(dbc dbctx.Context, customerID int, page crud.Page) ([]*types.Invoice, error)

	GetByID(dbc dbctx.Context, id int) (*types.Invoice, error)
	Exists(dbc dbctx.Context, id int) (bool, error)

	Create(dbc dbctx.Context, row *types.Invoice) error
	Update(dbc dbctx.Context, row *types.Invoice) error
	UpdateTotal(dbc dbctx.Context, id int, total float64) error
	Delete(dbc dbctx.Context, row *types.Invoice) error
}

type invoiceRepo struct {
	crud.Table[types.Invoice]
	db  *gorm.DB
	log *logger.Logger
}

func NewInvoiceRepo(db *gorm.DB, baseLog *logger.Logger) InvoiceRepo {
	return &invoiceRepo{
		Table: crud.NewTable[types.Invoice](db, colInvoiceID),
		db:    db,
		log:   baseLog.With("repo", "InvoiceRepo"),
	}
}

func (r *invoiceRepo) List(dbc dbctx.Context, page crud.Page) ([]*types.Invoice, error) {
	return r.Table.List(dbc, page)
}

func (r *invoiceRepo) ListByCustomer(dbc dbctx.Context, customerID int, page crud.Page) ([]*types.Invoice, error) {
	return r.Table.List(dbc, page, crud.Eq(colCustomerID, customerID))
}

// UpdateTotal overwrites only the Total column.
func (r *invoiceRepo) UpdateTotal(dbc dbctx.Context, id int, total float64) error {
	return dbc.DB(r.db).
		Model(&types.Invoice{}).
		Clauses(clause.Where{Exprs: []clause.Expression{crud.Eq(colInvoiceID, id)}}).
		UpdateColumn(colTotal, total).Error
}
