package sales

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type InvoiceLineRepo interface {
	ListByInvoice(dbc dbctx.Context, invoiceID int, page crud.Page) ([]*types.InvoiceLine, error)
	GetByID(dbc dbctx.Context, id int) (*types.InvoiceLine, error)
	Create(dbc dbctx.Context, row *types.InvoiceLine) error
}

type invoiceLineRepo struct {
	crud.Table[types.InvoiceLine]
	log *logger.Logger
}

func NewInvoiceLineRepo(db *gorm.DB, baseLog *logger.Logger) InvoiceLineRepo {
	return &invoiceLineRepo{
		Table: crud.NewTable[types.InvoiceLine](db, colInvoiceLineID),
		log:   baseLog.With("repo", "InvoiceLineRepo"),
	}
}

func (r *invoiceLineRepo) ListByInvoice(dbc dbctx.Context, invoiceID int, page crud.Page) ([]*types.InvoiceLine, error) {
	return r.Table.List(dbc, page, crud.Eq(colInvoiceID, invoiceID))
}
