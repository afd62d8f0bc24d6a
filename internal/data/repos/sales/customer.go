package sales

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type CustomerRepo interface {
	List(dbc dbctx.Context, page crud.Page) ([]*types.Customer, error)
	Search(dbc dbctx.Context, query string, page crud.Page) ([]*types.Customer, error)

	GetByID(dbc dbctx.Context, id int) (*types.Customer, error)
	Exists(dbc dbctx.Context, id int) (bool, error)

	Create(dbc dbctx.Context, row *types.Customer) error
	Update(dbc dbctx.Context, row *types.Customer) error
	Delete(dbc dbctx.Context, row *types.Customer) error
}

type customerRepo struct {
	crud.Table[types.Customer]
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{
		Table: crud.NewTable[types.Customer](db, colCustomerID),
		log:   baseLog.With("repo", "CustomerRepo"),
	}
}

func (r *customerRepo) List(dbc dbctx.Context, page crud.Page) ([]*types.Customer, error) {
	return r.Table.List(dbc, page)
}

// Search matches query against first name, last name, email or company.
func (r *customerRepo) Search(dbc dbctx.Context, query string, page crud.Page) ([]*types.Customer, error) {
	r.log.Debug("Customer search", "search_query", query)
	return r.Table.List(dbc, page, crud.ContainsFold(query, colFirstName, colLastName, colEmail, colCompany))
}
