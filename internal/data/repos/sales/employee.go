package sales

import (
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type EmployeeRepo interface {
	List(dbc dbctx.Context, page crud.Page) ([]*types.Employee, error)
	ListByManager(dbc dbctx.Context, managerID int, page crud.Page) ([]*types.Employee, error)
	CountByManager(dbc dbctx.Context, managerID int) (int64, error)

	GetByID(dbc dbctx.Context, id int) (*types.Employee, error)
	Exists(dbc dbctx.Context, id int) (bool, error)

	Create(dbc dbctx.Context, row *types.Employee) error
	Update(dbc dbctx.Context, row *types.Employee) error
	Delete(dbc dbctx.Context, row *types.Employee) error
}

type employeeRepo struct {
	crud.Table[types.Employee]
	log *logger.Logger
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return &employeeRepo{
		Table: crud.NewTable[types.Employee](db, colEmployeeID),
		log:   baseLog.With("repo", "EmployeeRepo"),
	}
}

func (r *employeeRepo) List(dbc dbctx.Context, page crud.Page) ([]*types.Employee, error) {
	return r.Table.List(dbc, page)
}

// ListByManager returns the direct reports of managerID.
func (r *employeeRepo) ListByManager(dbc dbctx.Context, managerID int, page crud.Page) ([]*types.Employee, error) {
	return r.Table.List(dbc, page, crud.Eq(colReportsTo, managerID))
}

func (r *employeeRepo) CountByManager(dbc dbctx.Context, managerID int) (int64, error) {
	return r.Table.Count(dbc, crud.Eq(colReportsTo, managerID))
}
