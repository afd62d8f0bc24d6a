package services

import (
	"context"
	"fmt"

	"github.com/yungbote/chinook-backend/internal/data/repos"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type EmployeeInput struct {
	LastName   string     `json:"LastName" binding:"required,notblank,max=20"`
	FirstName  string     `json:"FirstName" binding:"required,notblank,max=20"`
	Title      *string    `json:"Title" binding:"omitempty,max=30"`
	ReportsTo  *int       `json:"ReportsTo"`
	BirthDate  *Timestamp `json:"BirthDate"`
	HireDate   *Timestamp `json:"HireDate"`
	Address    *string    `json:"Address" binding:"omitempty,max=70"`
	City       *string    `json:"City" binding:"omitempty,max=40"`
	State      *string    `json:"State" binding:"omitempty,max=40"`
	Country    *string    `json:"Country" binding:"omitempty,max=40"`
	PostalCode *string    `json:"PostalCode" binding:"omitempty,max=10"`
	Phone      *string    `json:"Phone" binding:"omitempty,max=24"`
	Fax        *string    `json:"Fax" binding:"omitempty,max=24"`
	Email      *string    `json:"Email" binding:"omitempty,max=60"`
}

func (in EmployeeInput) apply(row *types.Employee) {
	row.LastName = in.LastName
	row.FirstName = in.FirstName
	row.Title = in.Title
	row.ReportsTo = optionalID(in.ReportsTo)
	row.BirthDate = in.BirthDate.ptr()
	row.HireDate = in.HireDate.ptr()
	row.Address = in.Address
	row.City = in.City
	row.State = in.State
	row.Country = in.Country
	row.PostalCode = in.PostalCode
	row.Phone = in.Phone
	row.Fax = in.Fax
	row.Email = in.Email
}

type EmployeeService interface {
	List(ctx context.Context, page repos.Page) ([]*types.Employee, error)
	Get(ctx context.Context, id int) (*types.Employee, error)
	Subordinates(ctx context.Context, id int) ([]*types.Employee, error)
	Create(ctx context.Context, in EmployeeInput) (*types.Employee, error)
	Update(ctx context.Context, id int, in EmployeeInput) (*types.Employee, error)
	Delete(ctx context.Context, id int) (*types.Employee, error)
}

type employeeService struct {
	log       *logger.Logger
	employees repos.EmployeeRepo
}

func NewEmployeeService(baseLog *logger.Logger, employees repos.EmployeeRepo) EmployeeService {
	return &employeeService{
		log:       baseLog.With("service", "EmployeeService"),
		employees: employees,
	}
}

func (s *employeeService) List(ctx context.Context, page repos.Page) ([]*types.Employee, error) {
	rows, err := s.employees.List(dbcOf(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return rows, nil
}

func (s *employeeService) Get(ctx context.Context, id int) (*types.Employee, error) {
	row, err := s.employees.GetByID(dbcOf(ctx), id)
	return loaded(row, err, "employee", "employee_not_found", "Employee not found")
}

func (s *employeeService) Subordinates(ctx context.Context, id int) ([]*types.Employee, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.employees.ListByManager(dbcOf(ctx), id, repos.All)
	if err != nil {
		return nil, fmt.Errorf("list subordinates: %w", err)
	}
	return rows, nil
}

func (s *employeeService) checkManager(ctx context.Context, in EmployeeInput) error {
	managerID := optionalID(in.ReportsTo)
	if managerID == nil {
		return nil
	}
	ok, err := s.employees.Exists(dbcOf(ctx), *managerID)
	return referenced(ok, err, "manager", "manager_not_found", "Manager not found")
}

func (s *employeeService) Create(ctx context.Context, in EmployeeInput) (*types.Employee, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := s.checkManager(ctx, in); err != nil {
		return nil, err
	}
	row := &types.Employee{}
	in.apply(row)
	if err := s.employees.Create(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return row, nil
}

// Update rejects a self-reference before looking the manager up, so the
// result does not depend on whether the id exists.
func (s *employeeService) Update(ctx context.Context, id int, in EmployeeInput) (*types.Employee, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if in.ReportsTo != nil && *in.ReportsTo == id {
		return nil, apierr.InvalidOperation("self_report", "Employee cannot report to themselves")
	}
	if err := s.checkManager(ctx, in); err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.employees.Update(dbcOf(ctx), row); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return row, nil
}

func (s *employeeService) Delete(ctx context.Context, id int) (*types.Employee, error) {
	dbc := dbcOf(ctx)
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.employees.CountByManager(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("count subordinates: %w", err)
	}
	if n > 0 {
		return nil, apierr.InvalidOperation("employee_has_subordinates", "Cannot delete employee with subordinates. Reassign subordinates first.")
	}
	if err := s.employees.Delete(dbc, row); err != nil {
		return nil, fmt.Errorf("delete employee: %w", err)
	}
	return row, nil
}
