package crud

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
)

const DefaultLimit = 100

// Page is an offset/limit window. A negative Limit means no limit.
type Page struct {
	Skip  int
	Limit int
}

// All selects every matching row.
var All = Page{Skip: 0, Limit: -1}

func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

// Table implements the list/get/create/save/delete operations shared by every
// entity repo. Rows are ordered by the primary key column.
type Table[T any] struct {
	db *gorm.DB
	pk string
}

func NewTable[T any](db *gorm.DB, pk string) Table[T] {
	return Table[T]{db: db, pk: pk}
}

func (t Table[T]) PrimaryKey() string { return t.pk }

func (t Table[T]) List(dbc dbctx.Context, page Page, where ...clause.Expression) ([]*T, error) {
	out := []*T{}
	if page.Limit == 0 {
		return out, nil
	}
	q := t.scoped(dbc, where)
	q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: t.pk}})
	if page.Skip > 0 {
		q = q.Offset(page.Skip)
	}
	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns nil, nil when no row has the given key.
func (t Table[T]) GetByID(dbc dbctx.Context, id int) (*T, error) {
	var rows []*T
	err := dbc.DB(t.db).
		Clauses(clause.Where{Exprs: []clause.Expression{Eq(t.pk, id)}}).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// GetByIDs returns the rows found for ids, in key order. Missing ids are skipped.
func (t Table[T]) GetByIDs(dbc dbctx.Context, ids []int) ([]*T, error) {
	out := []*T{}
	if len(ids) == 0 {
		return out, nil
	}
	vals := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		vals = append(vals, id)
	}
	err := dbc.DB(t.db).
		Clauses(clause.Where{Exprs: []clause.Expression{clause.IN{Column: clause.Column{Name: t.pk}, Values: vals}}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: t.pk}}).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (t Table[T]) Exists(dbc dbctx.Context, id int) (bool, error) {
	n, err := t.Count(dbc, Eq(t.pk, id))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t Table[T]) Count(dbc dbctx.Context, where ...clause.Expression) (int64, error) {
	var n int64
	if err := t.scoped(dbc, where).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (t Table[T]) Create(dbc dbctx.Context, row *T) error {
	return dbc.DB(t.db).Create(row).Error
}

// Update writes every column of row, including zero values.
func (t Table[T]) Update(dbc dbctx.Context, row *T) error {
	return dbc.DB(t.db).Save(row).Error
}

// Delete removes row by its primary key.
func (t Table[T]) Delete(dbc dbctx.Context, row *T) error {
	return dbc.DB(t.db).Delete(row).Error
}

func (t Table[T]) scoped(dbc dbctx.Context, where []clause.Expression) *gorm.DB {
	q := dbc.DB(t.db).Model(new(T))
	if len(where) > 0 {
		q = q.Clauses(clause.Where{Exprs: where})
	}
	return q
}

// Eq matches rows whose column equals v.
func Eq(column string, v interface{}) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: column}, Value: v}
}

// ContainsFold matches rows where any of columns contains term, ignoring case.
// Both sides are folded by the database's LOWER so stored text always matches
// itself. LIKE wildcards in term are matched literally.
func ContainsFold(term string, columns ...string) clause.Expression {
	pattern := "%" + escapeLike(term) + "%"
	parts := make([]string, 0, len(columns))
	vars := make([]interface{}, 0, 2*len(columns))
	for _, col := range columns {
		parts = append(parts, "LOWER(?) LIKE LOWER(?) ESCAPE '\\'")
		vars = append(vars, clause.Column{Name: col}, pattern)
	}
	return clause.Expr{SQL: "(" + strings.Join(parts, " OR ") + ")", Vars: vars}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
