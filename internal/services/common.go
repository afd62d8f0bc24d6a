package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yungbote/chinook-backend/internal/platform/apierr"
	"github.com/yungbote/chinook-backend/internal/platform/dbctx"
	"github.com/yungbote/chinook-backend/internal/platform/validate"
)

func dbcOf(ctx context.Context) dbctx.Context {
	return dbctx.Context{Ctx: ctx}
}

// checkInput runs the binding tags of in. Handlers validate on bind as well;
// this covers callers that construct inputs directly.
func checkInput(in interface{}) error {
	if err := validate.Struct(in); err != nil {
		return apierr.New(http.StatusBadRequest, "invalid_request", err)
	}
	return nil
}

// loaded turns a repo lookup into a NotFound error when row is nil.
func loaded[T any](row *T, err error, what, code, msg string) (*T, error) {
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", what, err)
	}
	if row == nil {
		return nil, apierr.NotFound(code, msg)
	}
	return row, nil
}

// referenced turns an existence check into a NotFound error.
func referenced(ok bool, err error, what, code, msg string) error {
	if err != nil {
		return fmt.Errorf("check %s: %w", what, err)
	}
	if !ok {
		return apierr.NotFound(code, msg)
	}
	return nil
}

// optionalID treats a zero reference as absent. Generated ids start at 1.
func optionalID(id *int) *int {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
