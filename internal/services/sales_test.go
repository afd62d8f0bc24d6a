package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/pkg/pointers"
)

func TestEmployeeSelfReport(t *testing.T) {
	f := newFixture(t)

	boss, err := f.employees.Create(f.ctx, EmployeeInput{FirstName: "Andrew", LastName: "Adams"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = f.employees.Update(f.ctx, boss.EmployeeID, EmployeeInput{
		FirstName: "Andrew",
		LastName:  "Adams",
		ReportsTo: &boss.EmployeeID,
	})
	requireInvalid(t, err, "self_report")

	_, err = f.employees.Update(f.ctx, 9999, EmployeeInput{FirstName: "x", LastName: "y", ReportsTo: pointers.Int(9999)})
	requireNotFound(t, err, "employee_not_found")

	_, err = f.employees.Create(f.ctx, EmployeeInput{FirstName: "x", LastName: "y", ReportsTo: pointers.Int(9999)})
	requireNotFound(t, err, "manager_not_found")

	_, err = f.employees.Update(f.ctx, boss.EmployeeID, EmployeeInput{FirstName: "x", LastName: "y", ReportsTo: pointers.Int(9999)})
	requireNotFound(t, err, "manager_not_found")
}

func TestEmployeeSubordinates(t *testing.T) {
	f := newFixture(t)

	hire := NewTimestamp(time.Date(2002, 8, 14, 0, 0, 0, 0, time.UTC))
	boss, _ := f.employees.Create(f.ctx, EmployeeInput{FirstName: "Andrew", LastName: "Adams", HireDate: hire})
	report, err := f.employees.Create(f.ctx, EmployeeInput{FirstName: "Nancy", LastName: "Edwards", ReportsTo: &boss.EmployeeID})
	if err != nil {
		t.Fatalf("Create report: %v", err)
	}

	subs, err := f.employees.Subordinates(f.ctx, boss.EmployeeID)
	if err != nil || len(subs) != 1 || subs[0].EmployeeID != report.EmployeeID {
		t.Fatalf("Subordinates: err=%v subs=%+v", err, subs)
	}
	_, err = f.employees.Subordinates(f.ctx, 9999)
	requireNotFound(t, err, "employee_not_found")

	_, err = f.employees.Delete(f.ctx, boss.EmployeeID)
	requireInvalid(t, err, "employee_has_subordinates")

	if _, err := f.employees.Delete(f.ctx, report.EmployeeID); err != nil {
		t.Fatalf("Delete leaf: %v", err)
	}
	deleted, err := f.employees.Delete(f.ctx, boss.EmployeeID)
	if err != nil {
		t.Fatalf("Delete boss after reassignment: %v", err)
	}
	if deleted.HireDate == nil || !deleted.HireDate.Equal(hire.Time) {
		t.Fatalf("Delete returned %+v", deleted)
	}
}

func TestCustomerSupportRepAndSearch(t *testing.T) {
	f := newFixture(t)

	_, err := f.customers.Create(f.ctx, CustomerInput{
		FirstName:    "Luís",
		LastName:     "Gonçalves",
		Email:        "luisg@embraer.com.br",
		SupportRepID: pointers.Int(3),
	})
	requireNotFound(t, err, "support_rep_not_found")

	rep, _ := f.employees.Create(f.ctx, EmployeeInput{FirstName: "Jane", LastName: "Peacock"})
	luis, err := f.customers.Create(f.ctx, CustomerInput{
		FirstName:    "Luís",
		LastName:     "Gonçalves",
		Company:      pointers.String("Embraer - Empresa Brasileira de Aeronáutica S.A."),
		Email:        "luisg@embraer.com.br",
		SupportRepID: &rep.EmployeeID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := f.customers.Create(f.ctx, CustomerInput{FirstName: "Frank", LastName: "Harris", Email: "fharris@google.com", Company: pointers.String("Google Inc.")}); err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if _, err := f.customers.Create(f.ctx, CustomerInput{FirstName: "Jack", LastName: "Smith", Email: "jacksmith@microsoft.com"}); err != nil {
		t.Fatalf("Create third: %v", err)
	}

	rows, err := f.customers.Search(f.ctx, "EMBRAER")
	if err != nil || len(rows) != 1 || rows[0].CustomerID != luis.CustomerID {
		t.Fatalf("Search company/email: err=%v rows=%+v", err, rows)
	}
	// "go" hits Gonçalves by last name and Harris by email and company.
	rows, err = f.customers.Search(f.ctx, "go")
	if err != nil || len(rows) != 2 {
		t.Fatalf("Search union: err=%v len=%d", err, len(rows))
	}
	rows, err = f.customers.Search(f.ctx, "microsoft")
	if err != nil || len(rows) != 1 {
		t.Fatalf("Search email: err=%v len=%d", err, len(rows))
	}
	_, err = f.customers.Search(f.ctx, "")
	requireInvalid(t, err, "invalid_query")

	_, err = f.customers.Update(f.ctx, luis.CustomerID, CustomerInput{
		FirstName:    "Luís",
		LastName:     "Gonçalves",
		Email:        "luisg@embraer.com.br",
		SupportRepID: pointers.Int(9999),
	})
	requireNotFound(t, err, "support_rep_not_found")

	with, err := f.customers.GetWithInvoices(f.ctx, luis.CustomerID)
	if err != nil || with.Invoices == nil || len(with.Invoices) != 0 {
		t.Fatalf("GetWithInvoices: err=%v got=%+v", err, with)
	}
}

func seedInvoice(t *testing.T, f *fixture) (*types.Invoice, int) {
	t.Helper()
	c, err := f.customers.Create(f.ctx, CustomerInput{FirstName: "Leonie", LastName: "Köhler", Email: "leonekohler@surfeu.de"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	inv, err := f.invoices.Create(f.ctx, InvoiceInput{
		CustomerID:  &c.CustomerID,
		InvoiceDate: NewTimestamp(time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)),
		Total:       pointers.Float64(0),
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	return inv, c.CustomerID
}

func TestInvoiceLineRecomputesTotal(t *testing.T) {
	f := newFixture(t)
	mtID := seedMediaType(t, f)
	inv, _ := seedInvoice(t, f)
	tr, _ := f.tracks.Create(f.ctx, trackInput("Balls to the Wall", mtID))

	lines := []InvoiceLineInput{
		{InvoiceID: &inv.InvoiceID, TrackID: &tr.TrackID, UnitPrice: pointers.Float64(0.99), Quantity: pointers.Int(3)},
		{InvoiceID: &inv.InvoiceID, TrackID: &tr.TrackID, UnitPrice: pointers.Float64(1.99), Quantity: pointers.Int(2)},
		{InvoiceID: &inv.InvoiceID, TrackID: &tr.TrackID, UnitPrice: pointers.Float64(0.1), Quantity: pointers.Int(1)},
	}
	for _, in := range lines {
		line, err := f.invoices.AddLine(f.ctx, inv.InvoiceID, in)
		if err != nil {
			t.Fatalf("AddLine: %v", err)
		}
		if line.InvoiceLineID == 0 || line.InvoiceID != inv.InvoiceID {
			t.Fatalf("AddLine returned %+v", line)
		}
	}

	got, err := f.invoices.Get(f.ctx, inv.InvoiceID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	// 0.99*3 + 1.99*2 + 0.10 = 7.05
	if got.Total != 7.05 {
		t.Fatalf("Total: got %v, want 7.05", got.Total)
	}
	if len(got.InvoiceLines) != 3 || got.Customer == nil {
		t.Fatalf("Get detail: %+v", got)
	}
}

func TestInvoiceLineChecks(t *testing.T) {
	f := newFixture(t)
	mtID := seedMediaType(t, f)
	inv, _ := seedInvoice(t, f)
	tr, _ := f.tracks.Create(f.ctx, trackInput("Song", mtID))

	in := InvoiceLineInput{InvoiceID: &inv.InvoiceID, TrackID: &tr.TrackID, UnitPrice: pointers.Float64(0.99), Quantity: pointers.Int(1)}

	_, err := f.invoices.AddLine(f.ctx, 9999, in)
	requireNotFound(t, err, "invoice_not_found")

	other := pointers.Int(inv.InvoiceID + 1)
	mismatch := in
	mismatch.InvoiceID = other
	_, err = f.invoices.AddLine(f.ctx, inv.InvoiceID, mismatch)
	requireInvalid(t, err, "invoice_id_mismatch")

	missingTrack := in
	missingTrack.TrackID = pointers.Int(9999)
	_, err = f.invoices.AddLine(f.ctx, inv.InvoiceID, missingTrack)
	requireNotFound(t, err, "track_not_found")

	lines, err := f.invoices.Lines(f.ctx, inv.InvoiceID)
	if err != nil || len(lines) != 0 {
		t.Fatalf("Lines after rejected inserts: err=%v len=%d", err, len(lines))
	}
	_, err = f.invoices.Lines(f.ctx, 9999)
	requireNotFound(t, err, "invoice_not_found")
}

func TestInvoiceCustomerChecks(t *testing.T) {
	f := newFixture(t)
	inv, customerID := seedInvoice(t, f)

	_, err := f.invoices.Create(f.ctx, InvoiceInput{
		CustomerID:  pointers.Int(9999),
		InvoiceDate: NewTimestamp(time.Now()),
		Total:       pointers.Float64(1),
	})
	requireNotFound(t, err, "customer_not_found")

	rows, err := f.invoices.ListByCustomer(f.ctx, customerID)
	if err != nil || len(rows) != 1 || rows[0].InvoiceID != inv.InvoiceID {
		t.Fatalf("ListByCustomer: err=%v rows=%+v", err, rows)
	}
	_, err = f.invoices.ListByCustomer(f.ctx, 9999)
	requireNotFound(t, err, "customer_not_found")

	deleted, err := f.invoices.Delete(f.ctx, inv.InvoiceID)
	if err != nil || deleted.InvoiceID != inv.InvoiceID {
		t.Fatalf("Delete: err=%v got=%+v", err, deleted)
	}
	_, err = f.invoices.Get(f.ctx, inv.InvoiceID)
	requireNotFound(t, err, "invoice_not_found")
}

func TestInvoiceTotal(t *testing.T) {
	lines := []*types.InvoiceLine{
		{UnitPrice: 0.1, Quantity: 3},
		{UnitPrice: 0.2, Quantity: 1},
		nil,
	}
	if got := InvoiceTotal(lines); !got.Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("InvoiceTotal: got %s", got)
	}
	if got := InvoiceTotal(nil); !got.IsZero() {
		t.Fatalf("InvoiceTotal(nil): got %s", got)
	}
}

func TestTimestampLayouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2009-01-01T00:00:00Z"`:      time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC),
		`"2009-01-01T10:30:00"`:       time.Date(2009, 1, 1, 10, 30, 0, 0, time.UTC),
		`"1962-02-18 00:00:00"`:       time.Date(1962, 2, 18, 0, 0, 0, 0, time.UTC),
		`"2002-08-14"`:                time.Date(2002, 8, 14, 0, 0, 0, 0, time.UTC),
		`"2009-01-01T00:00:00+02:00"`: time.Date(2008, 12, 31, 22, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			t.Fatalf("Unmarshal(%s): %v", raw, err)
		}
		if !ts.Equal(want) {
			t.Fatalf("Unmarshal(%s): got %v, want %v", raw, ts.Time, want)
		}
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatalf("expected error for unknown layout")
	}

	var in EmployeeInput
	if err := json.Unmarshal([]byte(`{"FirstName":"a","LastName":"b","BirthDate":null}`), &in); err != nil || in.BirthDate != nil {
		t.Fatalf("null BirthDate: err=%v got=%+v", err, in.BirthDate)
	}
}

func TestZeroReferencesAreAbsent(t *testing.T) {
	f := newFixture(t)

	emp, err := f.employees.Create(f.ctx, EmployeeInput{FirstName: "Andrew", LastName: "Adams", ReportsTo: pointers.Int(0)})
	if err != nil {
		t.Fatalf("Create employee with ReportsTo=0: %v", err)
	}
	if emp.ReportsTo != nil {
		t.Fatalf("ReportsTo = %v, want nil", *emp.ReportsTo)
	}
	emp, err = f.employees.Update(f.ctx, emp.EmployeeID, EmployeeInput{FirstName: "Andrew", LastName: "Adams", ReportsTo: pointers.Int(0)})
	if err != nil || emp.ReportsTo != nil {
		t.Fatalf("Update employee with ReportsTo=0: err=%v row=%+v", err, emp)
	}

	cust, err := f.customers.Create(f.ctx, CustomerInput{FirstName: "Luís", LastName: "Gonçalves", Email: "luisg@embraer.com.br", SupportRepID: pointers.Int(0)})
	if err != nil {
		t.Fatalf("Create customer with SupportRepId=0: %v", err)
	}
	if cust.SupportRepID != nil {
		t.Fatalf("SupportRepId = %v, want nil", *cust.SupportRepID)
	}
}
