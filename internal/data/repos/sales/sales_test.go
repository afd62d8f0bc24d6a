package sales

import (
	"testing"

	"github.com/yungbote/chinook-backend/internal/data/repos/crud"
	"github.com/yungbote/chinook-backend/internal/data/repos/testutil"
	types "github.com/yungbote/chinook-backend/internal/domain"
	"github.com/yungbote/chinook-backend/internal/pkg/pointers"
)

func TestEmployeeRepoManagerTree(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := testutil.DBC(tx)

	repo := NewEmployeeRepo(db, testutil.Logger(t))

	boss := testutil.SeedEmployee(t, tx, "Andrew", "Adams", nil)
	mgr := testutil.SeedEmployee(t, tx, "Nancy", "Edwards", &boss.EmployeeID)
	testutil.SeedEmployee(t, tx, "Jane", "Peacock", &mgr.EmployeeID)
	testutil.SeedEmployee(t, tx, "Margaret", "Park", &mgr.EmployeeID)

	if n, err := repo.CountByManager(dbc, mgr.EmployeeID); err != nil || n != 2 {
		t.Fatalf("CountByManager: err=%v n=%d", err, n)
	}
	rows, err := repo.ListByManager(dbc, boss.EmployeeID, crud.All)
	if err != nil || len(rows) != 1 || rows[0].EmployeeID != mgr.EmployeeID {
		t.Fatalf("ListByManager: err=%v rows=%+v", err, rows)
	}
	if n, err := repo.CountByManager(dbc, 9999); err != nil || n != 0 {
		t.Fatalf("CountByManager unknown: err=%v n=%d", err, n)
	}
}

func TestCustomerRepoSearch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := testutil.DBC(tx)

	repo := NewCustomerRepo(db, testutil.Logger(t))

	testutil.SeedCustomer(t, tx, "Luís", "Gonçalves", "luisg@embraer.com.br", pointers.String("Embraer"))
	testutil.SeedCustomer(t, tx, "Leonie", "Köhler", "leonekohler@surfeu.de", nil)
	testutil.SeedCustomer(t, tx, "François", "Tremblay", "ftremblay@gmail.com", nil)
	testutil.SeedCustomer(t, tx, "Bjørn", "Hansen", "bjorn.hansen@yahoo.no", pointers.String("Surf Co"))
	testutil.SeedCustomer(t, tx, "Élodie", "Fréchette", "efrechette@videotron.ca", nil)

	cases := []struct {
		query string
		want  int
	}{
		{"embraer", 1},  // email and company on one row
		{"surf", 2},     // email of one, company of another
		{"TREMBLAY", 1}, // last name and email
		{"leonie", 1},
		{"Élodie", 1}, // stored text matches itself
		{"Köhler", 1},
		{"nobody", 0},
	}
	for _, tc := range cases {
		rows, err := repo.Search(dbc, tc.query, crud.DefaultPage())
		if err != nil {
			t.Fatalf("Search(%q): %v", tc.query, err)
		}
		if len(rows) != tc.want {
			t.Fatalf("Search(%q): got %d, want %d", tc.query, len(rows), tc.want)
		}
	}
}

func TestInvoiceRepos(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := testutil.DBC(tx)

	invoices := NewInvoiceRepo(db, testutil.Logger(t))
	lines := NewInvoiceLineRepo(db, testutil.Logger(t))

	c1 := testutil.SeedCustomer(t, tx, "A", "One", "a@example.com", nil)
	c2 := testutil.SeedCustomer(t, tx, "B", "Two", "b@example.com", nil)
	mt := testutil.SeedMediaType(t, tx, "MPEG audio file")
	track := testutil.SeedTrack(t, tx, "Song", mt.MediaTypeID, nil, nil)

	inv := testutil.SeedInvoice(t, tx, c1.CustomerID)
	testutil.SeedInvoice(t, tx, c2.CustomerID)
	testutil.SeedInvoice(t, tx, c1.CustomerID)

	rows, err := invoices.ListByCustomer(dbc, c1.CustomerID, crud.All)
	if err != nil || len(rows) != 2 || rows[0].InvoiceID != inv.InvoiceID {
		t.Fatalf("ListByCustomer: err=%v rows=%+v", err, rows)
	}

	line := &types.InvoiceLine{InvoiceID: inv.InvoiceID, TrackID: track.TrackID, UnitPrice: 0.99, Quantity: 2}
	if err := lines.Create(dbc, line); err != nil {
		t.Fatalf("Create line: %v", err)
	}
	if line.InvoiceLineID == 0 {
		t.Fatalf("Create line: no id assigned")
	}
	got, err := lines.ListByInvoice(dbc, inv.InvoiceID, crud.All)
	if err != nil || len(got) != 1 || got[0].Quantity != 2 {
		t.Fatalf("ListByInvoice: err=%v rows=%+v", err, got)
	}

	if err := invoices.UpdateTotal(dbc, inv.InvoiceID, 1.98); err != nil {
		t.Fatalf("UpdateTotal: %v", err)
	}
	reloaded, err := invoices.GetByID(dbc, inv.InvoiceID)
	if err != nil || reloaded == nil || reloaded.Total != 1.98 {
		t.Fatalf("after UpdateTotal: err=%v inv=%+v", err, reloaded)
	}
	if reloaded.CustomerID != c1.CustomerID {
		t.Fatalf("UpdateTotal touched other columns: %+v", reloaded)
	}
}
