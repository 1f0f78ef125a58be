package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"racha/internal/blob"
	"racha/internal/core"
	"racha/internal/store"
)

func newTestLedger(t *testing.T) (*Ledger, blob.Store) {
	t.Helper()
	blobs := blob.NewMemory()
	st := store.New(blobs)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return New(st, nil), blobs
}

func TestAddPersonAssignsID(t *testing.T) {
	svc, _ := newTestLedger(t)
	ctx := context.Background()

	p, err := svc.AddPerson(ctx, core.Person{Name: "Ana", Salary: 1500, Active: true})
	if err != nil {
		t.Fatalf("add person: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("person id not assigned")
	}

	q, err := svc.AddPerson(ctx, core.Person{Name: "Bruno", Active: true})
	if err != nil {
		t.Fatalf("add second person: %v", err)
	}
	if q.ID == p.ID {
		t.Fatal("ids must be unique")
	}
}

func TestAddPersonValidates(t *testing.T) {
	svc, _ := newTestLedger(t)

	_, err := svc.AddPerson(context.Background(), core.Person{Name: "   "})
	if !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
	if len(svc.People()) != 0 {
		t.Fatal("invalid person must not be stored")
	}
}

func TestSamePersonPaymentRejected(t *testing.T) {
	svc, blobs := newTestLedger(t)
	ctx := context.Background()

	p, _ := svc.AddPerson(ctx, core.Person{Name: "Ana", Active: true})
	before, _, _ := blobs.Get(ctx, store.DefaultKey)

	_, err := svc.AddPayment(ctx, core.Payment{FromID: p.ID, ToID: p.ID, Amount: 10, Date: time.Now()})
	if !errors.Is(err, core.ErrSamePerson) {
		t.Fatalf("err = %v, want ErrSamePerson", err)
	}
	if len(svc.Payments()) != 0 {
		t.Fatal("rejected payment must not be stored")
	}
	after, _, _ := blobs.Get(ctx, store.DefaultKey)
	if string(before) != string(after) {
		t.Fatal("rejected payment must not touch persistence")
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc, _ := newTestLedger(t)
	ctx := context.Background()

	if err := svc.UpdatePerson(ctx, core.Person{ID: 999, Name: "ghost"}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("update person err = %v", err)
	}
	if err := svc.DeleteExpense(ctx, 999); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("delete expense err = %v", err)
	}
	if err := svc.DeleteCategory(ctx, 999); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("delete category err = %v", err)
	}
}

func TestSetDivisionMode(t *testing.T) {
	svc, _ := newTestLedger(t)
	ctx := context.Background()

	if err := svc.SetDivisionMode(ctx, core.DivideProportional); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if svc.Mode() != core.DivideProportional {
		t.Fatalf("mode = %q", svc.Mode())
	}
	if err := svc.SetDivisionMode(ctx, "weighted"); !errors.Is(err, core.ErrInvalidMode) {
		t.Fatalf("err = %v, want ErrInvalidMode", err)
	}
	if svc.Mode() != core.DivideProportional {
		t.Fatal("invalid mode must not change current mode")
	}
}

func TestBalancesFlow(t *testing.T) {
	svc, _ := newTestLedger(t)
	ctx := context.Background()

	ana, _ := svc.AddPerson(ctx, core.Person{Name: "Ana", Active: true})
	bruno, _ := svc.AddPerson(ctx, core.Person{Name: "Bruno", Active: true})

	if _, err := svc.AddExpense(ctx, core.Expense{Description: "market", Amount: 100, PaidBy: ana.ID, Date: time.Now()}); err != nil {
		t.Fatalf("add expense: %v", err)
	}

	balances := svc.Balances()
	if got := balances[ana.ID].Balance; got != 50 {
		t.Fatalf("ana balance = %v, want 50", got)
	}
	if got := balances[bruno.ID].Balance; got != -50 {
		t.Fatalf("bruno balance = %v, want -50", got)
	}

	if _, err := svc.AddPayment(ctx, core.Payment{FromID: bruno.ID, ToID: ana.ID, Amount: 50, Date: time.Now()}); err != nil {
		t.Fatalf("add payment: %v", err)
	}
	balances = svc.Balances()
	if !balances[ana.ID].Settled() || !balances[bruno.ID].Settled() {
		t.Fatalf("balances must settle after payment: %+v", balances)
	}
}

func TestCategoryDeletionKeepsBalances(t *testing.T) {
	svc, _ := newTestLedger(t)
	ctx := context.Background()

	ana, _ := svc.AddPerson(ctx, core.Person{Name: "Ana", Active: true})
	cat, _ := svc.AddCategory(ctx, core.Category{Name: "Trips"})
	svc.AddPerson(ctx, core.Person{Name: "Bruno", Active: true})
	if _, err := svc.AddExpense(ctx, core.Expense{Description: "hotel", Amount: 80, PaidBy: ana.ID, CategoryID: cat.ID, Date: time.Now()}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	before := svc.Balances()

	if err := svc.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	after := svc.Balances()
	for id, b := range before {
		if after[id] != b {
			t.Fatalf("balance for %d changed after category delete: %+v vs %+v", id, b, after[id])
		}
	}
	if svc.CategoryLabel(cat.ID) != "Uncategorized" {
		t.Fatalf("dangling category label = %q", svc.CategoryLabel(cat.ID))
	}
}

func TestLabels(t *testing.T) {
	svc, _ := newTestLedger(t)
	ctx := context.Background()

	ana, _ := svc.AddPerson(ctx, core.Person{Name: "Ana", Active: true})
	if svc.PersonLabel(ana.ID) != "Ana" {
		t.Fatalf("label = %q", svc.PersonLabel(ana.ID))
	}
	if svc.PersonLabel(12345) != "Unknown" {
		t.Fatalf("unknown label = %q", svc.PersonLabel(12345))
	}
}

type failingStore struct{ fail bool }

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (f *failingStore) Set(ctx context.Context, key string, data []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestSaveFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	blobs := &failingStore{}
	st := store.New(blobs)
	if err := st.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	svc := New(st, nil)

	blobs.fail = true
	_, err := svc.AddPerson(ctx, core.Person{Name: "Ana", Active: true})
	if err == nil {
		t.Fatal("expected persistence error")
	}
	// The in-memory mutation is kept, only persistence failed.
	if len(svc.People()) != 1 {
		t.Fatalf("people = %+v", svc.People())
	}
}

func TestSummary(t *testing.T) {
	svc, _ := newTestLedger(t)
	ctx := context.Background()

	ana, _ := svc.AddPerson(ctx, core.Person{Name: "Ana", Active: true})
	svc.AddPerson(ctx, core.Person{Name: "Bruno", Active: false})
	svc.AddExpense(ctx, core.Expense{Description: "a", Amount: 30, PaidBy: ana.ID, Date: time.Now()})
	svc.AddExpense(ctx, core.Expense{Description: "b", Amount: 20, PaidBy: ana.ID, Date: time.Now()})

	sum := svc.Summary()
	if sum.TotalExpenses != 50 {
		t.Fatalf("total expenses = %v", sum.TotalExpenses)
	}
	if sum.ActivePeople != 1 {
		t.Fatalf("active people = %d", sum.ActivePeople)
	}
	if sum.Categories != len(store.DefaultCategories) {
		t.Fatalf("categories = %d", sum.Categories)
	}
}
