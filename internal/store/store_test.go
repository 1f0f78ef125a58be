package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"racha/internal/blob"
	"racha/internal/core"
)

func TestLoadSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemory()
	ledger := New(blobs)

	if err := ledger.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	cats := ledger.Categories()
	if len(cats) != len(DefaultCategories) {
		t.Fatalf("expected %d default categories, got %d", len(DefaultCategories), len(cats))
	}
	for i, c := range cats {
		if c.Name != DefaultCategories[i] {
			t.Fatalf("category %d = %q, want %q", i, c.Name, DefaultCategories[i])
		}
		if c.ID == 0 {
			t.Fatalf("category %q has no id", c.Name)
		}
	}
	seen := map[int64]bool{}
	for _, c := range cats {
		if seen[c.ID] {
			t.Fatalf("duplicate category id %d", c.ID)
		}
		seen[c.ID] = true
	}

	if len(ledger.People()) != 0 || len(ledger.Expenses()) != 0 || len(ledger.Payments()) != 0 {
		t.Fatal("people, expenses and payments must start empty")
	}
	if ledger.Mode() != core.DivideEqual {
		t.Fatalf("mode = %q, want equal", ledger.Mode())
	}

	// Seeding must persist immediately.
	data, ok, err := blobs.Get(ctx, DefaultKey)
	if err != nil || !ok {
		t.Fatalf("expected persisted blob after seeding, ok=%v err=%v", ok, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("persisted blob is not a JSON document: %v", err)
	}
	for _, field := range []string{"people", "categories", "expenses", "payments", "divisionMode"} {
		if _, ok := doc[field]; !ok {
			t.Fatalf("persisted document missing %q", field)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemory()
	ledger := New(blobs)
	if err := ledger.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	date := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	ledger.AddPerson(core.Person{ID: 100, Name: "Ana", Salary: 1000, Active: true})
	ledger.AddPerson(core.Person{ID: 101, Name: "Bruno", Salary: 3000, Active: false})
	ledger.AddExpense(core.Expense{ID: 200, Description: "market", Amount: 84.2, PaidBy: 100, CategoryID: 1, Notes: "weekly", Date: date})
	ledger.AddPayment(core.Payment{ID: 300, FromID: 100, ToID: 101, Amount: 12, Date: date})
	ledger.SetMode(core.DivideProportional)
	if err := ledger.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := New(blobs)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	people := reloaded.People()
	if len(people) != 2 || people[0].Name != "Ana" || people[1].Active {
		t.Fatalf("unexpected people after reload: %+v", people)
	}
	expenses := reloaded.Expenses()
	if len(expenses) != 1 || expenses[0].Notes != "weekly" || !expenses[0].Date.Equal(date) {
		t.Fatalf("unexpected expenses after reload: %+v", expenses)
	}
	if len(reloaded.Payments()) != 1 {
		t.Fatalf("unexpected payments after reload: %+v", reloaded.Payments())
	}
	if reloaded.Mode() != core.DivideProportional {
		t.Fatalf("mode = %q after reload", reloaded.Mode())
	}
}

func TestLoadToleratesPartialDocument(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemory()
	if err := blobs.Set(ctx, DefaultKey, []byte(`{"people":[{"id":1,"name":"A","salary":0,"active":true}]}`)); err != nil {
		t.Fatalf("seed blob: %v", err)
	}

	ledger := New(blobs)
	if err := ledger.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if ledger.Mode() != core.DivideEqual {
		t.Fatalf("missing mode must default to equal, got %q", ledger.Mode())
	}
	if ledger.Categories() == nil || ledger.Expenses() == nil {
		t.Fatal("nil collections must normalize to empty")
	}
	if len(ledger.People()) != 1 {
		t.Fatalf("people = %+v", ledger.People())
	}
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemory()
	_ = blobs.Set(ctx, DefaultKey, []byte(`{not json`))

	ledger := New(blobs)
	if err := ledger.Load(ctx); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNextIDUnique(t *testing.T) {
	ledger := New(blob.NewMemory())

	seen := map[int64]bool{}
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := ledger.NextID()
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestNextIDSkipsPersistedIDs(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemory()
	future := time.Now().Add(time.Hour).UnixMilli()
	state := State{
		People:       []core.Person{{ID: future, Name: "A"}},
		DivisionMode: core.DivideEqual,
	}
	data, _ := json.Marshal(state)
	_ = blobs.Set(ctx, DefaultKey, data)

	ledger := New(blobs)
	if err := ledger.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if id := ledger.NextID(); id <= future {
		t.Fatalf("NextID() = %d, must exceed persisted id %d", id, future)
	}
}

func TestReplaceAndRemove(t *testing.T) {
	ledger := New(blob.NewMemory())

	ledger.AddPerson(core.Person{ID: 1, Name: "A", Salary: 100, Active: true})
	if !ledger.ReplacePerson(core.Person{ID: 1, Name: "A2", Salary: 200, Active: false}) {
		t.Fatal("replace existing person failed")
	}
	if ledger.ReplacePerson(core.Person{ID: 999, Name: "ghost"}) {
		t.Fatal("replace of unknown id must report false")
	}
	p, ok := ledger.Person(1)
	if !ok || p.Name != "A2" || p.Salary != 200 || p.Active {
		t.Fatalf("replaced person = %+v", p)
	}

	if !ledger.RemovePerson(1) {
		t.Fatal("remove existing person failed")
	}
	if ledger.RemovePerson(1) {
		t.Fatal("second remove must report false")
	}

	ledger.AddCategory(core.Category{ID: 2, Name: "Food"})
	ledger.AddExpense(core.Expense{ID: 3, Description: "x", Amount: 5, CategoryID: 2})
	if !ledger.RemoveCategory(2) {
		t.Fatal("remove category failed")
	}
	// No cascade: the expense survives with a dangling category id.
	if len(ledger.Expenses()) != 1 {
		t.Fatal("category removal must not cascade to expenses")
	}
	if _, ok := ledger.Category(2); ok {
		t.Fatal("category still resolvable after removal")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	ledger := New(blob.NewMemory())
	ledger.AddPerson(core.Person{ID: 1, Name: "A", Active: true})

	snap := ledger.Snapshot()
	snap.People[0].Name = "mutated"

	if p, _ := ledger.Person(1); p.Name != "A" {
		t.Fatal("snapshot mutation leaked into the store")
	}
}
