// Package store holds the in-memory ledger state and its load/save
// lifecycle over a blob backend. The store performs no validation;
// callers validate before mutating. Every save overwrites the whole
// persisted document.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"racha/internal/blob"
	"racha/internal/core"
)

// DefaultKey is the blob key the whole ledger document lives under.
const DefaultKey = "ledger"

// DefaultCategories seed a fresh ledger the first time it loads.
var DefaultCategories = []string{"Food", "Transport", "Housing", "Health", "Leisure"}

// State is the persisted document shape. Collections are never nil
// after load so the serialized form always carries arrays.
type State struct {
	People       []core.Person     `json:"people"`
	Categories   []core.Category   `json:"categories"`
	Expenses     []core.Expense    `json:"expenses"`
	Payments     []core.Payment    `json:"payments"`
	DivisionMode core.DivisionMode `json:"divisionMode"`
}

// Ledger owns the four collections and the division mode.
type Ledger struct {
	mu     sync.Mutex
	blobs  blob.Store
	key    string
	state  State
	lastID int64
}

func New(blobs blob.Store) *Ledger {
	return &Ledger{blobs: blobs, key: DefaultKey}
}

// Load restores state from the blob backend. An absent blob seeds the
// default categories and persists them immediately; everything else
// starts empty.
func (l *Ledger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, ok, err := l.blobs.Get(ctx, l.key)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	if !ok {
		l.seedDefaultsLocked()
		return l.saveLocked(ctx)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("decode ledger: %w", err)
	}
	normalize(&state)
	l.state = state
	l.lastID = maxID(state)
	return nil
}

// Save serializes the full state and overwrites the persisted blob.
func (l *Ledger) Save(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.saveLocked(ctx)
}

func (l *Ledger) saveLocked(ctx context.Context) error {
	data, err := json.Marshal(l.state)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := l.blobs.Set(ctx, l.key, data); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

func (l *Ledger) seedDefaultsLocked() {
	state := State{
		People:       []core.Person{},
		Categories:   make([]core.Category, 0, len(DefaultCategories)),
		Expenses:     []core.Expense{},
		Payments:     []core.Payment{},
		DivisionMode: core.DivideEqual,
	}
	for _, name := range DefaultCategories {
		state.Categories = append(state.Categories, core.Category{ID: l.nextIDLocked(), Name: name})
	}
	l.state = state
}

// NextID returns a fresh unique id: a unix-millisecond timestamp,
// bumped past the previous id on collision. Uniqueness is the
// invariant, not strict wall-clock ordering.
func (l *Ledger) NextID() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nextIDLocked()
}

func (l *Ledger) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// Snapshot returns a deep copy of the current state so readers (the
// balance engine in particular) see a consistent view.
func (l *Ledger) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return State{
		People:       append([]core.Person(nil), l.state.People...),
		Categories:   append([]core.Category(nil), l.state.Categories...),
		Expenses:     append([]core.Expense(nil), l.state.Expenses...),
		Payments:     append([]core.Payment(nil), l.state.Payments...),
		DivisionMode: l.state.DivisionMode,
	}
}

func (l *Ledger) Mode() core.DivisionMode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.DivisionMode
}

func (l *Ledger) SetMode(mode core.DivisionMode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.DivisionMode = mode
}

// People returns a copy of the people collection in stored order.
func (l *Ledger) People() []core.Person {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Person(nil), l.state.People...)
}

func (l *Ledger) Categories() []core.Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Category(nil), l.state.Categories...)
}

func (l *Ledger) Expenses() []core.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Expense(nil), l.state.Expenses...)
}

func (l *Ledger) Payments() []core.Payment {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Payment(nil), l.state.Payments...)
}

// Person resolves a person by id.
func (l *Ledger) Person(id int64) (core.Person, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.state.People {
		if p.ID == id {
			return p, true
		}
	}
	return core.Person{}, false
}

// Category resolves a category by id.
func (l *Ledger) Category(id int64) (core.Category, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range l.state.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return core.Category{}, false
}

func (l *Ledger) AddPerson(p core.Person) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.People = append(l.state.People, p)
}

// ReplacePerson swaps the whole record by id. Edits have no partial
// patch semantics.
func (l *Ledger) ReplacePerson(p core.Person) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.People {
		if l.state.People[i].ID == p.ID {
			l.state.People[i] = p
			return true
		}
	}
	return false
}

func (l *Ledger) RemovePerson(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.state.People[:0:0]
	removed := false
	for _, p := range l.state.People {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	l.state.People = kept
	return removed
}

func (l *Ledger) AddCategory(c core.Category) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Categories = append(l.state.Categories, c)
}

func (l *Ledger) ReplaceCategory(c core.Category) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Categories {
		if l.state.Categories[i].ID == c.ID {
			l.state.Categories[i] = c
			return true
		}
	}
	return false
}

// RemoveCategory never cascades: expenses referencing the id keep it
// as a dangling soft reference.
func (l *Ledger) RemoveCategory(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.state.Categories[:0:0]
	removed := false
	for _, c := range l.state.Categories {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	l.state.Categories = kept
	return removed
}

func (l *Ledger) AddExpense(e core.Expense) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Expenses = append(l.state.Expenses, e)
}

func (l *Ledger) ReplaceExpense(e core.Expense) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Expenses {
		if l.state.Expenses[i].ID == e.ID {
			l.state.Expenses[i] = e
			return true
		}
	}
	return false
}

func (l *Ledger) RemoveExpense(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.state.Expenses[:0:0]
	removed := false
	for _, e := range l.state.Expenses {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	l.state.Expenses = kept
	return removed
}

func (l *Ledger) AddPayment(p core.Payment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Payments = append(l.state.Payments, p)
}

func (l *Ledger) ReplacePayment(p core.Payment) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Payments {
		if l.state.Payments[i].ID == p.ID {
			l.state.Payments[i] = p
			return true
		}
	}
	return false
}

func (l *Ledger) RemovePayment(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.state.Payments[:0:0]
	removed := false
	for _, p := range l.state.Payments {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	l.state.Payments = kept
	return removed
}

// normalize fills nil collections and defaults the division mode so
// older or hand-edited documents load cleanly.
func normalize(s *State) {
	if s.People == nil {
		s.People = []core.Person{}
	}
	if s.Categories == nil {
		s.Categories = []core.Category{}
	}
	if s.Expenses == nil {
		s.Expenses = []core.Expense{}
	}
	if s.Payments == nil {
		s.Payments = []core.Payment{}
	}
	if !s.DivisionMode.Valid() {
		s.DivisionMode = core.DivideEqual
	}
}

func maxID(s State) int64 {
	var max int64
	for _, p := range s.People {
		if p.ID > max {
			max = p.ID
		}
	}
	for _, c := range s.Categories {
		if c.ID > max {
			max = c.ID
		}
	}
	for _, e := range s.Expenses {
		if e.ID > max {
			max = e.ID
		}
	}
	for _, p := range s.Payments {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}
