package services

import (
	"context"
	"fmt"
	"log/slog"

	"racha/internal/core"
	"racha/internal/events"
	"racha/internal/log"
	"racha/internal/store"
)

// Ledger orchestrates ledger operations across the store and AMQP.
// Every mutation validates, applies, persists, then publishes a change
// event. Publishing is best effort, the mutation never fails because
// the broker is down.
type Ledger struct {
	store  *store.Ledger
	events *events.Client
}

func New(store *store.Ledger, events *events.Client) *Ledger {
	return &Ledger{
		store:  store,
		events: events,
	}
}

// AddPerson validates and stores a new person.
func (s *Ledger) AddPerson(ctx context.Context, p core.Person) (core.Person, error) {
	if err := p.Validate(); err != nil {
		return core.Person{}, err
	}
	p.ID = s.store.NextID()

	s.store.AddPerson(p)
	if err := s.store.Save(ctx); err != nil {
		return core.Person{}, fmt.Errorf("save person: %w", err)
	}

	s.publish(ctx, events.EntityPerson, events.OpCreated, p.ID)
	return p, nil
}

// UpdatePerson replaces an existing person.
func (s *Ledger) UpdatePerson(ctx context.Context, p core.Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !s.store.ReplacePerson(p) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("save person: %w", err)
	}

	s.publish(ctx, events.EntityPerson, events.OpUpdated, p.ID)
	return nil
}

// DeletePerson removes a person. Their expenses and payments are kept,
// balances simply stop including them.
func (s *Ledger) DeletePerson(ctx context.Context, id int64) error {
	if !s.store.RemovePerson(id) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}

	s.publish(ctx, events.EntityPerson, events.OpDeleted, id)
	return nil
}

// People lists all people.
func (s *Ledger) People() []core.Person {
	return s.store.People()
}

// AddCategory validates and stores a new category.
func (s *Ledger) AddCategory(ctx context.Context, c core.Category) (core.Category, error) {
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}
	c.ID = s.store.NextID()

	s.store.AddCategory(c)
	if err := s.store.Save(ctx); err != nil {
		return core.Category{}, fmt.Errorf("save category: %w", err)
	}

	s.publish(ctx, events.EntityCategory, events.OpCreated, c.ID)
	return c, nil
}

// UpdateCategory replaces an existing category.
func (s *Ledger) UpdateCategory(ctx context.Context, c core.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !s.store.ReplaceCategory(c) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("save category: %w", err)
	}

	s.publish(ctx, events.EntityCategory, events.OpUpdated, c.ID)
	return nil
}

// DeleteCategory removes a category. Expenses referencing it are kept
// and render as uncategorized.
func (s *Ledger) DeleteCategory(ctx context.Context, id int64) error {
	if !s.store.RemoveCategory(id) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.publish(ctx, events.EntityCategory, events.OpDeleted, id)
	return nil
}

// Categories lists all categories.
func (s *Ledger) Categories() []core.Category {
	return s.store.Categories()
}

// AddExpense validates and stores a new expense.
func (s *Ledger) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	e.ID = s.store.NextID()

	s.store.AddExpense(e)
	if err := s.store.Save(ctx); err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	s.publish(ctx, events.EntityExpense, events.OpCreated, e.ID)
	return e, nil
}

// UpdateExpense replaces an existing expense.
func (s *Ledger) UpdateExpense(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !s.store.ReplaceExpense(e) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("save expense: %w", err)
	}

	s.publish(ctx, events.EntityExpense, events.OpUpdated, e.ID)
	return nil
}

// DeleteExpense removes an expense.
func (s *Ledger) DeleteExpense(ctx context.Context, id int64) error {
	if !s.store.RemoveExpense(id) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	s.publish(ctx, events.EntityExpense, events.OpDeleted, id)
	return nil
}

// Expenses lists all expenses.
func (s *Ledger) Expenses() []core.Expense {
	return s.store.Expenses()
}

// AddPayment validates and stores a new settlement payment.
func (s *Ledger) AddPayment(ctx context.Context, p core.Payment) (core.Payment, error) {
	if err := p.Validate(); err != nil {
		return core.Payment{}, err
	}
	p.ID = s.store.NextID()

	s.store.AddPayment(p)
	if err := s.store.Save(ctx); err != nil {
		return core.Payment{}, fmt.Errorf("save payment: %w", err)
	}

	s.publish(ctx, events.EntityPayment, events.OpCreated, p.ID)
	return p, nil
}

// UpdatePayment replaces an existing payment.
func (s *Ledger) UpdatePayment(ctx context.Context, p core.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !s.store.ReplacePayment(p) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("save payment: %w", err)
	}

	s.publish(ctx, events.EntityPayment, events.OpUpdated, p.ID)
	return nil
}

// DeletePayment removes a payment.
func (s *Ledger) DeletePayment(ctx context.Context, id int64) error {
	if !s.store.RemovePayment(id) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	s.publish(ctx, events.EntityPayment, events.OpDeleted, id)
	return nil
}

// Payments lists all payments.
func (s *Ledger) Payments() []core.Payment {
	return s.store.Payments()
}

// Mode returns the current division mode.
func (s *Ledger) Mode() core.DivisionMode {
	return s.store.Mode()
}

// SetDivisionMode switches between equal and proportional splitting.
func (s *Ledger) SetDivisionMode(ctx context.Context, mode core.DivisionMode) error {
	if !mode.Valid() {
		return core.ErrInvalidMode
	}

	s.store.SetMode(mode)
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("save division mode: %w", err)
	}

	s.publish(ctx, events.EntityMode, events.OpUpdated, 0)
	return nil
}

// Balances computes the current per-person balance sheet.
func (s *Ledger) Balances() map[int64]core.Balance {
	state := s.store.Snapshot()
	return core.ComputeBalances(state.People, state.Expenses, state.Payments, state.DivisionMode)
}

// Summary computes ledger totals.
func (s *Ledger) Summary() core.Summary {
	state := s.store.Snapshot()
	return core.Summarize(state.People, state.Categories, state.Expenses, state.Payments)
}

// PersonLabel resolves a person id to a display name.
func (s *Ledger) PersonLabel(id int64) string {
	if p, ok := s.store.Person(id); ok {
		return p.Name
	}
	return "Unknown"
}

// CategoryLabel resolves a category id to a display name.
func (s *Ledger) CategoryLabel(id int64) string {
	if c, ok := s.store.Category(id); ok {
		return c.Name
	}
	return "Uncategorized"
}

func (s *Ledger) publish(ctx context.Context, entity, op string, id int64) {
	if err := s.events.PublishChange(ctx, entity, op, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change message",
			log.FieldEntity, entity,
			log.FieldOperation, op,
			log.FieldEntityID, id,
			log.FieldError, err)
	}
}
