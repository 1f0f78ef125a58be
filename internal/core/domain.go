package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	DivideEqual        DivisionMode = "equal"
	DivideProportional DivisionMode = "proportional"
)

type (
	// DivisionMode selects how an expense amount is apportioned across
	// the active people. It is a single process-wide setting and applies
	// retroactively to all expenses on every recomputation.
	DivisionMode string

	Person struct {
		ID     int64   `json:"id"`
		Name   string  `json:"name"`
		Salary float64 `json:"salary"`
		Active bool    `json:"active"`
	}

	Category struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	// Expense references its payer and category by id only. Both are
	// soft references: the referenced entity may have been deleted and
	// lookups must tolerate the gap.
	Expense struct {
		ID          int64     `json:"id"`
		Description string    `json:"description"`
		Amount      float64   `json:"amount"`
		PaidBy      int64     `json:"paidBy"`
		CategoryID  int64     `json:"categoryId"`
		Notes       string    `json:"notes,omitempty"`
		Date        time.Time `json:"date"`
	}

	Payment struct {
		ID     int64     `json:"id"`
		FromID int64     `json:"fromId"`
		ToID   int64     `json:"toId"`
		Amount float64   `json:"amount"`
		Notes  string    `json:"notes,omitempty"`
		Date   time.Time `json:"date"`
	}
)

var (
	ErrEmptyName          = errors.New("empty name")
	ErrEmptyDescription   = errors.New("empty description")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidSalary      = errors.New("invalid salary")
	ErrSamePerson         = errors.New("payer and receiver must be different people")
	ErrInvalidMode        = errors.New("invalid division mode")
	ErrNotFound           = errors.New("not found")
)

func (m DivisionMode) Valid() bool {
	switch m {
	case DivideEqual, DivideProportional:
		return true
	default:
		return false
	}
}

func (p Person) Validate() error {
	if len(strings.TrimSpace(p.Name)) == 0 {
		return ErrEmptyName
	}
	if p.Salary < 0 || math.IsNaN(p.Salary) || math.IsInf(p.Salary, 0) {
		return ErrInvalidSalary
	}
	return nil
}

func (c Category) Validate() error {
	if len(strings.TrimSpace(c.Name)) == 0 {
		return ErrEmptyName
	}
	return nil
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return ErrDescriptionTooLong
	}
	return validateAmount(e.Amount)
}

func (p Payment) Validate() error {
	if p.FromID == p.ToID {
		return ErrSamePerson
	}
	return validateAmount(p.Amount)
}

func validateAmount(v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidAmount
	}
	return nil
}
