package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDivisionModeValid(t *testing.T) {
	if !DivideEqual.Valid() || !DivideProportional.Valid() {
		t.Fatal("expected built-in modes to be valid")
	}
	if DivisionMode("weighted").Valid() {
		t.Fatal("expected unknown mode to be invalid")
	}
	if DivisionMode("").Valid() {
		t.Fatal("expected empty mode to be invalid")
	}
}

func TestPersonValidate(t *testing.T) {
	good := Person{ID: 1, Name: "Ana", Salary: 1200.50, Active: true}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Person{ID: 2, Name: "Zero", Salary: 0}).Validate(); err != nil {
		t.Fatalf("zero salary must be legal, got %v", err)
	}

	bads := []Person{
		{ID: 3, Name: "", Salary: 100},
		{ID: 4, Name: "   ", Salary: 100},
		{ID: 5, Name: "Neg", Salary: -1},
	}
	for i, p := range bads {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestCategoryValidate(t *testing.T) {
	if err := (Category{ID: 1, Name: "Food"}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Category{ID: 2, Name: " "}).Validate(); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:          1,
		Description: "groceries",
		Amount:      42.90,
		PaidBy:      10,
		CategoryID:  20,
		Date:        time.Now(),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		e    Expense
		want error
	}{
		{"empty description", Expense{Description: "", Amount: 1}, ErrEmptyDescription},
		{"oversized description", Expense{Description: strings.Repeat("x", 201), Amount: 1}, ErrDescriptionTooLong},
		{"zero amount", Expense{Description: "x", Amount: 0}, ErrInvalidAmount},
		{"negative amount", Expense{Description: "x", Amount: -5}, ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.e.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentValidate(t *testing.T) {
	good := Payment{ID: 1, FromID: 10, ToID: 20, Amount: 50}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	same := Payment{ID: 2, FromID: 10, ToID: 10, Amount: 50}
	if err := same.Validate(); !errors.Is(err, ErrSamePerson) {
		t.Fatalf("expected ErrSamePerson, got %v", err)
	}

	zero := Payment{ID: 3, FromID: 10, ToID: 20, Amount: 0}
	if err := zero.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
