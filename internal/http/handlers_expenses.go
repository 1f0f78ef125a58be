package http

import (
	"net/http"

	"racha/internal/core"
	"racha/internal/events"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(s.ledger.Expenses()).Write(w)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	expense, errResp := parseExpenseBody(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}

	created, err := s.ledger.AddExpense(r.Context(), expense)
	if err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityExpense, events.OpCreated)
	NewJSONResponse().Status(http.StatusCreated).Body(created).Write(w)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, errResp := parsePathID(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}
	expense, errResp := parseExpenseBody(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}
	expense.ID = id

	if err := s.ledger.UpdateExpense(r.Context(), expense); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityExpense, events.OpUpdated)
	NewJSONResponse().Body(expense).Write(w)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, errResp := parsePathID(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}

	if err := s.ledger.DeleteExpense(r.Context(), id); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityExpense, events.OpDeleted)
	w.WriteHeader(http.StatusNoContent)
}

func parseExpenseBody(r *http.Request) (core.Expense, *JSONResponseBuilder) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		return core.Expense{}, BadRequestError("invalid request body")
	}

	amount, err := core.ParseAmount(parser.Get("amount"))
	if err != nil {
		return core.Expense{}, UnprocessableEntityError(err.Error())
	}
	date, err := parser.GetDate("date")
	if err != nil {
		return core.Expense{}, BadRequestError("invalid date, use YYYY-MM-DD")
	}

	return core.Expense{
		Description: parser.Get("description"),
		Amount:      amount,
		PaidBy:      parser.GetInt64("paidBy"),
		CategoryID:  parser.GetInt64("categoryId"),
		Notes:       parser.Get("notes"),
		Date:        date,
	}, nil
}
