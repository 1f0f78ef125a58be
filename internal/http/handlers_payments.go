package http

import (
	"net/http"

	"racha/internal/core"
	"racha/internal/events"
)

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(s.ledger.Payments()).Write(w)
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	payment, errResp := parsePaymentBody(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}

	created, err := s.ledger.AddPayment(r.Context(), payment)
	if err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityPayment, events.OpCreated)
	NewJSONResponse().Status(http.StatusCreated).Body(created).Write(w)
}

func (s *Server) handleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, errResp := parsePathID(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}
	payment, errResp := parsePaymentBody(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}
	payment.ID = id

	if err := s.ledger.UpdatePayment(r.Context(), payment); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityPayment, events.OpUpdated)
	NewJSONResponse().Body(payment).Write(w)
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	id, errResp := parsePathID(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}

	if err := s.ledger.DeletePayment(r.Context(), id); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityPayment, events.OpDeleted)
	w.WriteHeader(http.StatusNoContent)
}

func parsePaymentBody(r *http.Request) (core.Payment, *JSONResponseBuilder) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		return core.Payment{}, BadRequestError("invalid request body")
	}

	amount, err := core.ParseAmount(parser.Get("amount"))
	if err != nil {
		return core.Payment{}, UnprocessableEntityError(err.Error())
	}
	date, err := parser.GetDate("date")
	if err != nil {
		return core.Payment{}, BadRequestError("invalid date, use YYYY-MM-DD")
	}

	return core.Payment{
		FromID: parser.GetInt64("fromId"),
		ToID:   parser.GetInt64("toId"),
		Amount: amount,
		Notes:  parser.Get("notes"),
		Date:   date,
	}, nil
}
