package http

import (
	"net/http"

	"racha/internal/core"
	"racha/internal/events"
)

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(s.ledger.Balances()).Write(w)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(s.ledger.Summary()).Write(w)
}

type modeBody struct {
	Mode core.DivisionMode `json:"divisionMode"`
}

func (s *Server) handleGetMode(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(modeBody{Mode: s.ledger.Mode()}).Write(w)
}

func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		BadRequestError("invalid request body").Write(w)
		return
	}

	mode := core.DivisionMode(parser.Get("divisionMode"))
	if mode == "" {
		mode = core.DivisionMode(parser.Get("mode"))
	}

	if err := s.ledger.SetDivisionMode(r.Context(), mode); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityMode, events.OpUpdated)
	NewJSONResponse().Body(modeBody{Mode: mode}).Write(w)
}
