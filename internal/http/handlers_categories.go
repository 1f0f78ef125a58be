package http

import (
	"net/http"

	"racha/internal/core"
	"racha/internal/events"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(s.ledger.Categories()).Write(w)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		BadRequestError("invalid request body").Write(w)
		return
	}

	created, err := s.ledger.AddCategory(r.Context(), core.Category{Name: parser.Get("name")})
	if err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityCategory, events.OpCreated)
	NewJSONResponse().Status(http.StatusCreated).Body(created).Write(w)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, errResp := parsePathID(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		BadRequestError("invalid request body").Write(w)
		return
	}

	category := core.Category{ID: id, Name: parser.Get("name")}
	if err := s.ledger.UpdateCategory(r.Context(), category); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityCategory, events.OpUpdated)
	NewJSONResponse().Body(category).Write(w)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, errResp := parsePathID(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}

	if err := s.ledger.DeleteCategory(r.Context(), id); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityCategory, events.OpDeleted)
	w.WriteHeader(http.StatusNoContent)
}
