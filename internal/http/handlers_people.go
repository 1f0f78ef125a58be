package http

import (
	"net/http"
	"strconv"

	"racha/internal/core"
	"racha/internal/events"
)

// parsePathID extracts the {id} path value. Returns a ready error
// response when the id is malformed.
func parsePathID(r *http.Request) (int64, *JSONResponseBuilder) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, BadRequestError("invalid id")
	}
	return id, nil
}

func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(s.ledger.People()).Write(w)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	person, errResp := parsePersonBody(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}

	created, err := s.ledger.AddPerson(r.Context(), person)
	if err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityPerson, events.OpCreated)
	NewJSONResponse().Status(http.StatusCreated).Body(created).Write(w)
}

func (s *Server) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, errResp := parsePathID(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}
	person, errResp := parsePersonBody(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}
	person.ID = id

	if err := s.ledger.UpdatePerson(r.Context(), person); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityPerson, events.OpUpdated)
	NewJSONResponse().Body(person).Write(w)
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	id, errResp := parsePathID(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}

	if err := s.ledger.DeletePerson(r.Context(), id); err != nil {
		DomainErrorResponse(err).Write(w)
		return
	}

	CountMutation(events.EntityPerson, events.OpDeleted)
	w.WriteHeader(http.StatusNoContent)
}

func parsePersonBody(r *http.Request) (core.Person, *JSONResponseBuilder) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		return core.Person{}, BadRequestError("invalid request body")
	}

	salary := 0.0
	if v := parser.Get("salary"); v != "" {
		parsed, err := core.ParseSalary(v)
		if err != nil {
			return core.Person{}, UnprocessableEntityError(err.Error())
		}
		salary = parsed
	}

	return core.Person{
		Name:   parser.Get("name"),
		Salary: salary,
		Active: parser.GetBool("active", true),
	}, nil
}
