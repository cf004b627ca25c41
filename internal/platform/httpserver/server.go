package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	pollengine "rankify/contexts/polling/poll-engine"
	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"
	polltransport "rankify/contexts/polling/poll-engine/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "rankify/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	polls  pollengine.Module
}

func New(polls pollengine.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		polls:  polls,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Mux exposes the routing table for tests.
func (s *Server) Mux() *http.ServeMux {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /polls", s.handleInitiatePoll)
	s.mux.HandleFunc("GET /polls/{poll_id}", s.handlePollDetails)
	s.mux.HandleFunc("PATCH /polls/{poll_id}", s.handlePatchPoll)
	s.mux.HandleFunc("GET /polls/{poll_id}/ballot", s.handleGetBallot)
	s.mux.HandleFunc("POST /polls/{poll_id}/votes", s.handleCastVote)
}

func (s *Server) handleInitiatePoll(w http.ResponseWriter, r *http.Request) {
	var req polltransport.InitiatePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePollError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	resp, err := s.polls.Handler.InitiatePollHandler(r.Context(), req)
	if err != nil {
		writePollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handlePollDetails(w http.ResponseWriter, r *http.Request) {
	resp, err := s.polls.Handler.PollDetailsHandler(r.Context(), r.PathValue("poll_id"))
	if err != nil {
		writePollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePatchPoll(w http.ResponseWriter, r *http.Request) {
	var req polltransport.PatchPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePollError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	if err := s.polls.Handler.PatchPollHandler(r.Context(), r.PathValue("poll_id"), req); err != nil {
		writePollDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetBallot(w http.ResponseWriter, r *http.Request) {
	resp, err := s.polls.Handler.BallotHandler(r.Context(), r.PathValue("poll_id"))
	if err != nil {
		writePollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var req polltransport.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePollError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	if req.Rankings == nil {
		writePollError(w, http.StatusBadRequest, "invalid_body", "rankings must be present")
		return
	}
	if err := s.polls.Handler.CastVoteHandler(r.Context(), r.PathValue("poll_id"), req); err != nil {
		writePollDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writePollDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrPollNotFound):
		writePollError(w, http.StatusNotFound, "poll_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidStateTransition):
		writePollError(w, http.StatusConflict, "invalid_state_transition", err.Error())
	case errors.Is(err, domainerrors.ErrPollNotReadyForVoting):
		writePollError(w, http.StatusConflict, "poll_not_ready_for_voting", err.Error())
	case errors.Is(err, domainerrors.ErrOptionNotInBallot):
		writePollError(w, http.StatusBadRequest, "option_not_in_ballot", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidRanking):
		writePollError(w, http.StatusBadRequest, "invalid_ranking", err.Error())
	case errors.Is(err, domainerrors.ErrUnsupportedOperation):
		writePollError(w, http.StatusBadRequest, "unsupported_operation", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidArgument):
		writePollError(w, http.StatusBadRequest, "invalid_argument", err.Error())
	default:
		writePollError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePollError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, polltransport.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
