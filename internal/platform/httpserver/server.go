package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	barengine "votebar/contexts/voting/bar-engine"
	domainerrors "votebar/contexts/voting/bar-engine/domain/errors"
	enginehttp "votebar/contexts/voting/bar-engine/transport/http"
	"votebar/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "votebar/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	http   *http.Server
	logger *slog.Logger
	engine barengine.Module
}

func New(engine barengine.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		engine: engine,
	}
	s.registerRoutes()
	s.http = &http.Server{Addr: addr, Handler: s.mux}
	return s
}

// Start serves until Shutdown is called. It returns http.ErrServerClosed
// after a clean shutdown; callers decide whether that counts as failure.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.http.Addr,
	)
	return s.http.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests until
// ctx expires. It unblocks Start.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.http.Shutdown(ctx)
}

// Handler exposes the routed mux for tests and embedding hosts.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", promhttp.Handler())

	s.mux.HandleFunc("POST /api/v1/rooms", s.instrument("/api/v1/rooms", s.handleCreateRoom))
	s.mux.HandleFunc("GET /api/v1/rooms", s.instrument("/api/v1/rooms", s.handleListRooms))
	s.mux.HandleFunc("GET /api/v1/rooms/{room_id}", s.instrument("/api/v1/rooms/{room_id}", s.handleGetRoom))
	s.mux.HandleFunc("POST /api/v1/rooms/{room_id}/votes", s.instrument("/api/v1/rooms/{room_id}/votes", s.handleSubmitBallot))
	s.mux.HandleFunc("GET /api/v1/rooms/{room_id}/results", s.instrument("/api/v1/rooms/{room_id}/results", s.handleRoomResults))
	s.mux.HandleFunc("POST /api/v1/admin/cleanup", s.instrument("/api/v1/admin/cleanup", s.handleCleanup))
}

// CreateRoom godoc
// @Summary  Create a voting room
// @Tags     rooms
// @Accept   json
// @Produce  json
// @Param    request body enginehttp.CreateRoomRequest true "room options and optional TTL"
// @Success  200 {object} enginehttp.RoomResponse
// @Failure  400 {object} enginehttp.ErrorResponse
// @Router   /api/v1/rooms [post]
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req enginehttp.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if msg, ok := validateRequest(req); !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", msg)
		return
	}

	resp, err := s.engine.Handler.CreateRoomHandler(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	metrics.RoomsCreated.Inc()
	writeJSON(w, http.StatusOK, resp)
}

// ListRooms godoc
// @Summary  List open voting rooms
// @Tags     rooms
// @Produce  json
// @Success  200 {object} enginehttp.RoomListResponse
// @Router   /api/v1/rooms [get]
func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	resp, err := s.engine.Handler.ListRoomsHandler(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetRoom godoc
// @Summary  Fetch one room
// @Tags     rooms
// @Produce  json
// @Param    room_id path string true "room identifier"
// @Success  200 {object} enginehttp.RoomResponse
// @Failure  404 {object} enginehttp.ErrorResponse
// @Router   /api/v1/rooms/{room_id} [get]
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	resp, err := s.engine.Handler.GetRoomHandler(r.Context(), r.PathValue("room_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SubmitBallot godoc
// @Summary  Submit a ballot to a room
// @Tags     votes
// @Accept   json
// @Produce  json
// @Param    room_id path string true "room identifier"
// @Param    request body enginehttp.SubmitBallotRequest true "interval, percentage or point ballot"
// @Success  200 {object} enginehttp.VoteResponse
// @Failure  404 {object} enginehttp.ErrorResponse
// @Failure  422 {object} enginehttp.ErrorResponse
// @Router   /api/v1/rooms/{room_id}/votes [post]
func (s *Server) handleSubmitBallot(w http.ResponseWriter, r *http.Request) {
	var req enginehttp.SubmitBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if msg, ok := validateRequest(req); !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", msg)
		return
	}

	resp, err := s.engine.Handler.SubmitBallotHandler(r.Context(), r.PathValue("room_id"), req)
	if err != nil {
		if reason, isValidation := validationReason(err); isValidation {
			metrics.VotesRejected.WithLabelValues(reason).Inc()
		}
		writeDomainError(w, err)
		return
	}
	metrics.VotesAccepted.Inc()
	writeJSON(w, http.StatusOK, resp)
}

// RoomResults godoc
// @Summary  Current aggregate results for a room
// @Tags     votes
// @Produce  json
// @Param    room_id path string true "room identifier"
// @Success  200 {object} enginehttp.ResultsResponse
// @Failure  404 {object} enginehttp.ErrorResponse
// @Router   /api/v1/rooms/{room_id}/results [get]
func (s *Server) handleRoomResults(w http.ResponseWriter, r *http.Request) {
	resp, err := s.engine.Handler.RoomResultsHandler(r.Context(), r.PathValue("room_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Cleanup godoc
// @Summary  Evict expired rooms now
// @Tags     admin
// @Produce  json
// @Success  200 {object} enginehttp.CleanupResponse
// @Router   /api/v1/admin/cleanup [post]
func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	// Eviction counting happens inside the cleanup use case, shared with
	// the scheduled sweep.
	resp, err := s.engine.Handler.CleanupHandler(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(recorder.status)).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// writeDomainError maps engine sentinel errors onto HTTP statuses. Each
// validation kind keeps its own code so the UI can show an actionable
// message instead of a generic failure.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrRoomNotFound):
		writeError(w, http.StatusNotFound, "room_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidOptionSet):
		writeError(w, http.StatusBadRequest, "invalid_option_set", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidBallot):
		writeError(w, http.StatusBadRequest, "invalid_ballot", err.Error())
	case errors.Is(err, domainerrors.ErrUnknownOption):
		writeError(w, http.StatusUnprocessableEntity, "unknown_option", err.Error())
	case errors.Is(err, domainerrors.ErrOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, "out_of_range", err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInterval):
		writeError(w, http.StatusUnprocessableEntity, "invalid_interval", err.Error())
	case errors.Is(err, domainerrors.ErrOverlap):
		writeError(w, http.StatusUnprocessableEntity, "overlap", err.Error())
	case errors.Is(err, domainerrors.ErrOverAllocation):
		writeError(w, http.StatusUnprocessableEntity, "over_allocation", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func validationReason(err error) (string, bool) {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidBallot):
		return "invalid_ballot", true
	case errors.Is(err, domainerrors.ErrUnknownOption):
		return "unknown_option", true
	case errors.Is(err, domainerrors.ErrOutOfRange):
		return "out_of_range", true
	case errors.Is(err, domainerrors.ErrInvalidInterval):
		return "invalid_interval", true
	case errors.Is(err, domainerrors.ErrOverlap):
		return "overlap", true
	case errors.Is(err, domainerrors.ErrOverAllocation):
		return "over_allocation", true
	default:
		return "", false
	}
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, enginehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
