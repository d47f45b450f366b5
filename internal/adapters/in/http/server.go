package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"deliverychecker/internal/adapters/in/wire"
	"deliverychecker/internal/core/application/usecases/commands"
	"deliverychecker/internal/core/application/usecases/queries"
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const checkIDHeader = "X-Check-ID"

// CheckRecorder stores the outcome of a check.
type CheckRecorder interface {
	Handle(ctx context.Context, cmd commands.RecordCheckCommand) error
}

// CheckFinder loads one recorded check.
type CheckFinder interface {
	Handle(ctx context.Context, query queries.GetCheckQuery) (queries.GetCheckQueryResponse, error)
}

// RecentChecksLister lists the newest recorded checks.
type RecentChecksLister interface {
	Handle(ctx context.Context, query queries.GetRecentChecksQuery) ([]queries.GetRecentChecksQueryResponse, error)
}

// Error is the body of every non-2xx response except a rejected check request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
// The history handlers are nil when check history is disabled.
type Server struct {
	// Command handlers
	checkRouteHandler  commands.CheckRouteCommandHandler
	recordCheckHandler CheckRecorder

	// Query handlers
	getCheckHandler        CheckFinder
	getRecentChecksHandler RecentChecksLister

	logger *slog.Logger
}

// NewServer creates a server that only checks routes.
func NewServer(checkRouteHandler commands.CheckRouteCommandHandler, logger *slog.Logger) *Server {
	return &Server{
		checkRouteHandler: checkRouteHandler,
		logger:            logger.With("component", "http_server"),
	}
}

// WithHistory enables recording of checks and the history endpoints.
func (s *Server) WithHistory(
	recordCheckHandler CheckRecorder,
	getCheckHandler CheckFinder,
	getRecentChecksHandler RecentChecksLister,
) *Server {
	s.recordCheckHandler = recordCheckHandler
	s.getCheckHandler = getCheckHandler
	s.getRecentChecksHandler = getRecentChecksHandler
	return s
}

// HistoryEnabled reports whether checks are recorded.
func (s *Server) HistoryEnabled() bool {
	return s.recordCheckHandler != nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

type checkRequest struct {
	Deliveries json.RawMessage `json:"deliveries"`
	Path       json.RawMessage `json:"path"`
}

// CheckRoute handles POST /api/v1/checks - validates a path against deliveries.
// Rejected routes are still answered with 200; the body carries the error.
func (s *Server) CheckRoute(ctx echo.Context) error {
	var body checkRequest
	if err := json.NewDecoder(ctx.Request().Body).Decode(&body); err != nil {
		return writeResult(ctx, http.StatusBadRequest,
			commands.NewErrorResult(commands.ErrorCodeInvalidInput, "Failed to parse input: "+err.Error()))
	}

	reqCtx := ctx.Request().Context()
	result := s.checkRoute(reqCtx, body)

	checkID := kernel.NewUUID()
	ctx.Response().Header().Set(checkIDHeader, checkID.String())

	if s.HistoryEnabled() {
		s.record(reqCtx, checkID, body, result)
	}

	return writeResult(ctx, http.StatusOK, result)
}

func (s *Server) checkRoute(ctx context.Context, body checkRequest) commands.Result {
	deliveries, path, err := wire.Decode(orNull(body.Deliveries), orNull(body.Path))
	if err != nil {
		return commands.NewResultFromError(err)
	}

	cmd, err := commands.NewCheckRouteCommand(deliveries, path)
	if err != nil {
		return commands.NewResultFromError(err)
	}

	return s.checkRouteHandler.Handle(ctx, cmd)
}

func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}

// record never fails the request: the check result is already known.
func (s *Server) record(ctx context.Context, checkID kernel.UUID, body checkRequest, result commands.Result) {
	cmd, err := commands.NewRecordCheckCommand(checkID, string(body.Deliveries), string(body.Path), result)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to build record command", "check_id", checkID.String(), "error", err)
		return
	}

	if err = s.recordCheckHandler.Handle(ctx, cmd); err != nil {
		s.logger.ErrorContext(ctx, "Failed to record check", "check_id", checkID.String(), "error", err)
		return
	}

	s.logger.DebugContext(ctx, "Check recorded", "check_id", checkID.String(), "status", result.Status())
}

type checkRecordJSON struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Deliveries   string          `json:"deliveries"`
	Path         string          `json:"path"`
	Steps        []wire.StepJSON `json:"steps,omitempty"`
	ErrorCode    string          `json:"error_code,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// GetCheck handles GET /api/v1/checks/{id} - returns one recorded check.
func (s *Server) GetCheck(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetCheckQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid check id",
		})
	}

	check, err := s.getCheckHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Check not found",
			})
		}
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to load check", "check_id", id.String(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve check",
		})
	}

	response := checkRecordJSON{
		ID:           check.ID.String(),
		Status:       check.Status,
		Deliveries:   check.Deliveries,
		Path:         check.Path,
		ErrorCode:    check.ErrorCode,
		ErrorMessage: check.ErrorMessage,
		CreatedAt:    check.CreatedAt,
	}
	if check.Status == commands.StatusSuccess {
		response.Steps = wire.NewStepsJSON(check.Steps)
	}

	return ctx.JSON(http.StatusOK, response)
}

type checkSummaryJSON struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	ErrorCode string    `json:"error_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type checkListJSON struct {
	Checks []checkSummaryJSON `json:"checks"`
}

// GetRecentChecks handles GET /api/v1/checks - lists the newest checks.
func (s *Server) GetRecentChecks(ctx echo.Context, params GetRecentChecksParams) error {
	limit := queries.DefaultRecentChecksLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetRecentChecksQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	checks, err := s.getRecentChecksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to list checks", "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve checks",
		})
	}

	response := checkListJSON{Checks: make([]checkSummaryJSON, len(checks))}
	for i, c := range checks {
		response.Checks[i] = checkSummaryJSON{
			ID:        c.ID.String(),
			Status:    c.Status,
			ErrorCode: c.ErrorCode,
			CreatedAt: c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func writeResult(ctx echo.Context, status int, result commands.Result) error {
	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	ctx.Response().WriteHeader(status)
	return wire.Encode(ctx.Response(), result, false)
}
