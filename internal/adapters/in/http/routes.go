package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"deliverychecker/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const operationCheckRoute = "checkRoute"

// GetRecentChecksParams are the query parameters of GET /api/v1/checks.
type GetRecentChecksParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler *Server
}

// GetCheck binds the id path parameter.
func (w *ServerInterfaceWrapper) GetCheck(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	checkID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetCheck(ctx, checkID)
}

// GetRecentChecks binds the limit query parameter.
func (w *ServerInterfaceWrapper) GetRecentChecks(ctx echo.Context) error {
	var params GetRecentChecksParams

	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetRecentChecks(ctx, params)
}

// RegisterHandlers adds the routes of s to router. History routes are only
// added when history is enabled.
func RegisterHandlers(router *echo.Echo, s *Server) {
	wrapper := ServerInterfaceWrapper{Handler: s}

	router.GET("/health", s.Health)
	router.POST("/api/v1/checks", s.CheckRoute)
	if s.HistoryEnabled() {
		router.GET("/api/v1/checks", wrapper.GetRecentChecks)
		router.GET("/api/v1/checks/:id", wrapper.GetCheck)
	}
}

// NewEcho builds the HTTP router: recovery, request logging, OpenAPI request
// validation and the check routes.
func NewEcho(ctx context.Context, s *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(validator)

	RegisterHandlers(e, s)
	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "Request served", attrs...)
			return nil
		},
	})
}

// errorHandler renders echo errors as Error bodies.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error", "error", err)
		}

		if writeErr := c.JSON(code, Error{Code: code, Message: message}); writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
