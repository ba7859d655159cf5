package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// DefaultRequestTimeout bounds API requests when no positive timeout is configured.
const DefaultRequestTimeout = 5 * time.Second

// NewRouter builds the echo instance serving the API, health, metrics and
// swagger routes. Every API request runs under requestTimeout.
func NewRouter(ctx context.Context, s *Server, requestTimeout time.Duration) (*echo.Echo, error) {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	specRouter, err := newSpecRouter(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	metrics := NewMetrics()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(s.logger))
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, s,
		middleware.ContextTimeout(requestTimeout),
		validateRequests(specRouter, s),
	)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
