package http

import (
	"log/slog"
	"net/http"

	"campusfood/api"
	"campusfood/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BaseURL = "/api/v1"

// NewRouter mounts the API under BaseURL plus the health probe, the raw OpenAPI
// document and the Swagger UI.
func NewRouter(server *Server, doc *openapi3.T, tokens ports.TokenIssuer, logger *slog.Logger) (*echo.Echo, error) {
	validate, err := ValidateRequests(doc, BaseURL)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Validator = NewRequestValidator()

	e.Use(
		RequestLogger(logger),
		middleware.Recover(),
		Authenticate(tokens),
		validate,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlersWithBaseURL(e, server, BaseURL)
	return e, nil
}
