package http

import (
	"log/slog"
	"net/http"
	"strings"

	"campusfood/internal/adapters/out/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorContextKey = "actor"

// Authenticate resolves a bearer token into a kernel.Actor. Requests without an
// Authorization header pass through anonymously; handlers that need an actor reject them.
func Authenticate(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return auth.ErrInvalidToken
			}

			actor, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				return err
			}
			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, ErrUnauthenticated
	}
	return actor, nil
}

// ValidateRequests checks requests under baseURL against doc before they reach a
// handler. Paths the document does not describe are left to the router.
func ValidateRequests(doc *openapi3.T, baseURL string) (echo.MiddlewareFunc, error) {
	// Routes are matched on the path relative to baseURL, whatever host serves them.
	doc.Servers = nil
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !strings.HasPrefix(req.URL.Path, baseURL+"/") {
				return next(ctx)
			}

			probe := req.Clone(req.Context())
			probe.URL.Path = strings.TrimPrefix(req.URL.Path, baseURL)
			probe.URL.RawPath = ""

			route, pathParams, err := router.FindRoute(probe)
			if err != nil {
				return next(ctx)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    probe,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			// The validator drains the body and leaves a rewound copy on the probe.
			req.Body = probe.Body
			if err != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", err)
			}
			return next(ctx)
		}
	}, nil
}

// requestValidator adapts go-playground/validator to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() echo.Validator {
	return requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	return nil
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return ctx.Validate(req)
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
