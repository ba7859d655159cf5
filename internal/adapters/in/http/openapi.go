package http

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"mealbox/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

//nolint:gochecknoglobals // swag keeps a process-wide registry
var registerDocOnce sync.Once

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// apiDoc serves the OpenAPI document to echo-swagger through the swag registry.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("render openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(data)})
	})
	return nil
}

// validateRequests rejects requests that do not match the OpenAPI document.
// Routes the document does not describe pass through unchecked.
func validateRequests(router routers.Router, s *Server) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return fail(c, s.logger, errs.NewValueIsInvalidErrorWithCause("request does not match the API schema", err))
			}

			return next(c)
		}
	}
}

func newSpecRouter(doc *openapi3.T) (routers.Router, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return router, nil
}
