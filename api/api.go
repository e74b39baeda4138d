// Package api embeds the OpenAPI document of the HTTP surface.
package api

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var Spec []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(Spec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// document serves the embedded YAML to the Swagger UI.
type document struct{}

func (document) ReadDoc() string {
	return string(Spec)
}

func init() {
	swag.Register(swag.Name, document{})
}
