package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formstate/pkg/schema"
)

// ErrNoComponents is returned when a document declares no component schemas.
var ErrNoComponents = errors.New("openapi: document has no component schemas")

// LoadComponents loads an OpenAPI 3 document from JSON or YAML bytes and
// converts every entry of components.schemas. External references are not
// followed.
func LoadComponents(ctx context.Context, raw []byte) (map[string]schema.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = false

	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, ErrNoComponents
	}

	out := make(map[string]schema.Schema, len(doc.Components.Schemas))
	for name, ref := range doc.Components.Schemas {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[name] = FromSchemaRef(ref)
	}
	return out, nil
}

// LoadComponent loads a document and returns the named component schema.
func LoadComponent(ctx context.Context, raw []byte, name string) (schema.Schema, error) {
	components, err := LoadComponents(ctx, raw)
	if err != nil {
		return schema.Schema{}, err
	}
	out, ok := components[name]
	if !ok {
		return schema.Schema{}, fmt.Errorf("openapi: component %q not found", name)
	}
	return out, nil
}
