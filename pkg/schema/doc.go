// Package schema holds the extended JSON-Schema model consumed by the form
// state engine. A Schema is immutable for the duration of an edit session;
// parsers live in pkg/jsonschema and pkg/openapi.
package schema
