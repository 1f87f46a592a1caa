// Package jsonschema parses JSON or YAML schema documents into schema.Schema
// trees. Property declaration order is preserved, local $ref pointers are
// resolved with cycle and depth guards, and malformed constraint values are
// dropped rather than rejected.
package jsonschema
