// Package openapi converts OpenAPI 3 component schemas into schema.Schema
// trees. Editor hints that JSON Schema spells as plain keywords are read from
// x- extensions: x-requiredWhen, x-optionalWhen, x-propertyOrder,
// x-propertyName, x-enumTitles, x-tableMode and x-step.
package openapi
