// Package value models the dynamic value tree edited through a schema-driven
// form: objects (map[string]any), arrays ([]any), numbers, booleans, strings,
// JSON null (nil) and the Undefined sentinel for absent values.
//
// Hosts that wrap values as {"value": V, ...} convert them once with FromHost,
// or FromHostTree for whole documents; every resolver downstream only
// type-switches on Boxed.
package value
