// Package chain provides a fluent wrapper around ok.Result[T] for building
// sequential two-track pipelines on top of the pipe primitives.
//
// It composes functions like Then, Map, ThenTry, Ensure, and Finally behind
// a convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry/Map/Ensure: same-type steps as methods
// - Or/And: combine chains by first success / first failure
// - Switch/SwitchTry/MapTo: move to a new result type via free functions
// - Finally: collapse the chain into a final value via handlers
package chain
