// Package pipe contains the conditional then/tap helper family over
// ok.Result. Each helper either forwards control into a caller-supplied
// callback or passes the input through unchanged, so call sites compose into
// flat pipelines instead of nested branches.
//
// Highlights:
// - Then/ThenOK: continue with the callback's result on success
// - ThenTry: call a function (Out, error) and convert error to failure
// - ThenMatch/ThenIf: dispatch on exact equality or a boolean condition
// - Map: transform the successful value (In -> Out)
// - Tap/TapOK/TapMatch: side effects that leave the input untouched
// - Finally: reduce to a concrete value via success/failure handlers
//
// Callbacks receive the payload when one exists; the *OK variants take
// zero-argument callbacks because the marker carries no value.
package pipe
