// Package signal models the reply/noreply/halt/continue control convention
// as a closed sum type. Callers construct signals with the package functions
// and branch on them through the Kind and Is* accessors, never by field
// access.
//
// Key constructs:
// - Reply/RReply: send a payload back alongside the new state
// - NoReply: state transition with nothing to send
// - Halt/HaltReply: stop processing, optionally with a final payload
// - Continue: keep processing with the given state
package signal
