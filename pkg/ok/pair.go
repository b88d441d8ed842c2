package ok

// Pair is an ordered two-element grouping. Order is significant: NewPair
// puts the newly supplied tag first, NewRPair keeps the piped value first.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair groups value with tag, tag first.
func NewPair[A, B any](value B, tag A) Pair[A, B] {
	return Pair[A, B]{First: tag, Second: value}
}

// NewRPair groups value with tag, preserving the piped value as the first
// element.
func NewRPair[A, B any](value A, tag B) Pair[A, B] {
	return Pair[A, B]{First: value, Second: tag}
}

// Unpair extracts the second element of a pair.
func Unpair[A, B any](p Pair[A, B]) B {
	return p.Second
}
