package signal

// Kind tags the control-signal variants.
type Kind uint8

const (
	KindReply Kind = iota + 1
	KindNoReply
	KindHalt
	KindContinue
)

func (k Kind) String() string {
	switch k {
	case KindReply:
		return "reply"
	case KindNoReply:
		return "noreply"
	case KindHalt:
		return "halt"
	case KindContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// Signal is a closed control-signal sum over a state S, optionally carrying
// a reply payload T. Construct it with the package functions and inspect it
// through the accessors.
type Signal[T, S any] struct {
	kind     Kind
	reply    T
	hasReply bool
	state    S
}

// Reply signals that a payload should be sent back alongside the new state.
func Reply[T, S any](state S, reply T) Signal[T, S] {
	return Signal[T, S]{kind: KindReply, reply: reply, hasReply: true, state: state}
}

// RReply builds the same signal as Reply with the arguments swapped, for
// call sites that already hold the payload first.
func RReply[T, S any](reply T, state S) Signal[T, S] {
	return Reply[T, S](state, reply)
}

// NoReply signals a state transition with nothing to send back.
func NoReply[T, S any](state S) Signal[T, S] {
	return Signal[T, S]{kind: KindNoReply, state: state}
}

// Halt signals that processing should stop with the given final state.
func Halt[T, S any](state S) Signal[T, S] {
	return Signal[T, S]{kind: KindHalt, state: state}
}

// HaltReply is Halt with a final payload to send back before stopping.
func HaltReply[T, S any](reply T, state S) Signal[T, S] {
	return Signal[T, S]{kind: KindHalt, reply: reply, hasReply: true, state: state}
}

// Continue signals that processing should carry on with the given state.
func Continue[T, S any](state S) Signal[T, S] {
	return Signal[T, S]{kind: KindContinue, state: state}
}

func (s Signal[T, S]) Kind() Kind {
	return s.kind
}

func (s Signal[T, S]) State() S {
	return s.state
}

// Reply returns the payload and whether the signal carries one.
func (s Signal[T, S]) Reply() (T, bool) {
	return s.reply, s.hasReply
}

func (s Signal[T, S]) HasReply() bool {
	return s.hasReply
}

func (s Signal[T, S]) IsReply() bool {
	return s.kind == KindReply
}

func (s Signal[T, S]) IsNoReply() bool {
	return s.kind == KindNoReply
}

func (s Signal[T, S]) IsHalt() bool {
	return s.kind == KindHalt
}

func (s Signal[T, S]) IsContinue() bool {
	return s.kind == KindContinue
}
