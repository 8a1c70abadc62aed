// Package outcome implements the railway-style result value every pipeline
// stage is chained with. A value is either a success carrying accumulated
// non-fatal messages, or a failure carrying one structured reason (or one
// OS-level fault). Once a stage fails, no later stage runs and no tee
// registered on the success branch ever fires.
package outcome

// Outcome is a success value plus accumulated messages, or a failure.
// The zero Outcome is a success with T's zero value and no messages.
type Outcome[T any] struct {
	value    T
	messages []string
	reason   Reason
	err      error
	failed   bool

	rendered    string
	hasRendered bool
}

// Success wraps v as a successful outcome.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Failure produces a failed outcome carrying one structured reason.
func Failure[T any](r Reason) Outcome[T] {
	return Outcome[T]{reason: r, failed: true}
}

// Fault produces a failed outcome carrying an OS-level error. Faults are
// outside the closed Reason set and are always surfaced to the user.
func Fault[T any](err error) Outcome[T] {
	return Outcome[T]{err: err, failed: true}
}

// Failed reports whether the outcome is on the failure branch.
func (o Outcome[T]) Failed() bool { return o.failed }

// Value returns the success value. Only meaningful when !Failed().
func (o Outcome[T]) Value() T { return o.value }

// Reason returns the structured failure reason (ReasonNone for successes
// and faults).
func (o Outcome[T]) Reason() Reason { return o.reason }

// Err returns the OS-level fault, if any.
func (o Outcome[T]) Err() error { return o.err }

// Messages returns the non-fatal messages accumulated along the success path.
func (o Outcome[T]) Messages() []string { return o.messages }

// WithMessage appends a non-fatal message to a successful outcome.
// On the failure branch it is a no-op.
func (o Outcome[T]) WithMessage(msg string) Outcome[T] {
	if o.failed {
		return o
	}
	o.messages = append(o.messages[:len(o.messages):len(o.messages)], msg)
	return o
}

// FailureMessage returns the text the CLI should surface: the reason's
// mapped message, or the fault's error text. Empty for successes and for
// the silent criteria-miss reasons.
func (o Outcome[T]) FailureMessage() string {
	if !o.failed {
		return ""
	}
	if o.hasRendered {
		return o.rendered
	}
	if o.err != nil {
		return o.err.Error()
	}
	return o.reason.Message()
}

// MapMessage re-renders the failure representation through f, replacing what
// FailureMessage returns. Control flow is unaffected; the success branch
// passes through untouched.
func (o Outcome[T]) MapMessage(f func(Reason, error) string) Outcome[T] {
	if !o.failed {
		return o
	}
	o.rendered = f(o.reason, o.err)
	o.hasRendered = true
	return o
}

// Bind chains the next stage: on success f runs against the value and its
// result inherits the accumulated messages; on failure the failure
// propagates unchanged and f never runs.
func Bind[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	if o.failed {
		return Outcome[U]{
			reason:      o.reason,
			err:         o.err,
			failed:      true,
			rendered:    o.rendered,
			hasRendered: o.hasRendered,
		}
	}
	next := f(o.value)
	if next.failed {
		return next
	}
	if len(o.messages) > 0 {
		next.messages = append(append([]string{}, o.messages...), next.messages...)
	}
	return next
}

// Map transforms the success value without introducing a new failure branch.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	return Bind(o, func(v T) Outcome[U] { return Success(f(v)) })
}

// SuccessTee invokes f for its side effect when the outcome is a success,
// then returns the outcome unchanged. f cannot alter or fail the pipeline.
func (o Outcome[T]) SuccessTee(f func(T)) Outcome[T] {
	if !o.failed {
		f(o.value)
	}
	return o
}

// FailureTee invokes f for its side effect when the outcome is a failure,
// then returns the outcome unchanged.
func (o Outcome[T]) FailureTee(f func(Reason, error)) Outcome[T] {
	if o.failed {
		f(o.reason, o.err)
	}
	return o
}
