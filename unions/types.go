package unions

// Success carries the value of a successful outcome.
type Success[T any] struct {
	Value T
}

// Failure carries the value of a failed outcome.
type Failure[T any] struct {
	Value T
}

// Error carries an error-like value that is not necessarily an error.
type Error[T any] struct {
	Value T
}

// Some carries one or more values.
type Some[T any] struct {
	Values []T
}

// Many carries any number of values.
type Many[T any] struct {
	Values []T
}

// One carries exactly one value.
type One[T any] struct {
	Value T
}

// None marks the absence of a value.
type None struct{}

// True and False are the cases of TrueOrFalse.
type (
	True  struct{}
	False struct{}
)

// NewSuccess wraps value in a Success.
func NewSuccess[T any](value T) Success[T] {
	return Success[T]{Value: value}
}

// NewFailure wraps value in a Failure.
func NewFailure[T any](value T) Failure[T] {
	return Failure[T]{Value: value}
}

// NewError wraps value in an Error.
func NewError[T any](value T) Error[T] {
	return Error[T]{Value: value}
}

// NewSome wraps values in a Some. The slice is not copied.
func NewSome[T any](values ...T) Some[T] {
	return Some[T]{Values: values}
}

// NewMany wraps values in a Many. The slice is not copied.
func NewMany[T any](values ...T) Many[T] {
	return Many[T]{Values: values}
}

// NewOne wraps value in a One.
func NewOne[T any](value T) One[T] {
	return One[T]{Value: value}
}

// ManyOrNoneOf returns None for a nil or empty slice and Many otherwise.
func ManyOrNoneOf[T any](values []T) ManyOrNone[T] {
	if len(values) == 0 {
		return NewManyOrNoneFromNone[T](None{})
	}
	return NewManyOrNoneFromMany(NewMany(values...))
}

// ManyOneOrNoneOf returns None for a nil or empty slice, One for a single
// element and Many otherwise.
func ManyOneOrNoneOf[T any](values []T) ManyOneOrNone[T] {
	switch len(values) {
	case 0:
		return NewManyOneOrNoneFromNone[T](None{})
	case 1:
		return NewManyOneOrNoneFromOne(NewOne(values[0]))
	}
	return NewManyOneOrNoneFromMany(NewMany(values...))
}

// ManyNoneOrErrorOf returns None for a nil or empty slice and Many otherwise.
func ManyNoneOrErrorOf[T, TError any](values []T) ManyNoneOrError[T, TError] {
	if len(values) == 0 {
		return NewManyNoneOrErrorFromNone[T, TError](None{})
	}
	return NewManyNoneOrErrorFromMany[T, TError](NewMany(values...))
}
