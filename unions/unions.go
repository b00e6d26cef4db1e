// Package unions is the runtime support imported by code that gounion
// generates: the invalid state error, tuple carriers for tuple cases and
// small carrier types for common unions.
package unions

//go:generate go run gounion/cmd/gounion

// TrueOrFalse is a boolean that can be matched on.
//
//gounion:union TrueOrFalse = True | False
//gounion:record

// SuccessOrFailure is the outcome of an operation that produces a TSuccess
// or fails with a TFailure.
//
//gounion:union SuccessOrFailure[TSuccess any, TFailure any] = Success[TSuccess] | Failure[TFailure]
//gounion:extra asvalue

// SomeOrNone holds values or nothing.
//
//gounion:union SomeOrNone[T any] = Some[T] | None
//gounion:extra from asvalue

// SomeOneOrNone holds several values, a single value or nothing.
//
//gounion:union SomeOneOrNone[T any] = Some[T] | One[T] | None
//gounion:extra from asvalue

// SomeNoneOrError holds values, nothing or an error value.
//
//gounion:union SomeNoneOrError[T any, TError any] = Some[T] | None | Error[TError]
//gounion:extra asvalue

// SomeOneNoneOrError holds several values, a single value, nothing or an
// error value.
//
//gounion:union SomeOneNoneOrError[T any, TError any] = Some[T] | One[T] | None | Error[TError]
//gounion:extra asvalue

// ManyOrNone holds a non-empty collection or nothing. See ManyOrNoneOf.
//
//gounion:union ManyOrNone[T any] = Many[T] | None
//gounion:extra from asvalue

// ManyOneOrNone holds several values, exactly one value or nothing. See
// ManyOneOrNoneOf.
//
//gounion:union ManyOneOrNone[T any] = Many[T] | One[T] | None
//gounion:extra from asvalue

// ManyNoneOrError holds a non-empty collection, nothing or an error value.
//
//gounion:union ManyNoneOrError[T any, TError any] = Many[T] | None | Error[TError]
//gounion:extra asvalue

// ManyOneNoneOrError holds several values, exactly one value, nothing or an
// error value.
//
//gounion:union ManyOneNoneOrError[T any, TError any] = Many[T] | One[T] | None | Error[TError]
//gounion:extra asvalue

// Union2 holds a value of one of its 2 type arguments.
//
//gounion:union Union2[T0 any, T1 any] = T0 | T1
//gounion:alias 0 T0
//gounion:alias 1 T1

// Union3 holds a value of one of its 3 type arguments.
//
//gounion:union Union3[T0 any, T1 any, T2 any] = T0 | T1 | T2
//gounion:alias 0 T0
//gounion:alias 1 T1
//gounion:alias 2 T2

// Union4 holds a value of one of its 4 type arguments.
//
//gounion:union Union4[T0 any, T1 any, T2 any, T3 any] = T0 | T1 | T2 | T3
//gounion:alias 0 T0
//gounion:alias 1 T1
//gounion:alias 2 T2
//gounion:alias 3 T3

// Union5 holds a value of one of its 5 type arguments.
//
//gounion:union Union5[T0 any, T1 any, T2 any, T3 any, T4 any] = T0 | T1 | T2 | T3 | T4
//gounion:alias 0 T0
//gounion:alias 1 T1
//gounion:alias 2 T2
//gounion:alias 3 T3
//gounion:alias 4 T4

// Union6 holds a value of one of its 6 type arguments.
//
//gounion:union Union6[T0 any, T1 any, T2 any, T3 any, T4 any, T5 any] = T0 | T1 | T2 | T3 | T4 | T5
//gounion:alias 0 T0
//gounion:alias 1 T1
//gounion:alias 2 T2
//gounion:alias 3 T3
//gounion:alias 4 T4
//gounion:alias 5 T5

// Union7 holds a value of one of its 7 type arguments.
//
//gounion:union Union7[T0 any, T1 any, T2 any, T3 any, T4 any, T5 any, T6 any] = T0 | T1 | T2 | T3 | T4 | T5 | T6
//gounion:alias 0 T0
//gounion:alias 1 T1
//gounion:alias 2 T2
//gounion:alias 3 T3
//gounion:alias 4 T4
//gounion:alias 5 T5
//gounion:alias 6 T6

// Union8 holds a value of one of its 8 type arguments.
//
//gounion:union Union8[T0 any, T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any] = T0 | T1 | T2 | T3 | T4 | T5 | T6 | T7
//gounion:alias 0 T0
//gounion:alias 1 T1
//gounion:alias 2 T2
//gounion:alias 3 T3
//gounion:alias 4 T4
//gounion:alias 5 T5
//gounion:alias 6 T6
//gounion:alias 7 T7
