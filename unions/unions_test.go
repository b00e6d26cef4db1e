package unions_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gounion/unions"
)

func TestInvalidState(t *testing.T) {
	err := unions.InvalidState("Shape")
	assert.ErrorIs(t, err, unions.ErrInvalidState)
	assert.EqualError(t, err, "Shape: union holds no case")

	var ise *unions.InvalidStateError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "Shape", ise.Union)
}

func TestZeroValueIsInvalid(t *testing.T) {
	var u unions.TrueOrFalse
	assert.False(t, u.IsTrue())
	assert.False(t, u.IsFalse())

	_, err := u.Value()
	assert.ErrorIs(t, err, unions.ErrInvalidState)

	_, err = unions.MatchTrueOrFalse(u,
		func(unions.True) int { return 1 },
		func(unions.False) int { return 0 })
	assert.ErrorIs(t, err, unions.ErrInvalidState)

	called := false
	err = u.Switch(func(unions.True) { called = true }, func(unions.False) { called = true })
	assert.ErrorIs(t, err, unions.ErrInvalidState)
	assert.False(t, called)
}

func TestTrueOrFalse(t *testing.T) {
	yes := unions.NewTrueOrFalseFromTrue(unions.True{})
	no := unions.NewTrueOrFalseFromFalse(unions.False{})

	assert.True(t, yes.IsTrue())
	assert.False(t, yes.IsFalse())
	_, ok := yes.TryGetAsFalse()
	assert.False(t, ok)

	v, err := no.Value()
	require.NoError(t, err)
	assert.Equal(t, unions.False{}, v)

	assert.True(t, yes.Equal(unions.NewTrueOrFalseFromTrue(unions.True{})))
	assert.False(t, yes.Equal(no))
	assert.True(t, unions.TrueOrFalse{}.Equal(unions.TrueOrFalse{}))
	assert.False(t, unions.TrueOrFalse{}.Equal(no))

	toBool := func(u unions.TrueOrFalse) bool {
		b, err := unions.MatchTrueOrFalse(u,
			func(unions.True) bool { return true },
			func(unions.False) bool { return false })
		require.NoError(t, err)
		return b
	}
	assert.True(t, toBool(yes))
	assert.False(t, toBool(no))
}

func TestSuccessOrFailure(t *testing.T) {
	ok := unions.NewSuccessOrFailureFromSuccess[int, error](unions.NewSuccess(42))
	failed := unions.NewSuccessOrFailureFromFailure[int](unions.NewFailure(errors.New("boom")))

	n, found := ok.TryGetAsSuccessValue()
	assert.True(t, found)
	assert.Equal(t, 42, n)
	_, found = ok.TryGetAsFailureValue()
	assert.False(t, found)

	err, found := failed.TryGetAsFailureValue()
	assert.True(t, found)
	assert.EqualError(t, err, "boom")

	describe := func(u unions.SuccessOrFailure[int, error]) string {
		s, err := unions.MatchSuccessOrFailure(u,
			func(s unions.Success[int]) string { return "ok " + strconv.Itoa(s.Value) },
			func(f unions.Failure[error]) string { return "failed: " + f.Value.Error() })
		require.NoError(t, err)
		return s
	}
	assert.Equal(t, "ok 42", describe(ok))
	assert.Equal(t, "failed: boom", describe(failed))
}

func TestMatchContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	u := unions.NewSuccessOrFailureFromSuccess[string, string](unions.NewSuccess("done"))
	var calls []string
	out, err := unions.MatchSuccessOrFailureContext(ctx, u,
		func(ctx context.Context, s unions.Success[string]) (string, error) {
			calls = append(calls, "success")
			return s.Value, ctx.Err()
		},
		func(ctx context.Context, f unions.Failure[string]) (string, error) {
			calls = append(calls, "failure")
			return f.Value, nil
		})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "done", out)
	assert.Equal(t, []string{"success"}, calls)

	err = u.SwitchContext(context.Background(),
		func(context.Context, unions.Success[string]) error { return nil },
		func(context.Context, unions.Failure[string]) error { return errors.New("unexpected") })
	assert.NoError(t, err)
}

func TestSomeOrNone(t *testing.T) {
	some := unions.SomeOrNone[string]{}.FromSome(unions.NewSome("a", "b"))
	none := unions.SomeOrNone[string]{}.FromNone(unions.None{})

	values, ok := some.TryGetAsSomeValues()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, values)

	values, ok = none.TryGetAsSomeValues()
	assert.False(t, ok)
	assert.Nil(t, values)

	var seen []string
	require.NoError(t, some.Switch(
		func(s unions.Some[string]) { seen = append(seen, s.Values...) },
		func(unions.None) { seen = append(seen, "none") }))
	require.NoError(t, none.Switch(
		func(s unions.Some[string]) { seen = append(seen, s.Values...) },
		func(unions.None) { seen = append(seen, "none") }))
	assert.Equal(t, []string{"a", "b", "none"}, seen)

	assert.Equal(t, unions.NewSomeOrNoneFromSome(unions.NewSome("a", "b")), some)
}

func TestTuples(t *testing.T) {
	pair := unions.NewTuple2("x", 1)
	a, b := pair.Unpack()
	assert.Equal(t, "x", a)
	assert.Equal(t, 1, b)
	assert.Equal(t, unions.Tuple2[string, int]{Item1: "x", Item2: 1}, pair)

	eight := unions.NewTuple8(1, 2, 3, 4, 5, 6, 7, "eight")
	assert.Equal(t, "eight", eight.Item8)
	_, _, _, _, _, _, seven, _ := eight.Unpack()
	assert.Equal(t, 7, seven)
}

func TestManyOrNoneOf(t *testing.T) {
	assert.True(t, unions.ManyOrNoneOf[int](nil).IsNone())
	assert.True(t, unions.ManyOrNoneOf([]int{}).IsNone())

	u := unions.ManyOrNoneOf([]int{1, 2})
	assert.False(t, u.IsNone())
	values, ok := u.TryGetAsManyValues()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, values)
	assert.Equal(t, unions.ManyOrNone[int]{}.FromMany(unions.NewMany(1, 2)), u)
}

func TestManyOneOrNoneOf(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"nil", nil, "none"},
		{"empty", []string{}, "none"},
		{"single", []string{"a"}, "one a"},
		{"several", []string{"a", "b"}, "many 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unions.MatchManyOneOrNone(unions.ManyOneOrNoneOf(tt.values),
				func(m unions.Many[string]) string { return "many " + strconv.Itoa(len(m.Values)) },
				func(o unions.One[string]) string { return "one " + o.Value },
				func(unions.None) string { return "none" })
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	v, ok := unions.ManyOneOrNoneOf([]string{"only"}).TryGetAsOneValue()
	assert.True(t, ok)
	assert.Equal(t, "only", v)
}

func TestManyNoneOrError(t *testing.T) {
	empty := unions.ManyNoneOrErrorOf[int, error](nil)
	assert.True(t, empty.IsNone())

	full := unions.ManyNoneOrErrorOf[int, error]([]int{3})
	values, ok := full.TryGetAsManyValues()
	require.True(t, ok)
	assert.Equal(t, []int{3}, values)

	failed := unions.NewManyNoneOrErrorFromError[int](unions.NewError(errors.New("offline")))
	err, ok := failed.TryGetAsErrorValue()
	require.True(t, ok)
	assert.EqualError(t, err, "offline")
	_, ok = failed.TryGetAsManyValues()
	assert.False(t, ok)

	v, err := failed.Value()
	require.NoError(t, err)
	assert.IsType(t, unions.Error[error]{}, v)
}

func TestSomeNoneOrError(t *testing.T) {
	count := func(u unions.SomeNoneOrError[string, string]) string {
		out, err := unions.MatchSomeNoneOrError(u,
			func(s unions.Some[string]) string { return strconv.Itoa(len(s.Values)) },
			func(unions.None) string { return "-" },
			func(e unions.Error[string]) string { return "error: " + e.Value })
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, "2", count(unions.NewSomeNoneOrErrorFromSome[string, string](unions.NewSome("a", "b"))))
	assert.Equal(t, "-", count(unions.NewSomeNoneOrErrorFromNone[string, string](unions.None{})))
	assert.Equal(t, "error: late", count(unions.NewSomeNoneOrErrorFromError[string](unions.NewError("late"))))

	var u unions.SomeNoneOrError[string, string]
	_, err := u.Value()
	assert.ErrorIs(t, err, unions.ErrInvalidState)
}

func TestSomeOneOrNone(t *testing.T) {
	one := unions.SomeOneOrNone[int]{}.FromOne(unions.NewOne(7))
	assert.True(t, one.IsOne())
	assert.False(t, one.IsSome())
	v, ok := one.TryGetAsOneValue()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	some := unions.SomeOneOrNone[int]{}.FromSome(unions.NewSome(1, 2, 3))
	values, ok := some.TryGetAsSomeValues()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, values)
	_, ok = some.TryGetAsOneValue()
	assert.False(t, ok)
}

func TestExactlyOneCaseIsHeld(t *testing.T) {
	type flags struct{ some, one, none, err bool }
	tests := []struct {
		name string
		u    unions.SomeOneNoneOrError[int, string]
		want flags
	}{
		{"some", unions.NewSomeOneNoneOrErrorFromSome[int, string](unions.NewSome(1, 2)), flags{some: true}},
		{"one", unions.NewSomeOneNoneOrErrorFromOne[int, string](unions.NewOne(1)), flags{one: true}},
		{"none", unions.NewSomeOneNoneOrErrorFromNone[int, string](unions.None{}), flags{none: true}},
		{"error", unions.NewSomeOneNoneOrErrorFromError[int](unions.NewError("bad")), flags{err: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flags{tt.u.IsSome(), tt.u.IsOne(), tt.u.IsNone(), tt.u.IsError()}
			assert.Equal(t, tt.want, got)

			_, ok := tt.u.TryGetAsSome()
			assert.Equal(t, tt.want.some, ok)
			_, ok = tt.u.TryGetAsOne()
			assert.Equal(t, tt.want.one, ok)
			_, ok = tt.u.TryGetAsNone()
			assert.Equal(t, tt.want.none, ok)
			_, ok = tt.u.TryGetAsError()
			assert.Equal(t, tt.want.err, ok)
		})
	}
}

func TestManyOneNoneOrError(t *testing.T) {
	u := unions.NewManyOneNoneOrErrorFromMany[string, error](unions.NewMany("x", "y"))
	var seen []string
	err := u.Switch(
		func(m unions.Many[string]) { seen = append(seen, m.Values...) },
		func(o unions.One[string]) { seen = append(seen, o.Value) },
		func(unions.None) { seen = append(seen, "none") },
		func(e unions.Error[error]) { seen = append(seen, e.Value.Error()) })
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, seen)
}

func TestPositionalUnions(t *testing.T) {
	text := unions.NewUnion2FromT1[int]("ten")
	assert.False(t, text.IsT0())
	s, ok := text.TryGetAsT1()
	require.True(t, ok)
	assert.Equal(t, "ten", s)
	_, ok = text.TryGetAsT0()
	assert.False(t, ok)

	describe := func(u unions.Union3[int, string, bool]) string {
		out, err := unions.MatchUnion3(u,
			func(n int) string { return "int " + strconv.Itoa(n) },
			func(s string) string { return "string " + s },
			func(b bool) string { return "bool " + strconv.FormatBool(b) })
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, "int 1", describe(unions.NewUnion3FromT0[int, string, bool](1)))
	assert.Equal(t, "string a", describe(unions.NewUnion3FromT1[int, string, bool]("a")))
	assert.Equal(t, "bool true", describe(unions.NewUnion3FromT2[int, string](true)))

	last := unions.NewUnion8FromT7[int, int, int, int, int, int, int, string]("last")
	v, err := last.Value()
	require.NoError(t, err)
	assert.Equal(t, "last", v)
	assert.True(t, last.IsT7())
	assert.False(t, last.IsT0())

	_, err = unions.Union4[int, int, int, int]{}.Value()
	assert.ErrorIs(t, err, unions.ErrInvalidState)
}
