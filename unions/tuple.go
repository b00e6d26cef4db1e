package unions

// TupleN carry the elements of tuple cases. A case written as (A, B) is
// stored as a Tuple2[A, B].
type Tuple2[T1, T2 any] struct {
	Item1 T1
	Item2 T2
}

type Tuple3[T1, T2, T3 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
}

type Tuple4[T1, T2, T3, T4 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
	Item5 T5
}

type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
	Item5 T5
	Item6 T6
}

type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
	Item5 T5
	Item6 T6
	Item7 T7
}

type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
	Item5 T5
	Item6 T6
	Item7 T7
	Item8 T8
}

func NewTuple2[T1, T2 any](item1 T1, item2 T2) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{item1, item2}
}

func NewTuple3[T1, T2, T3 any](item1 T1, item2 T2, item3 T3) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{item1, item2, item3}
}

func NewTuple4[T1, T2, T3, T4 any](item1 T1, item2 T2, item3 T3, item4 T4) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{item1, item2, item3, item4}
}

func NewTuple5[T1, T2, T3, T4, T5 any](item1 T1, item2 T2, item3 T3, item4 T4, item5 T5) Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{item1, item2, item3, item4, item5}
}

func NewTuple6[T1, T2, T3, T4, T5, T6 any](item1 T1, item2 T2, item3 T3, item4 T4, item5 T5, item6 T6) Tuple6[T1, T2, T3, T4, T5, T6] {
	return Tuple6[T1, T2, T3, T4, T5, T6]{item1, item2, item3, item4, item5, item6}
}

func NewTuple7[T1, T2, T3, T4, T5, T6, T7 any](item1 T1, item2 T2, item3 T3, item4 T4, item5 T5, item6 T6, item7 T7) Tuple7[T1, T2, T3, T4, T5, T6, T7] {
	return Tuple7[T1, T2, T3, T4, T5, T6, T7]{item1, item2, item3, item4, item5, item6, item7}
}

func NewTuple8[T1, T2, T3, T4, T5, T6, T7, T8 any](item1 T1, item2 T2, item3 T3, item4 T4, item5 T5, item6 T6, item7 T7, item8 T8) Tuple8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{item1, item2, item3, item4, item5, item6, item7, item8}
}

// Unpack returns the elements of t in order.
func (t Tuple2[T1, T2]) Unpack() (T1, T2) {
	return t.Item1, t.Item2
}

func (t Tuple3[T1, T2, T3]) Unpack() (T1, T2, T3) {
	return t.Item1, t.Item2, t.Item3
}

func (t Tuple4[T1, T2, T3, T4]) Unpack() (T1, T2, T3, T4) {
	return t.Item1, t.Item2, t.Item3, t.Item4
}

func (t Tuple5[T1, T2, T3, T4, T5]) Unpack() (T1, T2, T3, T4, T5) {
	return t.Item1, t.Item2, t.Item3, t.Item4, t.Item5
}

func (t Tuple6[T1, T2, T3, T4, T5, T6]) Unpack() (T1, T2, T3, T4, T5, T6) {
	return t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6
}

func (t Tuple7[T1, T2, T3, T4, T5, T6, T7]) Unpack() (T1, T2, T3, T4, T5, T6, T7) {
	return t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6, t.Item7
}

func (t Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Unpack() (T1, T2, T3, T4, T5, T6, T7, T8) {
	return t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6, t.Item7, t.Item8
}
