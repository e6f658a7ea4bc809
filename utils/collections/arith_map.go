package collections

import (
	"github.com/tuannh982/arith-map/utils/math"
)

type MapEntry[V math.Number] struct {
	Key   string
	Value V
}

type ArithMap[V math.Number] interface {
	Contains(k string) bool
	Put(k string, v V, forced bool) error
	Get(k string) (V, error)
	Delete(k string) error
	Size() int
	Keys() []string
	Values() []V
	// Plus and Minus combine over the union of both key sets, a key
	// missing from one operand counts as zero. Add and Sub are the
	// in-place forms.
	Plus(other ArithMap[V]) ArithMap[V]
	Minus(other ArithMap[V]) ArithMap[V]
	Add(other ArithMap[V])
	Sub(other ArithMap[V])
	PlusScalar(s V) ArithMap[V]
	MinusScalar(s V) ArithMap[V]
	TimesScalar(s V) ArithMap[V]
	AddScalar(s V)
	SubScalar(s V)
	MulScalar(s V)
	// Prune drops every entry whose value is the zero of V.
	Prune()
	Equal(other ArithMap[V]) bool
}
