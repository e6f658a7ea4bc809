package collections

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/tuannh982/arith-map/utils/math"
)

type hashArithMap[V math.Number] struct {
	entries map[string]V
}

func NewArithMap[V math.Number]() ArithMap[V] {
	return &hashArithMap[V]{
		entries: make(map[string]V),
	}
}

func ArithMapOf[V math.Number](entries ...MapEntry[V]) ArithMap[V] {
	m := &hashArithMap[V]{
		entries: make(map[string]V, len(entries)),
	}
	for _, e := range entries {
		_ = m.Put(e.Key, e.Value, true)
	}
	return m
}

func (m *hashArithMap[V]) Contains(k string) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *hashArithMap[V]) Put(k string, v V, forced bool) error {
	if forced {
		m.entries[k] = v
		return nil
	}
	if m.Contains(k) {
		return ErrValueExisted
	}
	m.entries[k] = v
	return nil
}

func (m *hashArithMap[V]) Get(k string) (v V, err error) {
	if !m.Contains(k) {
		return v, ErrValueNotExisted
	}
	return m.entries[k], nil
}

func (m *hashArithMap[V]) Delete(k string) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	delete(m.entries, k)
	return nil
}

func (m *hashArithMap[V]) Size() int {
	return len(m.entries)
}

func (m *hashArithMap[V]) Keys() []string {
	arr := make([]string, 0, m.Size())
	for k := range m.entries {
		arr = append(arr, k)
	}
	return arr
}

func (m *hashArithMap[V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, v := range m.entries {
		arr = append(arr, v)
	}
	return arr
}

func (m *hashArithMap[V]) Plus(other ArithMap[V]) ArithMap[V] {
	r := m.clone()
	r.Add(other)
	return r
}

func (m *hashArithMap[V]) Minus(other ArithMap[V]) ArithMap[V] {
	r := m.clone()
	r.Sub(other)
	return r
}

func (m *hashArithMap[V]) Add(other ArithMap[V]) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		if m.Contains(k) {
			m.entries[k] += v
		} else {
			m.entries[k] = v
		}
	}
}

func (m *hashArithMap[V]) Sub(other ArithMap[V]) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		if m.Contains(k) {
			m.entries[k] -= v
		} else {
			m.entries[k] = math.Zero[V]() - v
		}
	}
}

func (m *hashArithMap[V]) PlusScalar(s V) ArithMap[V] {
	r := m.clone()
	r.AddScalar(s)
	return r
}

func (m *hashArithMap[V]) MinusScalar(s V) ArithMap[V] {
	r := m.clone()
	r.SubScalar(s)
	return r
}

func (m *hashArithMap[V]) TimesScalar(s V) ArithMap[V] {
	r := m.clone()
	r.MulScalar(s)
	return r
}

func (m *hashArithMap[V]) AddScalar(s V) {
	for k := range m.entries {
		m.entries[k] += s
	}
}

func (m *hashArithMap[V]) SubScalar(s V) {
	for k := range m.entries {
		m.entries[k] -= s
	}
}

func (m *hashArithMap[V]) MulScalar(s V) {
	for k := range m.entries {
		m.entries[k] *= s
	}
}

func (m *hashArithMap[V]) Prune() {
	zero := math.Zero[V]()
	for k, v := range m.entries {
		if v == zero {
			delete(m.entries, k)
		}
	}
}

func (m *hashArithMap[V]) Equal(other ArithMap[V]) bool {
	if o, ok := other.(*hashArithMap[V]); ok {
		return maps.Equal(m.entries, o.entries)
	}
	if m.Size() != other.Size() {
		return false
	}
	for k, v := range m.entries {
		v2, err := other.Get(k)
		if err != nil || v2 != v {
			return false
		}
	}
	return true
}

func (m *hashArithMap[V]) clone() *hashArithMap[V] {
	return &hashArithMap[V]{
		entries: maps.Clone(m.entries),
	}
}

func (m hashArithMap[V]) String() string {
	return fmt.Sprint(m.entries)
}
