// Package ct provides small, pure, generic higher-order functions: mapping,
// folding, keyed updates and function composition.
//
// Nothing in this package holds state. Every function returns a new value and
// leaves its arguments untouched, so all of it is safe for concurrent use.
package ct

import "github.com/samber/mo"

// Monoid defines an algebraic structure with identity and associative append.
type Monoid[A any] struct {
	Empty  func() A
	Append func(A, A) A
}

// Map applies f to each element of xs and returns the results in order.
// The result always has len(xs) elements and is never nil.
func Map[A, B any](xs []A, f func(A) B) []B {
	result := make([]B, len(xs))
	for i, x := range xs {
		result[i] = f(x)
	}
	return result
}

// TryMap is Map for functions that can fail. It stops at the first error.
func TryMap[A, B any](xs []A, f func(A) (B, error)) ([]B, error) {
	result := make([]B, len(xs))
	for i, x := range xs {
		y, err := f(x)
		if err != nil {
			return nil, err
		}
		result[i] = y
	}
	return result, nil
}

// Filter returns elements that satisfy the predicate.
func Filter[A any](xs []A, pred func(A) bool) []A {
	result := make([]A, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			result = append(result, x)
		}
	}
	return result
}

// Reduce folds xs from left to right, starting from init.
// An empty xs yields init.
func Reduce[A, T any](xs []T, init A, f func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Concat combines a slice of values using the monoid.
func Concat[A any](m Monoid[A], xs []A) A {
	return Reduce(xs, m.Empty(), m.Append)
}

// FoldMap maps and then folds in one pass.
func FoldMap[A, B any](xs []A, m Monoid[B], f func(A) B) B {
	return Reduce(xs, m.Empty(), func(acc B, x A) B {
		return m.Append(acc, f(x))
	})
}

// Identity returns its argument.
func Identity[T any](x T) T {
	return x
}

// Compose returns a function that applies f and then g.
func Compose[T any](f, g func(T) T) func(T) T {
	return func(x T) T {
		return g(f(x))
	}
}

// ComposeE is Compose for transforms that can fail. g is not called when f
// fails.
func ComposeE[T any](f, g func(T) (T, error)) func(T) (T, error) {
	return func(x T) (T, error) {
		y, err := f(x)
		if err != nil {
			var zero T
			return zero, err
		}
		return g(y)
	}
}

// EndoMonoid is the monoid of functions from T to T under Compose.
func EndoMonoid[T any]() Monoid[func(T) T] {
	return Monoid[func(T) T]{
		Empty:  func() func(T) T { return Identity[T] },
		Append: Compose[T],
	}
}

// Pipeline composes fns left to right. With no functions it is Identity.
func Pipeline[T any](fns ...func(T) T) func(T) T {
	return Concat(EndoMonoid[T](), fns)
}

// Get looks up k in m and fails with a *MissingKeyError when it is absent.
func Get[K comparable, V any](m map[K]V, k K) (V, error) {
	v, ok := m[k]
	if !ok {
		var zero V
		return zero, &MissingKeyError{Key: k}
	}
	return v, nil
}

// Update returns a copy of m with the value at k replaced by f(m[k]).
// It fails with a *MissingKeyError when k is not in m.
func Update[K comparable, V any](m map[K]V, k K, f func(V) V) (map[K]V, error) {
	v, err := Get(m, k)
	if err != nil {
		return nil, err
	}
	result := clone(m)
	result[k] = f(v)
	return result, nil
}

// Alter returns a copy of m with the entry at k set from f. f sees None when
// k is absent, and returning None removes k from the result.
func Alter[K comparable, V any](m map[K]V, k K, f func(mo.Option[V]) mo.Option[V]) map[K]V {
	current := mo.None[V]()
	if v, ok := m[k]; ok {
		current = mo.Some(v)
	}
	result := clone(m)
	if v, ok := f(current).Get(); ok {
		result[k] = v
	} else {
		delete(result, k)
	}
	return result
}

// Iterate applies step to s until done holds and returns every state visited,
// s included. The state for which done first holds is the last element.
func Iterate[S any](s S, step func(S) S, done func(S) bool) []S {
	states := []S{s}
	for !done(s) {
		s = step(s)
		states = append(states, s)
	}
	return states
}

func clone[K comparable, V any](m map[K]V) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
