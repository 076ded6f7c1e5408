package itergen

import (
	"iter"
	"sync"
)

// Generator is the single-step iteration capability implemented by compiled
// generators.
//
// Next runs the generator until it emits a value or terminates. It returns
// (v, true, nil) when the generator emitted v, and (zero, false, nil) once the
// generator has completed. A failure returned by the generator body is
// propagated as (zero, false, err); the generator is terminated after such a
// failure and every later call reports completion.
//
// Once Next has reported completion or a failure, every subsequent call
// returns (zero, false, nil) without running any code of the generator body.
//
// Generators are not safe for concurrent use. See Synchronized.
type Generator[T any] interface {
	Next() (T, bool, error)
}

// Stopper is implemented by generators which can release the bindings they
// hold while suspended. Stopping a generator terminates it without running
// any more of its body.
type Stopper interface {
	Stop()
}

// Stop terminates g if it implements Stopper.
func Stop[T any](g Generator[T]) {
	if s, ok := g.(Stopper); ok {
		s.Stop()
	}
}

// Func adapts a function to the Generator interface.
type Func[T any] func() (T, bool, error)

// Next calls f.
func (f Func[T]) Next() (T, bool, error) { return f() }

// Collect calls Next until the generator completes, returning the values it
// emitted. If the generator fails, Collect returns the values emitted before
// the failure along with the error.
func Collect[T any](g Generator[T]) ([]T, error) {
	var values []T
	err := Run(g, func(v T) error {
		values = append(values, v)
		return nil
	})
	return values, err
}

// All returns an iterator over the values emitted by g. A failure of the
// generator is produced as the final pair of the sequence, with a zero value.
// Breaking out of the loop stops the generator.
func All[T any](g Generator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, ok, err := g.Next()
			if err != nil {
				yield(v, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				Stop(g)
				return
			}
		}
	}
}

// Direct runs a generator function in direct style, appending every emitted
// value to an unbounded slice. This is the reference behavior of compiled
// generators: calling Next until completion produces the same values in the
// same order, followed by the same failure.
func Direct[T any](f func(Yield[T]) error) ([]T, error) {
	var values []T
	err := f(func(v T) { values = append(values, v) })
	return values, err
}

// Synchronized wraps g so that calls to Next are serialized by a mutex.
func Synchronized[T any](g Generator[T]) Generator[T] {
	return &synchronized[T]{gen: g}
}

type synchronized[T any] struct {
	mutex sync.Mutex
	gen   Generator[T]
}

func (s *synchronized[T]) Next() (T, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.gen.Next()
}

func (s *synchronized[T]) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	Stop(s.gen)
}
