// Package itergen is the runtime of compiled generators.
//
// A generator function is an ordinary Go function that receives a Yield
// parameter and calls it each time it has a value to emit:
//
//	func Squares(n int, yield itergen.Yield[int]) error {
//		for i := 1; i <= n; i++ {
//			yield(i * i)
//		}
//		return nil
//	}
//
// The itergen compiler turns such a function into a state machine type,
// SquaresGenerator, whose Next method runs the body up to the next call to
// yield and returns the emitted value. The direct-style function remains
// valid Go; Direct runs it to completion and collects the values it emits.
package itergen

// Yield is the suspend capability of a generator function. Calling it emits a
// value to the consumer of the generator.
//
// In compiled generators, the call suspends the function until the next call
// to Next. A Yield value may only be called directly from the body of the
// generator function that received it; it must not be stored, passed to other
// functions or called from function literals.
type Yield[T any] func(T)

// Run drives a generator to completion, calling f for each value that the
// generator emits. If f returns an error, the generator is stopped and the
// error is returned. A failure of the generator body is returned as is.
func Run[T any](g Generator[T], f func(T) error) error {
	done := false
	defer func() {
		if !done {
			Stop(g)
		}
	}()

	for {
		v, ok, err := g.Next()
		if err != nil {
			done = true
			return err
		}
		if !ok {
			done = true
			return nil
		}
		if err := f(v); err != nil {
			return err
		}
	}
}
