// Package fnkit provides partial application and composition helpers for
// plain function values.
//
// Every operation of the arrays package is an ordinary first-class generic
// function, so any of them can be turned into a curried chain:
//
//	add := func(a, b int) int { return a + b }
//	inc := fnkit.Partial2(add, 1)
//	inc(41) // 42
//
// Each partial application step returns a fresh closure that captures only
// the values bound so far; applying one chain never disturbs another chain
// built from the same function.
package fnkit

// Curry2 converts a binary function into its curried form.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 converts a ternary function into its curried form,
// taking one argument per application step.
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

// Partial2 binds the first argument of a binary function,
// returning a function that awaits the remainder.
func Partial2[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

// Partial3 binds the first argument of a ternary function.
// Chaining Partial3 with Partial2 binds the first two.
func Partial3[A, B, C, R any](fn func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return fn(a, b, c)
	}
}

// Partial3x2 binds the first two arguments of a ternary function,
// returning a function that awaits the last one.
func Partial3x2[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return fn(a, b, c)
	}
}

// Compose2 returns the mathematical composition of f after g: f(g(a)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Pipe2 returns the left-to-right composition of g then f: f(g(a)).
// It is Compose2 with the arguments in application order.
func Pipe2[A, B, C any](g func(A) B, f func(B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}
