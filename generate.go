package arrays

// Generate builds a new sequence of exactly n elements where element i is
// mapper(i). The mapper receives only the index. A negative n yields
// ErrNegativeCount.
func Generate[T any](n int, mapper func(index int) T) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount.F("got %d", n)
	}
	out := make([]T, n)
	if mapper == nil {
		return out, nil
	}
	for i := range out {
		out[i] = mapper(i)
	}
	return out, nil
}
