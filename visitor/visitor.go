package visitor

// Visitor is an interface that Visits over pairs of (key, element).
// The Visit method calls the provided callback for each pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Count returns number of pairs a visitor yields
func Count[K comparable, E any](visit Visitor[K, E]) int {
	count := 0
	_ = visit(func(key K, element E) (bool, error) {
		count++
		return true, nil
	})
	return count
}
