package utils


func Filter[T any](array []T, condition func(T) bool) []T {
	var filtered []T
	for _, elem := range array {
		if condition(elem) { filtered = append(filtered, elem) }
	}

	return filtered
}

func Map[T any, V any](array []T, transform func(T) V) []V {
	mapped := make([]V, 0, len(array))
	for _, elem := range array {
		mapped = append(mapped, transform(elem))
	}

	return mapped
}

func Find[T any](array []T, condition func(T) bool) (T, bool) {
	for _, elem := range array {
		if condition(elem) { return elem, true }
	}

	return GetZero[T](), false
}
