package mixer

// mergeSort returns s ordered by cmp. Equal elements keep their relative order.
// The result may share storage with s when len(s) < 2.
func mergeSort[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) < 2 {
		return s
	}

	mid := len(s) / 2
	return merge(mergeSort(s[:mid], cmp), mergeSort(s[mid:], cmp), cmp)
}

func merge[T any](left, right []T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))

	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if cmp(left[l], right[r]) <= 0 {
			out = append(out, left[l])
			l++
		} else {
			out = append(out, right[r])
			r++
		}
	}

	out = append(out, left[l:]...)
	return append(out, right[r:]...)
}
