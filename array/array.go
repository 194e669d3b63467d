package array

import (
	"iter"
)

// Number is any integer or floating point kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

func Map[I, O any](arr []I, fn func(I) O) []O {
	res := make([]O, len(arr))
	for i, v := range arr {
		res[i] = fn(v)
	}
	return res
}

// Mean returns the arithmetic mean of fn applied to every element of arr.
// The mean of an empty slice is zero.
func Mean[T any, N Number](arr []T, fn func(T) N) float64 {
	if len(arr) == 0 {
		return 0
	}
	var sum float64
	for _, v := range arr {
		sum += float64(fn(v))
	}
	return sum / float64(len(arr))
}

// BubbleSortFunc sorts s in place with repeated passes of adjacent
// exchanges, stopping after the first pass that exchanges nothing. It
// returns the number of exchanges made.
func BubbleSortFunc[T any](s []T, cmp func(a, b T) int) int {
	return BubbleSortSwap(len(s), func(i int) bool { return cmp(s[i], s[i+1]) > 0 }, func(i int) {
		s[i], s[i+1] = s[i+1], s[i]
	})
}

// BubbleSortSwap runs bubble sort passes over n positions. greater
// reports if position i must be exchanged with i+1 and swap performs the
// exchange.
func BubbleSortSwap(n int, greater func(i int) bool, swap func(i int)) int {
	swaps := 0
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for i := 0; i < n-pass-1; i++ {
			if greater(i) {
				swap(i)
				swapped = true
				swaps++
			}
		}
		if !swapped {
			break
		}
	}
	return swaps
}

func Iter[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// IndexFunc returns the first index i where fn(arr[i]) is true, or -1.
func IndexFunc[T any](arr []T, fn func(*T) bool) int {
	for i := range arr {
		if fn(&arr[i]) {
			return i
		}
	}
	return -1
}

// Insert places value at index, shifting the rest of the slice right.
func Insert[T any](array []T, value T, index int) []T {
	return append(array[:index], append([]T{value}, array[index:]...)...)
}

// Remove deletes the element at index while keeping the order of the
// remaining elements.
func Remove[T any](array []T, index int) []T {
	// clear the trailing slot so the backing array does not keep it alive
	var zero T
	copy(array[index:], array[index+1:])
	array[len(array)-1] = zero
	return array[:len(array)-1]
}
