// See https://github.com/golang/go/issues/61898
package xiter

import (
	"fmt"
	"iter"
	"strings"
)

// Map returns an iterator over f applied to seq.
func Map[In, Out any](f func(In) Out, seq iter.Seq[In]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(f(in)) {
				return
			}
		}
	}
}

// Enumerate pairs every value of seq with its index.
func Enumerate[V any](seq iter.Seq[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Strings formats every value of seq with the %v verb.
func Strings[V any](seq iter.Seq[V]) iter.Seq[string] {
	return Map(func(v V) string { return fmt.Sprint(v) }, seq)
}

// Join formats every value of seq and joins them with sep.
func Join[V any](seq iter.Seq[V], sep string) string {
	var b strings.Builder
	for i, s := range Enumerate(Strings(seq)) {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s)
	}
	return b.String()
}
