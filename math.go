package aoc

import (
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, 1 if there are none.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	if x < y {
		return y - x
	}
	return x - y
}

// Digit returns the digit value of the byte or rune.
func Digit[T byte | rune](r T) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", rune(r))
	}
	return int(r - '0')
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// SplitInts splits s around sep and parses each part.
func SplitInts(s, sep string) []int {
	return Ints(strings.Split(s, sep)...)
}

// CutInts parses the two ints on either side of the first sep.
func CutInts(s, sep string) (int, int) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		log.Fatalf("no %q in %q", sep, s)
	}
	return Int(a), Int(b)
}

// TrimPrefix is strings.TrimPrefix that insists the prefix is present.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}
