// Some helpers using closures to generate values
package valgen

import "strconv"

// MakeIncreasingGen returns a generator yielding start+1, start+2, ...
func MakeIncreasingGen(start int) func() int {
	current := start
	return func() int {
		current++
		return current
	}
}

// MakeCounter returns a generator yielding 0, 1, 2, ...
func MakeCounter() func() int {
	return MakeIncreasingGen(-1)
}

// MakeNameGen returns a generator yielding prefix0, prefix1, ...
func MakeNameGen(prefix string) func() string {
	next := MakeCounter()
	return func() string {
		return prefix + strconv.Itoa(next())
	}
}
