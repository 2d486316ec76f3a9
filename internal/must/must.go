// Package must provides runtime assertions for programmer errors.
// A failed assertion means the program is operating on invalid data
// and panics rather than continuing.
package must

import "fmt"

// Bef panics if b is false.
func Bef(b bool, format string, args ...any) {
	if !b {
		panicErrorf(format, args...)
	}
}

// NotBef panics if b is true.
func NotBef(b bool, format string, args ...any) {
	if b {
		panicErrorf(format, args...)
	}
}

// BeLessEqf panics unless a <= b.
func BeLessEqf(a, b int, format string, args ...any) {
	if a > b {
		panicErrorf("%v\nwant a <= b\na = %v\nb = %v",
			fmt.Errorf(format, args...), a, b)
	}
}

// NotBeNilf panics if v is nil.
func NotBeNilf(v any, format string, args ...any) {
	if v == nil {
		panicErrorf(format, args...)
	}
}

// Failf unconditionally panics with the given message.
func Failf(format string, args ...any) {
	panicErrorf(format, args...)
}

func panicErrorf(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}
