package internal

import (
	"time"
)

func defineGlobals(e *env) {
	defineClock(e)
}

// defineClock installs the only built-in: seconds since epoch as a
// double, millisecond resolution.
func defineClock(e *env) {
	var clockFn nativeFn
	clockFn.arityValue = 0
	clockFn.callFn = func(exec *exec, arguments []interface{}) interface{} {
		return float64(time.Now().UnixMilli()) / 1000.0
	}

	e.define("clock", &clockFn)
}
