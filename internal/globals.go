package internal

import "time"

// defineGlobals pre-populates the global environment with the native
// functions spec.md §6 promises. Grotsky's defineGlobals wired up io,
// env, net, and strings modules; Lox's Non-goals exclude a module
// system, so only clock survives, reimplemented in the same
// nativeFunction shape.
func defineGlobals(globals *environment) {
	globals.define("clock", &nativeFunction{
		name:     "clock",
		arityVal: 0,
		fn: func(interp *interpreter, arguments []interface{}) interface{} {
			return float64(time.Now().UnixNano()) / float64(time.Second)
		},
	})
}
