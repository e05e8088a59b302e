package internal

import "fmt"

// thisToken is used to address the synthetic "this" binding in an
// environment's value map; only its lexeme is ever consulted.
var thisToken = &token{lexeme: "this"}

// function is a user-defined function or method value: a declaration
// paired with the environment that was live when the declaration was
// reached. Calling it creates a fresh environment enclosed by closure,
// not by the caller's environment — this is what makes closures close.
type function struct {
	declaration   *functionStmt
	closure       *environment
	isInitializer bool
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

// returnSignal is the panic payload used to unwind a function body up to
// its call site on a `return` statement, per spec.md §7's "return as
// control flow" — never mistaken for a runtime error by the recover in
// call, since it carries its own type.
type returnSignal struct {
	value interface{}
}

func (f *function) call(interp *interpreter, arguments []interface{}) (result interface{}) {
	env := newEnvironment(f.closure)
	for i, param := range f.declaration.params {
		env.define(param.lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			if ret, ok := r.(returnSignal); ok {
				if f.isInitializer {
					result = f.closure.getAt(0, thisToken)
				} else {
					result = ret.value
				}
				return
			}
			panic(r)
		}
	}()

	interp.executeBlock(f.declaration.body, env)

	if f.isInitializer {
		return f.closure.getAt(0, thisToken)
	}
	return nil
}

// bind returns a new function identical to f except its closure is a
// fresh environment, enclosing f's own closure, with `this` bound to
// object. Two binds of the same method on the same instance produce two
// distinct callables that both see the same `this` (spec.md §8, law 7).
func (f *function) bind(object *instance) *function {
	env := newEnvironment(f.closure)
	env.define("this", object)
	return &function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}
