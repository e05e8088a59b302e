package internal

// callable is any runtime value that can appear on the left of a call
// expression: user functions, classes (construction), and natives.
type callable interface {
	arity() int
	call(interp *interpreter, arguments []interface{}) interface{}
	String() string
}

// nativeFunction wraps a host-provided Go function as a Lox callable, the
// shape used for the global `clock` binding (spec.md §6).
type nativeFunction struct {
	name     string
	arityVal int
	fn       func(interp *interpreter, arguments []interface{}) interface{}
}

func (n *nativeFunction) arity() int { return n.arityVal }

func (n *nativeFunction) call(interp *interpreter, arguments []interface{}) interface{} {
	return n.fn(interp, arguments)
}

func (n *nativeFunction) String() string {
	return "<native fn>"
}
