package internal

// class is a runtime class value: a frozen method table plus an optional
// superclass link. Method resolution walks the superclass chain, giving
// single inheritance with override-by-shadowing.
type class struct {
	name       string
	superclass *class
	methods    map[string]*function
}

// findMethod recursively walks the superclass chain and returns the
// first match, unbound.
func (c *class) findMethod(name string) *function {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

// arity is the arity of the class's initializer, or 0 if it has none.
func (c *class) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

// call constructs an instance. If an initializer exists it is bound and
// invoked for effect; its return value is discarded — construction
// always yields the instance (spec.md §8, law 6).
func (c *class) call(interp *interpreter, arguments []interface{}) interface{} {
	obj := &instance{class: c, fields: make(map[string]interface{})}
	if init := c.findMethod("init"); init != nil {
		init.bind(obj).call(interp, arguments)
	}
	return obj
}

func (c *class) String() string {
	return c.name
}
