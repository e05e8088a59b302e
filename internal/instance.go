package internal

import "fmt"

// instance is a runtime object: a class pointer plus a mutable field
// map. Fields shadow methods of the same name on lookup.
type instance struct {
	class  *class
	fields map[string]interface{}
}

func (i *instance) get(name *token) interface{} {
	if value, ok := i.fields[name.lexeme]; ok {
		return value
	}
	if method := i.class.findMethod(name.lexeme); method != nil {
		return method.bind(i)
	}
	throwRuntimeError(name, "Undefined property '"+name.lexeme+"'.")
	return nil
}

func (i *instance) set(name *token, value interface{}) {
	i.fields[name.lexeme] = value
}

func (i *instance) String() string {
	return fmt.Sprintf("%s instance", i.class.name)
}
