package internal

import (
	"fmt"
	"io"
)

// interpreter walks a resolved Program, evaluating expressions to
// runtime values and executing statements for their side effects,
// against a chain of environments rooted at globals. It implements both
// exprVisitor and stmtVisitor — sum-type dispatch through accept, never
// virtual methods on the AST itself.
type interpreter struct {
	globals     *environment
	environment *environment
	out         io.Writer
	errOut      io.Writer
	config      Config
	callDepth   int
}

func newInterpreter(out, errOut io.Writer, config Config) *interpreter {
	globals := newEnvironment(nil)
	defineGlobals(globals)
	return &interpreter{globals: globals, environment: globals, out: out, errOut: errOut, config: config}
}

// interpret runs statements at top level. A runtime error raised deep in
// the tree unwinds via panic straight to here; it is recovered, reported,
// and converted to a non-nil error so the driver can pick exit code 70.
func (interp *interpreter) interpret(statements []stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*runtimeError); ok {
				fmt.Fprintf(interp.errOut, "%s\n[line %d]\n", re.message, re.tok.line)
				err = re
				return
			}
			panic(r)
		}
	}()

	for _, s := range statements {
		interp.execute(s)
	}
	return nil
}

func (interp *interpreter) execute(s stmt) {
	s.accept(interp)
}

func (interp *interpreter) evaluate(e expr) interface{} {
	return e.accept(interp)
}

// executeBlock runs statements against env, restoring the previous
// environment on the way out regardless of whether the block completed
// normally or a return/runtime-error unwound through it (spec.md §4.4).
func (interp *interpreter) executeBlock(statements []stmt, env *environment) {
	previous := interp.environment
	defer func() { interp.environment = previous }()

	interp.environment = env
	for _, s := range statements {
		interp.execute(s)
	}
}

// --- stmtVisitor ---

func (interp *interpreter) visitBlockStmt(s *blockStmt) interface{} {
	interp.executeBlock(s.statements, newEnvironment(interp.environment))
	return nil
}

func (interp *interpreter) visitClassStmt(s *classStmt) interface{} {
	var superclass *class
	if s.superclass != nil {
		sc := interp.evaluate(s.superclass)
		sv, ok := sc.(*class)
		if !ok {
			throwRuntimeError(s.superclass.name, "Superclass must be a class.")
		}
		superclass = sv
	}

	interp.environment.define(s.name.lexeme, nil)

	env := interp.environment
	if s.superclass != nil {
		env = newEnvironment(interp.environment)
		env.define("super", superclass)
	}

	methods := make(map[string]*function)
	for _, decl := range s.methods {
		methods[decl.name.lexeme] = &function{
			declaration:   decl,
			closure:       env,
			isInitializer: decl.kind == kindInitializer,
		}
	}

	cls := &class{name: s.name.lexeme, superclass: superclass, methods: methods}

	interp.environment.assign(s.name, cls)
	return nil
}

func (interp *interpreter) visitExpressionStmt(s *expressionStmt) interface{} {
	interp.evaluate(s.expression)
	return nil
}

func (interp *interpreter) visitFunctionStmt(s *functionStmt) interface{} {
	fn := &function{declaration: s, closure: interp.environment, isInitializer: false}
	interp.environment.define(s.name.lexeme, fn)
	return nil
}

func (interp *interpreter) visitIfStmt(s *ifStmt) interface{} {
	if isTruthy(interp.evaluate(s.condition)) {
		interp.execute(s.thenBranch)
	} else if s.elseBranch != nil {
		interp.execute(s.elseBranch)
	}
	return nil
}

func (interp *interpreter) visitPrintStmt(s *printStmt) interface{} {
	value := interp.evaluate(s.expression)
	fmt.Fprintln(interp.out, stringify(value))
	return nil
}

func (interp *interpreter) visitReturnStmt(s *returnStmt) interface{} {
	var value interface{}
	if s.value != nil {
		value = interp.evaluate(s.value)
	}
	panic(returnSignal{value: value})
}

func (interp *interpreter) visitVarStmt(s *varStmt) interface{} {
	value := interp.evaluate(s.initializer)
	interp.environment.define(s.name.lexeme, value)
	return nil
}

func (interp *interpreter) visitWhileStmt(s *whileStmt) interface{} {
	for isTruthy(interp.evaluate(s.condition)) {
		interp.execute(s.body)
	}
	return nil
}

// --- exprVisitor ---

func (interp *interpreter) visitLiteralExpr(e *literalExpr) interface{} {
	return e.value
}

func (interp *interpreter) visitLogicalExpr(e *logicalExpr) interface{} {
	left := interp.evaluate(e.left)
	if e.operator.kind == tkOr {
		if isTruthy(left) {
			return left
		}
	} else if !isTruthy(left) {
		return left
	}
	return interp.evaluate(e.right)
}

func (interp *interpreter) visitGroupingExpr(e *groupingExpr) interface{} {
	return interp.evaluate(e.expression)
}

func (interp *interpreter) visitUnaryExpr(e *unaryExpr) interface{} {
	right := interp.evaluate(e.right)
	switch e.operator.kind {
	case tkMinus:
		return -interp.checkNumberOperand(e.operator, right)
	case tkBang:
		return !isTruthy(right)
	}
	return nil
}

func (interp *interpreter) visitVariableExpr(e *variableExpr) interface{} {
	return interp.lookUpVariable(e.name, e.distance)
}

func (interp *interpreter) lookUpVariable(name *token, distance int) interface{} {
	if distance != unresolvedDepth {
		return interp.environment.getAt(distance, name)
	}
	return interp.globals.get(name)
}

func (interp *interpreter) visitAssignExpr(e *assignExpr) interface{} {
	value := interp.evaluate(e.value)
	if e.distance != unresolvedDepth {
		interp.environment.assignAt(e.distance, e.name, value)
	} else {
		interp.globals.assign(e.name, value)
	}
	return value
}

func (interp *interpreter) visitBinaryExpr(e *binaryExpr) interface{} {
	left := interp.evaluate(e.left)
	right := interp.evaluate(e.right)

	switch e.operator.kind {
	case tkMinus:
		interp.checkNumberOperands(e.operator, left, right)
		return left.(float64) - right.(float64)
	case tkSlash:
		interp.checkNumberOperands(e.operator, left, right)
		return left.(float64) / right.(float64)
	case tkStar:
		interp.checkNumberOperands(e.operator, left, right)
		return left.(float64) * right.(float64)
	case tkPlus:
		return interp.add(e.operator, left, right)
	case tkGreater:
		interp.checkNumberOperands(e.operator, left, right)
		return left.(float64) > right.(float64)
	case tkGreaterEqual:
		interp.checkNumberOperands(e.operator, left, right)
		return left.(float64) >= right.(float64)
	case tkLess:
		interp.checkNumberOperands(e.operator, left, right)
		return left.(float64) < right.(float64)
	case tkLessEqual:
		interp.checkNumberOperands(e.operator, left, right)
		return left.(float64) <= right.(float64)
	case tkBangEqual:
		return !isEqual(left, right)
	case tkEqualEqual:
		return isEqual(left, right)
	}
	return nil
}

// checkNumberOperands is the pair form of checkNumberOperand, used for
// binary arithmetic and comparison: both operands are validated together
// so the error names the operator once, not per-operand.
func (interp *interpreter) checkNumberOperands(operator *token, left, right interface{}) {
	_, lok := left.(float64)
	_, rok := right.(float64)
	if lok && rok {
		return
	}
	throwRuntimeError(operator, "Operands must be numbers.")
}

// add implements `+` accepting two numbers (addition) or two strings
// (concatenation); any other combination is a runtime error, per
// spec.md §4.4.
func (interp *interpreter) add(operator *token, left, right interface{}) interface{} {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r
		}
	}
	throwRuntimeError(operator, "Operands must be two numbers or two strings.")
	return nil
}

func (interp *interpreter) checkNumberOperand(operator *token, operand interface{}) float64 {
	if n, ok := operand.(float64); ok {
		return n
	}
	throwRuntimeError(operator, "Operand must be a number.")
	return 0
}

func (interp *interpreter) visitCallExpr(e *callExpr) interface{} {
	callee := interp.evaluate(e.callee)

	arguments := make([]interface{}, len(e.arguments))
	for i, arg := range e.arguments {
		arguments[i] = interp.evaluate(arg)
	}

	fn, ok := callee.(callable)
	if !ok {
		throwRuntimeError(e.paren, "Can only call functions and classes.")
	}

	if len(arguments) != fn.arity() {
		throwRuntimeError(e.paren, fmt.Sprintf("Expected %d arguments but got %d.", fn.arity(), len(arguments)))
	}

	interp.callDepth++
	if interp.callDepth > interp.config.maxCallDepth() {
		interp.callDepth--
		throwRuntimeError(e.paren, "Stack overflow.")
	}
	defer func() { interp.callDepth-- }()

	return fn.call(interp, arguments)
}

func (interp *interpreter) visitGetExpr(e *getExpr) interface{} {
	object := interp.evaluate(e.object)
	if inst, ok := object.(*instance); ok {
		return inst.get(e.name)
	}
	throwRuntimeError(e.name, "Only instances have properties.")
	return nil
}

func (interp *interpreter) visitSetExpr(e *setExpr) interface{} {
	object := interp.evaluate(e.object)
	inst, ok := object.(*instance)
	if !ok {
		throwRuntimeError(e.name, "Only instances have fields.")
	}
	value := interp.evaluate(e.value)
	inst.set(e.name, value)
	return value
}

func (interp *interpreter) visitThisExpr(e *thisExpr) interface{} {
	return interp.lookUpVariable(e.keyword, e.distance)
}

// visitSuperExpr looks up `super` at the resolved distance to get the
// superclass, and `this` at distance-1 in the same closure chain to get
// the instance the method should be bound to, per spec.md §4.4.
func (interp *interpreter) visitSuperExpr(e *superExpr) interface{} {
	superclass := interp.environment.getAt(e.distance, e.keyword).(*class)
	object := interp.environment.getAt(e.distance-1, thisToken).(*instance)

	method := superclass.findMethod(e.method.lexeme)
	if method == nil {
		throwRuntimeError(e.method, "Undefined property '"+e.method.lexeme+"'.")
	}
	return method.bind(object)
}
