package internal

// unresolvedDepth marks a resolution slot the resolver left untouched: the
// name is looked up directly in the global environment at runtime.
const unresolvedDepth = -1

// expr is the sum type of all Lox expression nodes. Each variant is a
// data-only struct; polymorphism is sum-type dispatch through accept,
// never embedding or virtual methods.
type expr interface {
	accept(exprVisitor) interface{}
}

type exprVisitor interface {
	visitAssignExpr(e *assignExpr) interface{}
	visitBinaryExpr(e *binaryExpr) interface{}
	visitCallExpr(e *callExpr) interface{}
	visitGetExpr(e *getExpr) interface{}
	visitSetExpr(e *setExpr) interface{}
	visitSuperExpr(e *superExpr) interface{}
	visitGroupingExpr(e *groupingExpr) interface{}
	visitLiteralExpr(e *literalExpr) interface{}
	visitLogicalExpr(e *logicalExpr) interface{}
	visitThisExpr(e *thisExpr) interface{}
	visitUnaryExpr(e *unaryExpr) interface{}
	visitVariableExpr(e *variableExpr) interface{}
}

// assignExpr is a write to a variable binding: `name = value`. distance is
// the resolution slot, written at most once by the resolver.
type assignExpr struct {
	name     *token
	value    expr
	distance int
}

func (e *assignExpr) accept(v exprVisitor) interface{} { return v.visitAssignExpr(e) }

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *binaryExpr) accept(v exprVisitor) interface{} { return v.visitBinaryExpr(e) }

type callExpr struct {
	callee    expr
	paren     *token
	arguments []expr
}

func (e *callExpr) accept(v exprVisitor) interface{} { return v.visitCallExpr(e) }

type getExpr struct {
	object expr
	name   *token
}

func (e *getExpr) accept(v exprVisitor) interface{} { return v.visitGetExpr(e) }

type setExpr struct {
	object expr
	name   *token
	value  expr
}

func (e *setExpr) accept(v exprVisitor) interface{} { return v.visitSetExpr(e) }

// superExpr is `super.method`. distance resolves `super` itself; `this` is
// always found at distance-1 in the same closure chain (see interpreter.go).
type superExpr struct {
	keyword  *token
	method   *token
	distance int
}

func (e *superExpr) accept(v exprVisitor) interface{} { return v.visitSuperExpr(e) }

type groupingExpr struct {
	expression expr
}

func (e *groupingExpr) accept(v exprVisitor) interface{} { return v.visitGroupingExpr(e) }

type literalExpr struct {
	value interface{}
}

func (e *literalExpr) accept(v exprVisitor) interface{} { return v.visitLiteralExpr(e) }

type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *logicalExpr) accept(v exprVisitor) interface{} { return v.visitLogicalExpr(e) }

type thisExpr struct {
	keyword  *token
	distance int
}

func (e *thisExpr) accept(v exprVisitor) interface{} { return v.visitThisExpr(e) }

type unaryExpr struct {
	operator *token
	right    expr
}

func (e *unaryExpr) accept(v exprVisitor) interface{} { return v.visitUnaryExpr(e) }

type variableExpr struct {
	name     *token
	distance int
}

func (e *variableExpr) accept(v exprVisitor) interface{} { return v.visitVariableExpr(e) }

func newVariableExpr(name *token) *variableExpr {
	return &variableExpr{name: name, distance: unresolvedDepth}
}

func newAssignExpr(name *token, value expr) *assignExpr {
	return &assignExpr{name: name, value: value, distance: unresolvedDepth}
}

func newThisExpr(keyword *token) *thisExpr {
	return &thisExpr{keyword: keyword, distance: unresolvedDepth}
}

func newSuperExpr(keyword, method *token) *superExpr {
	return &superExpr{keyword: keyword, method: method, distance: unresolvedDepth}
}
