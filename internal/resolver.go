package internal

// funcContext tracks what kind of callable body the resolver is currently
// inside, so `return` can be validated and initializers can reject a
// value-carrying return.
type funcContext int

const (
	funcNone funcContext = iota
	funcFunction
	funcInitializer
	funcMethod
)

// classContext tracks whether the resolver is inside a class body, and
// whether that class has a superclass, so `this`/`super` misuse can be
// caught statically.
type classContext int

const (
	classNone classContext = iota
	classClass
	classSubclass
)

// scope maps a local name to whether its initializer has finished
// resolving. A name present with value false is "declared but not yet
// defined" — reading it in that state is the classic
//
//	var a = a;
//
// self-reference error.
type scope map[string]bool

// resolver performs the single pre-execution walk described in spec.md
// §4.3: it annotates every variable-reference, assignment, this, and
// super node with a scope distance, and rejects a handful of static
// misuses that would otherwise only surface (or silently misbehave) at
// runtime.
type resolver struct {
	diag            *diagnostics
	scopes          []scope
	currentFunction funcContext
	currentClass    classContext
}

func newResolver(diag *diagnostics) *resolver {
	return &resolver{diag: diag}
}

func (r *resolver) resolve(statements []stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	s.accept(r)
}

func (r *resolver) resolveExpr(e expr) {
	e.accept(r)
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, ok := s[name.lexeme]; ok {
		r.diag.tokenError(name, "Already a variable with this name in this scope.")
	}
	s[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; the first
// scope holding name gives the distance. No match leaves the slot at its
// unresolvedDepth default, meaning "look up in globals".
func (r *resolver) resolveLocal(name *token, setDistance func(int)) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			setDistance(len(r.scopes) - 1 - i)
			return
		}
	}
}

func (r *resolver) resolveFunction(fn *functionStmt, kind funcContext) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolve(fn.body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// --- stmtVisitor ---

func (r *resolver) visitBlockStmt(s *blockStmt) interface{} {
	r.beginScope()
	r.resolve(s.statements)
	r.endScope()
	return nil
}

func (r *resolver) visitVarStmt(s *varStmt) interface{} {
	r.declare(s.name)
	r.resolveExpr(s.initializer)
	r.define(s.name)
	return nil
}

func (r *resolver) visitFunctionStmt(s *functionStmt) interface{} {
	r.declare(s.name)
	r.define(s.name)
	r.resolveFunction(s, funcFunction)
	return nil
}

func (r *resolver) visitExpressionStmt(s *expressionStmt) interface{} {
	r.resolveExpr(s.expression)
	return nil
}

func (r *resolver) visitIfStmt(s *ifStmt) interface{} {
	r.resolveExpr(s.condition)
	r.resolveStmt(s.thenBranch)
	if s.elseBranch != nil {
		r.resolveStmt(s.elseBranch)
	}
	return nil
}

func (r *resolver) visitPrintStmt(s *printStmt) interface{} {
	r.resolveExpr(s.expression)
	return nil
}

func (r *resolver) visitReturnStmt(s *returnStmt) interface{} {
	if r.currentFunction == funcNone {
		r.diag.tokenError(s.keyword, "Can't return from top-level code.")
	}
	if s.value != nil {
		if r.currentFunction == funcInitializer {
			r.diag.tokenError(s.keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.value)
	}
	return nil
}

func (r *resolver) visitWhileStmt(s *whileStmt) interface{} {
	r.resolveExpr(s.condition)
	r.resolveStmt(s.body)
	return nil
}

func (r *resolver) visitClassStmt(s *classStmt) interface{} {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.lexeme == s.name.lexeme {
			r.diag.tokenError(s.superclass.name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.superclass)
	}

	if s.superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.methods {
		kind := funcMethod
		if method.kind == kindInitializer {
			kind = funcInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil
}

// --- exprVisitor ---

func (r *resolver) visitVariableExpr(e *variableExpr) interface{} {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.name.lexeme]; ok && !defined {
			r.diag.tokenError(e.name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e.name, func(d int) { e.distance = d })
	return nil
}

func (r *resolver) visitAssignExpr(e *assignExpr) interface{} {
	r.resolveExpr(e.value)
	r.resolveLocal(e.name, func(d int) { e.distance = d })
	return nil
}

func (r *resolver) visitBinaryExpr(e *binaryExpr) interface{} {
	r.resolveExpr(e.left)
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitCallExpr(e *callExpr) interface{} {
	r.resolveExpr(e.callee)
	for _, arg := range e.arguments {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *resolver) visitGetExpr(e *getExpr) interface{} {
	r.resolveExpr(e.object)
	return nil
}

func (r *resolver) visitSetExpr(e *setExpr) interface{} {
	r.resolveExpr(e.value)
	r.resolveExpr(e.object)
	return nil
}

func (r *resolver) visitSuperExpr(e *superExpr) interface{} {
	if r.currentClass == classNone {
		r.diag.tokenError(e.keyword, "Can't use 'super' outside of a class.")
	} else if r.currentClass != classSubclass {
		r.diag.tokenError(e.keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e.keyword, func(d int) { e.distance = d })
	return nil
}

func (r *resolver) visitGroupingExpr(e *groupingExpr) interface{} {
	r.resolveExpr(e.expression)
	return nil
}

func (r *resolver) visitLiteralExpr(e *literalExpr) interface{} {
	return nil
}

func (r *resolver) visitLogicalExpr(e *logicalExpr) interface{} {
	r.resolveExpr(e.left)
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitThisExpr(e *thisExpr) interface{} {
	if r.currentClass == classNone {
		r.diag.tokenError(e.keyword, "Can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(e.keyword, func(d int) { e.distance = d })
	return nil
}

func (r *resolver) visitUnaryExpr(e *unaryExpr) interface{} {
	r.resolveExpr(e.right)
	return nil
}
