package internal

import (
	"bytes"
	"strings"
	"testing"
)

// resolveSource runs the scan/parse/resolve stages only, returning any
// diagnostics text. It's used to exercise the resolver's static checks in
// isolation from execution.
func resolveSource(t *testing.T, source string) string {
	var errOut bytes.Buffer
	diag := newDiagnostics(&errOut)

	tokens := newScanner(source, diag).scanTokens()
	if diag.hadError {
		return errOut.String()
	}

	statements := newParser(tokens, diag).parse()
	if diag.hadError {
		return errOut.String()
	}

	newResolver(diag).resolve(statements)
	return errOut.String()
}

func TestResolverRejectsDoubleLocalDeclaration(t *testing.T) {
	out := resolveSource(t, `{ var a = 1; var a = 2; }`)
	if !strings.Contains(out, "Already a variable with this name in this scope.") {
		t.Errorf("got %q", out)
	}
}

func TestResolverRejectsSelfReferentialInitializer(t *testing.T) {
	out := resolveSource(t, `{ var a = a; }`)
	if !strings.Contains(out, "Can't read local variable in its own initializer.") {
		t.Errorf("got %q", out)
	}
}

func TestResolverRejectsThisOutsideClass(t *testing.T) {
	out := resolveSource(t, `print this;`)
	if !strings.Contains(out, "Can't use 'this' outside of a class.") {
		t.Errorf("got %q", out)
	}
}

func TestResolverRejectsSuperOutsideClass(t *testing.T) {
	out := resolveSource(t, `super.foo();`)
	if !strings.Contains(out, "Can't use 'super' outside of a class.") {
		t.Errorf("got %q", out)
	}
}

func TestResolverRejectsSuperWithoutSuperclass(t *testing.T) {
	out := resolveSource(t, `class A { m() { super.m(); } }`)
	if !strings.Contains(out, "Can't use 'super' in a class with no superclass.") {
		t.Errorf("got %q", out)
	}
}

func TestResolverRejectsValueReturnInInitializer(t *testing.T) {
	out := resolveSource(t, `class A { init() { return 1; } }`)
	if !strings.Contains(out, "Can't return a value from an initializer.") {
		t.Errorf("got %q", out)
	}
}

func TestResolverAllowsBareReturnInInitializer(t *testing.T) {
	out := resolveSource(t, `class A { init() { return; } }`)
	if out != "" {
		t.Errorf("unexpected diagnostics: %q", out)
	}
}

func TestResolverWritesDistanceForClosureVariable(t *testing.T) {
	var errOut bytes.Buffer
	diag := newDiagnostics(&errOut)
	source := `fun outer() { var a = 1; fun inner() { return a; } return inner; }`

	tokens := newScanner(source, diag).scanTokens()
	statements := newParser(tokens, diag).parse()
	newResolver(diag).resolve(statements)

	if diag.hadError {
		t.Fatalf("unexpected diagnostics: %s", errOut.String())
	}

	outerFn := statements[0].(*functionStmt)
	innerFn := outerFn.body[1].(*functionStmt)
	ret := innerFn.body[0].(*returnStmt)
	v := ret.value.(*variableExpr)

	if v.distance != 1 {
		t.Errorf("got distance %d, want 1", v.distance)
	}
}

func TestResolverLeavesGlobalsUnresolved(t *testing.T) {
	var errOut bytes.Buffer
	diag := newDiagnostics(&errOut)
	source := `var a = 1; print a;`

	tokens := newScanner(source, diag).scanTokens()
	statements := newParser(tokens, diag).parse()
	newResolver(diag).resolve(statements)

	printS := statements[1].(*printStmt)
	v := printS.expression.(*variableExpr)
	if v.distance != unresolvedDepth {
		t.Errorf("got distance %d, want unresolved (%d)", v.distance, unresolvedDepth)
	}
}
