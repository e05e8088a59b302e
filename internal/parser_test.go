package internal

import (
	"bytes"
	"strings"
	"testing"
)

func parseForTest(t *testing.T, source string) ([]stmt, string) {
	var errOut bytes.Buffer
	diag := newDiagnostics(&errOut)
	tokens := newScanner(source, diag).scanTokens()
	statements := newParser(tokens, diag).parse()
	return statements, errOut.String()
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, errs := parseForTest(t, `1 + 2 = 3;`)
	if !strings.Contains(errs, "Invalid assignment target.") {
		t.Errorf("got %q", errs)
	}
}

func TestParseArityCapOnParameters(t *testing.T) {
	var params []string
	for i := 0; i < 256; i++ {
		params = append(params, "a")
	}
	source := "fun f(" + strings.Join(params, ",") + ") {}"
	_, errs := parseForTest(t, source)
	if !strings.Contains(errs, "Can't have more than 255 parameters.") {
		t.Errorf("got %q", errs)
	}
}

func TestParseArityCapOnArguments(t *testing.T) {
	var args []string
	for i := 0; i < 256; i++ {
		args = append(args, "1")
	}
	source := "f(" + strings.Join(args, ",") + ");"
	_, errs := parseForTest(t, source)
	if !strings.Contains(errs, "Can't have more than 255 arguments.") {
		t.Errorf("got %q", errs)
	}
}

func TestParseForLoopDesugarsToWhile(t *testing.T) {
	statements, errs := parseForTest(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if errs != "" {
		t.Fatalf("unexpected errors: %s", errs)
	}
	if len(statements) != 1 {
		t.Fatalf("expected a single enclosing block, got %d statements", len(statements))
	}
	outer, ok := statements[0].(*blockStmt)
	if !ok {
		t.Fatalf("expected desugared for to produce a block, got %T", statements[0])
	}
	if _, ok := outer.statements[0].(*varStmt); !ok {
		t.Errorf("expected initializer as first statement, got %T", outer.statements[0])
	}
	if _, ok := outer.statements[1].(*whileStmt); !ok {
		t.Errorf("expected while loop as second statement, got %T", outer.statements[1])
	}
}

func TestParseMethodClassification(t *testing.T) {
	statements, errs := parseForTest(t, `class A { init() {} greet() {} }`)
	if errs != "" {
		t.Fatalf("unexpected errors: %s", errs)
	}
	cls := statements[0].(*classStmt)
	if cls.methods[0].kind != kindInitializer {
		t.Errorf("expected init() classified as initializer, got %v", cls.methods[0].kind)
	}
	if cls.methods[1].kind != kindMethod {
		t.Errorf("expected greet() classified as method, got %v", cls.methods[1].kind)
	}
}

func TestParseSynchronizesAfterError(t *testing.T) {
	statements, errs := parseForTest(t, `var; var b = 1;`)
	if errs == "" {
		t.Fatal("expected a syntax error on the malformed var")
	}
	found := false
	for _, s := range statements {
		if v, ok := s.(*varStmt); ok && v.name.lexeme == "b" {
			found = true
		}
	}
	if !found {
		t.Error("parser should recover and still parse the statement after the error")
	}
}
