package internal

import (
	"bytes"
	"testing"
)

func scanForTest(t *testing.T, source string) ([]*token, string) {
	var errOut bytes.Buffer
	diag := newDiagnostics(&errOut)
	tokens := newScanner(source, diag).scanTokens()
	return tokens, errOut.String()
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens, errs := scanForTest(t, "(){},.-+;*/ ! != = == > >= < <=")
	if errs != "" {
		t.Fatalf("unexpected scan errors: %s", errs)
	}
	want := []tokenType{
		tkLeftParen, tkRightParen, tkLeftBrace, tkRightBrace, tkComma, tkDot,
		tkMinus, tkPlus, tkSemicolon, tkStar, tkSlash,
		tkBang, tkBangEqual, tkEqual, tkEqualEqual, tkGreater, tkGreaterEqual,
		tkLess, tkLessEqual, tkEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, kind := range want {
		if tokens[i].kind != kind {
			t.Errorf("token %d: got kind %d, want %d", i, tokens[i].kind, kind)
		}
	}
}

func TestScanLineComment(t *testing.T) {
	tokens, errs := scanForTest(t, "1 // comment\n2")
	if errs != "" {
		t.Fatalf("unexpected scan errors: %s", errs)
	}
	if len(tokens) != 3 || tokens[0].literal.(float64) != 1 || tokens[1].literal.(float64) != 2 {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
	if tokens[1].line != 2 {
		t.Errorf("got line %d, want 2", tokens[1].line)
	}
}

func TestScanString(t *testing.T) {
	tokens, errs := scanForTest(t, `"hello world"`)
	if errs != "" {
		t.Fatalf("unexpected scan errors: %s", errs)
	}
	if tokens[0].kind != tkString || tokens[0].literal != "hello world" {
		t.Fatalf("unexpected token: %+v", tokens[0])
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tokens, errs := scanForTest(t, `"unterminated`)
	if errs == "" {
		t.Fatal("expected an unterminated string error")
	}
	if len(tokens) != 1 || tokens[0].kind != tkEOF {
		t.Fatalf("unterminated string should emit no token, got %+v", tokens)
	}
}

func TestScanNumber(t *testing.T) {
	tokens, _ := scanForTest(t, "123 45.67")
	if tokens[0].literal.(float64) != 123 {
		t.Errorf("got %v, want 123", tokens[0].literal)
	}
	if tokens[1].literal.(float64) != 45.67 {
		t.Errorf("got %v, want 45.67", tokens[1].literal)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens, _ := scanForTest(t, "and class else false for fun if nil or print return super this true var while foo")
	wantKinds := []tokenType{
		tkAnd, tkClass, tkElse, tkFalse, tkFor, tkFun, tkIf, tkNil, tkOr,
		tkPrint, tkReturn, tkSuper, tkThis, tkTrue, tkVar, tkWhile, tkIdentifier,
	}
	for i, kind := range wantKinds {
		if tokens[i].kind != kind {
			t.Errorf("token %d (%q): got kind %d, want %d", i, tokens[i].lexeme, tokens[i].kind, kind)
		}
	}
}

func TestScanUnknownCharacterContinues(t *testing.T) {
	tokens, errs := scanForTest(t, "1 @ 2")
	if errs == "" {
		t.Fatal("expected an unexpected-character error")
	}
	if len(tokens) != 3 {
		t.Fatalf("scanning should continue past the bad character, got %+v", tokens)
	}
}
