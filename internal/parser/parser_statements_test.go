package parser

import (
	"testing"

	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/lexer"
)

func parseProgram(t *testing.T, source string) (*ast.Program, *diag.Session) {
	t.Helper()
	sess := diag.NewSession(source, "<test>", false)
	tokens := lexer.New(source, sess).ScanTokens()
	return New(tokens, sess).ParseProgram(), sess
}

func TestMultiVarDeclaration(t *testing.T) {
	prog, sess := parseProgram(t, "var a = 1, b = 2, c;")
	if sess.HadError() {
		t.Fatalf("unexpected parse errors: %v", sess.Diagnostics())
	}
	mv, ok := prog.Statements[0].(*ast.MultiVarStmt)
	if !ok {
		t.Fatalf("expected a MultiVarStmt, got %T", prog.Statements[0])
	}
	if len(mv.Vars) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(mv.Vars))
	}
	if mv.Vars[2].Init != nil {
		t.Errorf("expected 'c' to have no initializer")
	}
}

func TestForLoopDesugarsInitIntoOuterBlock(t *testing.T) {
	prog, sess := parseProgram(t, "for (var i = 0; i < 3; i = i + 1) print(i);")
	if sess.HadError() {
		t.Fatalf("unexpected parse errors: %v", sess.Diagnostics())
	}
	block, ok := prog.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected the for-loop to desugar to a BlockStmt, got %T", prog.Statements[0])
	}
	if len(block.Statements) != 1 {
		t.Fatalf("expected exactly one statement in the wrapper block")
	}
	if _, ok := block.Statements[0].(*ast.ForStmt); !ok {
		t.Fatalf("expected a ForStmt inside the wrapper block, got %T", block.Statements[0])
	}
}

func TestBreakOutsideLoopIsAnError(t *testing.T) {
	_, sess := parseProgram(t, "break;")
	if !sess.HadError() {
		t.Fatalf("expected an error for 'break' outside a loop")
	}
}

func TestContinueOutsideLoopIsAnError(t *testing.T) {
	_, sess := parseProgram(t, "continue;")
	if !sess.HadError() {
		t.Fatalf("expected an error for 'continue' outside a loop")
	}
}

func TestClassDeclarationWithSuperclassAndInitializer(t *testing.T) {
	prog, sess := parseProgram(t, `
		class Animal {
			Animal(name) { this.name = name; }
			speak() { print("..."); }
		}
		class Dog < Animal {
			Dog(name) { super(name); }
		}
	`)
	if sess.HadError() {
		t.Fatalf("unexpected parse errors: %v", sess.Diagnostics())
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 top-level class statements, got %d", len(prog.Statements))
	}
	dog := prog.Statements[1].(*ast.ClassStmt)
	if dog.Superclass == nil || dog.Superclass.Name.Lexeme != "Animal" {
		t.Fatalf("expected Dog's superclass to be Animal")
	}
}

func TestFunctionDeclarationVsAnonymousFunctionLiteral(t *testing.T) {
	prog, sess := parseProgram(t, "fn add(a, b) { return a + b; } var f = fn (x) { return x; };")
	if sess.HadError() {
		t.Fatalf("unexpected parse errors: %v", sess.Diagnostics())
	}
	if _, ok := prog.Statements[0].(*ast.FunctionStmt); !ok {
		t.Fatalf("expected a FunctionStmt, got %T", prog.Statements[0])
	}
	v, ok := prog.Statements[1].(*ast.VarStmt)
	if !ok {
		t.Fatalf("expected a VarStmt, got %T", prog.Statements[1])
	}
	if _, ok := v.Init.(*ast.FunctionExpr); !ok {
		t.Fatalf("expected the var's initializer to be a FunctionExpr, got %T", v.Init)
	}
}

func TestSyntaxErrorRecoveryContinuesParsing(t *testing.T) {
	prog, sess := parseProgram(t, "var = ; var ok = 1;")
	if !sess.HadError() {
		t.Fatalf("expected a parse error on the malformed first statement")
	}
	found := false
	for _, s := range prog.Statements {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parsing to recover and still produce the 'ok' declaration")
	}
}
