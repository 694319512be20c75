package interp

import "testing"

func TestArithmeticAndPrecedence(t *testing.T) {
	out, sess := run(t, `print(1 + 2 * 3);`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	out, sess := run(t, `print("foo" + "bar");`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "foobar\n" {
		t.Errorf("got %q, want %q", out, "foobar\n")
	}
}

func TestMixedAddOperandsIsARuntimeError(t *testing.T) {
	_, sess := run(t, `print(1 + "two");`)
	if !sess.HadRuntimeError() {
		t.Fatalf("expected a runtime error for mixed + operands")
	}
}

func TestDivisionByZero(t *testing.T) {
	_, sess := run(t, `print(1 / 0);`)
	if !sess.HadRuntimeError() {
		t.Fatalf("expected a division-by-zero runtime error")
	}
	if sess.LastRuntimeError().Message != "Division by zero." {
		t.Errorf("got %q, want %q", sess.LastRuntimeError().Message, "Division by zero.")
	}
}

func TestTruthiness(t *testing.T) {
	out, sess := run(t, `
		print(!nil);
		print(!false);
		print(!0);
		print(!"");
		print(!true);
	`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	want := "true\ntrue\nfalse\nfalse\nfalse\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestEquality(t *testing.T) {
	out, sess := run(t, `
		print(1 == 1.0);
		print("a" == "a");
		print(nil == nil);
		print(nil == false);
		print(1 == "1");
	`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	want := "true\ntrue\ntrue\nfalse\nfalse\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestTernaryAndComma(t *testing.T) {
	out, sess := run(t, `print(true ? 1 : 2); print((1, 2, 3));`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "1\n3\n" {
		t.Errorf("got %q, want %q", out, "1\n3\n")
	}
}

func TestPrefixIncrementOnVariable(t *testing.T) {
	out, sess := run(t, `var x = 1; print(++x); print(x);`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "2\n2\n" {
		t.Errorf("got %q, want %q", out, "2\n2\n")
	}
}

func TestIncrementOnLiteralIsAnError(t *testing.T) {
	_, sess := run(t, `print(++1);`)
	if !sess.HadRuntimeError() {
		t.Fatalf("expected an error incrementing a literal")
	}
	if sess.LastRuntimeError().Message != "Cannot assign to literal." {
		t.Errorf("got %q", sess.LastRuntimeError().Message)
	}
}

func TestIncrementOnUninitializedVariableIsAnError(t *testing.T) {
	_, sess := run(t, `var x; ++x;`)
	if !sess.HadRuntimeError() {
		t.Fatalf("expected an error incrementing an uninitialized variable")
	}
	if sess.LastRuntimeError().Message != "Cannot assign to uninitialized variable." {
		t.Errorf("got %q", sess.LastRuntimeError().Message)
	}
}

func TestLogicalShortCircuitReturnsOperandNotBool(t *testing.T) {
	out, sess := run(t, `print(nil || "fallback"); print(1 && 2);`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "fallback\n2\n" {
		t.Errorf("got %q, want %q", out, "fallback\n2\n")
	}
}
