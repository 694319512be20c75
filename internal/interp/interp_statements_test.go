package interp

import "testing"

func TestForLoopIncrementRunsAfterContinueNotAfterBreak(t *testing.T) {
	out, sess := run(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 1) continue;
			if (i == 3) break;
			print(i);
		}
	`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "0\n2\n" {
		t.Errorf("got %q, want %q", out, "0\n2\n")
	}
}

func TestWhileLoopBreakAndContinue(t *testing.T) {
	out, sess := run(t, `
		var i = 0;
		while (i < 5) {
			i = i + 1;
			if (i == 2) continue;
			if (i == 4) break;
			print(i);
		}
	`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "1\n3\n" {
		t.Errorf("got %q, want %q", out, "1\n3\n")
	}
}

func TestBlockScopingShadowsOuterVariable(t *testing.T) {
	out, sess := run(t, `
		var x = "outer";
		{
			var x = "inner";
			print(x);
		}
		print(x);
	`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "inner\nouter\n" {
		t.Errorf("got %q, want %q", out, "inner\nouter\n")
	}
}

func TestClosureCapturesSharedCounterByReference(t *testing.T) {
	out, sess := run(t, `
		fn makeCounter() {
			var count = 0;
			fn increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print(counter());
		print(counter());
		print(counter());
	`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "1\n2\n3\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n3\n")
	}
}

func TestReturnUnwindsThroughNestedBlocksAndLoops(t *testing.T) {
	out, sess := run(t, `
		fn firstEven(limit) {
			for (var i = 0; i < limit; i = i + 1) {
				if (i % 2 == 0) {
					return i;
				}
			}
			return -1;
		}
		print(firstEven(7));
	`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "0\n" {
		t.Errorf("got %q, want %q", out, "0\n")
	}
}

func TestMultiVarDeclarationEachGetsOwnBinding(t *testing.T) {
	out, sess := run(t, `var a = 1, b = 2; print(a); print(b);`)
	if sess.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %v", sess.LastRuntimeError())
	}
	if out != "1\n2\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n")
	}
}
