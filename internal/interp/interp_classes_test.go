package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassInitializerAndMethodCall(t *testing.T) {
	out, sess := run(t, `
		class Greeter {
			Greeter(name) { this.name = name; }
			greet() { print("hello " + this.name); }
		}
		var g = Greeter("world");
		g.greet();
	`)
	require.False(t, sess.HadRuntimeError(), "unexpected runtime error: %v", sess.LastRuntimeError())
	require.Equal(t, "hello world\n", out)
}

func TestInitializerAlwaysReturnsInstanceRegardlessOfBareReturn(t *testing.T) {
	out, sess := run(t, `
		class Box {
			Box(v) {
				this.v = v;
				return;
			}
		}
		var b = Box(42);
		print(b.v);
	`)
	require.False(t, sess.HadRuntimeError(), "unexpected runtime error: %v", sess.LastRuntimeError())
	require.Equal(t, "42\n", out)
}

func TestInheritanceAndSuperMethodCall(t *testing.T) {
	out, sess := run(t, `
		class Animal {
			Animal(name) { this.name = name; }
			speak() { print(this.name + " makes a sound."); }
		}
		class Dog < Animal {
			Dog(name) { super(name); }
			speak() {
				super.speak();
				print(this.name + " barks.");
			}
		}
		var d = Dog("Rex");
		d.speak();
	`)
	require.False(t, sess.HadRuntimeError(), "unexpected runtime error: %v", sess.LastRuntimeError())
	require.Equal(t, "Rex makes a sound.\nRex barks.\n", out)
}

func TestUndefinedPropertyIsARuntimeError(t *testing.T) {
	_, sess := run(t, `class C {} var c = C(); print(c.missing);`)
	require.True(t, sess.HadRuntimeError(), "expected an error for an undefined property")
}

func TestPropertyAccessOnNonInstanceIsARuntimeError(t *testing.T) {
	_, sess := run(t, `print((1).missing);`)
	require.True(t, sess.HadRuntimeError(), "expected an error for property access on a non-instance")
}

func TestArityMismatchReportsExpectedAndGot(t *testing.T) {
	_, sess := run(t, `fn f(a, b) { return a + b; } f(1);`)
	require.True(t, sess.HadRuntimeError(), "expected an arity-mismatch runtime error")
	require.Equal(t, "Expected 2 arguments but got 1.", sess.LastRuntimeError().Message)
}

func TestAnonymousFunctionExpressionIsCallable(t *testing.T) {
	out, sess := run(t, `
		var square = fn (x) { return x * x; };
		print(square(5));
	`)
	require.False(t, sess.HadRuntimeError(), "unexpected runtime error: %v", sess.LastRuntimeError())
	require.Equal(t, "25\n", out)
}

func TestCallingANonCallableIsARuntimeError(t *testing.T) {
	_, sess := run(t, `var x = 5; x();`)
	require.True(t, sess.HadRuntimeError(), "expected an error calling a non-callable value")
}
