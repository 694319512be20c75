package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. runFile and execute print directly to
// os.Stdout (matching the teacher's run.go, which writes straight to the
// process's streams rather than threading a Writer through cobra), so
// tests capture it the way the teacher's REPL tests do: swap the file
// descriptor, run, restore.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}
	return string(out)
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.weave")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

// The six end-to-end scenarios are the spec's own golden programs: each
// line printed by the script must appear verbatim and in order on stdout.
func TestGoldenPrograms(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "arithmetic precedence",
			source: `print(1+2*3);`,
			want:   "7\n",
		},
		{
			name:   "string concatenation",
			source: `var a = "hi"; var b = "!"; print(a+b);`,
			want:   "hi!\n",
		},
		{
			name:   "while loop",
			source: `var i=0; while(i<3){print(i); i=i+1;}`,
			want:   "0\n1\n2\n",
		},
		{
			name:   "recursive factorial",
			source: `fn f(n){ if(n<=1) return 1; return n*f(n-1); } print(f(5));`,
			want:   "120\n",
		},
		{
			name:   "closure counter",
			source: `fn c(){var i=0; fn n(){i=i+1; return i;} return n;} var x=c(); print(x()); print(x()); print(x());`,
			want:   "1\n2\n3\n",
		},
		{
			name:   "single inheritance with super",
			source: `class A{ A(){this.x=1;} get(){return this.x;} } class B < A{ B(){ super(); this.y=2; } sum(){ return this.x+this.y; } } var b=B(); print(b.sum());`,
			want:   "3\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScript(t, tc.source)
			var runErr error
			out := captureStdout(t, func() {
				runErr = runFile(path)
			})
			if runErr != nil {
				t.Fatalf("runFile returned %v", runErr)
			}
			if out != tc.want {
				t.Errorf("got %q, want %q", out, tc.want)
			}
		})
	}
}

func TestMissingFileExitsSeventyFour(t *testing.T) {
	err := runFile(filepath.Join(t.TempDir(), "does-not-exist.weave"))
	assertExitCode(t, err, 74)
}

func TestUnterminatedStringExitsSixtyFive(t *testing.T) {
	path := writeScript(t, `print("unterminated);`)
	var err error
	captureStdout(t, func() { err = runFile(path) })
	assertExitCode(t, err, 65)
}

func TestDivisionByZeroExitsSeventy(t *testing.T) {
	path := writeScript(t, `print(1/0);`)
	var err error
	captureStdout(t, func() { err = runFile(path) })
	assertExitCode(t, err, 70)
}

func TestBreakAtTopLevelExitsSixtyFive(t *testing.T) {
	path := writeScript(t, `break;`)
	var err error
	captureStdout(t, func() { err = runFile(path) })
	assertExitCode(t, err, 65)
}

func TestReturnAtTopLevelExitsSixtyFive(t *testing.T) {
	path := writeScript(t, `return;`)
	var err error
	captureStdout(t, func() { err = runFile(path) })
	assertExitCode(t, err, 65)
}

func TestTooManyArgumentsIsAUsageError(t *testing.T) {
	err := rootCmd.Args(rootCmd, []string{"one", "two"})
	assertExitCode(t, err, 64)
}

func assertExitCode(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error with exit code %d, got nil", want)
	}
	ee, ok := err.(*exitError)
	if !ok {
		t.Fatalf("expected *exitError, got %T (%v)", err, err)
	}
	if ee.code != want {
		t.Errorf("got exit code %d, want %d", ee.code, want)
	}
}
