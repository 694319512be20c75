// Package resolver implements the static scope-distance pass: it walks the
// parsed AST once, building a stack of lexical scopes, and records for
// every Variable/Assign/This/Super node how many enclosing scopes separate
// it from its binding. The interpreter uses these distances instead of
// walking the environment chain by name at every reference.
package resolver

import (
	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/token"
)

// Resolve is implemented by the interpreter: for every resolvable
// expression node, the resolver calls Resolve once with the node's id and
// its scope distance.
type Resolve interface {
	Resolve(id ast.NodeID, depth int)
}

type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// binding is a scope entry: whether the name has been defined yet (as
// opposed to merely declared) and how many times it has been referenced.
// An entry left at occurrences==1 after its enclosing scope closes (i.e.
// only the declaration itself was "seen", never a use) triggers the
// unused-variable warning.
type binding struct {
	initialized bool
	occurrences int
}

// scope maps a binding's declaring token to its binding state. Keyed by
// *token.Token identity (pointer equality) rather than by name, matching
// the AST's own node-identity discipline.
type scope map[*token.Token]*binding

// Resolver performs the static pass described above.
type Resolver struct {
	interp Resolve
	sess   *diag.Session

	scopes []scope

	currentFunction functionKind
	currentClass    classKind

	// superCallContext is true only while resolving the first statement of
	// an initializer's own body, gating the bare `super(...)`
	// chain-constructor call's first-statement discipline.
	superCallContext bool
}

// New creates a Resolver that reports into sess and annotates interp with
// resolved scope distances.
func New(interp Resolve, sess *diag.Session) *Resolver {
	return &Resolver{interp: interp, sess: sess}
}

// ResolveProgram resolves every statement of prog at the global scope.
func (r *Resolver) ResolveProgram(prog *ast.Program) {
	r.resolveStmts(prog.Statements)
}

// --- scope stack -------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	top := r.scopes[len(r.scopes)-1]
	if !r.sess.REPL {
		for tok, b := range top {
			if b.occurrences == 1 && tok.Lexeme != "this" && tok.Lexeme != "super" {
				r.sess.Report(&diag.Diagnostic{
					Stage:    diag.StageResolve,
					Severity: diag.SeverityWarning,
					Pos:      tok.Pos,
					Lexeme:   tok.Lexeme,
					Message:  "Unused variable '" + tok.Lexeme + "' in the current scope.",
				})
			}
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name *token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	for existing := range top {
		if existing.Lexeme == name.Lexeme {
			r.error(name, "Already a variable with this name in this scope.")
			break
		}
	}
	top[name] = &binding{initialized: false, occurrences: 1}
}

func (r *Resolver) define(name *token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if b, ok := top[name]; ok {
		b.initialized = true
		return
	}
	top[name] = &binding{initialized: true, occurrences: 1}
}

// defineSynthetic declares+defines an implicit binding (this/super) using a
// synthetic token so it shares the declare/define machinery without
// colliding with user-declared names of the same spelling.
func (r *Resolver) defineSynthetic(lexeme string) *token.Token {
	tok := &token.Token{Kind: token.IDENT, Lexeme: lexeme}
	top := r.scopes[len(r.scopes)-1]
	top[tok] = &binding{initialized: true}
	return tok
}

// resolveLocal finds name in the innermost scope outward, reporting the
// scope distance to the interpreter. If not found in any scope, the
// reference is treated as a global and no distance is recorded.
func (r *Resolver) resolveLocal(id ast.NodeID, name *token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		for tok, b := range r.scopes[i] {
			if tok.Lexeme == name.Lexeme {
				b.occurrences++
				r.interp.Resolve(id, len(r.scopes)-1-i)
				return
			}
		}
	}
}

// innermostUninitialized reports whether name's innermost-scope entry
// exists and is not yet initialized, which guards against "var x = x;".
func (r *Resolver) innermostUninitialized(name *token.Token) bool {
	if len(r.scopes) == 0 {
		return false
	}
	top := r.scopes[len(r.scopes)-1]
	for tok, b := range top {
		if tok.Lexeme == name.Lexeme {
			return !b.initialized
		}
	}
	return false
}

func (r *Resolver) error(tok *token.Token, message string) {
	r.sess.Report(&diag.Diagnostic{
		Stage:    diag.StageResolve,
		Severity: diag.SeverityError,
		Pos:      tok.Pos,
		Lexeme:   tok.Lexeme,
		Message:  message,
	})
}
