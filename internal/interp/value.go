package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a runtime value: nil, bool, float64, string, Callable, or
// *Instance. Go's interface{} already is the sum type the spec calls for;
// a dedicated wrapper type would only add indirection.
type Value any

// uninitializedType is the sentinel Value bound to a `var` declaration with
// no initializer, distinct from nil so that reading it is an error rather
// than silently yielding nil.
type uninitializedType struct{}

func (uninitializedType) String() string { return "uninitialized" }

// Uninitialized is the single instance of uninitializedType.
var Uninitialized Value = uninitializedType{}

func isUninitialized(v Value) bool {
	_, ok := v.(uninitializedType)
	return ok
}

// Callable is any Value that can appear as a Call expression's callee:
// user-defined functions, classes (constructors), and native built-ins.
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []Value) (Value, *RuntimeError)
	CallableName() string
}

// isTruthy implements the language's truthiness predicate: nil and false
// are falsy, everything else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements == with no cross-type coercion: nil equals only nil,
// numbers and booleans compare by value, strings and instances compare by
// reference... except Go string comparison is natively by value, which is
// indistinguishable from the spec's "reference semantics" for immutable
// strings (two equal string values are observably identical either way).
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	af, aIsNum := a.(float64)
	bf, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return af == bf
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}
	if ai, ok := a.(*Instance); ok {
		bi, ok2 := b.(*Instance)
		return ok2 && ai == bi
	}
	return a == b
}

// stringify renders v the way `print` writes it: nil -> "nil", booleans ->
// lowercase, numbers -> shortest round-trip decimal (integral doubles
// print without a trailing ".0"), strings -> raw.
func stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(x)
	case string:
		return x
	case Callable:
		return fmt.Sprintf("<fn %s>", x.CallableName())
	case *Instance:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// QuoteValue renders v the way the REPL echoes an expression's value,
// exported for cmd/weave's REPL driver.
func QuoteValue(v Value) string { return quoteString(v) }

// quoteString renders v the way the REPL echoes an expression's value,
// where strings are quoted to distinguish them from other types in the
// echoed output.
func quoteString(v Value) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return stringify(v)
}

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, "eE") {
		// 'g' switches to an exponent for very large or very small
		// magnitudes; render those in plain decimal notation instead.
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}

func typeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Instance:
		return "instance"
	case Callable:
		return "function"
	default:
		return "value"
	}
}
