package interp

import "fmt"

// Class is runtime class metadata: a name, an optional superclass, and a
// flat method table. Method lookup walks the superclass chain.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass creates a Class with the given name, superclass (nil for none)
// and method table.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) String() string { return c.Name }

// CallableName satisfies Callable; calling a class constructs an instance.
func (c *Class) CallableName() string { return c.Name }

// FindMethod looks up a method by name, walking from this class up through
// its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the initializer's arity, or 0 if the class has none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod(c.Name); ok {
		return init.Arity()
	}
	return 0
}

// Call allocates an instance and, if the class defines an initializer (a
// method whose name matches the class name), binds and calls it with the
// given arguments before returning the instance.
func (c *Class) Call(i *Interpreter, args []Value) (Value, *RuntimeError) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod(c.Name); ok {
		if _, err := init.Bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: a class pointer plus its own field map.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance allocates an Instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (o *Instance) String() string { return fmt.Sprintf("<%s instance>", o.Class.Name) }

// Get reads a property: fields are probed first, then methods (bound to
// this instance on return).
func (o *Instance) Get(name string) (Value, bool) {
	if v, ok := o.Fields[name]; ok {
		return v, true
	}
	if m, ok := o.Class.FindMethod(name); ok {
		return m.Bind(o), true
	}
	return nil, false
}

// Set writes a field directly; Weave has no declared-field list, so any
// name may be assigned.
func (o *Instance) Set(name string, value Value) {
	o.Fields[name] = value
}
