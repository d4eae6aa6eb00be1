package interp

import "fmt"

// Class is the runtime representation of a `class` declaration: a name
// and a flat method table. Single-level, since the Lox grammar here
// has no superclass clause, so there is no parent link.
type Class struct {
	Name    string
	Methods map[string]*UserFunction
}

// NewClass builds a Class from its method table, keyed by method name.
func NewClass(name string, methods map[string]*UserFunction) *Class {
	return &Class{Name: name, Methods: methods}
}

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return c.Name }

// findMethod looks up an unbound method by name, returning nil if this
// class declares no such method (there is no parent chain to continue
// the search into).
func (c *Class) findMethod(name string) *UserFunction {
	return c.Methods[name]
}

// Arity is the constructor's arity: 0 if the class declares no init.
func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class declares an init
// method, runs it bound to the fresh instance.
func (c *Class) Call(it *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(it, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: a back-reference to its class plus an
// own field map that shadows the class's methods (Get checks instance
// fields first, then the class's methods).
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance creates an instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (i *Instance) Type() string   { return "instance" }
func (i *Instance) String() string { return i.class.Name + " instance" }

// Get resolves a property: an own field takes priority over a method
// of the same name, and any returned method is bound to this instance.
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.fields[name]; ok {
		return v, nil
	}
	if method := i.class.findMethod(name); method != nil {
		return method.bind(i), nil
	}
	return nil, fmt.Errorf("undefined property '%s'", name)
}

// Set writes (or creates) an own field on the instance. Fields are
// never checked against the method table, so a field may shadow a
// method of the same name, per Get's lookup order.
func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}
