package flow

import (
	"fmt"
	"maps"
	"slices"
)

// Context is the ordered-insertion mapping from step name to the value the
// step produced. It grows copy-on-write: extensions never mutate the
// receiver, so a failure's captured context stays stable no matter what a
// later run does.
type Context struct {
	names  []string
	values map[string]any
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{values: map[string]any{}}
}

// SeedContext returns a context pre-populated with seed. Seed keys are
// inserted in sorted order so Names stays deterministic.
func SeedContext(seed map[string]any) *Context {
	c := NewContext()
	for _, name := range slices.Sorted(maps.Keys(seed)) {
		c.names = append(c.names, name)
		c.values[name] = seed[name]
	}
	return c
}

// Has reports whether a step result is bound under name.
func (c *Context) Has(name string) bool {
	_, found := c.values[name]
	return found
}

// Get returns the value bound under name.
func (c *Context) Get(name string) (any, bool) {
	v, found := c.values[name]
	return v, found
}

// MustGet returns the value bound under name and panics when there is none.
func (c *Context) MustGet(name string) any {
	v, found := c.values[name]
	if !found {
		panic(fmt.Sprintf("okflow: no step named %q in flow context", name))
	}
	return v
}

// Names returns the bound step names in insertion order.
func (c *Context) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of bound step results.
func (c *Context) Len() int {
	return len(c.names)
}

// Map returns a defensive copy of the bindings.
func (c *Context) Map() map[string]any {
	return maps.Clone(c.values)
}

// with returns a new context extended with one binding. The receiver is
// never modified.
func (c *Context) with(name string, value any) *Context {
	names := make([]string, len(c.names), len(c.names)+1)
	copy(names, c.names)

	next := &Context{
		names:  append(names, name),
		values: maps.Clone(c.values),
	}
	next.values[name] = value
	return next
}
