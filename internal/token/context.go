package token

// Context is the mutable name-to-value environment threaded through parsing
// (to recognize bound variables) and evaluation (to bind/resolve them).
// Lifecycle: created empty at REPL start by the caller, mutated only by
// evaluating a Define operator node (spec §3).
type Context struct {
	vars map[string]Token
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{vars: make(map[string]Token)}
}

// Lookup returns the Token bound to name, if any.
func (c *Context) Lookup(name string) (Token, bool) {
	t, ok := c.vars[name]
	return t, ok
}

// Bind sets name's bound value, overwriting any prior binding.
func (c *Context) Bind(name string, v Token) {
	c.vars[name] = v
}

// Has reports whether name is currently bound.
func (c *Context) Has(name string) bool {
	_, ok := c.vars[name]
	return ok
}
