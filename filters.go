package irc

// Middleware wraps a Handler to produce a new Handler, the basic unit
// of composition for the dispatch layer.
type Middleware func(Handler) Handler

// wrap applies middlewares to h in the order listed, so the first
// middleware given runs outermost.
func wrap(h Handler, mw ...Middleware) Handler {
	wrapped := h
	for i := len(mw) - 1; i >= 0; i-- {
		wrapped = mw[i](wrapped)
	}
	return wrapped
}

// Allow returns a Middleware that only calls the wrapped handler when
// message.Command is one of cmds.
func Allow(cmds ...string) Middleware {
	allowed := commandSet(cmds)
	return func(next Handler) Handler {
		return HandlerFunc(func(c *Client, m *Message) {
			if allowed[normalizeCmd(m.Command)] {
				next.Handle(c, m)
			}
		})
	}
}

// Deny returns a Middleware that calls the wrapped handler for every
// message except those whose Command is one of cmds.
func Deny(cmds ...string) Middleware {
	denied := commandSet(cmds)
	return func(next Handler) Handler {
		return HandlerFunc(func(c *Client, m *Message) {
			if !denied[normalizeCmd(m.Command)] {
				next.Handle(c, m)
			}
		})
	}
}

func commandSet(cmds []string) map[Command]bool {
	set := make(map[Command]bool, len(cmds))
	for _, c := range cmds {
		set[normalizeCmd(Command(c))] = true
	}
	return set
}

func normalizeCmd(c Command) Command {
	c.normalize()
	return c
}
