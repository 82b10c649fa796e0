package cmdtree

import "strings"

// Execute resolves tokens and invokes the matching command's handler.
//
// A resolution failure is returned as-is. The in-line --help sentinel renders
// help for the path consumed so far on out and returns nil. Before the
// handler runs, the parsed options are validated against the command's
// declared set: undeclared keys yield an [UnexpectedOptionError] and absent
// required options a [MissingOptionError]. All of these are ordinary errors
// for the driver to report; none of them should stop an interactive loop.
func (r *Registry) Execute(tokens []string, out *Printer) error {
	res, err := r.Resolve(tokens)
	if err != nil {
		return err
	}
	if res.Help {
		out.Print(r.Help(res.Path))
		return nil
	}
	if err := res.Command.checkOptions(res.Options, res.Path); err != nil {
		return err
	}
	return res.Command.handler(res.Options, out)
}

// checkOptions validates parsed options against the declared set. Both sides
// are compared under normalized names, so a declared "max-mem" accepts
// "--max-mem" and "--max_mem" alike.
func (c *Command) checkOptions(opts Options, path []string) error {
	name := strings.Join(path, " ")
	for key := range opts {
		if _, ok := c.options[key]; !ok {
			return &UnexpectedOptionError{Option: key, Command: name}
		}
	}
	for key, spec := range c.options {
		if !spec.required {
			continue
		}
		if _, ok := opts[key]; !ok {
			return &MissingOptionError{Option: spec.display, Command: name}
		}
	}
	return nil
}
