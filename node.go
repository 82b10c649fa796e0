package cmdtree

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// HandlerFunc is the function bound to a [Command] leaf.
// It receives the options parsed from the input line and a [Printer] for user-visible output.
type HandlerFunc = func(opts Options, out *Printer) error

// Node is one position in the command hierarchy.
// It is always exactly one of [*Group] or [*Command].
type Node interface {
	isNode()
}

// Group is an internal node of the hierarchy with named children.
type Group struct {
	name     string
	children map[string]Node
}

func (g *Group) isNode() {}

// Command is a leaf node bound to a handler and a declared option set.
type Command struct {
	name    string
	handler HandlerFunc
	// keyed by normalized option name
	options map[string]optionSpec
}

func (c *Command) isNode() {}

type optionSpec struct {
	display  string
	required bool
}

// Registry is the root of a command hierarchy.
// Build it once at startup; it must not be modified afterward.
// A fully built Registry is safe for concurrent readers.
type Registry struct {
	root *Group
}

// New returns an empty [Registry] ready for [Registry.Group] and [Registry.Command] calls.
func New() *Registry {
	return &Registry{root: &Group{children: map[string]Node{}}}
}

// Root returns the root [Group] of the hierarchy.
func (r *Registry) Root() *Group {
	return r.root
}

// Group adds a top-level group, see [Group.Group].
func (r *Registry) Group(name string) *Group {
	return r.root.Group(name)
}

// Command adds a top-level command, see [Group.Command].
func (r *Registry) Command(name string, handler HandlerFunc) *Command {
	return r.root.Command(name, handler)
}

func validName(name string) error {
	switch {
	case len(name) == 0:
		return fmt.Errorf("empty name")
	case strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("name %q contains whitespace", name)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("name %q starts with a hyphen", name)
	default:
		return nil
	}
}

func (g *Group) register(name string, child Node) {
	if err := validName(name); err != nil {
		panic("cmdtree: " + err.Error())
	}
	if _, exists := g.children[name]; exists {
		panic(fmt.Sprintf("cmdtree: duplicate child %q in group %q", name, g.name))
	}
	g.children[name] = child
}

// Group adds a child group with the given name.
// The name must be non-empty, whitespace-free, not begin with a hyphen,
// and be unique among this group's children. Violations panic, since the
// hierarchy is built from literals at process start.
func (g *Group) Group(name string) *Group {
	child := &Group{name: name, children: map[string]Node{}}
	g.register(name, child)
	return child
}

// Command adds a child command bound to handler.
// Naming rules are the same as for [Group.Group]. A nil handler panics.
func (g *Group) Command(name string, handler HandlerFunc) *Command {
	if handler == nil {
		panic(fmt.Sprintf("cmdtree: nil handler for command %q", name))
	}
	child := &Command{name: name, handler: handler, options: map[string]optionSpec{}}
	g.register(name, child)
	return child
}

// Child looks up a direct child of this group by name.
func (g *Group) Child(name string) (Node, bool) {
	child, ok := g.children[name]
	return child, ok
}

// Children returns the names of this group's children, sorted.
func (g *Group) Children() []string {
	names := make([]string, 0, len(g.children))
	for name := range g.children {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Name returns the name this command was registered under.
func (c *Command) Name() string {
	return c.name
}

func (c *Command) declare(name string, required bool) {
	if len(name) == 0 || strings.Contains(name, "=") || strings.HasPrefix(name, "-") || strings.ContainsFunc(name, unicode.IsSpace) {
		panic(fmt.Sprintf("cmdtree: invalid option name %q for command %q", name, c.name))
	}
	key := normalizeKey(name)
	if _, exists := c.options[key]; exists {
		panic(fmt.Sprintf("cmdtree: duplicate option %q for command %q", name, c.name))
	}
	c.options[key] = optionSpec{display: name, required: required}
}

// Options declares option names accepted by this command.
// Option names must not contain '=' or a leading hyphen; the hyphen prefix
// is implied on the input line. Violations and duplicates panic.
func (c *Command) Options(names ...string) *Command {
	for _, name := range names {
		c.declare(name, false)
	}
	return c
}

// Requires declares option names that must be present when the command is invoked.
func (c *Command) Requires(names ...string) *Command {
	for _, name := range names {
		c.declare(name, true)
	}
	return c
}

// OptionNames returns the declared option names as-registered, sorted.
// Order is stable for help display only; it carries no semantics.
func (c *Command) OptionNames() []string {
	names := make([]string, 0, len(c.options))
	for _, spec := range c.options {
		names = append(names, spec.display)
	}
	slices.Sort(names)
	return names
}
