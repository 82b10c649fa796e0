package cmdtree

import (
	"fmt"
	"strings"
)

// Help renders help text for the node reached by the given path tokens.
//
// The walk stops at the first command reached: its declared options are
// listed sorted, or an explicit notice when it declares none. A group lists
// its child names, sorted. An unrecognized token produces an "unknown
// command" notice naming the offending path; that is a reporting outcome,
// not an error.
func (r *Registry) Help(tokens []string) string {
	node, consumed, rest := r.walkGroups(tokens)
	var buf strings.Builder
	if cmd, ok := node.(*Command); ok {
		fmt.Fprintf(&buf, "Help for command '%s':\n", strings.Join(consumed, " "))
		names := cmd.OptionNames()
		if len(names) == 0 {
			buf.WriteString("No options available.\n")
			return buf.String()
		}
		buf.WriteString("Options:\n")
		for _, name := range names {
			fmt.Fprintf(&buf, "  --%s\n", name)
		}
		return buf.String()
	}
	if len(rest) > 0 {
		offending := strings.Join(append(consumed[:len(consumed):len(consumed)], rest[0]), " ")
		fmt.Fprintf(&buf, "Unknown command '%s'.\n", offending)
		return buf.String()
	}
	group := node.(*Group)
	if len(consumed) > 0 {
		fmt.Fprintf(&buf, "Available commands under '%s':\n", strings.Join(consumed, " "))
	} else {
		buf.WriteString("Available commands:\n")
	}
	for _, name := range group.Children() {
		fmt.Fprintf(&buf, "  %s\n", name)
	}
	return buf.String()
}
