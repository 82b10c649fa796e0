package cmdtree

import "strings"

const (
	optionPrefix = "--"
	helpToken    = "--help"
)

// Resolution is the successful outcome of [Registry.Resolve]: either a command
// with its parsed options, or a help request for the path consumed so far.
type Resolution struct {
	// Command is the resolved leaf. Nil when Help is set.
	Command *Command
	// Options holds every option parsed from the token sequence, normalized
	// keys, last occurrence winning. It is not filtered by the command's
	// declared set here; that check happens at dispatch.
	Options Options
	// Path is the sequence of path tokens consumed to reach Command, or the
	// path consumed before the help sentinel.
	Path []string
	// Help is set when the in-line --help sentinel was seen. This is a side
	// exit, not an error: the caller should render help for Path.
	Help bool
}

// Resolve walks tokens against the hierarchy, separating option tokens from
// path tokens.
//
// An option token starts with "--". The one-token form "--key=value" splits
// once on the first '='. The bare form "--key" consumes the next token as its
// value when one exists and does not itself start with "--"; otherwise it is
// recorded as a boolean flag. Leading hyphens are stripped greedily, so
// malformed tokens like "--=value" parse into an empty key rather than
// failing; undeclared keys are rejected at dispatch, not here.
//
// Path tokens descend groups. A token that names no child yields an
// [UnknownTokenError]; running out of tokens on a group yields an
// [IncompletePathError]; bare tokens after a command has been reached are
// dropped.
func (r *Registry) Resolve(tokens []string) (*Resolution, error) {
	var (
		node Node = r.root
		path []string
		opts = Options{}
	)
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch {
		case token == helpToken:
			return &Resolution{Options: opts, Path: path, Help: true}, nil
		case strings.HasPrefix(token, optionPrefix):
			key, value, hasValue := strings.Cut(strings.TrimLeft(token, "-"), "=")
			switch {
			case hasValue:
				opts[normalizeKey(key)] = StringValue(value)
			case i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], optionPrefix):
				opts[normalizeKey(key)] = StringValue(tokens[i+1])
				i++
			default:
				opts[normalizeKey(key)] = FlagValue()
			}
		default:
			child, ok := descend(node, token)
			if !ok {
				if _, reached := node.(*Command); reached {
					// trailing path tokens after a command are dropped
					continue
				}
				return nil, &UnknownTokenError{Token: token, Path: path}
			}
			node = child
			path = append(path, token)
		}
	}
	if cmd, ok := node.(*Command); ok {
		return &Resolution{Command: cmd, Options: opts, Path: path}, nil
	}
	return nil, &IncompletePathError{Path: path}
}
