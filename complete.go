package cmdtree

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Complete derives completion candidates for a partially typed line.
//
// The buffer is split on whitespace; a buffer ending in whitespace (or an
// empty buffer) completes at a fresh position, offering every child of the
// group reached rather than re-matching the previous token. All tokens but
// the last are walked by plain group descent: option tokens get no special
// treatment, so a token that matches nothing, or a command reached early,
// empties the completion context and no candidates are offered.
//
// Candidates are the current group's child names with the final partial token
// as a prefix (case-sensitive), sorted. The result is freshly computed per
// call; completing the same buffer twice yields identical results.
func (r *Registry) Complete(line string) []string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || endsInSpace(line) {
		tokens = append(tokens, "")
	}
	partial := tokens[len(tokens)-1]
	node, _, rest := r.walkGroups(tokens[:len(tokens)-1])
	if len(rest) > 0 {
		return nil
	}
	group, ok := node.(*Group)
	if !ok {
		return nil
	}
	var candidates []string
	for _, name := range group.Children() {
		if strings.HasPrefix(name, partial) {
			candidates = append(candidates, name)
		}
	}
	return candidates
}

func endsInSpace(line string) bool {
	last, _ := utf8.DecodeLastRuneInString(line)
	return last != utf8.RuneError && unicode.IsSpace(last)
}
