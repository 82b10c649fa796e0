/*
Package cmdtree interprets token sequences against a static hierarchy of named
command groups and leaf commands.

A [Registry] is built once at startup from nested [Group] and [Command]
declarations and never mutated afterward, which makes it safe to share across
concurrent callers. Three operations read the same hierarchy:

  - [Registry.Resolve] walks a token sequence, separating option tokens
    (two-hyphen prefix) from path tokens, and returns the matched command with
    its parsed options or a structured failure.
  - [Registry.Complete] re-derives valid next tokens from a partially typed
    line, prefix-matching the final token against the current group's children.
  - [Registry.Help] renders the child names of a group, or the declared
    options of a command, for any (possibly partial) path.

[Registry.Execute] ties them together: it resolves, answers an in-line --help
with rendered help, validates the parsed options against the command's
declared set, and invokes the handler.

Token sequences are plain whitespace-delimited strings. No shell grammar is
modeled here: quoting, escaping, and piping are the caller's problem, as is
producing the tokens in the first place. The repl package in this module is
one such producer; a one-shot argv driver is another.
*/
package cmdtree
