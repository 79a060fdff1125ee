// Package console implements the interactive numbered menu and the plain-text
// renderers shared with the non-interactive commands.
//
// The menu reads one answer per line from any io.Reader and writes prompts
// and results to an io.Writer, so it runs the same against a terminal and in
// tests. Every failure is reported to the user and the loop continues; only
// option 0 or the end of input leaves it.
package console
