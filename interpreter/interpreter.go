// Package interpreter wires the lexer, parser, and evaluator into a
// single entry point: Interpret takes a source string and returns either
// the joined parser diagnostics or the inspected result of evaluation.
// Session extends that with a root environment that survives across
// calls, which is what the REPL needs to keep bindings alive between
// lines of input.
package interpreter

import (
	"strings"

	"mimir/eval"
	"mimir/lexer"
	"mimir/object"
	"mimir/parser"
)

// Interpret lexes and parses source; if the parser accumulated any
// diagnostics, they are returned joined by newlines instead of being
// evaluated. Otherwise the program is evaluated under a fresh root
// environment and the final value's Inspect form is returned, or the
// empty string if evaluation produced nothing.
func Interpret(source string) string {
	return NewSession().Eval(source)
}

// Session keeps one root environment alive across repeated calls to Eval,
// so that bindings made by one call are visible to the next — the
// behavior an interactive REPL needs and that a one-shot Interpret call
// does not.
type Session struct {
	env *object.Environment
	ev  *eval.Evaluator
}

// NewSession creates a Session with a fresh root environment.
func NewSession() *Session {
	return &Session{
		env: object.NewEnvironment(),
		ev:  eval.New(),
	}
}

// Eval runs source through the parser and evaluator using the session's
// persistent environment, applying the same diagnostics-first contract as
// Interpret.
func (s *Session) Eval(source string) string {
	out, _ := s.EvalChecked(source)
	return out
}

// EvalChecked behaves like Eval but also reports whether the returned
// string is a diagnostic (parser errors or a runtime Error) rather than a
// normal result, which callers that distinguish the two — such as the
// REPL's colored output — need and a single string return cannot convey.
func (s *Session) EvalChecked(source string) (result string, isError bool) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		return strings.Join(errs, "\n"), true
	}

	val := s.ev.Eval(program, s.env)
	if val == nil {
		return "", false
	}
	if _, ok := val.(*object.Error); ok {
		return val.Inspect(), true
	}
	return val.Inspect(), false
}
