// Package varexpr evaluates expressions over variables.
//
// The children of a structure variable are the names visible to an
// expression; nested structures are maps and numbers are float64.
//
//	scope := variable.New()
//	scope.GetChild("score").SetNumber(10)
//	res, err := varexpr.Eval(`score * 2 + 1`, scope) // Number(21)
package varexpr

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gdcore/serializer/debug"
	"github.com/gdcore/serializer/variable"
)

var ErrExpr = errors.New("expression error")

type Env map[string]any

type Program struct {
	src string
	prg *vm.Program
}

func (p *Program) String() string { return p.src }

// Compile compiles src for later runs against variable scopes.
func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpr, err)
	}
	return &Program{src: src, prg: prg}, nil
}

// Run evaluates p with the children of scope as variables.  A nil or
// non-structure scope provides no variables.
func (p *Program) Run(scope *variable.Variable) (*variable.Variable, error) {
	env := ScopeEnv(scope)
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrExpr, p.src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q => %v\n", p.src, res)
	}
	return FromAny(res), nil
}

// Eval compiles and runs src.
func Eval(src string, scope *variable.Variable) (*variable.Variable, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Run(scope)
}

// ScopeEnv returns the expression environment of scope.
func ScopeEnv(scope *variable.Variable) Env {
	env := Env{}
	if scope == nil {
		return env
	}
	for name, c := range scope.Children() {
		env[name] = ToAny(c)
	}
	return env
}
