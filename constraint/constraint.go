// Package constraint restricts which dimension-space points exist.
//
// A constraint is a CEL expression evaluated against one point. Two
// variables are declared:
//
//	point  map(string, string)  dimension name → value identifier
//	depth  map(string, int)     dimension name → value depth
//
// Example: forbid Swiss content in French unless it is the generic market.
//
//	!(point.language == "fr" && point.market == "CH")
//
// Use `"x" in point` to guard dimensions a point may lack. A Set admits a
// point only when every expression evaluates to true; it satisfies
// variation.PointFilter.
package constraint

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/katalvlaran/contentdim/dimspace"
)

var (
	// ErrEmptyExpression indicates a blank constraint.
	ErrEmptyExpression = errors.New("constraint: expression is empty")

	// ErrCompile indicates the expression does not parse or type-check.
	ErrCompile = errors.New("constraint: compile failed")

	// ErrNotBoolean indicates the expression does not produce a bool.
	ErrNotBoolean = errors.New("constraint: expression is not boolean")

	// ErrEvaluate indicates evaluation failed for a point, e.g. a missing key.
	ErrEvaluate = errors.New("constraint: evaluation failed")
)

// Variable names visible to expressions.
const (
	VarPoint = "point"
	VarDepth = "depth"
)

// Constraint is one compiled expression.
type Constraint struct {
	expr    string
	program cel.Program
}

// newEnv declares the point and depth variables.
func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(VarPoint, cel.MapType(cel.StringType, cel.StringType)),
		cel.Variable(VarDepth, cel.MapType(cel.StringType, cel.IntType)),
	)
}

// Compile parses and type-checks expr.
// Errors: ErrEmptyExpression, ErrCompile, ErrNotBoolean.
func Compile(expr string) (*Constraint, error) {
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("constraint: environment: %w", err)
	}

	return compile(env, expr)
}

func compile(env *cel.Env, expr string) (*Constraint, error) {
	if expr == "" {
		return nil, ErrEmptyExpression
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: %q yields %s", ErrNotBoolean, expr, ast.OutputType())
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, err)
	}

	return &Constraint{expr: expr, program: program}, nil
}

// String returns the source expression.
func (c *Constraint) String() string { return c.expr }

// Allows evaluates the constraint against p.
// Errors: ErrEvaluate wrapping the CEL error.
func (c *Constraint) Allows(p *dimspace.Point) (bool, error) {
	out, _, err := c.program.Eval(activation(p))
	if err != nil {
		return false, fmt.Errorf("%w: %q on %s: %v", ErrEvaluate, c.expr, p, err)
	}
	allowed, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q on %s yields %v", ErrNotBoolean, c.expr, p, out.Type())
	}

	return allowed, nil
}

func activation(p *dimspace.Point) map[string]any {
	depth := make(map[string]int64, p.Len())
	for name, d := range p.IntrinsicWeight() {
		depth[name] = int64(d)
	}

	return map[string]any{
		VarPoint: p.Identifiers(),
		VarDepth: depth,
	}
}

// Set is a conjunction of constraints. The zero value and nil admit every point.
type Set struct {
	constraints []*Constraint
}

// NewSet compiles every expression, in order, sharing one environment.
// The first failing expression aborts with its error.
func NewSet(exprs ...string) (*Set, error) {
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("constraint: environment: %w", err)
	}
	s := &Set{constraints: make([]*Constraint, 0, len(exprs))}
	for i, expr := range exprs {
		c, err := compile(env, expr)
		if err != nil {
			return nil, fmt.Errorf("constraint #%d: %w", i, err)
		}
		s.constraints = append(s.constraints, c)
	}

	return s, nil
}

// Len returns the number of constraints.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.constraints)
}

// Allows reports whether every constraint admits p; it stops at the first
// rejection or error.
func (s *Set) Allows(p *dimspace.Point) (bool, error) {
	if s == nil {
		return true, nil
	}
	for _, c := range s.constraints {
		ok, err := c.Allows(p)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}
