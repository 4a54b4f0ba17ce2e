// Package expr compiles CEL expressions into predicates and select functions
// for joins.
//
// A row predicate sees the record as the map variable row:
//
//	row.qty > 100 && row.city == "London"
//
// A pair selector sees both sides of a join as left and right, plus the
// booleans has_left and has_right.  An absent side is an empty map:
//
//	has_left && has_right && left.price * right.qty > 1000
package expr

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/JeffEnglish/joins"
)

// Predicate is a joins.Predicate backed by a compiled CEL program.
type Predicate struct {
	// Expression is the source text the predicate was compiled from
	Expression string

	program cel.Program
	domain  []joins.Attribute
}

// NewPredicate compiles expression over the variable row.  The expression
// must produce a bool.
func NewPredicate(expression string) (*Predicate, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("expression can't be empty string")
	}
	env, err := cel.NewEnv(
		cel.Variable("row", cel.MapType(cel.StringType, cel.DynType)),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating CEL environment: %w", err)
	}
	prg, err := compile(env, expression)
	if err != nil {
		return nil, err
	}
	return &Predicate{
		Expression: expression,
		program:    prg,
		domain:     referencedFields(expression, "row"),
	}, nil
}

// Eval evaluates the expression on rec.  Evaluation errors, such as a
// reference to a missing field, and non bool results count as false.
func (p *Predicate) Eval(rec joins.Record) bool {
	ok, _ := p.Test(rec)
	return ok
}

// Test evaluates the expression on rec and reports evaluation errors.
func (p *Predicate) Test(rec joins.Record) (bool, error) {
	return evalBool(p.program, map[string]any{"row": rowValue(rec)})
}

// Domain returns the fields selected with row.<field> in the expression.
func (p *Predicate) Domain() []joins.Attribute {
	return p.domain
}

// String returns the expression text
func (p *Predicate) String() string {
	return p.Expression
}

func (p *Predicate) And(p2 joins.Predicate) joins.AndPred { return joins.AndPred{P1: p, P2: p2} }
func (p *Predicate) Or(p2 joins.Predicate) joins.OrPred   { return joins.OrPred{P1: p, P2: p2} }
func (p *Predicate) Xor(p2 joins.Predicate) joins.XorPred { return joins.XorPred{P1: p, P2: p2} }

// NewSelect compiles expression over left, right, has_left and has_right and
// returns a SelectFunc that merges the pairs the expression accepts.  A nil
// merge means joins.Merge.  Pairs whose evaluation fails are omitted.
func NewSelect(expression string, merge joins.MergeFunc) (joins.SelectFunc, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("expression can't be empty string")
	}
	if merge == nil {
		merge = joins.Merge
	}
	env, err := cel.NewEnv(
		cel.Variable("left", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("right", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("has_left", cel.BoolType),
		cel.Variable("has_right", cel.BoolType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating CEL environment: %w", err)
	}
	prg, err := compile(env, expression)
	if err != nil {
		return nil, err
	}
	return func(lrec, rrec joins.Record) (joins.Record, bool) {
		keep, err := evalBool(prg, map[string]any{
			"left":      rowValue(lrec),
			"right":     rowValue(rrec),
			"has_left":  lrec != nil,
			"has_right": rrec != nil,
		})
		if err != nil || !keep {
			return nil, false
		}
		if lrec == nil {
			lrec = joins.Record{}
		}
		if rrec == nil {
			rrec = joins.Record{}
		}
		return merge(lrec, rrec), true
	}, nil
}

func compile(env *cel.Env, expression string) (cel.Program, error) {
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("error compiling CEL expression: %w", issues.Err())
	}
	if !ast.OutputType().IsAssignableType(cel.BoolType) {
		return nil, fmt.Errorf("CEL expression %q has type %v, want bool", expression, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("error creating Program: %w", err)
	}
	return prg, nil
}

func evalBool(prg cel.Program, vars map[string]any) (bool, error) {
	out, _, err := prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("error evaluating CEL expression: %w", err)
	}
	nv, err := out.ConvertToNative(reflect.TypeOf(true))
	if err != nil {
		return false, fmt.Errorf("error ConvertToNative, got err: %w", err)
	}
	b, ok := nv.(bool)
	if !ok {
		return false, fmt.Errorf("error converting to bool, nv: %v", nv)
	}
	return b, nil
}

// rowValue hands a record to CEL as a plain map.  Integer kinds CEL does not
// know natively are widened so that comparisons with literals work.
func rowValue(rec joins.Record) map[string]any {
	m := make(map[string]any, len(rec))
	for k, v := range rec {
		m[k] = widen(v)
	}
	return m
}

func widen(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case float32:
		return float64(x)
	case joins.Record:
		return rowValue(x)
	case map[string]any:
		return rowValue(x)
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = widen(x[i])
		}
		return out
	}
	return v
}

// referencedFields finds the names used as <variable>.<name> in expression.
// It is only used to describe the predicate, so a textual scan is enough.
func referencedFields(expression, variable string) []joins.Attribute {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(variable) + `\.([A-Za-z_][A-Za-z0-9_]*)`)
	var atts []joins.Attribute
	seen := make(map[string]struct{})
	for _, m := range re.FindAllStringSubmatch(expression, -1) {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		atts = append(atts, joins.Attribute(m[1]))
	}
	return atts
}
