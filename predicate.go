// predicate defines logical predicates on records, used by Restrict

package joins

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Predicate is a boolean test on a record.
type Predicate interface {
	// Eval evaluates the predicate on a record
	Eval(rec Record) bool

	// Domain is the set of attributes the predicate reads
	Domain() []Attribute

	// infix boolean expressions
	And(p2 Predicate) AndPred
	Or(p2 Predicate) OrPred
	Xor(p2 Predicate) XorPred
}

// unionAttributes produces a union of two sets of attributes, without dups
// assuming that the input attributes are already unique. This returns a copy
// and does not modify the inputs.
func unionAttributes(att1 []Attribute, att2 []Attribute) []Attribute {
	// For small sets of attributes (which should be typical!) this should be
	// faster than a map.
	att := make([]Attribute, len(att1))
	copy(att, att1)
Found:
	for _, v2 := range att2 {
		for _, v1 := range att1 {
			if v1 == v2 {
				continue Found
			}
		}
		att = append(att, v2)
	}
	return att
}

// Not predicate
func Not(p Predicate) NotPred {
	return NotPred{p}
}

// NotPred represents a logical not of a predicate
type NotPred struct {
	P Predicate
}

func (p NotPred) String() string            { return fmt.Sprintf("!(%v)", p.P) }
func (p NotPred) Domain() []Attribute       { return p.P.Domain() }
func (p NotPred) Eval(rec Record) bool      { return !p.P.Eval(rec) }
func (p1 NotPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }
func (p1 NotPred) Or(p2 Predicate) OrPred   { return OrPred{p1, p2} }
func (p1 NotPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// AndPred represents a logical and predicate
type AndPred struct {
	P1 Predicate
	P2 Predicate
}

func (p AndPred) String() string            { return fmt.Sprintf("(%v) && (%v)", p.P1, p.P2) }
func (p AndPred) Domain() []Attribute       { return unionAttributes(p.P1.Domain(), p.P2.Domain()) }
func (p AndPred) Eval(rec Record) bool      { return p.P1.Eval(rec) && p.P2.Eval(rec) }
func (p1 AndPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }
func (p1 AndPred) Or(p2 Predicate) OrPred   { return OrPred{p1, p2} }
func (p1 AndPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// OrPred represents a logical or predicate
type OrPred struct {
	P1 Predicate
	P2 Predicate
}

func (p OrPred) String() string            { return fmt.Sprintf("(%v) || (%v)", p.P1, p.P2) }
func (p OrPred) Domain() []Attribute       { return unionAttributes(p.P1.Domain(), p.P2.Domain()) }
func (p OrPred) Eval(rec Record) bool      { return p.P1.Eval(rec) || p.P2.Eval(rec) }
func (p1 OrPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }
func (p1 OrPred) Or(p2 Predicate) OrPred   { return OrPred{p1, p2} }
func (p1 OrPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// XorPred represents a logical xor predicate
type XorPred struct {
	P1 Predicate
	P2 Predicate
}

func (p XorPred) String() string            { return fmt.Sprintf("(%v) != (%v)", p.P1, p.P2) }
func (p XorPred) Domain() []Attribute       { return unionAttributes(p.P1.Domain(), p.P2.Domain()) }
func (p XorPred) Eval(rec Record) bool      { return p.P1.Eval(rec) != p.P2.Eval(rec) }
func (p1 XorPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }
func (p1 XorPred) Or(p2 Predicate) OrPred   { return OrPred{p1, p2} }
func (p1 XorPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// AdHoc is a Predicate that can implement any function on a record.  Its
// domain is whatever attributes the caller lists, which is only used for
// display.
type AdHoc struct {
	F   func(rec Record) bool
	Att []Attribute
}

// String representation of AdHoc
func (p AdHoc) String() string {
	s := make([]string, len(p.Att))
	for i, v := range p.Att {
		s[i] = string(v)
	}
	return fmt.Sprintf("func({%s})", strings.Join(s, ", "))
}

func (p AdHoc) Domain() []Attribute       { return p.Att }
func (p AdHoc) Eval(rec Record) bool      { return p.F(rec) }
func (p1 AdHoc) And(p2 Predicate) AndPred { return AndPred{p1, p2} }
func (p1 AdHoc) Or(p2 Predicate) OrPred   { return OrPred{p1, p2} }
func (p1 AdHoc) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// I've chosen the MIPS assembly condition names as a guide for the names of
// the comparisons, as short names read better inside compound predicates.
//
// The v param is an interface because it might be a literal, or another
// attribute.  A comparison that reads an absent field is always false.

type cmpOp int

const (
	opEQ cmpOp = iota
	opNE
	opLT
	opLE
	opGT
	opGE
)

var cmpSymbols = [...]string{"==", "!=", "<", "<=", ">", ">="}

// CmpPred compares an attribute with a literal or with another attribute
type CmpPred struct {
	op  cmpOp
	att []Attribute
	lit any
}

func newCmp(op cmpOp, att1 Attribute, v any) CmpPred {
	if att2, ok := v.(Attribute); ok {
		return CmpPred{op, []Attribute{att1, att2}, nil}
	}
	return CmpPred{op, []Attribute{att1}, v}
}

// EQ is equal to (==)
func (att1 Attribute) EQ(v any) CmpPred { return newCmp(opEQ, att1, v) }

// NE is not equal to (!=)
func (att1 Attribute) NE(v any) CmpPred { return newCmp(opNE, att1, v) }

// LT is less than (<)
func (att1 Attribute) LT(v any) CmpPred { return newCmp(opLT, att1, v) }

// LE is less than or equal to (<=)
func (att1 Attribute) LE(v any) CmpPred { return newCmp(opLE, att1, v) }

// GT is greater than (>)
func (att1 Attribute) GT(v any) CmpPred { return newCmp(opGT, att1, v) }

// GE is greater than or equal to (>=)
func (att1 Attribute) GE(v any) CmpPred { return newCmp(opGE, att1, v) }

// String representation of the comparison
func (p CmpPred) String() string {
	if len(p.att) == 2 {
		return fmt.Sprintf("%v %s %v", p.att[0], cmpSymbols[p.op], p.att[1])
	}
	if s, ok := p.lit.(string); ok {
		return fmt.Sprintf("%v %s %q", p.att[0], cmpSymbols[p.op], s)
	}
	return fmt.Sprintf("%v %s %v", p.att[0], cmpSymbols[p.op], p.lit)
}

// Domain is the set of attributes the comparison reads
func (p CmpPred) Domain() []Attribute {
	return p.att
}

// Eval evaluates the comparison on a record
func (p CmpPred) Eval(rec Record) bool {
	v1, ok := p.att[0].Of(rec)
	if !ok {
		return false
	}
	v2 := p.lit
	if len(p.att) == 2 {
		if v2, ok = p.att[1].Of(rec); !ok {
			return false
		}
	} else if v2 == nil {
		return false
	}

	if p.op == opEQ || p.op == opNE {
		return equalValues(v1, v2) == (p.op == opEQ)
	}
	c, ok := compareValues(v1, v2)
	if !ok {
		return false
	}
	switch p.op {
	case opLT:
		return c < 0
	case opLE:
		return c <= 0
	case opGT:
		return c > 0
	default:
		return c >= 0
	}
}

func (p1 CmpPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }
func (p1 CmpPred) Or(p2 Predicate) OrPred   { return OrPred{p1, p2} }
func (p1 CmpPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// INPred is true when an attribute equals any of a set of values
type INPred struct {
	att  Attribute
	vals []any
}

// IN is set membership
func (att Attribute) IN(vals ...any) INPred {
	return INPred{att, vals}
}

// String representation of IN
func (p INPred) String() string {
	s := make([]string, len(p.vals))
	for i, v := range p.vals {
		if str, ok := v.(string); ok {
			s[i] = fmt.Sprintf("%q", str)
		} else {
			s[i] = fmt.Sprint(v)
		}
	}
	return fmt.Sprintf("%v ∈ {%s}", p.att, strings.Join(s, ", "))
}

func (p INPred) Domain() []Attribute { return []Attribute{p.att} }

// Eval evaluates set membership on a record
func (p INPred) Eval(rec Record) bool {
	v1, ok := p.att.Of(rec)
	if !ok {
		return false
	}
	for _, v2 := range p.vals {
		if v2 != nil && equalValues(v1, v2) {
			return true
		}
	}
	return false
}

func (p1 INPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }
func (p1 INPred) Or(p2 Predicate) OrPred   { return OrPred{p1, p2} }
func (p1 INPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// ExistsPred is true when a record has a non nil value for an attribute
type ExistsPred struct {
	att Attribute
}

// Exists tests that the attribute is present
func (att Attribute) Exists() ExistsPred {
	return ExistsPred{att}
}

func (p ExistsPred) String() string {
	return fmt.Sprintf("∃%v", p.att)
}

func (p ExistsPred) Domain() []Attribute { return []Attribute{p.att} }

func (p ExistsPred) Eval(rec Record) bool {
	_, ok := p.att.Of(rec)
	return ok
}

func (p1 ExistsPred) And(p2 Predicate) AndPred { return AndPred{p1, p2} }
func (p1 ExistsPred) Or(p2 Predicate) OrPred   { return OrPred{p1, p2} }
func (p1 ExistsPred) Xor(p2 Predicate) XorPred { return XorPred{p1, p2} }

// equalValues compares numbers by value whatever their Go types, and
// everything else with reflect.DeepEqual
func equalValues(v1, v2 any) bool {
	if n1, ok := normalizeNumber(v1); ok {
		n2, ok := normalizeNumber(v2)
		if !ok {
			return false
		}
		c, ok := compareNumbers(n1, n2)
		return ok && c == 0
	}
	return reflect.DeepEqual(v1, v2)
}

// compareValues orders two numbers or two strings.  ok is false for any
// other combination.
func compareValues(v1, v2 any) (int, bool) {
	if n1, ok := normalizeNumber(v1); ok {
		n2, ok := normalizeNumber(v2)
		if !ok {
			return 0, false
		}
		return compareNumbers(n1, n2)
	}
	s1, ok1 := v1.(string)
	s2, ok2 := v2.(string)
	if !ok1 || !ok2 {
		return 0, false
	}
	return strings.Compare(s1, s2), true
}

// compareNumbers compares two normalized numbers.  ok is false if either is
// NaN.
func compareNumbers(n1, n2 any) (int, bool) {
	if i1, ok := n1.(int64); ok {
		if i2, ok := n2.(int64); ok {
			switch {
			case i1 < i2:
				return -1, true
			case i1 > i2:
				return 1, true
			}
			return 0, true
		}
	}
	f1, f2 := toFloat(n1), toFloat(n2)
	if math.IsNaN(f1) || math.IsNaN(f2) {
		return 0, false
	}
	switch {
	case f1 < f2:
		return -1, true
	case f1 > f2:
		return 1, true
	}
	return 0, true
}
