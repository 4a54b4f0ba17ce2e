package joins

import (
	"strconv"
	"strings"
)

// Kind names one of the join operations.
type Kind int

const (
	Inner Kind = iota
	Outer
	Left
	Right
	LeftExcluding
	RightExcluding
	OuterExcluding
)

var kindNames = [...]string{
	Inner:          "inner",
	Outer:          "outer",
	Left:           "left",
	Right:          "right",
	LeftExcluding:  "leftExcluding",
	RightExcluding: "rightExcluding",
	OuterExcluding: "outerExcluding",
}

// kindAliases holds every accepted spelling, lower cased and without
// separators or a trailing "join"
var kindAliases = map[string]Kind{
	"inner":          Inner,
	"outer":          Outer,
	"full":           Outer,
	"fullouter":      Outer,
	"left":           Left,
	"leftouter":      Left,
	"right":          Right,
	"rightouter":     Right,
	"leftexcluding":  LeftExcluding,
	"leftanti":       LeftExcluding,
	"rightexcluding": RightExcluding,
	"rightanti":      RightExcluding,
	"outerexcluding": OuterExcluding,
	"fullexcluding":  OuterExcluding,
}

// String returns the canonical name of the join kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind returns the Kind named by s.  Case, '-', '_' and ' ' are ignored,
// as is a "join" suffix, so "leftOuterJoin", "left_outer" and "LEFT OUTER
// JOIN" all name Left.
func ParseKind(s string) (Kind, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	norm = strings.TrimSuffix(norm, "join")
	if k, ok := kindAliases[norm]; ok {
		return k, nil
	}
	return 0, &KindError{Name: s}
}

// Kinds returns every join kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}
