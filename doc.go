// Package joins implements relational style joins over two in-memory
// collections of records, as they are usually described for SQL tables:
// inner, outer, left, right, and the excluding variants of each.
//
// # Basics
//
// Records are maps from field names to values.  A join pairs records from a
// left and a right collection whose key fields are equal, where the key
// field can have a different name on each side.  Duplicate keys are
// supported on both sides, so a left record with N matches produces N
// joined records.
//
// Every join is built from two primitives:
//
// IndexedLeft, which indexes the right collection by its key once, then
// walks the left collection in order and hands each left record to a
// SelectFunc once per match, or once with a nil right record when there is
// no match.
//
// Symmetric, which runs IndexedLeft over (left, right) and then over
// (right, left), where the second pass only forwards right records that
// found no left match.  This yields full outer semantics without emitting a
// matched pair twice.
//
// The join operations differ only in which pairs they keep:
//
//	InnerJoin           both sides present
//	OuterJoin           everything
//	LeftJoin            every left record (alias LeftOuterJoin)
//	RightJoin           every right record (alias RightOuterJoin)
//	LeftExcludingJoin   left records without a match
//	RightExcludingJoin  right records without a match
//	OuterExcludingJoin  records from either side without a match
//
// Kept pairs are combined with a MergeFunc.  When none is given, Merge copies
// the left fields and then the right fields into a new record, so right hand
// fields win when both sides have the same field name.  An absent side is
// passed to the MergeFunc as an empty Record.
//
// # Keys
//
// Key values are normalized by a KeyFunc before they are compared.  The
// default, StrictKey, treats all integral numbers as equal regardless of
// their Go type, so the float64 produced by encoding/json matches an int
// field, but it never matches a number to a string.  LooseKey compares the
// fmt.Sprint form of the values instead, which makes 1 and "1" equal.
// Records that lack the key field, or hold nil in it, are grouped together
// and match each other.
//
// # Beyond joins
//
// Restrict, Project, Rename and Prefix are small helpers for shaping the
// records that go into or come out of a join, and PrettyPrint renders a
// collection as a text table.  Predicates for Restrict can be built from
// attributes, for example:
//
//	joins.Restrict(recs, joins.Attribute("qty").GT(100).And(joins.Attribute("city").EQ("London")))
//
// The expr subpackage compiles CEL expressions into predicates and select
// functions.
package joins

// variable naming conventions
//
// left, right are collections of records; when a join is driven by the
// right side, the collection being walked is still called left inside
// IndexedLeft.
//
// rec, lrec, rrec are single records.
//
// lk, rk are the key attributes of the left and right collections.
//
// sel is a SelectFunc, merge is a MergeFunc.
