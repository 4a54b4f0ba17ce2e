package joins

import (
	"fmt"
	"reflect"
	"sort"
)

// Record is a single data item with named fields, the unit being joined.
type Record map[string]any

// Fields returns the names of the fields in the record, in sorted order.
func (rec Record) Fields() []Attribute {
	names := make([]Attribute, 0, len(rec))
	for name := range rec {
		names = append(names, Attribute(name))
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Clone returns a shallow copy of the record.  The copy of a nil record is
// an empty, non nil record.
func (rec Record) Clone() Record {
	rec2 := make(Record, len(rec))
	for k, v := range rec {
		rec2[k] = v
	}
	return rec2
}

// MergeFunc combines a left and a right record into a joined record.  Either
// side may be an empty record when a join keeps unmatched records.
type MergeFunc func(left, right Record) Record

// SelectFunc decides whether a (left, right) pair produces an output record,
// and if so which one.  A nil argument means that side is absent.  The bool
// result is the only inclusion signal: a false result omits the pair, even if
// the record is non nil.
type SelectFunc func(left, right Record) (Record, bool)

// Merge is the default MergeFunc.  It copies every field of left into a new
// record and then every field of right, so right hand fields win on a name
// collision.  A nil record contributes no fields.
func Merge(left, right Record) Record {
	rec := make(Record, len(left)+len(right))
	for k, v := range left {
		rec[k] = v
	}
	for k, v := range right {
		rec[k] = v
	}
	return rec
}

// orMerge returns merge, or Merge if merge is nil.
func orMerge(merge MergeFunc) MergeFunc {
	if merge == nil {
		return Merge
	}
	return merge
}

// orEmpty replaces an absent record with an empty one, which is how absent
// sides are handed to a MergeFunc.
func orEmpty(rec Record) Record {
	if rec == nil {
		return Record{}
	}
	return rec
}

// Records creates a collection of records from a slice of structs, a slice of
// pointers to structs, or a slice of maps with string keys.  Struct fields
// become record fields under their Go names; unexported fields are skipped.
func Records(v any) ([]Record, error) {
	rbody := reflect.ValueOf(v)
	if !rbody.IsValid() {
		return nil, &ContainerError{Expected: reflect.Slice, Found: reflect.Invalid}
	}
	if k := rbody.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, &ContainerError{Expected: reflect.Slice, Found: k}
	}

	e := rbody.Type().Elem()
	if e.Kind() == reflect.Ptr {
		e = e.Elem()
	}

	recs := make([]Record, 0, rbody.Len())
	switch e.Kind() {
	case reflect.Struct:
		names := fieldNames(e)
		for i := 0; i < rbody.Len(); i++ {
			rtup := reflect.Indirect(rbody.Index(i))
			if !rtup.IsValid() {
				// nil pointer element
				recs = append(recs, Record{})
				continue
			}
			rec := make(Record, len(names))
			for _, fi := range names {
				rec[string(fi.name)] = rtup.Field(fi.index).Interface()
			}
			recs = append(recs, rec)
		}
	case reflect.Map:
		if e.Key().Kind() != reflect.String {
			return nil, &ElemError{Expected: reflect.TypeOf(Record{}), Found: e}
		}
		for i := 0; i < rbody.Len(); i++ {
			rm := reflect.Indirect(rbody.Index(i))
			if !rm.IsValid() {
				recs = append(recs, Record{})
				continue
			}
			rec := make(Record, rm.Len())
			iter := rm.MapRange()
			for iter.Next() {
				rec[iter.Key().String()] = iter.Value().Interface()
			}
			recs = append(recs, rec)
		}
	default:
		return nil, &ElemError{Expected: reflect.TypeOf(Record{}), Found: e}
	}
	return recs, nil
}

// MustRecords is like Records but panics if the conversion fails.  It is
// intended for literal test data and examples.
func MustRecords(v any) []Record {
	recs, err := Records(v)
	if err != nil {
		panic(fmt.Sprintf("joins: MustRecords: %v", err))
	}
	return recs
}

// fieldIndex pairs an exported struct field's name with its position
type fieldIndex struct {
	name  Attribute
	index int
}

// fieldNames takes a reflect.Type of a struct and returns the exported field
// names in order
func fieldNames(e reflect.Type) []fieldIndex {
	n := e.NumField()
	names := make([]fieldIndex, 0, n)
	for i := 0; i < n; i++ {
		f := e.Field(i)
		if f.PkgPath != "" {
			continue
		}
		names = append(names, fieldIndex{Attribute(f.Name), i})
	}
	return names
}

// Heading returns the sorted union of the field names of the records.
func Heading(recs []Record) []Attribute {
	seen := make(map[string]struct{})
	for _, rec := range recs {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}
	h := make([]Attribute, 0, len(seen))
	for k := range seen {
		h = append(h, Attribute(k))
	}
	sort.Slice(h, func(i, j int) bool { return h[i] < h[j] })
	return h
}
