// join implements the indexed iteration that every join variant is built on

package joins

// Index maps a normalized key to every record that has it, in the order the
// records appeared in the indexed collection.
type Index map[Key][]Record

// BuildIndex groups recs by the value of the key attribute.  Records that
// lack the attribute are grouped under the absent key.
func BuildIndex(recs []Record, key Attribute, kf KeyFunc) Index {
	if kf == nil {
		kf = StrictKey
	}
	idx := make(Index)
	for _, rec := range recs {
		rec = orEmpty(rec)
		k := kf(key.Of(rec))
		idx[k] = append(idx[k], rec)
	}
	return idx
}

// Lookup returns the records indexed under k.
func (idx Index) Lookup(k Key) ([]Record, bool) {
	group, ok := idx[k]
	return group, ok
}

// Joiner performs joins with a particular key policy.  The zero value uses
// StrictKey.
type Joiner struct {
	// Key normalizes key field values before they are compared
	Key KeyFunc
}

// Default is the Joiner used by the package level join functions.
var Default = Joiner{Key: StrictKey}

func (j Joiner) keyFunc() KeyFunc {
	if j.Key == nil {
		return StrictKey
	}
	return j.Key
}

// IndexedLeft indexes right by rk once, then visits left in order.  For every
// left record, sel is called once per right record with an equal key, in
// right insertion order, or once with a nil right record when there is none.
// The records that sel accepts are returned in the order sel was called.
//
// The result is always a new slice, even when it is empty.
func (j Joiner) IndexedLeft(left, right []Record, lk, rk Attribute, sel SelectFunc) []Record {
	kf := j.keyFunc()
	idx := BuildIndex(right, rk, kf)

	res := make([]Record, 0, len(left))
	for _, lrec := range left {
		// nil is reserved for the absent side
		lrec = orEmpty(lrec)
		group, ok := idx.Lookup(kf(lk.Of(lrec)))
		if !ok {
			if rec, keep := sel(lrec, nil); keep {
				res = append(res, rec)
			}
			continue
		}
		for _, rrec := range group {
			if rec, keep := sel(lrec, rrec); keep {
				res = append(res, rec)
			}
		}
	}
	return res
}

// Symmetric runs IndexedLeft over (left, right) with sel, followed by
// IndexedLeft over (right, left) that only calls sel(nil, right) for right
// records without any left match.  Matched pairs are therefore only seen
// once, during the first pass.
func (j Joiner) Symmetric(left, right []Record, lk, rk Attribute, sel SelectFunc) []Record {
	res := j.IndexedLeft(left, right, lk, rk, sel)
	rest := j.IndexedLeft(right, left, rk, lk, func(rrec, lrec Record) (Record, bool) {
		if lrec != nil {
			return nil, false
		}
		return sel(nil, rrec)
	})
	return append(res, rest...)
}

// InnerJoin returns the merge of every left and right pair with equal keys.
func (j Joiner) InnerJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	merge = orMerge(merge)
	return j.IndexedLeft(left, right, lk, rk, func(lrec, rrec Record) (Record, bool) {
		if lrec == nil || rrec == nil {
			return nil, false
		}
		return merge(lrec, rrec), true
	})
}

// OuterJoin returns every matched pair, every unmatched left record and every
// unmatched right record, with an empty record standing in for the missing
// side.
func (j Joiner) OuterJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	merge = orMerge(merge)
	return j.Symmetric(left, right, lk, rk, func(lrec, rrec Record) (Record, bool) {
		return merge(orEmpty(lrec), orEmpty(rrec)), true
	})
}

// LeftJoin returns every matched pair and every unmatched left record.
func (j Joiner) LeftJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	merge = orMerge(merge)
	return j.IndexedLeft(left, right, lk, rk, func(lrec, rrec Record) (Record, bool) {
		return merge(lrec, orEmpty(rrec)), true
	})
}

// LeftOuterJoin is LeftJoin.
func (j Joiner) LeftOuterJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return j.LeftJoin(left, right, lk, rk, merge)
}

// RightJoin returns every matched pair and every unmatched right record, in
// right collection order.  merge still receives the left record first.
func (j Joiner) RightJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	merge = orMerge(merge)
	return j.IndexedLeft(right, left, rk, lk, func(rrec, lrec Record) (Record, bool) {
		return merge(orEmpty(lrec), rrec), true
	})
}

// RightOuterJoin is RightJoin.
func (j Joiner) RightOuterJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return j.RightJoin(left, right, lk, rk, merge)
}

// LeftExcludingJoin returns the left records that have no right match.
func (j Joiner) LeftExcludingJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	merge = orMerge(merge)
	return j.IndexedLeft(left, right, lk, rk, func(lrec, rrec Record) (Record, bool) {
		if rrec != nil {
			return nil, false
		}
		return merge(lrec, Record{}), true
	})
}

// RightExcludingJoin returns the right records that have no left match.
func (j Joiner) RightExcludingJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	merge = orMerge(merge)
	return j.IndexedLeft(right, left, rk, lk, func(rrec, lrec Record) (Record, bool) {
		if lrec != nil {
			return nil, false
		}
		return merge(Record{}, rrec), true
	})
}

// OuterExcludingJoin returns the records from either side that have no match
// on the other side: unmatched left records first, then unmatched right
// records.
func (j Joiner) OuterExcludingJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	merge = orMerge(merge)
	return j.Symmetric(left, right, lk, rk, func(lrec, rrec Record) (Record, bool) {
		if lrec != nil && rrec != nil {
			return nil, false
		}
		return merge(orEmpty(lrec), orEmpty(rrec)), true
	})
}

// Join dispatches to the join operation named by kind.
func (j Joiner) Join(kind Kind, left, right []Record, lk, rk Attribute, merge MergeFunc) ([]Record, error) {
	switch kind {
	case Inner:
		return j.InnerJoin(left, right, lk, rk, merge), nil
	case Outer:
		return j.OuterJoin(left, right, lk, rk, merge), nil
	case Left:
		return j.LeftJoin(left, right, lk, rk, merge), nil
	case Right:
		return j.RightJoin(left, right, lk, rk, merge), nil
	case LeftExcluding:
		return j.LeftExcludingJoin(left, right, lk, rk, merge), nil
	case RightExcluding:
		return j.RightExcludingJoin(left, right, lk, rk, merge), nil
	case OuterExcluding:
		return j.OuterExcludingJoin(left, right, lk, rk, merge), nil
	default:
		return nil, &KindError{Name: kind.String()}
	}
}

// The package level functions use the Default joiner.

// IndexedLeft calls Default.IndexedLeft.
func IndexedLeft(left, right []Record, lk, rk Attribute, sel SelectFunc) []Record {
	return Default.IndexedLeft(left, right, lk, rk, sel)
}

// Symmetric calls Default.Symmetric.
func Symmetric(left, right []Record, lk, rk Attribute, sel SelectFunc) []Record {
	return Default.Symmetric(left, right, lk, rk, sel)
}

// InnerJoin returns the merge of every left and right pair with equal keys.
// A nil merge means Merge.
func InnerJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.InnerJoin(left, right, lk, rk, merge)
}

// OuterJoin returns every matched pair plus the unmatched records of both
// sides.
func OuterJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.OuterJoin(left, right, lk, rk, merge)
}

// LeftJoin returns every matched pair plus the unmatched left records.
func LeftJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.LeftJoin(left, right, lk, rk, merge)
}

// LeftOuterJoin is LeftJoin.
func LeftOuterJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.LeftJoin(left, right, lk, rk, merge)
}

// RightJoin returns every matched pair plus the unmatched right records.
func RightJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.RightJoin(left, right, lk, rk, merge)
}

// RightOuterJoin is RightJoin.
func RightOuterJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.RightJoin(left, right, lk, rk, merge)
}

// LeftExcludingJoin returns the unmatched left records.
func LeftExcludingJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.LeftExcludingJoin(left, right, lk, rk, merge)
}

// RightExcludingJoin returns the unmatched right records.
func RightExcludingJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.RightExcludingJoin(left, right, lk, rk, merge)
}

// OuterExcludingJoin returns the unmatched records of both sides.
func OuterExcludingJoin(left, right []Record, lk, rk Attribute, merge MergeFunc) []Record {
	return Default.OuterExcludingJoin(left, right, lk, rk, merge)
}

// Join calls Default.Join.
func Join(kind Kind, left, right []Record, lk, rk Attribute, merge MergeFunc) ([]Record, error) {
	return Default.Join(kind, left, right, lk, rk, merge)
}
