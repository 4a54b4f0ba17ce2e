// restrict implements a restrict over a collection of records

package joins

// Restrict returns the records for which p is true, in their original order.
// The result is a new slice; the records themselves are shared.
func Restrict(recs []Record, p Predicate) []Record {
	res := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if p.Eval(rec) {
			res = append(res, rec)
		}
	}
	return res
}

// Where is a SelectFunc that merges a pair and keeps it only when p holds on
// the merged record.  Absent sides are merged as empty records, so it can be
// given to IndexedLeft or Symmetric to build filtered joins.
func Where(p Predicate, merge MergeFunc) SelectFunc {
	merge = orMerge(merge)
	return func(lrec, rrec Record) (Record, bool) {
		rec := merge(orEmpty(lrec), orEmpty(rrec))
		return rec, p.Eval(rec)
	}
}
