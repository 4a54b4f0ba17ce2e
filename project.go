// project implements a projection of records onto a subset of their fields

package joins

// Project returns new records holding only the named attributes.  Attributes
// missing from a record stay missing; they are not added with a nil value.
func Project(recs []Record, atts ...Attribute) []Record {
	res := make([]Record, len(recs))
	for i, rec := range recs {
		rec2 := make(Record, len(atts))
		for _, att := range atts {
			if v, ok := rec[string(att)]; ok {
				rec2[string(att)] = v
			}
		}
		res[i] = rec2
	}
	return res
}
