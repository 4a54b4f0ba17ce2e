// rename changes the names of record fields.  It is mostly useful before a
// join, so that fields with the same name on both sides survive the default
// merge.

package joins

import "sort"

// Rename returns new records where every field named by a key of names is
// renamed to the corresponding value.  Fields not in names keep their name.
// If a renamed field collides with a field that is not renamed, the renamed
// one wins.  If several fields are renamed to the same name, the one whose
// old name sorts last wins.
func Rename(recs []Record, names map[Attribute]Attribute) []Record {
	from := make([]Attribute, 0, len(names))
	for k := range names {
		from = append(from, k)
	}
	sort.Slice(from, func(i, j int) bool { return from[i] < from[j] })

	res := make([]Record, len(recs))
	for i, rec := range recs {
		rec2 := make(Record, len(rec))
		for k, v := range rec {
			if _, renamed := names[Attribute(k)]; renamed {
				continue
			}
			rec2[k] = v
		}
		for _, f := range from {
			if v, ok := rec[string(f)]; ok {
				rec2[string(names[f])] = v
			}
		}
		res[i] = rec2
	}
	return res
}

// Prefix returns new records with prefix prepended to every field name.
func Prefix(recs []Record, prefix string) []Record {
	res := make([]Record, len(recs))
	for i, rec := range recs {
		rec2 := make(Record, len(rec))
		for k, v := range rec {
			rec2[prefix+k] = v
		}
		res[i] = rec2
	}
	return res
}
