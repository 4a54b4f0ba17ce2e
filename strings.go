// strings deals with string representation of record collections

package joins

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrettyPrint renders records as a text table with one column per attribute
// in Heading(recs).  Missing fields are left blank.
func PrettyPrint(recs []Record) string {
	return stringTabTable(Heading(recs), recs)
}

// PrettyPrintFields is PrettyPrint with an explicit column order.
func PrettyPrintFields(recs []Record, heading ...Attribute) string {
	return stringTabTable(heading, recs)
}

// stringTabTable makes a boxed table out of the records
func stringTabTable(cn []Attribute, recs []Record) string {
	if len(cn) == 0 {
		return ""
	}

	// use a buffer to write to and later turn into a string
	s := new(bytes.Buffer)

	w := new(tabwriter.Writer)
	// \xff is used as an escape delim; see the tabwriter docs
	// align elements to the right as well
	w.Init(s, 1, 1, 1, ' ', tabwriter.StripEscape|tabwriter.AlignRight)

	// make a spacer, to be replaced later
	for range cn {
		fmt.Fprintf(w, "+\t ")
	}
	fmt.Fprintf(w, "\t+\n")

	// heading
	for _, name := range cn {
		fmt.Fprintf(w, "|\t \xff%s\xff ", name)
	}
	fmt.Fprintf(w, "\t|\n")

	// write the body
	for _, rec := range recs {
		for _, name := range cn {
			fmt.Fprintf(w, "|\t \xff%s\xff ", cellReplacer.Replace(cellString(rec, name)))
		}
		fmt.Fprintf(w, "\t|\n")
	}

	w.Flush()
	str := s.String()

	// replace the blanks in the spacer with "-" and use it as the border
	// above the heading, below the heading and below the body
	lines := strings.Split(strings.TrimSuffix(str, "\n"), "\n")
	sep := " " + strings.Replace(lines[0][1:], " ", "-", -1)
	out := make([]string, 0, len(lines)+2)
	out = append(out, sep, lines[1], sep)
	out = append(out, lines[2:]...)
	out = append(out, sep)
	return strings.Join(out, "\n")
}

// cellReplacer keeps field values from breaking the table layout
var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ", "\xff", "")

// cellString formats a single field value for a table cell
func cellString(rec Record, att Attribute) string {
	v, ok := att.Of(rec)
	if !ok {
		return ""
	}
	if n, isNum := normalizeNumber(v); isNum {
		switch x := n.(type) {
		case int64:
			return fmt.Sprintf("%d", x)
		case uint64:
			return fmt.Sprintf("%d", x)
		case float64:
			return fmt.Sprintf("%g", x)
		}
	}
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return fmt.Sprintf("%t", x)
	}
	return fmt.Sprintf("%v", v)
}
