package joins

// This file contains example data used across the tests.  The accounts and
// addresses mirror the classic join example, where Julie has no address and
// two addresses belong to nobody.  The suppliers, parts & orders data follows
// the example provided by C. J. Date in his book "Database in Depth" in
// Figure 1-3.

// accounts is the left side of the address examples
func accounts() []Record {
	return []Record{
		{"name": "Joe", "accountId": 1},
		{"name": "Julie", "accountId": 2},
		{"name": "Mark", "accountId": 3},
	}
}

// addresses is the right side of the address examples, with a duplicate
// pid of 3
func addresses() []Record {
	return []Record{
		{"pid": 1, "loc": "123 Main"},
		{"pid": 3, "loc": "45 West"},
		{"pid": 5, "loc": "917 Gothard"},
		{"pid": 3, "loc": "1700 Ave K"},
		{"pid": 4, "loc": "277 Hwy"},
	}
}

type supplierTup struct {
	SNO    int
	SName  string
	Status int
	City   string
}

type orderTup struct {
	PNO int
	SNO int
	Qty int
}

// suppliers relation, keyed by SNO
func suppliers() []Record {
	return MustRecords([]supplierTup{
		{1, "Smith", 20, "London"},
		{2, "Jones", 10, "Paris"},
		{3, "Blake", 30, "Paris"},
		{4, "Clark", 20, "London"},
		{5, "Adams", 30, "Athens"},
	})
}

// parts relation, keyed by PNO
func parts() []Record {
	return MustRecords([]struct {
		PNO    int
		PName  string
		Color  string
		Weight float64
		City   string
	}{
		{1, "Nut", "Red", 12.0, "London"},
		{2, "Bolt", "Green", 17.0, "Paris"},
		{3, "Screw", "Blue", 17.0, "Oslo"},
		{4, "Screw", "Red", 14.0, "London"},
		{5, "Cam", "Blue", 12.0, "Paris"},
		{6, "Cog", "Red", 19.0, "London"},
	})
}

// orders relation, keyed by {PNO, SNO}.  Supplier 6 does not exist.
func orders() []Record {
	return MustRecords([]orderTup{
		{1, 1, 300},
		{1, 2, 200},
		{1, 3, 400},
		{1, 4, 200},
		{1, 5, 100},
		{1, 6, 100},
		{2, 1, 300},
		{2, 2, 400},
		{3, 2, 200},
		{4, 2, 200},
		{4, 4, 300},
		{4, 5, 400},
	})
}
