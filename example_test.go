// a set of examples for the joins package

package joins_test

import (
	"fmt"

	"github.com/JeffEnglish/joins"
)

// the example data: Julie has no address, and nobody lives at 917 Gothard or
// 277 Hwy
var (
	accounts = []joins.Record{
		{"name": "Joe", "accountId": 1},
		{"name": "Julie", "accountId": 2},
		{"name": "Mark", "accountId": 3},
	}
	addresses = []joins.Record{
		{"pid": 1, "loc": "123 Main"},
		{"pid": 3, "loc": "45 West"},
		{"pid": 5, "loc": "917 Gothard"},
		{"pid": 3, "loc": "1700 Ave K"},
		{"pid": 4, "loc": "277 Hwy"},
	}
)

func ExampleInnerJoin() {
	res := joins.InnerJoin(accounts, addresses, "accountId", "pid", nil)
	for _, rec := range res {
		fmt.Println(rec)
	}
	// Output:
	// map[accountId:1 loc:123 Main name:Joe pid:1]
	// map[accountId:3 loc:45 West name:Mark pid:3]
	// map[accountId:3 loc:1700 Ave K name:Mark pid:3]
}

func ExampleLeftJoin() {
	res := joins.LeftJoin(accounts, addresses, "accountId", "pid", nil)
	fmt.Println(joins.PrettyPrintFields(res, "name", "loc"))
	// Output:
	//  +--------+-------------+
	//  |   name |         loc |
	//  +--------+-------------+
	//  |    Joe |    123 Main |
	//  |  Julie |             |
	//  |   Mark |     45 West |
	//  |   Mark |  1700 Ave K |
	//  +--------+-------------+
}

func ExampleOuterExcludingJoin() {
	res := joins.OuterExcludingJoin(accounts, addresses, "accountId", "pid", nil)
	for _, rec := range res {
		fmt.Println(rec)
	}
	// Output:
	// map[accountId:2 name:Julie]
	// map[loc:917 Gothard pid:5]
	// map[loc:277 Hwy pid:4]
}

func ExampleRightJoin() {
	// merge always receives the left record first
	merge := func(l, r joins.Record) joins.Record {
		name, ok := l["name"]
		if !ok {
			name = "nobody"
		}
		return joins.Record{"who": name, "where": r["loc"]}
	}
	res := joins.RightJoin(accounts, addresses, "accountId", "pid", merge)
	for _, rec := range res {
		fmt.Println(rec["who"], "@", rec["where"])
	}
	// Output:
	// Joe @ 123 Main
	// Mark @ 45 West
	// nobody @ 917 Gothard
	// Mark @ 1700 Ave K
	// nobody @ 277 Hwy
}

func ExampleJoiner() {
	orders := []joins.Record{{"id": "1", "qty": 5}}
	items := []joins.Record{{"id": 1, "item": "bolt"}}

	// 1 and "1" are different keys by default
	fmt.Println(len(joins.InnerJoin(orders, items, "id", "id", nil)))

	loose := joins.Joiner{Key: joins.LooseKey}
	fmt.Println(len(loose.InnerJoin(orders, items, "id", "id", nil)))
	// Output:
	// 0
	// 1
}

func ExampleParseKind() {
	k, err := joins.ParseKind("LEFT OUTER JOIN")
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := joins.Join(k, accounts, addresses, "accountId", "pid", nil)
	fmt.Println(k, len(res))

	_, err = joins.ParseKind("cross")
	fmt.Println(err)
	// Output:
	// left 4
	// joins: unknown join kind "cross"
}

func ExampleSymmetric() {
	// a full outer join that keeps only the addresses in the 3 group or
	// without an account
	sel := joins.Where(joins.Attribute("pid").EQ(3).Or(joins.Not(joins.Attribute("name").Exists())), nil)
	res := joins.Symmetric(accounts, addresses, "accountId", "pid", sel)
	fmt.Println(joins.PrettyPrintFields(res, "pid", "name", "loc"))
	// Output:
	//  +------+-------+--------------+
	//  |  pid |  name |          loc |
	//  +------+-------+--------------+
	//  |    3 |  Mark |      45 West |
	//  |    3 |  Mark |   1700 Ave K |
	//  |    5 |       |  917 Gothard |
	//  |    4 |       |      277 Hwy |
	//  +------+-------+--------------+
}

func ExampleRecords() {
	type supplier struct {
		SNO   int
		SName string
		City  string
	}
	recs, err := joins.Records([]supplier{
		{1, "Smith", "London"},
		{2, "Jones", "Paris"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(joins.Restrict(recs, joins.Attribute("City").EQ("Paris")))
	// Output:
	// [map[City:Paris SNO:2 SName:Jones]]
}
