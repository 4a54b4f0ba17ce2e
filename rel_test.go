package joins

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	var mergeTests = []struct {
		name string
		l, r Record
		out  Record
	}{
		{"right wins", Record{"a": 1, "b": 2}, Record{"b": 3, "c": 4}, Record{"a": 1, "b": 3, "c": 4}},
		{"empty right", Record{"a": 1}, Record{}, Record{"a": 1}},
		{"empty left", Record{}, Record{"a": 1}, Record{"a": 1}},
		{"nil sides", nil, nil, Record{}},
		{"nil value", Record{"a": 1}, Record{"a": nil}, Record{"a": nil}},
	}
	for _, tt := range mergeTests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, Merge(tt.l, tt.r))
		})
	}
}

func TestMergeFresh(t *testing.T) {
	l, r := Record{"a": 1}, Record{"b": 2}
	rec := Merge(l, r)
	rec["a"] = 10
	assert.Equal(t, Record{"a": 1}, l)
	assert.Equal(t, Record{"b": 2}, r)
}

func TestRecordFields(t *testing.T) {
	rec := Record{"loc": "x", "name": "y", "accountId": 1}
	assert.Equal(t, []Attribute{"accountId", "loc", "name"}, rec.Fields())
	assert.Empty(t, Record(nil).Fields())
}

func TestRecordClone(t *testing.T) {
	rec := Record{"a": 1}
	rec2 := rec.Clone()
	rec2["a"] = 2
	assert.Equal(t, 1, rec["a"])
	assert.Equal(t, Record{}, Record(nil).Clone())
}

func TestHeading(t *testing.T) {
	assert.Equal(t, []Attribute{"accountId", "name"}, Heading(accounts()))
	assert.Equal(t, []Attribute{"a", "b", "c"}, Heading([]Record{{"c": 1}, {"a": 1, "b": 2}}))
	assert.Empty(t, Heading(nil))
}

func TestRecords(t *testing.T) {
	type tup struct {
		Name    string
		ID      int
		private int
	}

	recs, err := Records([]tup{{"a", 1, 0}, {"b", 2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []Record{{"Name": "a", "ID": 1}, {"Name": "b", "ID": 2}}, recs)

	recs, err = Records([]*tup{{"a", 1, 0}, nil})
	require.NoError(t, err)
	assert.Equal(t, []Record{{"Name": "a", "ID": 1}, {}}, recs)

	recs, err = Records([2]tup{{"a", 1, 0}, {"b", 2, 0}})
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = Records([]map[string]any{{"x": 1}, nil})
	require.NoError(t, err)
	assert.Equal(t, []Record{{"x": 1}, {}}, recs)

	recs, err = Records([]map[string]string{{"x": "y"}})
	require.NoError(t, err)
	assert.Equal(t, []Record{{"x": "y"}}, recs)

	recs, err = Records([]tup{})
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecordsErrors(t *testing.T) {
	var errTests = []struct {
		name string
		in   any
		err  any
		msg  string
	}{
		{"not a slice", 1, &ContainerError{}, "joins: expected record container 'slice', found 'int'"},
		{"nil", nil, &ContainerError{}, "joins: expected record container 'slice', found 'invalid'"},
		{"ints", []int{1}, &ElemError{}, "joins: expected record element 'joins.Record' or struct, found 'int'"},
		{"int keys", []map[int]int{{1: 1}}, &ElemError{}, "joins: expected record element 'joins.Record' or struct, found 'map[int]int'"},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Records(tt.in)
			require.Error(t, err)
			assert.IsType(t, tt.err, err)
			assert.EqualError(t, err, tt.msg)
		})
	}

	var cerr *ContainerError
	_, err := Records("abc")
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, reflect.String, cerr.Found)
}

func TestMustRecords(t *testing.T) {
	assert.Len(t, MustRecords([]supplierTup{{1, "Smith", 20, "London"}}), 1)
	assert.Panics(t, func() { MustRecords(3) })
}
