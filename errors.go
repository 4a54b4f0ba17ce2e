// errors are the failures that can be reported before a join runs.  The
// joins themselves never return errors; a MergeFunc or SelectFunc that panics
// aborts the whole join.

package joins

import (
	"fmt"
	"reflect"
)

// ContainerError represents an error that occurs when the wrong kind of
// container is given to Records.
type ContainerError struct {
	Expected reflect.Kind
	Found    reflect.Kind
}

func (e *ContainerError) Error() string {
	return "joins: expected record container '" + e.Expected.String() + "', found '" + e.Found.String() + "'"
}

// ElemError represents an error that occurs when the elements of a container
// given to Records cannot be turned into records.
type ElemError struct {
	Expected reflect.Type
	Found    reflect.Type
}

func (e *ElemError) Error() string {
	return "joins: expected record element '" + e.Expected.String() + "' or struct, found '" + e.Found.String() + "'"
}

// KindError represents an error that occurs when a join kind name is not
// recognized.
type KindError struct {
	Name string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("joins: unknown join kind %q", e.Name)
}
