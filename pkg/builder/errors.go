package builder

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/hyperflex/internal/errors"
)

// invalidArgument reports an argument of the wrong type, naming what was
// given.
func invalidArgument(op, name, want string, got any) error {
	return errors.New("E001").
		WithDetailf("%s: `%s` should be %s, `%s` given", op, name, want, TypeName(got))
}

// TypeName describes the dynamic type of v for error messages.
func TypeName(v any) string {
	if isNil(v) {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
