package validation

import (
	"reflect"
	"strings"
)

// tagName prefers the json, then koanf tag, falling back to the Go field name.
func tagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "koanf"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
