package serializer

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
)

const emptyValue = "<empty>"

type row struct {
	field string
	value string
}

// writeTable prints data as a two-column FIELD/VALUE table, flattening
// nested structs, maps and slices into dotted keys.
func writeTable(out io.Writer, data any) error {
	var rows []row
	flatten("", reflect.ValueOf(data), &rows)
	if len(rows) == 0 {
		rows = append(rows, row{field: "-", value: emptyValue})
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.field, r.value)
	}
	return tw.Flush()
}

func flatten(prefix string, v reflect.Value, rows *[]row) {
	if !v.IsValid() {
		*rows = append(*rows, row{field: prefix, value: "<nil>"})
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			*rows = append(*rows, row{field: prefix, value: "<nil>"})
			return
		}
		flatten(prefix, v.Elem(), rows)
	case reflect.Struct:
		if s, ok := v.Interface().(fmt.Stringer); ok && v.NumField() == 0 {
			*rows = append(*rows, row{field: prefix, value: s.String()})
			return
		}
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := fieldName(f)
			if name == "-" {
				continue
			}
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				flatten(prefix, v.Field(i), rows)
				continue
			}
			flatten(join(prefix, name), v.Field(i), rows)
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			flatten(join(prefix, fmt.Sprint(k.Interface())), v.MapIndex(k), rows)
		}
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 && prefix != "" {
			*rows = append(*rows, row{field: prefix, value: emptyValue})
			return
		}
		for i := 0; i < v.Len(); i++ {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), v.Index(i), rows)
		}
	default:
		*rows = append(*rows, row{field: prefix, value: fmt.Sprint(v.Interface())})
	}
}

// fieldName prefers the json tag name over the Go field name.
func fieldName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
