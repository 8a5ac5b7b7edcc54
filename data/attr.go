package data

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Attr extracts a named attribute from a record. Map records are indexed
// directly; struct records are searched by exported field name, falling
// back to a case-insensitive match so that "title" finds field Title.
// Missing attributes yield nil.
func Attr(item any, name string) any {
	switch rec := item.(type) {
	case map[string]any:
		return rec[name]
	case map[string]string:
		if v, ok := rec[name]; ok {
			return v
		}
		return nil
	}

	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		return v.FieldByIndex(sf.Index).Interface()
	}
	sf, ok := t.FieldByNameFunc(func(field string) bool {
		r, _ := utf8.DecodeRuneInString(field)
		return unicode.IsUpper(r) && strings.EqualFold(field, name)
	})
	if ok && sf.IsExported() {
		return v.FieldByIndex(sf.Index).Interface()
	}
	return nil
}

// compareAttr orders two attribute values of the same record attribute.
// Numbers compare numerically, strings lexically, times chronologically.
// Nil sorts first; incomparable values fall back to their string forms.
func compareAttr(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(stringify(a), stringify(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
