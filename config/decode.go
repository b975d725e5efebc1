// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Decode unmarshals c into v, which must be a non-nil pointer.
//
// Struct fields are matched to keys by their "config" tag, or their name,
// ignoring case. Strings are decoded into types implementing
// [encoding.TextUnmarshaler]. A [time.Duration] accepts a duration string or
// a whole number of nanoseconds of any numeric type a loader produces. A
// value which can not be coerced is reported as a [TypeCoercionError] naming
// its key. c is not modified.
func Decode(c Config, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", v)
	}

	coerced, err := coerce("", map[string]any(c), rv.Type().Elem())
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(coerced)
}

// TypeCoercionError occurs when the value at Key can not be converted
// to the type of the struct field it is decoded into.
type TypeCoercionError struct {
	Key   string
	From  reflect.Type
	To    reflect.Type
	Cause error
}

// Error implements the [builtin.error] interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce %s from %s to %s: %s", e.Key, e.From, e.To, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

	errFractionalDuration = errors.New("duration is not a whole number of nanoseconds")
)

// coerce rewrites the parts of v which mapstructure can not convert into
// values of the types found at the same place in t. Everything else is
// copied as is and left for mapstructure.
func coerce(key string, v any, t reflect.Type) (any, error) {
	if v == nil {
		return nil, nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == durationType {
		d, err := toDuration(v)
		if err != nil {
			return nil, TypeCoercionError{Key: key, From: reflect.TypeOf(v), To: t, Cause: err}
		}
		return d, nil
	}

	if s, ok := v.(string); ok && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		ptr := reflect.New(t)
		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
		if err != nil {
			return nil, TypeCoercionError{Key: key, From: reflect.TypeOf(v), To: t, Cause: err}
		}
		return ptr.Elem().Interface(), nil
	}

	switch t.Kind() {
	case reflect.Struct:
		m, ok := asStringMap(v)
		if !ok {
			return v, nil
		}
		return coerceStruct(key, m, t)
	case reflect.Map:
		m, ok := asStringMap(v)
		if !ok || t.Key().Kind() != reflect.String {
			return v, nil
		}
		out := make(map[string]any, len(m))
		for k, ev := range m {
			cv, err := coerce(join(key, k), ev, t.Elem())
			if err != nil {
				return nil, err
			}
			out[k] = cv
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		s, ok := v.([]any)
		if !ok {
			return v, nil
		}
		out := make([]any, len(s))
		for i, ev := range s {
			cv, err := coerce(key+"["+strconv.Itoa(i)+"]", ev, t.Elem())
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	default:
		return v, nil
	}
}

func coerceStruct(key string, m map[string]any, t reflect.Type) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, squash := fieldName(f)
		if name == "-" {
			continue
		}
		if squash {
			squashed, err := coerceStruct(key, out, f.Type)
			if err != nil {
				return nil, err
			}
			out = squashed
			continue
		}

		k, ok := lookupKey(out, name)
		if !ok {
			continue
		}
		cv, err := coerce(join(key, k), out[k], f.Type)
		if err != nil {
			return nil, err
		}
		out[k] = cv
	}
	return out, nil
}

// fieldName mirrors how mapstructure names a field from its "config" tag.
func fieldName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("config")
	name, opts, _ := strings.Cut(tag, ",")
	squash := f.Anonymous && f.Type.Kind() == reflect.Struct && strings.Contains(opts, "squash")
	if name == "" {
		name = f.Name
	}
	return name, squash
}

func lookupKey(m map[string]any, name string) (string, bool) {
	if _, ok := m[name]; ok {
		return name, true
	}
	for k := range m {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return "", false
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Config:
		return m, true
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func toDuration(v any) (time.Duration, error) {
	switch x := v.(type) {
	case time.Duration:
		return x, nil
	case string:
		return time.ParseDuration(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.Duration(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return time.Duration(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, errFractionalDuration
		}
		return time.Duration(f), nil
	default:
		return 0, fmt.Errorf("unsupported duration value %v", v)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
