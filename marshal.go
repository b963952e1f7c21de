package yay

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
)

// structField identifies a named field on a specific struct type, the way
// the teacher package's reflection layer keyed its field table — by type
// and resolved name, so the same field name on two different embedded
// structs cannot collide.
type structField struct {
	ty   reflect.Type
	name string
}

// fieldMap walks s's fields, recording each exported field's resolved
// name (honoring a "yay" struct tag) and recursing into embedded or
// pointer/slice-of-struct fields so they can be addressed by the same
// table during unpacking.
func fieldMap(out map[structField]int, types map[reflect.Type]bool, s reflect.Type) error {
	if types[s] {
		return nil
	}
	types[s] = true
	for i := range s.NumField() {
		field := s.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldName := field.Name
		if tag, ok := field.Tag.Lookup("yay"); ok {
			var opts string
			fieldName, opts, _ = strings.Cut(tag, ",")
			if fieldName == "-" {
				continue
			}
			if opts != "" {
				return fmt.Errorf("unknown option %q", opts)
			}
		}
		if _, ok := out[structField{s, fieldName}]; ok {
			return fmt.Errorf("multiple fields with name %q", fieldName)
		}
		out[structField{s, fieldName}] = i
		switch {
		case field.Type.Kind() == reflect.Struct:
			if err := fieldMap(out, types, field.Type); err != nil {
				return err
			}
		case (field.Type.Kind() == reflect.Pointer || field.Type.Kind() == reflect.Slice) && field.Type.Elem().Kind() == reflect.Struct:
			if err := fieldMap(out, types, field.Type.Elem()); err != nil {
				return err
			}
		case field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.Pointer && field.Type.Elem().Elem().Kind() == reflect.Struct:
			if err := fieldMap(out, types, field.Type.Elem().Elem()); err != nil {
				return err
			}
		}
	}
	return nil
}

var bigIntType = reflect.TypeFor[*big.Int]()

func intLimits(kind reflect.Kind) (min int64, max uint64, ok bool) {
	switch kind {
	case reflect.Int:
		return math.MinInt, math.MaxInt, true
	case reflect.Int8:
		return math.MinInt8, math.MaxInt8, true
	case reflect.Int16:
		return math.MinInt16, math.MaxInt16, true
	case reflect.Int32:
		return math.MinInt32, math.MaxInt32, true
	case reflect.Int64:
		return math.MinInt64, math.MaxInt64, true
	case reflect.Uint:
		return 0, math.MaxUint, true
	case reflect.Uint8:
		return 0, math.MaxUint8, true
	case reflect.Uint16:
		return 0, math.MaxUint16, true
	case reflect.Uint32:
		return 0, math.MaxUint32, true
	case reflect.Uint64:
		return 0, math.MaxUint64, true
	default:
		return 0, 0, false
	}
}

// unpackVal assigns val into fieldVal, recursing through unpackStruct for
// nested objects. Unlike the teacher's version, an Int carries arbitrary
// precision, so assigning into a fixed-width Go integer field must range
// check against big.Int bounds rather than against a parsed int64/uint64.
func unpackVal(fieldVal reflect.Value, fields map[structField]int, val Value, field string) error {
	switch val.Kind() {
	case KindNull:
		return nil
	case KindBool:
		switch fieldVal.Kind() {
		case reflect.Bool:
			fieldVal.SetBool(val.AsBool())
		default:
			return fmt.Errorf("field %q should have type bool", field)
		}
	case KindInt:
		if fieldVal.Type() == bigIntType {
			fieldVal.Set(reflect.ValueOf(new(big.Int).Set(val.AsInt())))
			return nil
		}
		switch fieldVal.Kind() {
		case reflect.Float32, reflect.Float64:
			f, _ := new(big.Float).SetInt(val.AsInt()).Float64()
			fieldVal.SetFloat(f)
			return nil
		}
		min, max, ok := intLimits(fieldVal.Kind())
		if !ok {
			return fmt.Errorf("field %q should have type int", field)
		}
		n := val.AsInt()
		if min == 0 {
			if n.Sign() < 0 || !n.IsUint64() || n.Uint64() > max {
				return fmt.Errorf("number %s is out of range for %s", n, fieldVal.Kind())
			}
			fieldVal.SetUint(n.Uint64())
		} else {
			if !n.IsInt64() || n.Int64() < min || n.Int64() > int64(max) {
				return fmt.Errorf("number %s is out of range for %s", n, fieldVal.Kind())
			}
			fieldVal.SetInt(n.Int64())
		}
	case KindFloat:
		switch fieldVal.Kind() {
		case reflect.Float32, reflect.Float64:
			fieldVal.SetFloat(val.AsFloat())
		default:
			return fmt.Errorf("field %q should have type float64 or float32", field)
		}
	case KindStr:
		if unmarshaler, ok := fieldVal.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler.UnmarshalText([]byte(val.AsStr()))
		}
		if fieldVal.Kind() != reflect.String {
			return fmt.Errorf("field %q should have type string (got %s)", field, fieldVal.Type())
		}
		fieldVal.SetString(val.AsStr())
	case KindBytes:
		if fieldVal.Kind() != reflect.Slice || fieldVal.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("field %q should have type []byte (got %s)", field, fieldVal.Type())
		}
		b := make([]byte, len(val.AsBytes()))
		copy(b, val.AsBytes())
		fieldVal.Set(reflect.ValueOf(b))
	case KindArray:
		items := val.AsArray()
		if fieldVal.Kind() != reflect.Slice {
			return fmt.Errorf("field %q should have type slice (got %s)", field, fieldVal.Type())
		}
		out := reflect.MakeSlice(fieldVal.Type(), len(items), len(items))
		for i, item := range items {
			if err := unpackVal(out.Index(i), fields, item, field); err != nil {
				return err
			}
		}
		fieldVal.Set(out)
	case KindObject:
		target := fieldVal
		if target.Kind() == reflect.Pointer {
			if target.IsNil() {
				target.Set(reflect.New(target.Type().Elem()))
			}
			target = target.Elem()
		}
		if target.Kind() != reflect.Struct {
			return fmt.Errorf("field %q should have type struct (got %s)", field, fieldVal.Type())
		}
		if err := unpackStruct(target, fields, val.AsObject()); err != nil {
			return err
		}
	}
	return nil
}

func unpackStruct(out reflect.Value, fields map[structField]int, obj *Object) error {
	for _, entry := range obj.Entries() {
		fieldIdx, ok := fields[structField{out.Type(), entry.Key}]
		if !ok {
			for sf, idx := range fields {
				if sf.ty == out.Type() && strings.EqualFold(sf.name, entry.Key) {
					fieldIdx, ok = idx, true
					break
				}
			}
		}
		if !ok {
			return fmt.Errorf("no field named %q", entry.Key)
		}
		fieldVal := out.Field(fieldIdx)
		if err := unpackVal(fieldVal, fields, entry.Value, entry.Key); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal decodes a parsed document into v, which must be a non-nil
// pointer to a struct. Root must be an Object.
//
// The mapping from YAY kinds to Go types follows the usual conventions:
// Bool into bool, Int into any integer kind or *big.Int (range-checked
// against the destination's width), Float into float32/float64, Str into
// string (or any type implementing encoding.TextUnmarshaler), Bytes into
// []byte, Array into a slice, and Object into a nested struct.
//
// A field's YAY key defaults to its Go name; override it with a struct
// tag, `yay:"my_field"`. A key with no exact match is matched against
// the field names case-insensitively, so "name" fills a field Name.
func Unmarshal(v Value, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Type().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("value must be a non-nil pointer to a struct")
	}
	if v.Kind() != KindObject {
		return fmt.Errorf("root value must be an object, got %s", v.Kind())
	}
	fields := make(map[structField]int)
	if err := fieldMap(fields, make(map[reflect.Type]bool), rv.Type().Elem()); err != nil {
		return err
	}
	return unpackStruct(rv.Elem(), fields, v.AsObject())
}

// UnmarshalBytes parses src and decodes it into out in a single step.
func UnmarshalBytes(src []byte, out any) error {
	v, err := Parse(src)
	if err != nil {
		return err
	}
	return Unmarshal(v, out)
}

// Marshal converts a struct (or pointer to struct) into a Value, the
// inverse of Unmarshal. Field names and the "yay" struct tag follow the
// same rules.
func Marshal(in any) (Value, error) {
	rv := reflect.ValueOf(in)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Null, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Value{}, fmt.Errorf("value must be a struct or pointer to struct")
	}
	return packStruct(rv)
}

func packStruct(rv reflect.Value) (Value, error) {
	obj := NewObject()
	om := obj.AsObject()
	ty := rv.Type()
	for i := range ty.NumField() {
		field := ty.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("yay"); ok {
			var opts string
			name, opts, _ = strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if opts != "" {
				return Value{}, fmt.Errorf("unknown option %q", opts)
			}
		}
		val, err := packVal(rv.Field(i))
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %w", name, err)
		}
		om.Set(name, val)
	}
	return obj, nil
}

func packVal(rv reflect.Value) (Value, error) {
	if marshaler, ok := rv.Interface().(encoding.TextMarshaler); ok && rv.Type() != bigIntType {
		text, err := marshaler.MarshalText()
		if err != nil {
			return Value{}, err
		}
		return Str(string(text)), nil
	}
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(big.NewInt(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int(new(big.Int).SetUint64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes()), nil
		}
		items := make([]Value, rv.Len())
		for i := range items {
			val, err := packVal(rv.Index(i))
			if err != nil {
				return Value{}, err
			}
			items[i] = val
		}
		return Array(items), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null, nil
		}
		return packVal(rv.Elem())
	case reflect.Struct:
		if rv.Type() == reflect.TypeFor[big.Int]() {
			n := rv.Interface().(big.Int)
			return Int(&n), nil
		}
		return packStruct(rv)
	default:
		return Value{}, fmt.Errorf("unsupported type %s", rv.Type())
	}
}
