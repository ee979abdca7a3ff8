package arbor

import (
	"fmt"
	"math"
)

// FieldType is the wire type of a property.
type FieldType uint8

const (
	FieldUint FieldType = iota
	FieldString
	FieldFloat
	FieldColor
	FieldBool
)

func (f FieldType) String() string {
	switch f {
	case FieldUint:
		return "uint"
	case FieldString:
		return "string"
	case FieldFloat:
		return "float"
	case FieldColor:
		return "color"
	case FieldBool:
		return "bool"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(f))
	}
}

// tocID is the 2-bit field id written to the property table of contents.
// Bools share the uint id: a 0/1 byte is also a valid one-byte varuint.
func (f FieldType) tocID() uint32 {
	switch f {
	case FieldString:
		return 1
	case FieldFloat:
		return 2
	case FieldColor:
		return 3
	default:
		return 0
	}
}

// fieldFromTOC maps a table-of-contents id back to a field type for skipping.
func fieldFromTOC(id uint32) FieldType {
	switch id {
	case 1:
		return FieldString
	case 2:
		return FieldFloat
	case 3:
		return FieldColor
	default:
		return FieldUint
	}
}

// Value is a property value tagged with its field type.
type Value struct {
	field FieldType
	bits  uint64
	text  string
}

// UintValue wraps an unsigned integer (also used for enums and IDs).
func UintValue(v uint64) Value { return Value{field: FieldUint, bits: v} }

// FloatValue wraps a float.
func FloatValue(v float32) Value {
	return Value{field: FieldFloat, bits: uint64(math.Float32bits(v))}
}

// BoolValue wraps a bool.
func BoolValue(v bool) Value {
	var b uint64
	if v {
		b = 1
	}
	return Value{field: FieldBool, bits: b}
}

// ColorValue wraps a color.
func ColorValue(c Color) Value { return Value{field: FieldColor, bits: uint64(c.ARGB())} }

// ARGBValue wraps a packed 0xAARRGGBB color without float conversion.
func ARGBValue(v uint32) Value { return Value{field: FieldColor, bits: uint64(v)} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{field: FieldString, text: s} }

// Field returns the value's wire type.
func (v Value) Field() FieldType { return v.field }

// Uint returns the unsigned payload.
func (v Value) Uint() uint64 { return v.bits }

// Float returns the float payload.
func (v Value) Float() float32 { return math.Float32frombits(uint32(v.bits)) }

// Bool returns the bool payload.
func (v Value) Bool() bool { return v.bits != 0 }

// ARGB returns the packed color payload.
func (v Value) ARGB() uint32 { return uint32(v.bits) }

// Color returns the color payload.
func (v Value) Color() Color { return ColorFromARGB(uint32(v.bits)) }

// Text returns the string payload.
func (v Value) Text() string { return v.text }

func (v Value) String() string {
	switch v.field {
	case FieldFloat:
		return fmt.Sprintf("%g", v.Float())
	case FieldBool:
		return fmt.Sprintf("%t", v.Bool())
	case FieldColor:
		return fmt.Sprintf("#%08x", v.ARGB())
	case FieldString:
		return fmt.Sprintf("%q", v.text)
	default:
		return fmt.Sprintf("%d", v.bits)
	}
}

// PropertyKey identifies a property within the file format.
type PropertyKey uint16

// propertyDef is one row of a type's static property table.
type propertyDef struct {
	key   PropertyKey
	name  string
	field FieldType
	def   Value
	get   func(o Object) Value
	set   func(o Object, v Value)
}

// Property is a typed view of one property cell on one object.
type Property struct {
	def *propertyDef
	obj Object
}

// Key returns the property key.
func (p Property) Key() PropertyKey { return p.def.key }

// Name returns the property name.
func (p Property) Name() string { return p.def.name }

// Field returns the wire type.
func (p Property) Field() FieldType { return p.def.field }

// Get reads the current value.
func (p Property) Get() Value { return p.def.get(p.obj) }

// Default returns the value a freshly constructed object holds.
func (p Property) Default() Value { return p.def.def }

// Set writes v through the concrete setter. Values of the wrong field type
// are converted where meaningful (uint to bool, float to uint).
func (p Property) Set(v Value) { p.def.set(p.obj, coerce(v, p.def.field)) }

// Reset restores the default value.
func (p Property) Reset() { p.def.set(p.obj, p.def.def) }

// IsDefault reports whether the current value equals the default.
func (p Property) IsDefault() bool {
	cur := p.Get()
	return cur.bits == p.def.def.bits && cur.text == p.def.def.text
}

func coerce(v Value, to FieldType) Value {
	if v.field == to {
		return v
	}
	switch to {
	case FieldBool:
		if v.field == FieldFloat {
			return BoolValue(v.Float() != 0)
		}
		return BoolValue(v.bits != 0)
	case FieldUint:
		switch v.field {
		case FieldFloat:
			return UintValue(uint64(v.Float()))
		case FieldBool, FieldColor:
			return UintValue(v.bits)
		}
	case FieldFloat:
		if v.field == FieldUint || v.field == FieldBool {
			return FloatValue(float32(v.bits))
		}
	case FieldColor:
		if v.field == FieldUint {
			return ARGBValue(uint32(v.bits))
		}
	}
	v.field = to
	return v
}

// PropertyOf returns the property key on o, searching o's type and every
// ancestor facet.
func PropertyOf(o Object, key PropertyKey) (Property, bool) {
	if o == nil {
		return Property{}, false
	}
	for def := typeOf(o); def != nil; def = typeTable[def.parent] {
		if p := def.property(key); p != nil {
			return Property{def: p, obj: o}, true
		}
		for _, mk := range def.mixins {
			if mixin := typeTable[mk]; mixin != nil {
				if p := mixin.property(key); p != nil {
					return Property{def: p, obj: o}, true
				}
			}
		}
	}
	return Property{}, false
}

// Properties lists every property key o carries, most-derived type first.
func Properties(o Object) []PropertyKey {
	var keys []PropertyKey
	for def := typeOf(o); def != nil; def = typeTable[def.parent] {
		for i := range def.props {
			keys = append(keys, def.props[i].key)
		}
		for _, mk := range def.mixins {
			if mixin := typeTable[mk]; mixin != nil {
				for i := range mixin.props {
					keys = append(keys, mixin.props[i].key)
				}
			}
		}
	}
	return keys
}

// FieldTypeOf returns the wire type of key across all registered types.
func FieldTypeOf(key PropertyKey) (FieldType, bool) {
	f, ok := fieldTypes[key]
	return f, ok
}

// Animate applies value to o's property key with the given mix. Floats and
// colors blend toward value (mix 1 replaces); other fields are written as-is.
// Unknown keys are ignored.
func Animate(o Object, key PropertyKey, value Value, mix float32) {
	p, ok := PropertyOf(o, key)
	if !ok {
		return
	}
	if mix >= 1 {
		p.Set(value)
		return
	}
	switch p.Field() {
	case FieldFloat:
		cur := p.Get().Float()
		p.Set(FloatValue(cur*(1-mix) + coerce(value, FieldFloat).Float()*mix))
	case FieldColor:
		cur := p.Get().Color()
		p.Set(ColorValue(cur.Lerp(coerce(value, FieldColor).Color(), mix)))
	default:
		p.Set(value)
	}
}

// --- Property table helpers ---

func floatProp[T any](key PropertyKey, name string, def float32, cast func(Object) T, get func(T) float32, set func(T, float32)) propertyDef {
	return propertyDef{
		key: key, name: name, field: FieldFloat, def: FloatValue(def),
		get: func(o Object) Value { return FloatValue(get(cast(o))) },
		set: func(o Object, v Value) { set(cast(o), v.Float()) },
	}
}

func uintProp[T any](key PropertyKey, name string, def uint64, cast func(Object) T, get func(T) uint64, set func(T, uint64)) propertyDef {
	return propertyDef{
		key: key, name: name, field: FieldUint, def: UintValue(def),
		get: func(o Object) Value { return UintValue(get(cast(o))) },
		set: func(o Object, v Value) { set(cast(o), v.Uint()) },
	}
}

// idProp is a uint property holding an object reference; the wire default
// of -1 reads back as NoID.
func idProp[T any](key PropertyKey, name string, cast func(Object) T, get func(T) uint32, set func(T, uint32)) propertyDef {
	return propertyDef{
		key: key, name: name, field: FieldUint, def: UintValue(uint64(NoID)),
		get: func(o Object) Value { return UintValue(uint64(get(cast(o)))) },
		set: func(o Object, v Value) { set(cast(o), uint32(v.Uint())) },
	}
}

func boolProp[T any](key PropertyKey, name string, def bool, cast func(Object) T, get func(T) bool, set func(T, bool)) propertyDef {
	return propertyDef{
		key: key, name: name, field: FieldBool, def: BoolValue(def),
		get: func(o Object) Value { return BoolValue(get(cast(o))) },
		set: func(o Object, v Value) { set(cast(o), v.Bool()) },
	}
}

func colorProp[T any](key PropertyKey, name string, def uint32, cast func(Object) T, get func(T) uint32, set func(T, uint32)) propertyDef {
	return propertyDef{
		key: key, name: name, field: FieldColor, def: ARGBValue(def),
		get: func(o Object) Value { return ARGBValue(get(cast(o))) },
		set: func(o Object, v Value) { set(cast(o), v.ARGB()) },
	}
}

func stringProp[T any](key PropertyKey, name string, cast func(Object) T, get func(T) string, set func(T, string)) propertyDef {
	return propertyDef{
		key: key, name: name, field: FieldString, def: StringValue(""),
		get: func(o Object) Value { return StringValue(get(cast(o))) },
		set: func(o Object, v Value) { set(cast(o), v.Text()) },
	}
}
