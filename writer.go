package arbor

import (
	"encoding/binary"
	"maps"
	"math"
	"slices"
)

// unknownTypeKey is written for table slots holding objects this runtime
// cannot represent. Readers skip it and keep later IDs aligned.
const unknownTypeKey TypeKey = 9999

// Writer encodes objects in the file format. Objects are appended in file
// order; Bytes assembles the header and table of contents in front of them.
type Writer struct {
	FileID uint64

	body   []byte
	fields map[PropertyKey]FieldType
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{fields: map[PropertyKey]FieldType{}}
}

// WriteObject appends o with every property that differs from its default.
func (w *Writer) WriteObject(o Object) {
	if o == nil {
		w.WriteRaw(unknownTypeKey)
		return
	}
	w.body = binary.AppendUvarint(w.body, uint64(o.CoreType()))
	for _, key := range Properties(o) {
		p, _ := PropertyOf(o, key)
		if p.IsDefault() {
			continue
		}
		w.writeProperty(key, p.Get())
	}
	w.body = append(w.body, 0)
}

// WriteRaw appends an object record with explicit properties. Keys must be
// registered or carry a value whose field type the table of contents can
// describe. It is meant for tooling and malformed-input fixtures.
func (w *Writer) WriteRaw(typeKey TypeKey, props ...RawProperty) {
	w.body = binary.AppendUvarint(w.body, uint64(typeKey))
	for _, p := range props {
		w.writeProperty(p.Key, p.Value)
	}
	w.body = append(w.body, 0)
}

// RawProperty is a key and value written by WriteRaw.
type RawProperty struct {
	Key   PropertyKey
	Value Value
}

func (w *Writer) writeProperty(key PropertyKey, v Value) {
	if _, ok := w.fields[key]; !ok {
		w.fields[key] = v.field
	}
	w.body = binary.AppendUvarint(w.body, uint64(key))
	w.body = appendValue(w.body, v)
}

func appendValue(b []byte, v Value) []byte {
	switch v.field {
	case FieldString:
		b = binary.AppendUvarint(b, uint64(len(v.text)))
		return append(b, v.text...)
	case FieldFloat:
		return binary.LittleEndian.AppendUint32(b, math.Float32bits(v.Float()))
	case FieldColor:
		return binary.LittleEndian.AppendUint32(b, v.ARGB())
	case FieldBool:
		if v.Bool() {
			return append(b, 1)
		}
		return append(b, 0)
	default:
		return binary.AppendUvarint(b, v.bits)
	}
}

// Bytes returns the complete encoded file.
func (w *Writer) Bytes() []byte {
	out := append([]byte(nil), fingerprint[:]...)
	out = binary.AppendUvarint(out, MajorVersion)
	out = binary.AppendUvarint(out, MinorVersion)
	out = binary.AppendUvarint(out, w.FileID)

	keys := slices.Sorted(maps.Keys(w.fields))
	for _, k := range keys {
		out = binary.AppendUvarint(out, uint64(k))
	}
	out = append(out, 0)

	var word uint32
	bit := 0
	for _, k := range keys {
		word |= w.fields[k].tocID() << bit
		bit += 2
		if bit == 8 {
			out = binary.LittleEndian.AppendUint32(out, word)
			word, bit = 0, 0
		}
	}
	if bit != 0 {
		out = binary.LittleEndian.AppendUint32(out, word)
	}
	return append(out, w.body...)
}

// MarshalBinary encodes f: the backboard, then each artboard's object table
// followed by its animations.
func (f *File) MarshalBinary() ([]byte, error) {
	w := NewWriter()
	w.FileID = f.FileID
	w.WriteObject(f.backboard)
	for _, ab := range f.artboards {
		for _, o := range ab.objects {
			w.WriteObject(o)
		}
		for _, a := range ab.animations {
			w.WriteObject(a)
			for _, ko := range a.keyedObjects {
				w.WriteObject(ko)
				for _, kp := range ko.properties {
					w.WriteObject(kp)
					for _, kf := range kp.keyFrames {
						w.WriteObject(kf)
					}
				}
			}
		}
	}
	return w.Bytes(), nil
}
