package arbor

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// BinaryReader decodes the primitive encodings of the file format.
type BinaryReader interface {
	ReadVarUint() (uint64, error)
	ReadFloat32() (float32, error)
	ReadUint32() (uint32, error)
	ReadString() (string, error)
	ReadBool() (bool, error)
	ReadByte() (byte, error)
	// Done reports whether every byte has been consumed.
	Done() bool
}

// byteReader reads from an in-memory buffer.
type byteReader struct {
	data []byte
	pos  int
}

// NewBinaryReader returns a reader over data.
func NewBinaryReader(data []byte) BinaryReader {
	return &byteReader{data: data}
}

func (r *byteReader) Done() bool { return r.pos >= len(r.data) }

func (r *byteReader) need(n int, what string) error {
	if len(r.data)-r.pos < n {
		return fmt.Errorf("reading %s at offset %d: %w", what, r.pos, io.ErrUnexpectedEOF)
	}
	return nil
}

// ReadVarUint reads an unsigned LEB128 value.
func (r *byteReader) ReadVarUint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	switch {
	case n == 0:
		return 0, fmt.Errorf("reading varuint at offset %d: %w", r.pos, io.ErrUnexpectedEOF)
	case n < 0:
		return 0, fmt.Errorf("reading varuint at offset %d: value overflows 64 bits", r.pos)
	}
	r.pos += n
	return v, nil
}

// ReadFloat32 reads a little-endian IEEE 754 float.
func (r *byteReader) ReadFloat32() (float32, error) {
	if err := r.need(4, "float"); err != nil {
		return 0, err
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

// ReadUint32 reads a little-endian uint32.
func (r *byteReader) ReadUint32() (uint32, error) {
	if err := r.need(4, "uint32"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadString reads a varuint length followed by that many UTF-8 bytes.
func (r *byteReader) ReadString() (string, error) {
	n, err := r.ReadVarUint()
	if err != nil {
		return "", err
	}
	if n > uint64(len(r.data)-r.pos) {
		return "", fmt.Errorf("reading string of %d bytes at offset %d: %w", n, r.pos, io.ErrUnexpectedEOF)
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// ReadBool reads a single byte; any non-zero value is true.
func (r *byteReader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	return b != 0, err
}

func (r *byteReader) ReadByte() (byte, error) {
	if err := r.need(1, "byte"); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readValue reads one property value of the given field type.
func readValue(r BinaryReader, field FieldType) (Value, error) {
	switch field {
	case FieldString:
		s, err := r.ReadString()
		return StringValue(s), err
	case FieldFloat:
		f, err := r.ReadFloat32()
		return FloatValue(f), err
	case FieldColor:
		c, err := r.ReadUint32()
		return ARGBValue(c), err
	case FieldBool:
		b, err := r.ReadBool()
		return BoolValue(b), err
	default:
		v, err := r.ReadVarUint()
		return UintValue(v), err
	}
}
