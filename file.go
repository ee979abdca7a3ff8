package arbor

import (
	"fmt"
)

// File format version this runtime reads and writes.
const (
	MajorVersion = 7
	MinorVersion = 0
)

var fingerprint = [4]byte{'R', 'I', 'V', 'E'}

// Backboard carries file-level settings. It has no properties this runtime
// interprets.
type Backboard struct{}

// NewBackboard returns an empty backboard.
func NewBackboard() *Backboard { return &Backboard{} }

func (b *Backboard) CoreType() TypeKey               { return TypeBackboard }
func (b *Backboard) OnAddedDirty(Context) StatusCode { return StatusOk }
func (b *Backboard) OnAddedClean(Context) StatusCode { return StatusOk }

// File is an imported file: one backboard and the artboards in file order.
type File struct {
	FileID    uint64
	Minor     uint64
	backboard *Backboard
	artboards []*Artboard
}

// NewFile returns an empty file with a default backboard.
func NewFile() *File {
	return &File{backboard: NewBackboard(), Minor: MinorVersion}
}

// Backboard returns the file's backboard.
func (f *File) Backboard() *Backboard { return f.backboard }

// Artboards returns every artboard in file order.
func (f *File) Artboards() []*Artboard { return f.artboards }

// Artboard returns the first artboard, or nil.
func (f *File) Artboard() *Artboard {
	if len(f.artboards) == 0 {
		return nil
	}
	return f.artboards[0]
}

// ArtboardByName returns the first artboard named name, or nil.
func (f *File) ArtboardByName(name string) *Artboard {
	for _, ab := range f.artboards {
		if ab.name == name {
			return ab
		}
	}
	return nil
}

// AddArtboard appends ab to the file.
func (f *File) AddArtboard(ab *Artboard) {
	f.artboards = append(f.artboards, ab)
}

// Import decodes and initializes a file.
func Import(data []byte) (*File, error) {
	return ImportFrom(NewBinaryReader(data))
}

// header is the decoded preamble of a file.
type header struct {
	major, minor, fileID uint64
	toc                  map[PropertyKey]FieldType
}

func readHeader(r BinaryReader) (*header, error) {
	for _, want := range fingerprint {
		b, err := r.ReadByte()
		if err != nil {
			return nil, &ImportError{Stage: "fingerprint", Err: err}
		}
		if b != want {
			return nil, &ImportError{Stage: "fingerprint", Err: ErrBadFingerprint}
		}
	}

	h := &header{toc: map[PropertyKey]FieldType{}}
	var err error
	if h.major, err = r.ReadVarUint(); err != nil {
		return nil, &ImportError{Stage: "version", Err: err}
	}
	if h.major != MajorVersion {
		return nil, &ImportError{Stage: "version", Err: fmt.Errorf("%w: %d.x, want %d.x", ErrUnsupportedVersion, h.major, MajorVersion)}
	}
	if h.minor, err = r.ReadVarUint(); err != nil {
		return nil, &ImportError{Stage: "version", Err: err}
	}
	if h.fileID, err = r.ReadVarUint(); err != nil {
		return nil, &ImportError{Stage: "file id", Err: err}
	}

	var keys []PropertyKey
	for {
		k, err := r.ReadVarUint()
		if err != nil {
			return nil, &ImportError{Stage: "table of contents", Err: err}
		}
		if k == 0 {
			break
		}
		keys = append(keys, PropertyKey(k))
	}

	// Field ids are packed two bits each into little-endian uint32 words.
	var word uint32
	bit := 8
	for _, k := range keys {
		if bit == 8 {
			if word, err = r.ReadUint32(); err != nil {
				return nil, &ImportError{Stage: "table of contents", Err: err}
			}
			bit = 0
		}
		h.toc[k] = fieldFromTOC((word >> bit) & 3)
		bit += 2
	}
	return h, nil
}

// importer tracks where the next object belongs.
type importer struct {
	file      *File
	artboard  *Artboard
	animation *LinearAnimation
	keyed     *KeyedObject
	property  *KeyedProperty
	skipped   int
}

// ImportFrom decodes a file from r and initializes every artboard. The
// first malformed object or failed initialization aborts the import.
func ImportFrom(r BinaryReader) (*File, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	imp := &importer{file: &File{backboard: NewBackboard(), FileID: h.fileID, Minor: h.minor}}

	for index := 0; !r.Done(); index++ {
		obj, err := readObject(r, h)
		if err != nil {
			return nil, &ImportError{Stage: fmt.Sprintf("object %d", index), Err: err}
		}
		if err := imp.place(obj); err != nil {
			return nil, &ImportError{Stage: fmt.Sprintf("object %d", index), Err: err}
		}
	}

	for _, ab := range imp.file.artboards {
		if err := ab.Initialize(); err != nil {
			return nil, &ImportError{Stage: fmt.Sprintf("artboard %q", ab.name), Err: err}
		}
	}
	if imp.skipped > 0 {
		Logger().Warn("arbor: skipped objects of unknown type", "count", imp.skipped)
	}
	Logger().Info("arbor: file imported", "artboards", len(imp.file.artboards), "fileId", h.fileID)
	return imp.file, nil
}

// readObject reads one object record. Unknown types yield a nil object with
// their properties consumed.
func readObject(r BinaryReader, h *header) (Object, error) {
	tk, err := r.ReadVarUint()
	if err != nil {
		return nil, err
	}
	obj, known := NewObject(TypeKey(tk))
	if !known {
		Logger().Debug("arbor: unknown object type", "type", tk)
	}

	for {
		pk, err := r.ReadVarUint()
		if err != nil {
			return nil, err
		}
		if pk == 0 {
			return obj, nil
		}
		key := PropertyKey(pk)

		if obj != nil {
			if p, ok := PropertyOf(obj, key); ok {
				v, err := readValue(r, p.Field())
				if err != nil {
					return nil, fmt.Errorf("property %d: %w", key, err)
				}
				p.Set(v)
				continue
			}
		}

		field, ok := h.toc[key]
		if !ok {
			if field, ok = FieldTypeOf(key); !ok {
				return nil, fmt.Errorf("property %d on type %d: %w", key, tk, ErrUnknownProperty)
			}
		}
		if _, err := readValue(r, field); err != nil {
			return nil, fmt.Errorf("skipping property %d: %w", key, err)
		}
	}
}

func (imp *importer) place(obj Object) error {
	switch o := obj.(type) {
	case nil:
		imp.skipped++
		if imp.artboard != nil {
			imp.artboard.addPlaceholder()
		}
	case *Backboard:
		imp.file.backboard = o
	case *Artboard:
		imp.file.AddArtboard(o)
		imp.artboard = o
		imp.animation, imp.keyed, imp.property = nil, nil, nil
	case *LinearAnimation:
		if imp.artboard == nil {
			return ErrNoArtboard
		}
		imp.artboard.AddAnimation(o)
		imp.animation, imp.keyed, imp.property = o, nil, nil
	case *KeyedObject:
		if imp.animation == nil {
			return fmt.Errorf("keyed object: %w", ErrOrphanObject)
		}
		imp.animation.AddKeyedObject(o)
		imp.keyed, imp.property = o, nil
	case *KeyedProperty:
		if imp.keyed == nil {
			return fmt.Errorf("keyed property: %w", ErrOrphanObject)
		}
		imp.keyed.AddKeyedProperty(o)
		imp.property = o
	case KeyFrame:
		if imp.property == nil {
			return fmt.Errorf("keyframe: %w", ErrOrphanObject)
		}
		imp.property.AddKeyFrame(o)
	default:
		if imp.artboard == nil {
			return ErrNoArtboard
		}
		imp.artboard.AddObject(o)
	}
	return nil
}
