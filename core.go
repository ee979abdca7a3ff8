package arbor

import "fmt"

// TypeKey identifies an object type in the file format.
type TypeKey uint16

// File format type keys. These are a stable wire contract.
const (
	TypeArtboard              TypeKey = 1
	TypeNode                  TypeKey = 2
	TypeShape                 TypeKey = 3
	TypeEllipse               TypeKey = 4
	TypeStraightVertex        TypeKey = 5
	TypeCubicDetachedVertex   TypeKey = 6
	TypeRectangle             TypeKey = 7
	TypeTriangle              TypeKey = 8
	TypePathComposer          TypeKey = 9
	TypeComponent             TypeKey = 10
	TypeContainerComponent    TypeKey = 11
	TypePath                  TypeKey = 12
	TypeDrawable              TypeKey = 13
	TypePathVertex            TypeKey = 14
	TypeParametricPath        TypeKey = 15
	TypePointsPath            TypeKey = 16
	TypeRadialGradient        TypeKey = 17
	TypeSolidColor            TypeKey = 18
	TypeGradientStop          TypeKey = 19
	TypeFill                  TypeKey = 20
	TypeShapePaint            TypeKey = 21
	TypeLinearGradient        TypeKey = 22
	TypeBackboard             TypeKey = 23
	TypeStroke                TypeKey = 24
	TypeKeyedObject           TypeKey = 25
	TypeKeyedProperty         TypeKey = 26
	TypeAnimation             TypeKey = 27
	TypeCubicInterpolator     TypeKey = 28
	TypeKeyFrame              TypeKey = 29
	TypeKeyFrameDouble        TypeKey = 30
	TypeLinearAnimation       TypeKey = 31
	TypeCubicAsymmetricVertex TypeKey = 34
	TypeCubicMirroredVertex   TypeKey = 35
	TypeCubicVertex           TypeKey = 36
	TypeKeyFrameColor         TypeKey = 37
	TypeTransformComponent    TypeKey = 38
	TypeTrimPath              TypeKey = 47
	TypeDrawTarget            TypeKey = 48
	TypeDrawRules             TypeKey = 49
	TypeKeyFrameID            TypeKey = 50
	TypePolygon               TypeKey = 51
	TypeStar                  TypeKey = 52

	// TypeShapePaintContainer is a capability with no wire representation;
	// Artboard and Shape carry it as a mixin.
	TypeShapePaintContainer TypeKey = 1 << 12
)

// Object is anything the file format can instantiate.
type Object interface {
	CoreType() TypeKey
	// OnAddedDirty resolves and validates references. Other objects may not
	// be wired yet.
	OnAddedDirty(ctx Context) StatusCode
	// OnAddedClean performs cross-object wiring once every object has
	// passed the dirty phase.
	OnAddedClean(ctx Context) StatusCode
}

// Context is handed to lifecycle hooks.
type Context interface {
	// Resolve returns the object with the given ID or nil.
	Resolve(id uint32) Object
	Artboard() *Artboard
}

// typeDef is one row of the capability table: a type, its parent facet,
// extra capabilities, its constructor and its own properties.
type typeDef struct {
	key    TypeKey
	name   string
	parent TypeKey
	mixins []TypeKey
	make   func() Object // nil for abstract types
	cast   func(Object) any
	props  []propertyDef
}

func (d *typeDef) property(key PropertyKey) *propertyDef {
	for i := range d.props {
		if d.props[i].key == key {
			return &d.props[i]
		}
	}
	return nil
}

var (
	typeTable  = map[TypeKey]*typeDef{}
	fieldTypes = map[PropertyKey]FieldType{}
)

// registerType adds def to the capability table. Property keys are unique
// across all types.
func registerType(def *typeDef) {
	if _, dup := typeTable[def.key]; dup {
		panic(fmt.Sprintf("arbor: type %d registered twice", def.key))
	}
	typeTable[def.key] = def
	for _, p := range def.props {
		if _, dup := fieldTypes[p.key]; dup {
			panic(fmt.Sprintf("arbor: property %d registered twice", p.key))
		}
		fieldTypes[p.key] = p.field
	}
}

func typeOf(o Object) *typeDef {
	if o == nil {
		return nil
	}
	return typeTable[o.CoreType()]
}

// NewObject constructs a default object of the given type. It returns false
// for unknown or abstract types.
func NewObject(key TypeKey) (Object, bool) {
	def := typeTable[key]
	if def == nil || def.make == nil {
		return nil, false
	}
	return def.make(), true
}

// RefOf returns o's facet for the capability key, walking parent facets and
// mixins. The returned value is the facet struct pointer (e.g. *Node).
func RefOf(o Object, key TypeKey) (any, bool) {
	for def := typeOf(o); def != nil; def = typeTable[def.parent] {
		if def.key == key {
			return def.cast(o), true
		}
		for _, mk := range def.mixins {
			if mk == key {
				if mixin := typeTable[mk]; mixin != nil {
					return mixin.cast(o), true
				}
			}
		}
	}
	return nil, false
}

// Is reports whether o carries the capability key.
func Is(o Object, key TypeKey) bool {
	_, ok := RefOf(o, key)
	return ok
}

// TypeName returns the registered name of o's type.
func TypeName(o Object) string {
	if def := typeOf(o); def != nil {
		return def.name
	}
	if o == nil {
		return "<nil>"
	}
	return fmt.Sprintf("type %d", o.CoreType())
}

// TypeNameOf returns the registered name of key.
func TypeNameOf(key TypeKey) string {
	if def := typeTable[key]; def != nil {
		return def.name
	}
	return fmt.Sprintf("type %d", key)
}
