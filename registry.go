package arbor

// Property keys of the file format.
const (
	PropComponentName     PropertyKey = 4
	PropComponentParentID PropertyKey = 5

	PropArtboardWidth   PropertyKey = 7
	PropArtboardHeight  PropertyKey = 8
	PropArtboardX       PropertyKey = 9
	PropArtboardY       PropertyKey = 10
	PropArtboardOriginX PropertyKey = 11
	PropArtboardOriginY PropertyKey = 12

	PropNodeX    PropertyKey = 13
	PropNodeY    PropertyKey = 14
	PropRotation PropertyKey = 15
	PropScaleX   PropertyKey = 16
	PropScaleY   PropertyKey = 17
	PropOpacity  PropertyKey = 18

	PropParametricWidth   PropertyKey = 20
	PropParametricHeight  PropertyKey = 21
	PropBlendModeValue    PropertyKey = 23
	PropVertexX           PropertyKey = 24
	PropVertexY           PropertyKey = 25
	PropStraightRadius    PropertyKey = 26
	PropRectCornerRadius  PropertyKey = 31
	PropPointsPathClosed  PropertyKey = 32
	PropGradientStartY    PropertyKey = 33
	PropGradientEndX      PropertyKey = 34
	PropGradientEndY      PropertyKey = 35
	PropSolidColorValue   PropertyKey = 37
	PropStopColorValue    PropertyKey = 38
	PropStopPosition      PropertyKey = 39
	PropFillRule          PropertyKey = 40
	PropPaintIsVisible    PropertyKey = 41
	PropGradientStartX    PropertyKey = 42
	PropGradientOpacity   PropertyKey = 46
	PropStrokeThickness   PropertyKey = 47
	PropStrokeCap         PropertyKey = 48
	PropStrokeJoin        PropertyKey = 49
	PropStrokeTransforms  PropertyKey = 50
	PropKeyedObjectID     PropertyKey = 51
	PropKeyedPropertyKey  PropertyKey = 53
	PropAnimationName     PropertyKey = 55
	PropAnimationFps      PropertyKey = 56
	PropAnimationDuration PropertyKey = 57
	PropAnimationSpeed    PropertyKey = 58
	PropAnimationLoop     PropertyKey = 59
	PropWorkStart         PropertyKey = 60
	PropWorkEnd           PropertyKey = 61
	PropEnableWorkArea    PropertyKey = 62

	PropInterpolatorX1 PropertyKey = 63
	PropInterpolatorY1 PropertyKey = 64
	PropInterpolatorX2 PropertyKey = 65
	PropInterpolatorY2 PropertyKey = 66

	PropKeyFrameFrame         PropertyKey = 67
	PropKeyFrameInterpolation PropertyKey = 68
	PropKeyFrameInterpolator  PropertyKey = 69
	PropKeyFrameDoubleValue   PropertyKey = 70

	PropAsymmetricRotation    PropertyKey = 79
	PropAsymmetricInDistance  PropertyKey = 80
	PropAsymmetricOutDistance PropertyKey = 81
	PropMirroredRotation      PropertyKey = 82
	PropMirroredDistance      PropertyKey = 83
	PropDetachedInRotation    PropertyKey = 84
	PropDetachedInDistance    PropertyKey = 85
	PropDetachedOutRotation   PropertyKey = 86
	PropDetachedOutDistance   PropertyKey = 87
	PropKeyFrameColorValue    PropertyKey = 88

	PropTrimStart  PropertyKey = 114
	PropTrimEnd    PropertyKey = 115
	PropTrimOffset PropertyKey = 116
	PropTrimMode   PropertyKey = 117

	PropDrawTargetDrawableID PropertyKey = 119
	PropDrawTargetPlacement  PropertyKey = 120
	PropDrawRulesTargetID    PropertyKey = 121
	PropKeyFrameIDValue      PropertyKey = 122

	PropParametricOriginX PropertyKey = 123
	PropParametricOriginY PropertyKey = 124
	PropPolygonPoints     PropertyKey = 125
	PropPolygonRadius     PropertyKey = 126
	PropStarInnerRadius   PropertyKey = 127
	PropPathFlags         PropertyKey = 128
	PropDrawableFlags     PropertyKey = 129
)

func castTo[T any](o Object) T {
	v, _ := o.(T)
	return v
}

func facet[T any](cast func(Object) T) func(Object) any {
	return func(o Object) any { return cast(o) }
}

func makeOf[T Object](ctor func() T) func() Object {
	return func() Object { return ctor() }
}

func init() {
	for _, def := range coreTypes() {
		registerType(def)
	}
}

func coreTypes() []*typeDef {
	return []*typeDef{
		// --- Component hierarchy ---
		{
			key: TypeComponent, name: "Component", cast: facet(AsComponent),
			props: []propertyDef{
				stringProp(PropComponentName, "name", AsComponent, (*Component).Name, (*Component).SetName),
				uintProp(PropComponentParentID, "parentId", 0, AsComponent,
					func(c *Component) uint64 { return uint64(c.ParentID()) },
					func(c *Component, v uint64) { c.SetParentID(uint32(v)) }),
			},
		},
		{key: TypeContainerComponent, name: "ContainerComponent", parent: TypeComponent, cast: facet(AsContainer)},
		{
			key: TypeTransformComponent, name: "TransformComponent", parent: TypeContainerComponent, cast: facet(AsTransform),
			props: []propertyDef{
				floatProp(PropRotation, "rotation", 0, AsTransform, (*TransformComponent).Rotation, (*TransformComponent).SetRotation),
				floatProp(PropScaleX, "scaleX", 1, AsTransform, (*TransformComponent).ScaleX, (*TransformComponent).SetScaleX),
				floatProp(PropScaleY, "scaleY", 1, AsTransform, (*TransformComponent).ScaleY, (*TransformComponent).SetScaleY),
				floatProp(PropOpacity, "opacity", 1, AsTransform, (*TransformComponent).Opacity, (*TransformComponent).SetOpacity),
			},
		},
		{
			key: TypeNode, name: "Node", parent: TypeTransformComponent, cast: facet(AsNode), make: makeOf(NewNode),
			props: []propertyDef{
				floatProp(PropNodeX, "x", 0, AsNode, (*Node).X, (*Node).SetX),
				floatProp(PropNodeY, "y", 0, AsNode, (*Node).Y, (*Node).SetY),
			},
		},
		{
			key: TypeDrawable, name: "Drawable", parent: TypeNode, cast: facet(AsDrawable),
			props: []propertyDef{
				uintProp(PropBlendModeValue, "blendModeValue", uint64(BlendSrcOver), AsDrawable,
					func(d *Drawable) uint64 { return uint64(d.BlendMode()) },
					func(d *Drawable, v uint64) { d.SetBlendMode(BlendMode(v)) }),
				uintProp(PropDrawableFlags, "drawableFlags", 0, AsDrawable, (*Drawable).DrawableFlags, (*Drawable).SetDrawableFlags),
			},
		},
		{
			key: TypeShapePaintContainer, name: "ShapePaintContainer", cast: facet(AsShapePaintContainer),
		},
		{
			key: TypeShape, name: "Shape", parent: TypeDrawable, mixins: []TypeKey{TypeShapePaintContainer},
			cast: facet(AsShape), make: makeOf(NewShape),
		},
		{
			key: TypePathComposer, name: "PathComposer", parent: TypeComponent,
			cast: facet(asPathComposer), make: makeOf(NewPathComposer),
		},

		// --- Paths ---
		{
			key: TypePath, name: "Path", parent: TypeNode, cast: facet(AsPath),
			props: []propertyDef{
				uintProp(PropPathFlags, "pathFlags", 0, AsPath, (*Path).PathFlags, (*Path).SetPathFlags),
			},
		},
		{
			key: TypeParametricPath, name: "ParametricPath", parent: TypePath, cast: facet(AsParametricPath),
			props: []propertyDef{
				floatProp(PropParametricWidth, "width", 0, AsParametricPath, (*ParametricPath).Width, (*ParametricPath).SetWidth),
				floatProp(PropParametricHeight, "height", 0, AsParametricPath, (*ParametricPath).Height, (*ParametricPath).SetHeight),
				floatProp(PropParametricOriginX, "originX", 0.5, AsParametricPath, (*ParametricPath).OriginX, (*ParametricPath).SetOriginX),
				floatProp(PropParametricOriginY, "originY", 0.5, AsParametricPath, (*ParametricPath).OriginY, (*ParametricPath).SetOriginY),
			},
		},
		{
			key: TypeRectangle, name: "Rectangle", parent: TypeParametricPath, cast: facet(castTo[*Rectangle]),
			make: func() Object { return NewRectangle(0, 0) },
			props: []propertyDef{
				floatProp(PropRectCornerRadius, "cornerRadius", 0, castTo[*Rectangle], (*Rectangle).CornerRadius, (*Rectangle).SetCornerRadius),
			},
		},
		{
			key: TypeEllipse, name: "Ellipse", parent: TypeParametricPath, cast: facet(castTo[*Ellipse]),
			make: func() Object { return NewEllipse(0, 0) },
		},
		{
			key: TypeTriangle, name: "Triangle", parent: TypeParametricPath, cast: facet(castTo[*Triangle]),
			make: func() Object { return NewTriangle(0, 0) },
		},
		{
			key: TypePolygon, name: "Polygon", parent: TypeParametricPath, cast: facet(AsPolygon),
			make: func() Object { return NewPolygon(0, 0, 5) },
			props: []propertyDef{
				uintProp(PropPolygonPoints, "points", 5, AsPolygon, (*Polygon).Points, (*Polygon).SetPoints),
				floatProp(PropPolygonRadius, "cornerRadius", 0, AsPolygon, (*Polygon).CornerRadius, (*Polygon).SetCornerRadius),
			},
		},
		{
			key: TypeStar, name: "Star", parent: TypePolygon, cast: facet(castTo[*Star]),
			make: func() Object { return NewStar(0, 0, 5) },
			props: []propertyDef{
				floatProp(PropStarInnerRadius, "innerRadius", 0.5, castTo[*Star], (*Star).InnerRadius, (*Star).SetInnerRadius),
			},
		},
		{
			key: TypePointsPath, name: "PointsPath", parent: TypePath, cast: facet(AsPointsPath), make: makeOf(NewPointsPath),
			props: []propertyDef{
				boolProp(PropPointsPathClosed, "isClosed", false, AsPointsPath, (*PointsPath).IsClosed, (*PointsPath).SetIsClosed),
			},
		},
		{
			key: TypePathVertex, name: "PathVertex", parent: TypeComponent, cast: facet(AsPathVertex),
			props: []propertyDef{
				floatProp(PropVertexX, "x", 0, AsPathVertex, (*PathVertex).X, (*PathVertex).SetX),
				floatProp(PropVertexY, "y", 0, AsPathVertex, (*PathVertex).Y, (*PathVertex).SetY),
			},
		},
		{
			key: TypeStraightVertex, name: "StraightVertex", parent: TypePathVertex, cast: facet(castTo[*StraightVertex]),
			make: func() Object { return NewStraightVertex(0, 0) },
			props: []propertyDef{
				floatProp(PropStraightRadius, "radius", 0, castTo[*StraightVertex], (*StraightVertex).Radius, (*StraightVertex).SetRadius),
			},
		},
		{key: TypeCubicVertex, name: "CubicVertex", parent: TypePathVertex, cast: facet(AsPathVertex)},
		{
			key: TypeCubicMirroredVertex, name: "CubicMirroredVertex", parent: TypeCubicVertex, cast: facet(castTo[*CubicMirroredVertex]),
			make: func() Object { return NewCubicMirroredVertex(0, 0, 0, 0) },
			props: []propertyDef{
				floatProp(PropMirroredRotation, "rotation", 0, castTo[*CubicMirroredVertex], (*CubicMirroredVertex).Rotation, (*CubicMirroredVertex).SetRotation),
				floatProp(PropMirroredDistance, "distance", 0, castTo[*CubicMirroredVertex], (*CubicMirroredVertex).Distance, (*CubicMirroredVertex).SetDistance),
			},
		},
		{
			key: TypeCubicAsymmetricVertex, name: "CubicAsymmetricVertex", parent: TypeCubicVertex, cast: facet(castTo[*CubicAsymmetricVertex]),
			make: func() Object { return NewCubicAsymmetricVertex(0, 0, 0, 0, 0) },
			props: []propertyDef{
				floatProp(PropAsymmetricRotation, "rotation", 0, castTo[*CubicAsymmetricVertex], (*CubicAsymmetricVertex).Rotation, (*CubicAsymmetricVertex).SetRotation),
				floatProp(PropAsymmetricInDistance, "inDistance", 0, castTo[*CubicAsymmetricVertex], (*CubicAsymmetricVertex).InDistance, (*CubicAsymmetricVertex).SetInDistance),
				floatProp(PropAsymmetricOutDistance, "outDistance", 0, castTo[*CubicAsymmetricVertex], (*CubicAsymmetricVertex).OutDistance, (*CubicAsymmetricVertex).SetOutDistance),
			},
		},
		{
			key: TypeCubicDetachedVertex, name: "CubicDetachedVertex", parent: TypeCubicVertex, cast: facet(castTo[*CubicDetachedVertex]),
			make: func() Object { return NewCubicDetachedVertex(0, 0, 0, 0, 0, 0) },
			props: []propertyDef{
				floatProp(PropDetachedInRotation, "inRotation", 0, castTo[*CubicDetachedVertex], (*CubicDetachedVertex).InRotation, (*CubicDetachedVertex).SetInRotation),
				floatProp(PropDetachedInDistance, "inDistance", 0, castTo[*CubicDetachedVertex], (*CubicDetachedVertex).InDistance, (*CubicDetachedVertex).SetInDistance),
				floatProp(PropDetachedOutRotation, "outRotation", 0, castTo[*CubicDetachedVertex], (*CubicDetachedVertex).OutRotation, (*CubicDetachedVertex).SetOutRotation),
				floatProp(PropDetachedOutDistance, "outDistance", 0, castTo[*CubicDetachedVertex], (*CubicDetachedVertex).OutDistance, (*CubicDetachedVertex).SetOutDistance),
			},
		},

		// --- Paints ---
		{
			key: TypeShapePaint, name: "ShapePaint", parent: TypeContainerComponent, cast: facet(AsShapePaint),
			props: []propertyDef{
				boolProp(PropPaintIsVisible, "isVisible", true, AsShapePaint, (*ShapePaint).IsVisible, (*ShapePaint).SetIsVisible),
			},
		},
		{
			key: TypeFill, name: "Fill", parent: TypeShapePaint, cast: facet(castTo[*Fill]), make: makeOf(NewFill),
			props: []propertyDef{
				uintProp(PropFillRule, "fillRule", 0, castTo[*Fill],
					func(f *Fill) uint64 { return uint64(f.FillRule()) },
					func(f *Fill, v uint64) { f.SetFillRule(FillRule(v)) }),
			},
		},
		{
			key: TypeStroke, name: "Stroke", parent: TypeShapePaint, cast: facet(castTo[*Stroke]),
			make: func() Object { return NewStroke(1) },
			props: []propertyDef{
				floatProp(PropStrokeThickness, "thickness", 1, castTo[*Stroke], (*Stroke).Thickness, (*Stroke).SetThickness),
				uintProp(PropStrokeCap, "cap", 0, castTo[*Stroke],
					func(s *Stroke) uint64 { return uint64(s.Cap()) },
					func(s *Stroke, v uint64) { s.SetCap(StrokeCap(v)) }),
				uintProp(PropStrokeJoin, "join", 0, castTo[*Stroke],
					func(s *Stroke) uint64 { return uint64(s.Join()) },
					func(s *Stroke, v uint64) { s.SetJoin(StrokeJoin(v)) }),
				boolProp(PropStrokeTransforms, "transformAffectsStroke", true, castTo[*Stroke], (*Stroke).TransformAffectsStroke, (*Stroke).SetTransformAffectsStroke),
			},
		},
		{
			key: TypeSolidColor, name: "SolidColor", parent: TypeComponent, cast: facet(castTo[*SolidColor]),
			make: func() Object { return NewSolidColor(defaultSolidColor) },
			props: []propertyDef{
				colorProp(PropSolidColorValue, "colorValue", defaultSolidColor, castTo[*SolidColor], (*SolidColor).ColorValue, (*SolidColor).SetColorValue),
			},
		},
		{
			key: TypeLinearGradient, name: "LinearGradient", parent: TypeContainerComponent, cast: facet(AsLinearGradient),
			make: func() Object { g := newLinearGradient(); return &g },
			props: []propertyDef{
				floatProp(PropGradientStartX, "startX", 0, AsLinearGradient, (*LinearGradient).StartX, (*LinearGradient).SetStartX),
				floatProp(PropGradientStartY, "startY", 0, AsLinearGradient, (*LinearGradient).StartY, (*LinearGradient).SetStartY),
				floatProp(PropGradientEndX, "endX", 0, AsLinearGradient, (*LinearGradient).EndX, (*LinearGradient).SetEndX),
				floatProp(PropGradientEndY, "endY", 0, AsLinearGradient, (*LinearGradient).EndY, (*LinearGradient).SetEndY),
				floatProp(PropGradientOpacity, "opacity", 1, AsLinearGradient, (*LinearGradient).Opacity, (*LinearGradient).SetOpacity),
			},
		},
		{
			key: TypeRadialGradient, name: "RadialGradient", parent: TypeLinearGradient, cast: facet(castTo[*RadialGradient]),
			make: func() Object { return &RadialGradient{LinearGradient: newLinearGradient()} },
		},
		{
			key: TypeGradientStop, name: "GradientStop", parent: TypeComponent, cast: facet(castTo[*GradientStop]),
			make: func() Object { return NewGradientStop(0xffffffff, 0) },
			props: []propertyDef{
				colorProp(PropStopColorValue, "colorValue", 0xffffffff, castTo[*GradientStop], (*GradientStop).ColorValue, (*GradientStop).SetColorValue),
				floatProp(PropStopPosition, "position", 0, castTo[*GradientStop], (*GradientStop).Position, (*GradientStop).SetPosition),
			},
		},
		{
			key: TypeTrimPath, name: "TrimPath", parent: TypeComponent, cast: facet(castTo[*TrimPath]), make: makeOf(NewTrimPath),
			props: []propertyDef{
				floatProp(PropTrimStart, "start", 0, castTo[*TrimPath], (*TrimPath).Start, (*TrimPath).SetStart),
				floatProp(PropTrimEnd, "end", 1, castTo[*TrimPath], (*TrimPath).End, (*TrimPath).SetEnd),
				floatProp(PropTrimOffset, "offset", 0, castTo[*TrimPath], (*TrimPath).Offset, (*TrimPath).SetOffset),
				uintProp(PropTrimMode, "modeValue", 0, castTo[*TrimPath], (*TrimPath).ModeValue, (*TrimPath).SetModeValue),
			},
		},

		// --- Draw rules ---
		{
			key: TypeDrawTarget, name: "DrawTarget", parent: TypeComponent, cast: facet(AsDrawTarget),
			make: func() Object { return NewDrawTarget(NoID, PlacementBefore) },
			props: []propertyDef{
				idProp(PropDrawTargetDrawableID, "drawableId", AsDrawTarget, (*DrawTarget).DrawableID, (*DrawTarget).SetDrawableID),
				uintProp(PropDrawTargetPlacement, "placementValue", 0, AsDrawTarget,
					func(t *DrawTarget) uint64 { return uint64(t.Placement()) },
					func(t *DrawTarget, v uint64) { t.SetPlacement(DrawTargetPlacement(v)) }),
			},
		},
		{
			key: TypeDrawRules, name: "DrawRules", parent: TypeContainerComponent, cast: facet(AsDrawRules),
			make: func() Object { return NewDrawRules(NoID) },
			props: []propertyDef{
				idProp(PropDrawRulesTargetID, "drawTargetId", AsDrawRules, (*DrawRules).DrawTargetID, (*DrawRules).SetDrawTargetID),
			},
		},

		// --- Artboards ---
		{
			key: TypeArtboard, name: "Artboard", parent: TypeContainerComponent, mixins: []TypeKey{TypeShapePaintContainer},
			cast: facet(AsArtboard), make: makeOf(NewArtboard),
			props: []propertyDef{
				floatProp(PropArtboardWidth, "width", 0, AsArtboard, (*Artboard).Width, (*Artboard).SetWidth),
				floatProp(PropArtboardHeight, "height", 0, AsArtboard, (*Artboard).Height, (*Artboard).SetHeight),
				floatProp(PropArtboardX, "x", 0, AsArtboard, (*Artboard).X, (*Artboard).SetX),
				floatProp(PropArtboardY, "y", 0, AsArtboard, (*Artboard).Y, (*Artboard).SetY),
				floatProp(PropArtboardOriginX, "originX", 0, AsArtboard, (*Artboard).OriginX, (*Artboard).SetOriginX),
				floatProp(PropArtboardOriginY, "originY", 0, AsArtboard, (*Artboard).OriginY, (*Artboard).SetOriginY),
			},
		},
		{key: TypeBackboard, name: "Backboard", cast: facet(castTo[*Backboard]), make: makeOf(NewBackboard)},

		// --- Animation ---
		{
			key: TypeAnimation, name: "Animation", cast: facet(asAnimation),
			props: []propertyDef{
				stringProp(PropAnimationName, "name", asAnimation, (*Animation).Name, (*Animation).SetName),
			},
		},
		{
			key: TypeLinearAnimation, name: "LinearAnimation", parent: TypeAnimation,
			cast: facet(castTo[*LinearAnimation]), make: makeOf(newLinearAnimation),
			props: []propertyDef{
				uintProp(PropAnimationFps, "fps", 60, castTo[*LinearAnimation], (*LinearAnimation).Fps, (*LinearAnimation).SetFps),
				uintProp(PropAnimationDuration, "duration", 60, castTo[*LinearAnimation], (*LinearAnimation).Duration, (*LinearAnimation).SetDuration),
				floatProp(PropAnimationSpeed, "speed", 1, castTo[*LinearAnimation], (*LinearAnimation).Speed, (*LinearAnimation).SetSpeed),
				uintProp(PropAnimationLoop, "loopValue", 0, castTo[*LinearAnimation], (*LinearAnimation).LoopValue, (*LinearAnimation).SetLoopValue),
				idProp(PropWorkStart, "workStart", castTo[*LinearAnimation], (*LinearAnimation).WorkStart, (*LinearAnimation).SetWorkStart),
				idProp(PropWorkEnd, "workEnd", castTo[*LinearAnimation], (*LinearAnimation).WorkEnd, (*LinearAnimation).SetWorkEnd),
				boolProp(PropEnableWorkArea, "enableWorkArea", false, castTo[*LinearAnimation], (*LinearAnimation).EnableWorkArea, (*LinearAnimation).SetEnableWorkArea),
			},
		},
		{
			key: TypeKeyedObject, name: "KeyedObject", cast: facet(castTo[*KeyedObject]),
			make: func() Object { return NewKeyedObject(NoID) },
			props: []propertyDef{
				idProp(PropKeyedObjectID, "objectId", castTo[*KeyedObject], (*KeyedObject).ObjectID, (*KeyedObject).SetObjectID),
			},
		},
		{
			key: TypeKeyedProperty, name: "KeyedProperty", cast: facet(castTo[*KeyedProperty]),
			make: func() Object { return NewKeyedProperty(0) },
			props: []propertyDef{
				uintProp(PropKeyedPropertyKey, "propertyKey", 0, castTo[*KeyedProperty],
					func(kp *KeyedProperty) uint64 { return uint64(kp.PropertyKey()) },
					func(kp *KeyedProperty, v uint64) { kp.SetPropertyKey(PropertyKey(v)) }),
			},
		},
		{
			key: TypeCubicInterpolator, name: "CubicInterpolator", cast: facet(castTo[*CubicInterpolator]),
			make: makeOf(newDefaultCubicInterpolator),
			props: []propertyDef{
				floatProp(PropInterpolatorX1, "x1", 0.42, castTo[*CubicInterpolator], (*CubicInterpolator).X1, (*CubicInterpolator).SetX1),
				floatProp(PropInterpolatorY1, "y1", 0, castTo[*CubicInterpolator], (*CubicInterpolator).Y1, (*CubicInterpolator).SetY1),
				floatProp(PropInterpolatorX2, "x2", 0.58, castTo[*CubicInterpolator], (*CubicInterpolator).X2, (*CubicInterpolator).SetX2),
				floatProp(PropInterpolatorY2, "y2", 1, castTo[*CubicInterpolator], (*CubicInterpolator).Y2, (*CubicInterpolator).SetY2),
			},
		},
		{
			key: TypeKeyFrame, name: "KeyFrame", cast: facet(AsKeyFrame),
			props: []propertyDef{
				uintProp(PropKeyFrameFrame, "frame", 0, AsKeyFrame, (*KeyFrameBase).Frame, (*KeyFrameBase).SetFrame),
				uintProp(PropKeyFrameInterpolation, "interpolationType", 0, AsKeyFrame, (*KeyFrameBase).InterpolationType, (*KeyFrameBase).SetInterpolationType),
				idProp(PropKeyFrameInterpolator, "interpolatorId", AsKeyFrame, (*KeyFrameBase).InterpolatorID, (*KeyFrameBase).SetInterpolatorID),
			},
		},
		{
			key: TypeKeyFrameDouble, name: "KeyFrameDouble", parent: TypeKeyFrame, cast: facet(castTo[*KeyFrameDouble]),
			make: func() Object { return NewKeyFrameDouble(0, 0, InterpolationHold) },
			props: []propertyDef{
				floatProp(PropKeyFrameDoubleValue, "value", 0, castTo[*KeyFrameDouble], (*KeyFrameDouble).Value, (*KeyFrameDouble).SetValue),
			},
		},
		{
			key: TypeKeyFrameColor, name: "KeyFrameColor", parent: TypeKeyFrame, cast: facet(castTo[*KeyFrameColor]),
			make: func() Object { return NewKeyFrameColor(0, 0, InterpolationHold) },
			props: []propertyDef{
				colorProp(PropKeyFrameColorValue, "value", 0, castTo[*KeyFrameColor], (*KeyFrameColor).Value, (*KeyFrameColor).SetValue),
			},
		},
		{
			key: TypeKeyFrameID, name: "KeyFrameId", parent: TypeKeyFrame, cast: facet(castTo[*KeyFrameID]),
			make: func() Object { return NewKeyFrameID(0, NoID) },
			props: []propertyDef{
				idProp(PropKeyFrameIDValue, "value", castTo[*KeyFrameID], (*KeyFrameID).Value, (*KeyFrameID).SetValue),
			},
		},
	}
}

// defaultSolidColor is the gray a SolidColor carries before its value is set.
const defaultSolidColor uint32 = 0xff747474

func asAnimation(o Object) *Animation {
	switch a := o.(type) {
	case *Animation:
		return a
	case *LinearAnimation:
		return &a.Animation
	}
	return nil
}
