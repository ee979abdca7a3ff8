// Package arbor is a runtime for vector animation files: it loads artboards
// of shapes, paints and keyframed animations, keeps their derived state up
// to date, and hands paths to a [Renderer] in draw order.
//
// # Quick start
//
// The simplest way to play a file is [Run], which creates an [Ebitengine]
// window and game loop for you:
//
//	file, err := arbor.Import(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	arbor.Run(file.Artboard(), arbor.DefaultRunConfig())
//
// For full control, drive the artboard yourself each frame:
//
//	inst := arbor.NewLinearAnimationInstance(ab.FirstAnimation())
//	inst.Advance(dt)
//	inst.Apply(ab, 1)
//	ab.Advance(dt)
//	ab.Draw(renderer, arbor.IdentityMat)
//
// # Object table
//
// Every object in an [Artboard] is addressed by its index in the artboard's
// object table; index 0 is the artboard itself. Parents, dependents, draw
// links and animation targets are all plain IDs resolved with
// [Artboard.Resolve]. [Artboard.Initialize] runs the two lifecycle phases
// over every object (resolve references, then wire objects together), sorts
// components so that no component updates before what it depends on, and
// builds the draw order.
//
// # Dirt and updates
//
// Setters mark components dirty. [Artboard.UpdateComponents] walks the
// sorted order and updates dirty components, restarting the pass when an
// update dirties something earlier. Passes are capped
// ([Artboard.SetMaxUpdatePasses]); hitting the cap is reported in
// [UpdateStats] and logged instead of failing.
//
// # Draw order
//
// Drawables draw in dependency order unless [DrawRules] capture them into a
// [DrawTarget], which splices them before or after another drawable.
//
// # Animation
//
// A [LinearAnimation] holds keyed objects, keyed properties and keyframes.
// A [LinearAnimationInstance] is a playhead over one; many instances may
// share an animation. Runtime tweens ([TweenProperty] and friends, via
// [gween]) write through the same property setters as keyframes.
//
// # Renderers
//
// [RasterRenderer] draws into an *image.RGBA, [EbitenRenderer] onto an
// ebiten image, and the ggrender sub-package through a gogpu/gg context.
// [Recorder] keeps the draw calls for inspection.
//
// # Logging
//
// Nothing is logged by default. [SetLogger] installs a *slog.Logger.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package arbor
