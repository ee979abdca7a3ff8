package arbor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Player is an [ebiten.Game] that plays animations on one artboard and draws
// it centered and scaled to fit the window.
//
// Space pauses and resumes, R rewinds every animation and S saves a
// screenshot to the configured directory.
type Player struct {
	artboard  *Artboard
	instances []*LinearAnimationInstance
	tweens    []*TweenGroup
	renderer  *EbitenRenderer
	cfg       RunConfig
	bg        Color
	paused    bool
	capture   bool
}

// NewPlayer prepares ab for playback. An uninitialized artboard is
// initialized first.
func NewPlayer(ab *Artboard, cfg RunConfig) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Player{cfg: cfg, bg: cfg.BackgroundColor(), renderer: NewEbitenRenderer(nil)}
	if err := p.SetArtboard(ab); err != nil {
		return nil, err
	}
	return p, nil
}

// SetArtboard swaps the artboard being played, for example after a reload.
func (p *Player) SetArtboard(ab *Artboard) error {
	if ab == nil {
		return fmt.Errorf("arbor: player needs an artboard")
	}
	if !ab.IsInitialized() {
		if err := ab.Initialize(); err != nil {
			return err
		}
	}
	ab.SetMaxUpdatePasses(p.cfg.MaxUpdatePasses)
	ab.SetDebugMode(p.cfg.Debug)

	var anims []*LinearAnimation
	switch p.cfg.Animation {
	case "":
		if a := ab.FirstAnimation(); a != nil {
			anims = append(anims, a)
		}
	case "*":
		anims = ab.Animations()
	default:
		a := ab.Animation(p.cfg.Animation)
		if a == nil {
			return fmt.Errorf("arbor: no animation named %q", p.cfg.Animation)
		}
		anims = append(anims, a)
	}

	p.artboard = ab
	p.tweens = nil
	p.instances = p.instances[:0]
	for _, a := range anims {
		p.instances = append(p.instances, NewLinearAnimationInstance(a))
	}
	ab.UpdateComponents()
	return nil
}

// Artboard returns the artboard being played.
func (p *Player) Artboard() *Artboard { return p.artboard }

// Instances returns the playing animation instances.
func (p *Player) Instances() []*LinearAnimationInstance { return p.instances }

// AddTween runs g alongside the animations until it finishes.
func (p *Player) AddTween(g *TweenGroup) {
	if g != nil {
		p.tweens = append(p.tweens, g)
	}
}

// Step advances every instance and tween by elapsed seconds, applies them
// and updates the artboard.
func (p *Player) Step(elapsed float32) {
	dt := elapsed * p.cfg.Speed
	for _, inst := range p.instances {
		inst.Advance(dt)
		inst.Apply(p.artboard, p.cfg.Mix)
	}
	live := p.tweens[:0]
	for _, g := range p.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(p.tweens[len(live):])
	p.tweens = live
	p.artboard.Advance(dt)
}

// Update implements ebiten.Game.
func (p *Player) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		for _, inst := range p.instances {
			inst.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		p.capture = true
	}
	if p.paused {
		return nil
	}
	p.Step(1 / float32(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (p *Player) Draw(screen *ebiten.Image) {
	screen.Fill(p.bg.toNRGBA())
	b := screen.Bounds()
	p.renderer.Target = screen
	p.artboard.Draw(p.renderer, fitTransform(p.artboard, float32(b.Dx()), float32(b.Dy())))
	if p.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	if p.capture {
		p.capture = false
		if err := captureScreen(screen, p.cfg.ScreenshotDir, p.artboard.Name()); err != nil {
			Logger().Warn("screenshot failed", "err", err)
		}
	}
}

// Layout implements ebiten.Game.
func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// fitTransform scales ab uniformly to fit a w by h screen and centers it.
func fitTransform(ab *Artboard, w, h float32) Mat2D {
	aw, ah := ab.Width(), ab.Height()
	if aw <= 0 || ah <= 0 {
		return IdentityMat
	}
	s := min(w/aw, h/ah)
	return TranslateMat((w-aw*s)/2, (h-ah*s)/2).Multiply(ScaleMat(s, s))
}

// Run opens a window and plays ab until it is closed.
func Run(ab *Artboard, cfg RunConfig) error {
	p, err := NewPlayer(ab, cfg)
	if err != nil {
		return err
	}
	return RunPlayer(p)
}

// RunPlayer opens a window sized by the player's config and runs p.
func RunPlayer(p *Player) error {
	ebiten.SetWindowTitle(p.cfg.Title)
	ebiten.SetWindowSize(p.cfg.Width, p.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(p)
}
