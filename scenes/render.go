package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/fonts"
	"github.com/automoto/keydoor/game"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	deathOverlayAlpha = 110
	winOverlayAlpha   = 170
)

// overlay fades the death flash and the win banner in over a few ticks.
type overlay struct {
	state netconfig.GameState
	fade  *gween.Tween
	alpha float32
}

func newOverlay() *overlay {
	return &overlay{state: netconfig.StatePlaying}
}

func (o *overlay) Update(state netconfig.GameState) {
	if state != o.state {
		o.state = state
		o.alpha = 0
		o.fade = nil
		duration := float32(config.Palette.OverlayFadeTicks) / float32(config.C.TPS)
		switch state {
		case netconfig.StateDead:
			o.fade = gween.New(0, deathOverlayAlpha, duration, ease.OutQuad)
		case netconfig.StateWon:
			o.fade = gween.New(0, winOverlayAlpha, duration, ease.InOutQuad)
		}
	}
	if o.fade != nil {
		o.alpha, _ = o.fade.Update(1 / float32(config.C.TPS))
	}
}

func (o *overlay) Draw(screen *ebiten.Image, snap game.Snapshot, hint string) {
	if o.alpha <= 0 {
		return
	}
	w, h := float32(config.C.Width), float32(config.C.Height)
	switch o.state {
	case netconfig.StateDead:
		vector.DrawFilledRect(screen, 0, 0, w, h, withAlpha(config.Palette.DeathOverlay, o.alpha), false)
		seconds := float64(snap.ResetCountdown) / float64(config.C.TPS)
		drawCentered(screen, fmt.Sprintf("Resetting in %.1f", seconds), fonts.HUD, config.C.Height/2, color.White)
	case netconfig.StateWon:
		vector.DrawFilledRect(screen, 0, 0, w, h, withAlpha(config.Palette.WinOverlay, o.alpha), false)
		drawCentered(screen, "YOU WIN!", fonts.Title, config.C.Height/2-20, color.White)
		drawCentered(screen, hint, fonts.HUD, config.C.Height/2+30, color.White)
	}
}

func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	// premultiplied
	a := uint8(alpha)
	scale := float32(a) / 255
	return color.RGBA{
		R: uint8(float32(c.R) * scale),
		G: uint8(float32(c.G) * scale),
		B: uint8(float32(c.B) * scale),
		A: a,
	}
}

func drawCentered(screen *ebiten.Image, s string, face fonts.FontName, y int, clr color.Color) {
	bounds := text.BoundString(face.Get(), s)
	x := (config.C.Width - bounds.Dx()) / 2
	text.Draw(screen, s, face.Get(), x, y, clr)
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, camX float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X-camX), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func platformColor(kind components.PlatformKind) color.RGBA {
	switch kind {
	case components.PlatformMoving:
		return config.Palette.MovingPlatform
	case components.PlatformFalling:
		return config.Palette.FallingPlatform
	}
	return config.Palette.Platform
}

func playerColor(id int) color.RGBA {
	if id < 1 {
		return config.Palette.Players[0]
	}
	return config.Palette.Players[(id-1)%len(config.Palette.Players)]
}

// drawWorld paints the snapshot as primitive shapes offset by the camera.
func drawWorld(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(config.Palette.Sky)
	camX := snap.CameraX

	for _, p := range snap.Platforms {
		fillRect(screen, p.Rect, camX, platformColor(p.Kind))
		if p.Kind == components.PlatformStatic {
			top := p.Rect
			top.H = 4
			fillRect(screen, top, camX, config.Palette.PlatformTop)
		}
	}
	for _, h := range snap.Hazards {
		fillRect(screen, h, camX, config.Palette.Hazard)
	}
	if !snap.KeyCollected {
		fillRect(screen, snap.Key, camX, config.Palette.Key)
	}
	door := config.Palette.DoorLocked
	if snap.DoorOpen() {
		door = config.Palette.DoorOpen
	}
	fillRect(screen, snap.Door, camX, door)

	for _, b := range snap.Boxes {
		fillRect(screen, b.Rect, camX, config.Palette.Box)
	}
	for _, p := range snap.Players {
		drawPlayer(screen, p, camX)
	}
}

func drawPlayer(screen *ebiten.Image, p game.PlayerView, camX float64) {
	c := playerColor(p.ID)
	if p.Dead {
		c = withAlpha(c, 90)
	}
	r := p.Rect
	// bob on the second walk frame
	if p.AnimFrame == 2 {
		r.Y -= 2
	}
	fillRect(screen, r, camX, c)

	eye := gamemath.Rect{X: r.X + r.W*0.6, Y: r.Y + r.H*0.25, W: 6, H: 6}
	if !p.FacingRight {
		eye.X = r.X + r.W*0.4 - eye.W
	}
	fillRect(screen, eye, camX, color.White)

	label := p.Name
	if label == "" {
		label = fmt.Sprintf("P%d", p.ID)
	}
	text.Draw(screen, label, fonts.Small.Get(), int(r.X-camX), int(r.Y)-4, config.Palette.HUDText)
}

func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	title := snap.Name
	if snap.World > 0 {
		title = fmt.Sprintf("World %d: %s", snap.World, snap.Name)
	}
	key := "Key: find it"
	if snap.KeyCollected {
		key = "Key: collected, door open"
	}
	lines := []string{
		title,
		key,
		fmt.Sprintf("At door: %d/%d", snap.AtDoor, snap.Living),
		fmt.Sprintf("Deaths: %d", snap.Deaths),
	}
	if snap.LocalID != 0 {
		lines = append(lines, fmt.Sprintf("You are P%d", snap.LocalID))
	}
	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 16, 28+i*22, config.Palette.HUDText)
	}
}
