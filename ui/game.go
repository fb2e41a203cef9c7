package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"slither/model"
	"slither/session"
)

var (
	colorBackdrop   = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	colorField      = color.RGBA{0x0f, 0x34, 0x60, 0xff}
	colorHud        = color.RGBA{0x16, 0x21, 0x3e, 0xff}
	colorGrid       = color.RGBA{0x12, 0x12, 0x12, 0x12} // premultiplied faint white
	colorFoodNormal = color.RGBA{0xff, 0x47, 0x57, 0xff}
	colorFoodGolden = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colorEyes       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorLabel      = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	colorWarn       = color.RGBA{0xff, 0x47, 0x57, 0xff}
	colorGood       = color.RGBA{0x4d, 0xff, 0x91, 0xff}
	colorSelf       = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

var moveKeys = []struct {
	key ebiten.Key
	alt ebiten.Key
	dir model.Direction
}{
	{ebiten.KeyUp, ebiten.KeyW, model.DIR_UP},
	{ebiten.KeyDown, ebiten.KeyS, model.DIR_DOWN},
	{ebiten.KeyLeft, ebiten.KeyA, model.DIR_LEFT},
	{ebiten.KeyRight, ebiten.KeyD, model.DIR_RIGHT},
}

// gameView paints whatever snapshot the store currently holds. It
// keeps no world state of its own, only cosmetics (the golden food
// glow tween and the shared disc sprite).
type gameView struct {
	circle  *ebiten.Image
	glow    *gween.Tween
	glowUp  bool
	glowLvl float64
}

func (g *gameView) update(a *App) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.leaveGame()
		return
	}
	for _, m := range moveKeys {
		if inpututil.IsKeyJustPressed(m.key) || inpututil.IsKeyJustPressed(m.alt) {
			// fire and forget; the authority rejects illegal turns
			a.Transport.Send(model.NewMove(m.dir))
		}
	}
	if !a.Conf.LowFX {
		g.tickGlow()
	}
}

func (g *gameView) tickGlow() {
	if g.glow == nil {
		g.glow = gween.New(0.35, 0.9, 0.8, ease.InOutQuad)
		g.glowUp = true
	}
	cur, finished := g.glow.Update(1.0 / 60)
	g.glowLvl = float64(cur)
	if finished {
		if g.glowUp {
			g.glow = gween.New(0.9, 0.35, 0.8, ease.InOutQuad)
		} else {
			g.glow = gween.New(0.35, 0.9, 0.8, ease.InOutQuad)
		}
		g.glowUp = !g.glowUp
	}
}

func (g *gameView) draw(a *App, screen *ebiten.Image) {
	g.drawHud(a, screen)

	ebitenutil.DrawRect(screen, 0, HudHeight, ScreenWidth, ScreenHeight-HudHeight, colorField)
	if !a.Conf.LowFX {
		drawGrid(screen)
	}

	snap := a.Store.Snapshot()
	if snap == nil {
		s := "waiting for the arena..."
		text.Draw(screen, s, Face, ScreenWidth/2-textWidth(Face, s)/2, ScreenHeight/2, colorLabel)
		return
	}

	for _, f := range snap.Foods {
		g.drawFood(screen, f, a.Conf.LowFX)
	}
	for _, p := range snap.Players {
		drawPlayer(screen, p)
	}
	g.drawLeaderboard(a, screen)
}

func (g *gameView) drawHud(a *App, screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, ScreenWidth, HudHeight, colorHud)

	room := a.Store.RoomName()
	if room == "" {
		room = "..."
	}
	local := a.Store.Local()
	line := fmt.Sprintf("room %s   score %d   coins %d   players %d", room, local.Score, local.Coins, a.Store.PlayerCount())
	text.Draw(screen, line, Face, 10, 17, color.White)
	text.Draw(screen, "arrows/wasd move, esc leaves", SmallFace, 10, 34, colorLabel)

	switch a.Transport.State() {
	case session.CONN_CONNECTING:
		s := "connecting..."
		text.Draw(screen, s, Face, ScreenWidth-10-textWidth(Face, s), 17, colorLabel)
	case session.CONN_DISCONNECTED:
		s := "reconnecting..."
		text.Draw(screen, s, Face, ScreenWidth-10-textWidth(Face, s), 17, colorWarn)
	}
}

// drawLeaderboard overlays the room's top five in the corner of the
// field, own row highlighted.
func (g *gameView) drawLeaderboard(a *App, screen *ebiten.Image) {
	rows := a.Store.Leaderboard()
	if len(rows) > 5 {
		rows = rows[:5]
	}
	y := HudHeight + 18
	for i, r := range rows {
		clr := colorLabel
		if a.user != nil && r.Username == a.user.Username {
			clr = colorSelf
		}
		s := fmt.Sprintf("%d. %s  %d", i+1, r.Username, r.Score)
		text.Draw(screen, s, SmallFace, ScreenWidth-10-textWidth(SmallFace, s), y, clr)
		y += 14
	}
}

func drawGrid(screen *ebiten.Image) {
	for x := 1; x < model.GridWidth; x++ {
		fx := float64(x * CellSize)
		ebitenutil.DrawLine(screen, fx, HudHeight, fx, ScreenHeight, colorGrid)
	}
	for y := 1; y < model.GridHeight; y++ {
		fy := float64(HudHeight + y*CellSize)
		ebitenutil.DrawLine(screen, 0, fy, ScreenWidth, fy, colorGrid)
	}
}

func (g *gameView) drawFood(screen *ebiten.Image, f model.FoodItem, lowFX bool) {
	x, y, ok := cellRect(f.Position)
	if !ok {
		return
	}
	cx := x + CellSize/2
	cy := y + CellSize/2
	fill := colorFoodNormal
	if f.Kind == model.FOOD_GOLDEN {
		fill = colorFoodGolden
		if !lowFX {
			g.blitDisc(screen, cx, cy, CellSize*1.1, fill, g.glowLvl*0.5)
		}
	}
	g.blitDisc(screen, cx, cy, CellSize*2.0/3.0, fill, 1)
}

// blitDisc stamps the shared white disc scaled to diameter d and
// tinted through the color matrix, the same trick the tile renderer
// uses for team tints.
func (g *gameView) blitDisc(screen *ebiten.Image, cx, cy, d float64, clr color.RGBA, alpha float64) {
	g.ensureDisc()
	op := &ebiten.DrawImageOptions{}
	w, _ := g.circle.Size()
	s := d / float64(w)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(cx-d/2, cy-d/2)
	op.ColorM.Scale(float64(clr.R)/255, float64(clr.G)/255, float64(clr.B)/255, alpha)
	screen.DrawImage(g.circle, op)
}

func (g *gameView) ensureDisc() {
	if g.circle != nil {
		return
	}
	const d = 32
	img := image.NewRGBA(image.Rect(0, 0, d, d))
	r := float64(d) / 2
	for py := 0; py < d; py++ {
		for px := 0; px < d; px++ {
			dx := float64(px) + 0.5 - r
			dy := float64(py) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.Set(px, py, color.White)
			}
		}
	}
	g.circle, _ = ebiten.NewImageFromImage(img, ebiten.FilterLinear)
}

func drawPlayer(screen *ebiten.Image, p model.PlayerState) {
	if len(p.Body) == 0 {
		return
	}
	base, ok := ParseHexColor(p.Color)
	if !ok {
		base, _ = ParseHexColor(defaultSnakeColor)
	}
	accent, ok := ParseHexColor(DarkenColor(p.Color, 20))
	if !ok {
		accent = base
	}

	// tail to neck first so the head always paints on top
	for i := len(p.Body) - 1; i >= 1; i-- {
		drawSegment(screen, p.Body[i], base, accent)
	}
	drawHead(screen, p, base)
}

func drawSegment(screen *ebiten.Image, c model.Coord, base, accent color.RGBA) {
	x, y, ok := cellRect(c)
	if !ok {
		return
	}
	ebitenutil.DrawRect(screen, x, y, CellSize, CellSize, base)
	const corner = CellSize / 4
	ebitenutil.DrawRect(screen, x, y, corner, corner, accent)
	ebitenutil.DrawRect(screen, x+CellSize-corner, y, corner, corner, accent)
	ebitenutil.DrawRect(screen, x, y+CellSize-corner, corner, corner, accent)
	ebitenutil.DrawRect(screen, x+CellSize-corner, y+CellSize-corner, corner, corner, accent)
}

func drawHead(screen *ebiten.Image, p model.PlayerState, base color.RGBA) {
	x, y, ok := cellRect(p.Body[0])
	if !ok {
		return
	}
	ebitenutil.DrawRect(screen, x, y, CellSize, CellSize, base)
	if p.Alive {
		for _, e := range eyeOffsets(p.Direction) {
			ebitenutil.DrawRect(screen, x+e.X, y+e.Y, e.Size, e.Size, colorEyes)
		}
	} else {
		drawDeathMarker(screen, x, y)
	}
	if p.Username != "" {
		tx := int(x) + CellSize/2 - textWidth(SmallFace, p.Username)/2
		ty := int(y) - 4
		if ty < HudHeight+10 {
			ty = HudHeight + 10
		}
		text.Draw(screen, p.Username, SmallFace, tx, ty, color.White)
	}
}

// drawDeathMarker crosses out a dead snake's head.
func drawDeathMarker(screen *ebiten.Image, x, y float64) {
	const pad = 4.0
	ebitenutil.DrawLine(screen, x+pad, y+pad, x+CellSize-pad, y+CellSize-pad, color.White)
	ebitenutil.DrawLine(screen, x+CellSize-pad, y+pad, x+pad, y+CellSize-pad, color.White)
}

// cellRect maps a grid cell to its pixel origin under the HUD. Cells
// outside the grid report false and are skipped rather than smeared
// over the chrome.
func cellRect(c model.Coord) (float64, float64, bool) {
	if !c.InGrid() {
		return 0, 0, false
	}
	return float64(c.X * CellSize), float64(HudHeight + c.Y*CellSize), true
}

type eyeRect struct {
	X, Y, Size float64
}

// eyeOffsets places both eyes on the head square for a facing
// direction. Unknown directions fall back to facing right, matching a
// freshly spawned snake.
func eyeOffsets(dir model.Direction) [2]eyeRect {
	const (
		eye   = CellSize / 5.0
		third = CellSize / 3.0
	)
	var a eyeRect
	switch dir {
	case model.DIR_UP:
		a = eyeRect{third - eye/2, third - eye/2, eye}
	case model.DIR_DOWN:
		a = eyeRect{third - eye/2, 2*third - eye/2, eye}
	case model.DIR_LEFT:
		a = eyeRect{third - eye/2, third - eye/2, eye}
	default: // DIR_RIGHT and anything unexpected
		a = eyeRect{2*third - eye/2, third - eye/2, eye}
	}
	b := a
	if dir == model.DIR_UP || dir == model.DIR_DOWN {
		b.X = 2*third - eye/2
	} else {
		b.Y = 2*third - eye/2
	}
	return [2]eyeRect{a, b}
}
