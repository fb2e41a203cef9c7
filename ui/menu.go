package ui

import (
	"fmt"
	"image/color"
	"unicode"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
)

var menuItems = []string{
	"Join Global Arena",
	"Create Private Room",
	"Join Private Room",
	"Skin Shop",
	"Leaderboard",
	"Logout",
}

// menuView is the lobby. Selecting "Join Private Room" opens an
// inline code prompt instead of a separate page.
type menuView struct {
	cursor   int
	entering bool
	code     string
}

func (v *menuView) update(a *App) {
	if v.entering {
		v.updateCodeEntry(a)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.cursor = (v.cursor + len(menuItems) - 1) % len(menuItems)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.cursor = (v.cursor + 1) % len(menuItems)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		v.choose(a)
	}
}

func (v *menuView) choose(a *App) {
	switch v.cursor {
	case 0:
		a.joinRoom("global")
	case 1:
		a.joinRoom(newRoomCode())
	case 2:
		v.entering = true
		v.code = ""
	case 3:
		a.shop.open(a)
	case 4:
		a.board.open(a)
	case 5:
		a.logout()
	}
}

func (v *menuView) updateCodeEntry(a *App) {
	for _, r := range ebiten.InputChars() {
		if len(v.code) >= 6 {
			break
		}
		r = unicode.ToUpper(r)
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			v.code += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && v.code != "" {
		v.code = v.code[:len(v.code)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.entering = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && len(v.code) == 6 {
		v.entering = false
		a.joinRoom(v.code)
	}
}

func (v *menuView) draw(a *App, screen *ebiten.Image) {
	title := "SLITHER"
	text.Draw(screen, title, BigFace, ScreenWidth/2-textWidth(BigFace, title)/2, 90, colorGood)

	if a.user != nil {
		who := fmt.Sprintf("%s   coins %d   total score %d", a.user.Username, a.user.TotalCoins, a.user.TotalScore)
		text.Draw(screen, who, Face, ScreenWidth/2-textWidth(Face, who)/2, 130, colorLabel)
	}

	y := 200
	for i, item := range menuItems {
		clr := colorLabel
		s := "  " + item
		if i == v.cursor && !v.entering {
			clr = colorGood
			s = "> " + item
		}
		text.Draw(screen, s, Face, ScreenWidth/2-120, y, clr)
		y += 40
	}

	if v.entering {
		v.drawCodeEntry(screen)
	}

	hint := "arrows = move   enter = select"
	text.Draw(screen, hint, SmallFace, ScreenWidth/2-textWidth(SmallFace, hint)/2, ScreenHeight-40, colorLabel)
}

func (v *menuView) drawCodeEntry(screen *ebiten.Image) {
	const w, h = 320.0, 110.0
	x := ScreenWidth/2 - w/2
	y := ScreenHeight/2 - h/2
	ebitenutil.DrawRect(screen, x-2, y-2, w+4, h+4, colorGood)
	ebitenutil.DrawRect(screen, x, y, w, h, colorHud)

	label := "enter 6 character room code"
	text.Draw(screen, label, Face, ScreenWidth/2-textWidth(Face, label)/2, int(y)+30, colorLabel)
	code := v.code + "_"
	text.Draw(screen, code, BigFace, ScreenWidth/2-textWidth(BigFace, code)/2, int(y)+75, color.White)
	hint := "enter = join   esc = cancel"
	text.Draw(screen, hint, SmallFace, ScreenWidth/2-textWidth(SmallFace, hint)/2, int(y)+98, colorLabel)
}
