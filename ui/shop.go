package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
)

// shopView lists the skin catalog. Enter buys an unowned skin or
// selects an owned one; the service stays authoritative on balance
// and ownership, the local coin check just saves a round trip.
type shopView struct {
	cursor int
	busy   bool
	msg    string
	good   bool
}

func (v *shopView) open(a *App) {
	v.msg = ""
	v.busy = false
	a.SetView(VIEW_SHOP)
	a.refreshUser()
}

func (v *shopView) update(a *App) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.SetView(VIEW_MENU)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.cursor = (v.cursor + len(Skins)) % (len(Skins) + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.cursor = (v.cursor + 1) % (len(Skins) + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		v.choose(a)
	}
}

// row 0 is the free default skin, rows 1.. are the catalog.
func (v *shopView) choose(a *App) {
	if v.busy || a.user == nil {
		return
	}
	if v.cursor == 0 {
		v.selectSkin(a, "default")
		return
	}
	s := Skins[v.cursor-1]
	if a.user.CurrentSkin == s.Id {
		return
	}
	if owns(a.user.OwnedSkins, s.Id) {
		v.selectSkin(a, s.Id)
		return
	}
	if a.user.TotalCoins < s.Price {
		v.msg = "Not enough coins!"
		v.good = false
		return
	}
	v.busy = true
	v.msg = ""
	go func() {
		err := a.Backend.BuySkin(s.Id, s.Price)
		a.post(func(a *App) {
			a.shop.busy = false
			if err != nil {
				a.shop.msg = err.Error()
				a.shop.good = false
				return
			}
			a.shop.msg = fmt.Sprintf("Bought %s!", s.Name)
			a.shop.good = true
			a.refreshUser()
		})
	}()
}

func (v *shopView) selectSkin(a *App, skinId string) {
	v.busy = true
	v.msg = ""
	go func() {
		err := a.Backend.SelectSkin(skinId)
		a.post(func(a *App) {
			a.shop.busy = false
			if err != nil {
				a.shop.msg = err.Error()
				a.shop.good = false
				return
			}
			a.shop.msg = "Skin selected"
			a.shop.good = true
			a.refreshUser()
		})
	}()
}

func owns(skins []string, id string) bool {
	for _, s := range skins {
		if s == id {
			return true
		}
	}
	return false
}

func (v *shopView) draw(a *App, screen *ebiten.Image) {
	title := "SKIN SHOP"
	text.Draw(screen, title, BigFace, ScreenWidth/2-textWidth(BigFace, title)/2, 70, colorGood)

	if a.user != nil {
		coins := fmt.Sprintf("coins %d", a.user.TotalCoins)
		text.Draw(screen, coins, Face, ScreenWidth/2-textWidth(Face, coins)/2, 105, colorLabel)
	}

	y := 160
	v.drawRow(a, screen, 0, "Default", 0, "default", y)
	y += 40
	for i, s := range Skins {
		v.drawRow(a, screen, i+1, s.Name, s.Price, s.Id, y)
		y += 40
	}

	if v.busy {
		text.Draw(screen, "...", Face, ScreenWidth/2-textWidth(Face, "...")/2, ScreenHeight-90, colorLabel)
	} else if v.msg != "" {
		clr := colorWarn
		if v.good {
			clr = colorGood
		}
		text.Draw(screen, v.msg, Face, ScreenWidth/2-textWidth(Face, v.msg)/2, ScreenHeight-90, clr)
	}

	hint := "enter = buy/select   esc = back"
	text.Draw(screen, hint, SmallFace, ScreenWidth/2-textWidth(SmallFace, hint)/2, ScreenHeight-40, colorLabel)
}

func (v *shopView) drawRow(a *App, screen *ebiten.Image, row int, name string, price int, skinId string, y int) {
	status := fmt.Sprintf("%d coins", price)
	if a.user != nil {
		switch {
		case a.user.CurrentSkin == skinId:
			status = "selected"
		case skinId == "default" || owns(a.user.OwnedSkins, skinId):
			status = "owned"
		}
	}
	clr := colorLabel
	prefix := "  "
	if row == v.cursor {
		clr = colorGood
		prefix = "> "
	}
	if swatch, ok := ParseHexColor(SkinColor(skinId)); ok {
		ebitenutil.DrawRect(screen, ScreenWidth/2-180, float64(y)-14, 16, 16, swatch)
	}
	text.Draw(screen, prefix+name, Face, ScreenWidth/2-140, y, clr)
	text.Draw(screen, status, Face, ScreenWidth/2+80, y, clr)
}
