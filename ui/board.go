package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"

	"slither/model"
)

const boardLimit = 20

// boardView shows the persistent all-time leaderboard served over
// HTTP, unlike the per-room standings the game view overlays.
type boardView struct {
	rows []model.GlobalRow
	busy bool
	msg  string
}

func (v *boardView) open(a *App) {
	a.SetView(VIEW_BOARD)
	v.fetch(a)
}

func (v *boardView) fetch(a *App) {
	if v.busy {
		return
	}
	v.busy = true
	v.msg = ""
	go func() {
		rows, err := a.Backend.Leaderboard(boardLimit)
		a.post(func(a *App) {
			a.board.busy = false
			if err != nil {
				a.board.msg = "Could not load leaderboard"
				return
			}
			a.board.rows = rows
		})
	}()
}

func (v *boardView) update(a *App) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.SetView(VIEW_MENU)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.fetch(a)
	}
}

func (v *boardView) draw(a *App, screen *ebiten.Image) {
	title := "LEADERBOARD"
	text.Draw(screen, title, BigFace, ScreenWidth/2-textWidth(BigFace, title)/2, 70, colorGood)

	switch {
	case v.busy:
		text.Draw(screen, "loading...", Face, ScreenWidth/2-textWidth(Face, "loading...")/2, 140, colorLabel)
	case v.msg != "":
		text.Draw(screen, v.msg, Face, ScreenWidth/2-textWidth(Face, v.msg)/2, 140, colorWarn)
	case len(v.rows) == 0:
		s := "nobody has played yet"
		text.Draw(screen, s, Face, ScreenWidth/2-textWidth(Face, s)/2, 140, colorLabel)
	}

	y := 130
	for i, r := range v.rows {
		clr := colorLabel
		if a.user != nil && r.Username == a.user.Username {
			clr = colorSelf
		}
		line := fmt.Sprintf("%2d. %-16s score %6d   coins %5d   games %d", i+1, r.Username, r.TotalScore, r.TotalCoins, r.GamesPlayed)
		text.Draw(screen, line, Face, ScreenWidth/2-220, y, clr)
		y += 22
	}

	hint := "r = refresh   esc = back"
	text.Draw(screen, hint, SmallFace, ScreenWidth/2-textWidth(SmallFace, hint)/2, ScreenHeight-40, colorLabel)
}
