package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"

	"slither/backend"
)

// authView is the login/register form. Tab switches fields, enter
// logs in, F2 registers. The busy flag blocks double submits while a
// request is in flight.
type authView struct {
	username string
	password string
	onPass   bool
	busy     bool
	msg      string
	good     bool
}

func (v *authView) update(a *App) {
	for _, r := range ebiten.InputChars() {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if v.onPass {
			v.password += string(r)
		} else {
			v.username += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if v.onPass {
			v.password = chopRune(v.password)
		} else {
			v.username = chopRune(v.username)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.onPass = !v.onPass
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		v.login(a)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		v.register(a)
	}
}

func (v *authView) login(a *App) {
	if v.busy {
		return
	}
	username := strings.TrimSpace(v.username)
	password := v.password
	if username == "" || password == "" {
		v.fail("Please enter username and password")
		return
	}
	v.busy = true
	v.msg = ""
	go func() {
		user, err := a.Backend.Login(username, password)
		a.post(func(a *App) {
			a.auth.busy = false
			if err != nil {
				if _, ok := err.(*backend.APIError); ok {
					a.auth.fail("Invalid username or password")
				} else {
					a.auth.fail("Connection error. Please try again.")
				}
				return
			}
			if err := backend.SaveToken(a.Backend.Token()); err != nil {
				log.Warnf("ui: save token: %v", err)
			}
			a.user = &user
			a.auth.password = ""
			a.auth.msg = ""
			a.SetView(VIEW_MENU)
		})
	}()
}

func (v *authView) register(a *App) {
	if v.busy {
		return
	}
	username := strings.TrimSpace(v.username)
	password := v.password
	if len(username) < 3 {
		v.fail("Username must be at least 3 characters")
		return
	}
	if len(password) < 6 {
		v.fail("Password must be at least 6 characters")
		return
	}
	v.busy = true
	v.msg = ""
	go func() {
		err := a.Backend.Register(username, password)
		a.post(func(a *App) {
			a.auth.busy = false
			if err != nil {
				if apiErr, ok := err.(*backend.APIError); ok && apiErr.Detail != "" {
					a.auth.fail(apiErr.Detail)
				} else {
					a.auth.fail("Connection error. Please try again.")
				}
				return
			}
			a.auth.password = ""
			a.auth.msg = "Registration successful! Please login."
			a.auth.good = true
		})
	}()
}

func (v *authView) fail(msg string) {
	v.msg = msg
	v.good = false
}

func (v *authView) draw(a *App, screen *ebiten.Image) {
	title := "SLITHER"
	text.Draw(screen, title, BigFace, ScreenWidth/2-textWidth(BigFace, title)/2, 140, colorGood)

	drawField(screen, "username", v.username, 220, !v.onPass)
	drawField(screen, "password", strings.Repeat("*", len(v.password)), 290, v.onPass)

	if v.busy {
		s := "..."
		text.Draw(screen, s, Face, ScreenWidth/2-textWidth(Face, s)/2, 360, colorLabel)
	} else if v.msg != "" {
		clr := colorWarn
		if v.good {
			clr = colorGood
		}
		text.Draw(screen, v.msg, Face, ScreenWidth/2-textWidth(Face, v.msg)/2, 360, clr)
	}

	hint := "enter = login   f2 = register   tab = switch field"
	text.Draw(screen, hint, SmallFace, ScreenWidth/2-textWidth(SmallFace, hint)/2, ScreenHeight-40, colorLabel)
}

func drawField(screen *ebiten.Image, label, value string, y float64, focused bool) {
	const w, h = 300.0, 30.0
	x := ScreenWidth/2 - w/2
	border := colorHud
	if focused {
		border = colorGood
	}
	ebitenutil.DrawRect(screen, x-2, y-2, w+4, h+4, border)
	ebitenutil.DrawRect(screen, x, y, w, h, colorField)
	text.Draw(screen, label, SmallFace, int(x), int(y)-8, colorLabel)
	shown := value
	if focused {
		shown += "_"
	}
	text.Draw(screen, shown, Face, int(x)+8, int(y)+20, color.White)
}

// chopRune drops the final rune, not the final byte.
func chopRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
