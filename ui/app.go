package ui

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"

	"slither/backend"
	"slither/cfg"
	"slither/model"
	"slither/session"
)

const (
	CellSize     = 20
	HudHeight    = 40
	ScreenWidth  = model.GridWidth * CellSize
	ScreenHeight = model.GridHeight*CellSize + HudHeight
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// App wires the views to the transport, the store and the account
// service. Everything UI-visible mutates on the update goroutine;
// async work posts closures back through the pending channel so the
// loop never waits on a collaborator call.
type App struct {
	Conf      cfg.Config
	Backend   *backend.Client
	Transport *session.Transport
	Store     *session.Store
	PlayerId  string

	viewMu sync.RWMutex
	view   View

	user    *model.User
	pending chan func(*App)

	auth  authView
	menu  menuView
	game  gameView
	shop  shopView
	board boardView
}

func New(conf cfg.Config) *App {
	playerId := newPlayerId()
	a := &App{
		Conf:     conf,
		Backend:  backend.NewClient(conf.ServerURL),
		Store:    session.NewStore(playerId),
		PlayerId: playerId,
		view:     VIEW_AUTH,
		pending:  make(chan func(*App), 32),
	}
	a.Transport = &session.Transport{
		ServerURL:      conf.ServerURL,
		PlayerId:       playerId,
		GameViewActive: a.GameViewActive,
		OnMessage:      a.Store.Apply,
	}
	a.restoreSession()
	return a
}

func (a *App) View() View {
	a.viewMu.RLock()
	defer a.viewMu.RUnlock()
	return a.view
}

func (a *App) SetView(v View) {
	a.viewMu.Lock()
	a.view = v
	a.viewMu.Unlock()
}

// GameViewActive is the reconnect gate handed to the transport.
func (a *App) GameViewActive() bool {
	return a.View() == VIEW_GAME
}

func (a *App) post(f func(*App)) {
	a.pending <- f
}

func (a *App) drainPending() {
	for {
		select {
		case f := <-a.pending:
			f(a)
		default:
			return
		}
	}
}

// restoreSession silently logs back in with the persisted token.
func (a *App) restoreSession() {
	tok, err := backend.LoadToken()
	if err != nil || tok == "" {
		return
	}
	a.Backend.SetToken(tok)
	go func() {
		user, err := a.Backend.Me()
		if err != nil {
			log.Infof("ui: stored token rejected: %v", err)
			backend.ClearToken()
			a.post(func(a *App) { a.Backend.SetToken("") })
			return
		}
		a.post(func(a *App) {
			a.user = &user
			a.SetView(VIEW_MENU)
		})
	}()
}

// refreshUser re-reads the profile, e.g. after a shop purchase or a
// finished session changed the totals.
func (a *App) refreshUser() {
	if a.Backend.Token() == "" {
		return
	}
	go func() {
		user, err := a.Backend.Me()
		if err != nil {
			log.Warnf("ui: refresh profile: %v", err)
			return
		}
		a.post(func(a *App) { a.user = &user })
	}()
}

func (a *App) joinRoom(roomId string) {
	if a.user == nil {
		return
	}
	a.Transport.SetIdentity(session.Identity{
		Username: a.user.Username,
		Skin:     a.user.CurrentSkin,
		Color:    SkinColor(a.user.CurrentSkin),
	})
	a.Store.Reset()
	a.SetView(VIEW_GAME)
	go func() {
		// dial off the loop; failures schedule their own retry
		a.Transport.Connect(roomId)
	}()
}

func (a *App) leaveGame() {
	a.Transport.Send(model.NewLeaveRoom())
	a.Transport.Close()
	a.Store.Reset()
	a.SetView(VIEW_MENU)
	a.refreshUser()
}

func (a *App) logout() {
	if err := backend.ClearToken(); err != nil {
		log.Warnf("ui: clear token: %v", err)
	}
	a.Backend.SetToken("")
	a.user = nil
	a.Transport.Close()
	a.Store.Reset()
	a.SetView(VIEW_AUTH)
}

// Update is the display-rate loop: dispatch input for the current
// view, then paint it. Painting is skipped on dropped frames.
func (a *App) Update(screen *ebiten.Image) error {
	a.drainPending()

	switch a.View() {
	case VIEW_AUTH:
		a.auth.update(a)
	case VIEW_MENU:
		a.menu.update(a)
	case VIEW_GAME:
		a.game.update(a)
	case VIEW_SHOP:
		a.shop.update(a)
	case VIEW_BOARD:
		a.board.update(a)
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if err := screen.Fill(colorBackdrop); err != nil {
		log.Warnf("ui: fill: %v", err)
	}
	switch a.View() {
	case VIEW_AUTH:
		a.auth.draw(a, screen)
	case VIEW_MENU:
		a.menu.draw(a, screen)
	case VIEW_GAME:
		a.game.draw(a, screen)
	case VIEW_SHOP:
		a.shop.draw(a, screen)
	case VIEW_BOARD:
		a.board.draw(a, screen)
	}
	return nil
}

func (a *App) Run() error {
	return ebiten.Run(a.Update, ScreenWidth, ScreenHeight, 1, "Slither")
}

const idChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// newPlayerId mints the opaque per-process player id embedded in the
// websocket path.
func newPlayerId() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idChars[rand.Intn(len(idChars))]
	}
	return "player_" + string(b)
}

const codeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newRoomCode mints a private room code. The authority creates the
// room on first join, so the code only has to be shareable.
func newRoomCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = codeChars[rand.Intn(len(codeChars))]
	}
	return string(b)
}
