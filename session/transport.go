package session

import (
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"slither/model"
)

// ReconnectDelay matches the original client behaviour: a single retry,
// a fixed three seconds after an unexpected close, forever while the
// game view stays active.
const ReconnectDelay = 3 * time.Second

type ConnState int

const (
	CONN_DISCONNECTED ConnState = iota + 1
	CONN_CONNECTING
	CONN_JOINED
)

func (s ConnState) Name() string {
	switch s {
	case CONN_DISCONNECTED:
		return "DISCONNECTED"
	case CONN_CONNECTING:
		return "CONNECTING"
	case CONN_JOINED:
		return "JOINED"
	default:
		return "N/A"
	}
}

// Identity is what the authority learns about us in join_room.
type Identity struct {
	Username string
	Skin     string
	Color    string
}

// Transport owns the persistent connection to the remote authority.
// There is at most one open connection at any time; Connect replaces,
// Close tears down. Every dial bumps a generation counter and every
// scheduled reconnect is pinned to the generation it was scheduled
// for, so a stale timer can never resurrect an abandoned room.
type Transport struct {
	ServerURL string
	PlayerId  string

	// GameViewActive is consulted before a reconnect fires. When the
	// user has navigated away from the game view the timer is a no-op.
	GameViewActive func() bool

	// OnMessage receives every decoded, known inbound frame. It is
	// called from the read goroutine.
	OnMessage func(model.ServerMessage)

	// Delay overrides ReconnectDelay, tests shrink it.
	Delay time.Duration

	mu         sync.Mutex
	wmu        sync.Mutex
	conn       *websocket.Conn
	generation int
	roomId     string
	identity   Identity
	state      ConnState
	timer      *time.Timer
}

func (t *Transport) SetIdentity(id Identity) {
	t.mu.Lock()
	t.identity = id
	t.mu.Unlock()
}

func (t *Transport) State() ConnState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == 0 {
		return CONN_DISCONNECTED
	}
	return t.state
}

// Connect opens a connection to the authority for the given room. An
// already open connection is closed first. On success the join_room
// intent goes out before anything else is allowed on the wire.
func (t *Transport) Connect(roomId string) error {
	t.mu.Lock()
	t.closeConnLocked()
	t.generation++
	gen := t.generation
	t.roomId = roomId
	t.state = CONN_CONNECTING
	id := t.identity
	t.mu.Unlock()

	return t.dial(gen, roomId, id)
}

// dial performs the connection attempt for one specific generation.
// The connection is published only after join_room has gone out, so a
// concurrent Send can never get a write in ahead of the join intent;
// until then it sees no connection and drops, which is the sanctioned
// disconnected behaviour anyway.
func (t *Transport) dial(gen int, roomId string, id Identity) error {
	endpoint := t.endpoint()
	conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
	if err != nil {
		log.Errorf("session: dial %s: %v", endpoint, err)
		t.mu.Lock()
		if gen == t.generation {
			t.state = CONN_DISCONNECTED
			t.scheduleReconnectLocked(gen)
		}
		t.mu.Unlock()
		return err
	}

	t.wmu.Lock()
	werr := conn.WriteJSON(model.NewJoinRoom(roomId, id.Username, id.Skin, id.Color))
	t.wmu.Unlock()
	if werr != nil {
		log.Errorf("session: join_room: %v", werr)
	}

	t.mu.Lock()
	if gen != t.generation {
		// replaced or closed while dialing
		t.mu.Unlock()
		conn.Close()
		return nil
	}
	t.conn = conn
	t.mu.Unlock()

	go t.readLoop(conn, gen)
	return nil
}

// Send transmits an intent when the connection is open and silently
// drops it otherwise. Movement intents are re-derived from live input
// on every key press, so there is nothing worth queueing.
func (t *Transport) Send(v interface{}) {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return
	}
	t.wmu.Lock()
	err := conn.WriteJSON(v)
	t.wmu.Unlock()
	if err != nil {
		log.Warnf("session: send: %v", err)
	}
}

// Close tears down the connection and cancels any pending reconnect.
// Idempotent.
func (t *Transport) Close() {
	t.mu.Lock()
	t.generation++
	t.closeConnLocked()
	t.state = CONN_DISCONNECTED
	t.mu.Unlock()
}

func (t *Transport) closeConnLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.conn != nil {
		t.conn.Close()
		t.conn = nil
	}
}

func (t *Transport) readLoop(conn *websocket.Conn, gen int) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			t.mu.Lock()
			current := gen == t.generation
			if current {
				t.conn = nil
				t.state = CONN_DISCONNECTED
				t.scheduleReconnectLocked(gen)
			}
			t.mu.Unlock()
			if current {
				log.Warnf("session: connection lost: %v", err)
			}
			return
		}

		msg, err := model.Decode(payload)
		if err != nil {
			log.Warnf("session: dropping malformed frame: %v", err)
			continue
		}
		if !msg.Known() {
			continue
		}

		if msg.Type == model.MSG_ROOM_JOINED {
			t.mu.Lock()
			if gen == t.generation {
				t.state = CONN_JOINED
			}
			t.mu.Unlock()
		}

		if t.OnMessage != nil {
			t.OnMessage(msg)
		}
	}
}

// scheduleReconnectLocked arms exactly one timer for this close. When
// the timer fires, the staleness check, the view gate and the takeover
// of the next generation all happen under one critical section; a
// concurrent Close or Connect either bumps the generation before the
// check (the timer is a no-op) or after it (the timer's dial fails its
// own generation check and the connection is discarded unpublished).
func (t *Transport) scheduleReconnectLocked(gen int) {
	if gen != t.generation {
		return
	}
	delay := t.Delay
	if delay <= 0 {
		delay = ReconnectDelay
	}
	roomId := t.roomId
	t.timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		if gen != t.generation {
			t.mu.Unlock()
			return
		}
		if t.GameViewActive != nil && !t.GameViewActive() {
			t.mu.Unlock()
			return
		}
		t.generation++
		next := t.generation
		t.state = CONN_CONNECTING
		id := t.identity
		t.mu.Unlock()

		log.Infof("session: reconnecting to room %s", roomId)
		t.dial(next, roomId, id)
	})
}

// endpoint derives the ws URL from the configured service URL: secure
// iff the service is https, path embeds the client player id.
func (t *Transport) endpoint() string {
	u, err := url.Parse(t.ServerURL)
	if err != nil || u.Host == "" {
		u = &url.URL{Scheme: "http", Host: strings.TrimPrefix(t.ServerURL, "http://")}
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return scheme + "://" + u.Host + "/ws/" + t.PlayerId
}
