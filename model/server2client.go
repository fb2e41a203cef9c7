package model

import "encoding/json"

const (
	MSG_ROOM_JOINED   = "room_joined"
	MSG_GAME_STATE    = "game_state"
	MSG_PLAYER_JOINED = "player_joined"
	MSG_PLAYER_LEFT   = "player_left"
)

type GridSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// JoinedPlayer rides on player_joined notifications.
type JoinedPlayer struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Skin     string `json:"skin"`
	Color    string `json:"color"`
}

// ServerMessage is the inbound frame envelope. One struct covers the
// whole taxonomy, the Type tag decides which fields are populated.
type ServerMessage struct {
	Type string `json:"type"`

	// room_joined
	RoomId   string    `json:"room_id,omitempty"`
	GridSize *GridSize `json:"grid_size,omitempty"`

	// game_state
	State       *Snapshot        `json:"state,omitempty"`
	Leaderboard []LeaderboardRow `json:"leaderboard,omitempty"`

	// player_joined / player_left
	Player   *JoinedPlayer `json:"player,omitempty"`
	PlayerId string        `json:"player_id,omitempty"`
}

// Known reports whether the frame kind is one the client understands.
// Unknown kinds are ignored without error so newer authorities can add
// frames without breaking older clients.
func (m ServerMessage) Known() bool {
	switch m.Type {
	case MSG_ROOM_JOINED, MSG_GAME_STATE, MSG_PLAYER_JOINED, MSG_PLAYER_LEFT:
		return true
	}
	return false
}

// Decode performs structural decoding only. Anything that fails here is
// logged and dropped by the caller, it never reaches the render loop.
func Decode(payload []byte) (ServerMessage, error) {
	var m ServerMessage
	err := json.Unmarshal(payload, &m)
	return m, err
}
