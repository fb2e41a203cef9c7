package model

import "encoding/json"

// Logical play field. The authority simulates on this grid, the client
// only addresses cells inside it.
const (
	GridWidth  = 40
	GridHeight = 30
)

type Direction string

const (
	DIR_UP    Direction = "UP"
	DIR_DOWN  Direction = "DOWN"
	DIR_LEFT  Direction = "LEFT"
	DIR_RIGHT Direction = "RIGHT"
)

// Coord is one grid cell. On the wire it travels as a [x, y] pair.
type Coord struct {
	X, Y int
}

func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

func (c *Coord) UnmarshalJSON(b []byte) error {
	var pair [2]int
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// InGrid reports whether the cell lies inside the play field. The
// renderer skips anything outside instead of trusting the authority.
func (c Coord) InGrid() bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

type FoodKind string

const (
	FOOD_NORMAL FoodKind = "normal"
	FOOD_GOLDEN FoodKind = "golden"
)

type FoodItem struct {
	Position Coord    `json:"position"`
	Kind     FoodKind `json:"type"`
	Value    int      `json:"value"`
}

type PlayerState struct {
	PlayerId  string    `json:"player_id"`
	Username  string    `json:"username"`
	Skin      string    `json:"skin"`
	Color     string    `json:"color"`
	Body      []Coord   `json:"body"`
	Direction Direction `json:"direction"`
	Score     int       `json:"score"`
	Coins     int       `json:"coins"`
	Alive     bool      `json:"alive"`
}

// Snapshot is one full authoritative world frame. The client never
// merges or predicts, each frame fully replaces the previous one.
type Snapshot struct {
	RoomId    string                 `json:"room_id"`
	Players   map[string]PlayerState `json:"players"`
	Foods     []FoodItem             `json:"foods"`
	Timestamp float64                `json:"timestamp"`
}

// LeaderboardRow is a per-room standing broadcast with every frame.
type LeaderboardRow struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Coins    int    `json:"coins"`
	Alive    bool   `json:"alive"`
}

// GlobalRow is one row of the persistent leaderboard served over HTTP.
type GlobalRow struct {
	Username    string `json:"username"`
	TotalScore  int    `json:"total_score"`
	TotalCoins  int    `json:"total_coins"`
	GamesPlayed int    `json:"games_played"`
}

type User struct {
	Id          int      `json:"id"`
	Username    string   `json:"username"`
	TotalScore  int      `json:"total_score"`
	TotalCoins  int      `json:"total_coins"`
	OwnedSkins  []string `json:"owned_skins"`
	CurrentSkin string   `json:"current_skin"`
	GamesPlayed int      `json:"games_played"`
}
