package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGameState(t *testing.T) {
	raw := []byte(`{
		"type": "game_state",
		"state": {
			"room_id": "global",
			"players": {
				"p1": {
					"player_id": "p1",
					"username": "p1",
					"skin": "default",
					"color": "#4dff91",
					"body": [[5,5],[4,5]],
					"direction": "RIGHT",
					"score": 30,
					"coins": 12,
					"alive": true
				}
			},
			"foods": [
				{"position": [6,5], "type": "normal", "value": 10},
				{"position": [0,29], "type": "golden", "value": 30}
			],
			"timestamp": 1700000000.5
		},
		"leaderboard": [{"username": "p1", "score": 30, "coins": 12, "alive": true}]
	}`)

	m, err := Decode(raw)
	require.NoError(t, err)
	require.True(t, m.Known())
	require.NotNil(t, m.State)

	p, ok := m.State.Players["p1"]
	require.True(t, ok)
	assert.Equal(t, []Coord{{5, 5}, {4, 5}}, p.Body)
	assert.Equal(t, DIR_RIGHT, p.Direction)
	assert.Equal(t, 30, p.Score)
	assert.Equal(t, 12, p.Coins)
	assert.True(t, p.Alive)

	require.Len(t, m.State.Foods, 2)
	assert.Equal(t, Coord{6, 5}, m.State.Foods[0].Position)
	assert.Equal(t, FOOD_NORMAL, m.State.Foods[0].Kind)
	assert.Equal(t, FOOD_GOLDEN, m.State.Foods[1].Kind)

	require.Len(t, m.Leaderboard, 1)
	assert.Equal(t, "p1", m.Leaderboard[0].Username)
}

func TestDecodeRoomJoined(t *testing.T) {
	m, err := Decode([]byte(`{"type":"room_joined","room_id":"AB12CD","grid_size":{"width":40,"height":30}}`))
	require.NoError(t, err)
	assert.Equal(t, MSG_ROOM_JOINED, m.Type)
	assert.Equal(t, "AB12CD", m.RoomId)
	require.NotNil(t, m.GridSize)
	assert.Equal(t, 40, m.GridSize.Width)
}

func TestDecodeUnknownKindIgnored(t *testing.T) {
	m, err := Decode([]byte(`{"type":"tournament_started","bracket":[1,2,3]}`))
	require.NoError(t, err)
	assert.False(t, m.Known())
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"type":"game_state","state":`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"type":"game_state","state":{"players":{"p1":{"body":[["a","b"]]}}}}`))
	assert.Error(t, err, "a body cell must be a pair of ints")
}

func TestCoordRoundTrip(t *testing.T) {
	b, err := json.Marshal(Coord{7, 21})
	require.NoError(t, err)
	assert.JSONEq(t, `[7,21]`, string(b))

	var c Coord
	require.NoError(t, json.Unmarshal([]byte(`[39,29]`), &c))
	assert.True(t, c.InGrid())

	for _, c := range []Coord{{-1, 0}, {40, 0}, {0, 30}, {99, 99}} {
		assert.False(t, c.InGrid(), "%v", c)
	}
}

func TestJoinRoomGoesOutAsAction(t *testing.T) {
	b, err := json.Marshal(NewJoinRoom("global", "alice", "gold", "#ffd700"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"join_room","room_id":"global","username":"alice","skin":"gold","color":"#ffd700"}`, string(b))

	b, err = json.Marshal(NewMove(DIR_LEFT))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"move","direction":"LEFT"}`, string(b))
}
