package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slither/model"
)

func stateMsg(snap *model.Snapshot, rows ...model.LeaderboardRow) model.ServerMessage {
	return model.ServerMessage{Type: model.MSG_GAME_STATE, State: snap, Leaderboard: rows}
}

func snapWith(players map[string]model.PlayerState) *model.Snapshot {
	return &model.Snapshot{RoomId: "global", Players: players}
}

func TestLocalViewFollowsSnapshot(t *testing.T) {
	s := NewStore("me")

	s.Apply(stateMsg(snapWith(map[string]model.PlayerState{
		"me":    {PlayerId: "me", Score: 40, Coins: 8, Alive: true},
		"other": {PlayerId: "other", Score: 90, Coins: 2, Alive: true},
	})))
	assert.Equal(t, LocalView{Score: 40, Coins: 8}, s.Local())
	assert.Equal(t, 2, s.PlayerCount())

	// eliminated and removed by the authority: derived values zero out
	s.Apply(stateMsg(snapWith(map[string]model.PlayerState{
		"other": {PlayerId: "other", Score: 100, Coins: 3, Alive: true},
	})))
	assert.Equal(t, LocalView{}, s.Local())
}

func TestLatestFrameWins(t *testing.T) {
	s := NewStore("me")

	first := snapWith(map[string]model.PlayerState{"me": {Score: 10}})
	second := snapWith(map[string]model.PlayerState{"me": {Score: 20}})
	s.Apply(stateMsg(first))
	s.Apply(stateMsg(second))

	got := s.Snapshot()
	require.NotNil(t, got)
	assert.Same(t, second, got)
	assert.Equal(t, 20, s.Local().Score)
}

func TestRoomJoinedRecordsName(t *testing.T) {
	s := NewStore("me")
	s.Apply(model.ServerMessage{Type: model.MSG_ROOM_JOINED, RoomId: "XK29QA"})
	assert.Equal(t, "XK29QA", s.RoomName())
}

func TestAdvisoryFramesLeaveStateAlone(t *testing.T) {
	s := NewStore("me")
	snap := snapWith(map[string]model.PlayerState{"me": {Score: 5, Coins: 1}})
	s.Apply(stateMsg(snap, model.LeaderboardRow{Username: "me", Score: 5}))

	s.Apply(model.ServerMessage{Type: model.MSG_PLAYER_JOINED, Player: &model.JoinedPlayer{Id: "p9"}})
	s.Apply(model.ServerMessage{Type: model.MSG_PLAYER_LEFT, PlayerId: "p9"})

	assert.Same(t, snap, s.Snapshot())
	assert.Len(t, s.Leaderboard(), 1)
	assert.Equal(t, LocalView{Score: 5, Coins: 1}, s.Local())
}

func TestGameStateWithoutSnapshotDropped(t *testing.T) {
	s := NewStore("me")
	snap := snapWith(map[string]model.PlayerState{"me": {Score: 5}})
	s.Apply(stateMsg(snap))

	s.Apply(model.ServerMessage{Type: model.MSG_GAME_STATE, State: nil})
	assert.Same(t, snap, s.Snapshot())
}

func TestResetClearsEverything(t *testing.T) {
	s := NewStore("me")
	s.Apply(model.ServerMessage{Type: model.MSG_ROOM_JOINED, RoomId: "global"})
	s.Apply(stateMsg(snapWith(map[string]model.PlayerState{"me": {Score: 5}})))

	s.Reset()
	assert.Nil(t, s.Snapshot())
	assert.Equal(t, "", s.RoomName())
	assert.Equal(t, LocalView{}, s.Local())
	assert.Equal(t, 0, s.PlayerCount())
}
