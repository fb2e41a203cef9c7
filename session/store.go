package session

import (
	"sync"

	"slither/model"
)

// LocalView is what the HUD shows for the local player. Zero when the
// local player is absent from the latest snapshot.
type LocalView struct {
	Score int
	Coins int
}

// Store holds the last fully received world frame and the values
// derived from it. Inbound frames mutate it, the render loop only
// reads. The snapshot is swapped as a whole pointer so a reader can
// never observe a torn frame.
type Store struct {
	PlayerId string

	mu          sync.RWMutex
	snap        *model.Snapshot
	leaderboard []model.LeaderboardRow
	roomName    string
	local       LocalView
}

func NewStore(playerId string) *Store {
	return &Store{PlayerId: playerId}
}

// Apply ingests one inbound frame. Frames are applied in arrival
// order; with back-to-back game_state frames the last one wins.
func (s *Store) Apply(msg model.ServerMessage) {
	switch msg.Type {
	case model.MSG_ROOM_JOINED:
		s.mu.Lock()
		s.roomName = msg.RoomId
		s.mu.Unlock()

	case model.MSG_GAME_STATE:
		if msg.State == nil {
			return
		}
		local := LocalView{}
		if p, ok := msg.State.Players[s.PlayerId]; ok {
			local = LocalView{Score: p.Score, Coins: p.Coins}
		}
		s.mu.Lock()
		s.snap = msg.State
		s.leaderboard = msg.Leaderboard
		s.local = local
		s.mu.Unlock()

	case model.MSG_PLAYER_JOINED, model.MSG_PLAYER_LEFT:
		// advisory only, the next game_state already reflects
		// membership changes
	}
}

// Snapshot returns the last fully received frame, nil before the
// first one. Callers must treat it as read-only.
func (s *Store) Snapshot() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) Leaderboard() []model.LeaderboardRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leaderboard
}

func (s *Store) Local() LocalView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.local
}

func (s *Store) RoomName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roomName
}

// PlayerCount is derived from the latest snapshot.
func (s *Store) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return 0
	}
	return len(s.snap.Players)
}

// Reset clears everything on leaving a room so a later session does
// not briefly paint the previous world.
func (s *Store) Reset() {
	s.mu.Lock()
	s.snap = nil
	s.leaderboard = nil
	s.roomName = ""
	s.local = LocalView{}
	s.mu.Unlock()
}
