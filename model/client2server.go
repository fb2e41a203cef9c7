package model

const (
	ACTION_JOIN_ROOM  = "join_room"
	ACTION_MOVE       = "move"
	ACTION_LEAVE_ROOM = "leave_room"
)

// JoinRoom must be the first intent on a fresh connection, before any
// move is allowed out.
type JoinRoom struct {
	Action   string `json:"action"`
	RoomId   string `json:"room_id"`
	Username string `json:"username"`
	Skin     string `json:"skin"`
	Color    string `json:"color"`
}

func NewJoinRoom(roomId, username, skin, color string) JoinRoom {
	return JoinRoom{
		Action:   ACTION_JOIN_ROOM,
		RoomId:   roomId,
		Username: username,
		Skin:     skin,
		Color:    color,
	}
}

// Move is best effort. The authority is the sole arbiter of whether a
// turn is legal, the client never filters.
type Move struct {
	Action    string    `json:"action"`
	Direction Direction `json:"direction"`
}

func NewMove(dir Direction) Move {
	return Move{Action: ACTION_MOVE, Direction: dir}
}

type LeaveRoom struct {
	Action string `json:"action"`
}

func NewLeaveRoom() LeaveRoom {
	return LeaveRoom{Action: ACTION_LEAVE_ROOM}
}
