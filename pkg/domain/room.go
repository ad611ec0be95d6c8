package domain

// RoomToken is a join credential for a single meeting room.
// Tokens are minted per join request and never stored.
type RoomToken struct {
	Token    string
	Room     string
	Identity string
}

func (t RoomToken) String() string {
	return t.Token
}
