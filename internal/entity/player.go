package entity

// Player is a seat in a game played by the computer at the given level.
type Player struct {
	Mark  string     `json:"mark"`
	Level Difficulty `json:"level"`
}
