package entity

import (
	"glsnake.com/server/game"
	"glsnake.com/server/glmath"
)

// Player is the struct with the player's data
type Player struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Color     string         `json:"color"`
	Score     int            `json:"score"`
	Alive     bool           `json:"alive"`
	Segments  []glmath.Vec2f `json:"segments"`
	Direction glmath.Vec2f   `json:"direction"`
}

// Sync copies the snake's current board state into the player snapshot.
func (p *Player) Sync(s *game.Snake) {
	p.Score = s.Score()
	p.Alive = s.Alive
	p.Direction = s.Dir
	p.Segments = append(p.Segments[:0], s.Segments...)
}
