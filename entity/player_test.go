package entity

import (
	"testing"

	"glsnake.com/server/game"
	"glsnake.com/server/glmath"
)

func TestSyncCopiesSnakeState(t *testing.T) {
	w := game.NewWorld(game.DefaultTileSize, 0, 1)
	s := w.Spawn(1)
	s.Segments = []glmath.Vec2f{{X: 0.08}, {X: 0}}
	s.Dir = glmath.Vec2f{X: 1}

	p := &Player{ID: 1, Name: "ada"}
	p.Sync(s)

	if p.Score != 2 {
		t.Errorf("Score=%d; want 2", p.Score)
	}
	if !p.Alive {
		t.Error("Alive=false; want true")
	}
	if p.Direction != (glmath.Vec2f{X: 1}) {
		t.Errorf("Direction=%v; want Vec2(1, 0)", p.Direction)
	}
	if len(p.Segments) != 2 || p.Segments[0] != s.Segments[0] {
		t.Errorf("Segments=%v; want %v", p.Segments, s.Segments)
	}

	// The snapshot owns its segment slice.
	s.Segments[0].X = 0.5
	if p.Segments[0].X == 0.5 {
		t.Error("snapshot aliases the snake's segments")
	}
}
