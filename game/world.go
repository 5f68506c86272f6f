// Package game holds the snake board simulation. It does no I/O; the
// network hub and the local client both drive it.
package game

import (
	"math/rand"

	"glsnake.com/server/glmath"
)

const (
	// DefaultTileSize is the side of one board tile in the [-1,1]
	// square the board lives in.
	DefaultTileSize = 0.08

	// DefaultRespawnSteps is how many steps a dead snake stays off the
	// board before it respawns.
	DefaultRespawnSteps = 40
)

// Death describes one snake dying during a step.
type Death struct {
	ID    int `json:"id"`
	Score int `json:"score"`
}

// World is the shared board: every snake plus the food pellet.
type World struct {
	TileSize float32
	Food     glmath.Vec2f

	snakes       map[int]*Snake
	respawnSteps int
	rng          *rand.Rand
}

// NewWorld creates an empty board. tileSize and respawnSteps fall back
// to the defaults when zero.
func NewWorld(tileSize float32, respawnSteps int, seed int64) *World {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	if respawnSteps <= 0 {
		respawnSteps = DefaultRespawnSteps
	}
	w := &World{
		TileSize:     tileSize,
		snakes:       make(map[int]*Snake),
		respawnSteps: respawnSteps,
		rng:          rand.New(rand.NewSource(seed)),
	}
	w.Food = w.freeTile()
	return w
}

// Spawn places a new single-segment snake on a free tile.
func (w *World) Spawn(id int) *Snake {
	s := &Snake{
		ID:       id,
		Segments: []glmath.Vec2f{w.freeTile()},
		Dir:      glmath.Vec2f{Y: 1},
		Alive:    true,
	}
	w.snakes[id] = s
	return s
}

// Remove takes a snake off the board.
func (w *World) Remove(id int) {
	delete(w.snakes, id)
}

// Snake returns the snake with the given id, or nil.
func (w *World) Snake(id int) *Snake {
	return w.snakes[id]
}

// Snakes calls fn for every snake on the board.
func (w *World) Snakes(fn func(*Snake)) {
	for _, s := range w.snakes {
		fn(s)
	}
}

// Turn points a snake at dir for its next step. It reports whether the
// turn was legal.
func (w *World) Turn(id int, dir glmath.Vec2f) bool {
	s := w.snakes[id]
	if s == nil || !s.Alive {
		return false
	}
	return s.turn(dir)
}

// Step advances every snake by one tile and returns the deaths it
// caused.
func (w *World) Step() []Death {
	var deaths []Death
	for _, s := range w.snakes {
		if !s.Alive {
			s.respawnIn--
			if s.respawnIn <= 0 {
				s.Segments = []glmath.Vec2f{w.freeTile()}
				s.Dir = glmath.Vec2f{Y: 1}
				s.lastDir = glmath.Vec2f{}
				s.Alive = true
			}
			continue
		}
		if d := w.move(s); d != nil {
			deaths = append(deaths, *d)
		}
	}
	return deaths
}

// move advances one snake: head forward with wrap-around, body
// follows, then food and collision checks.
func (w *World) move(s *Snake) *Death {
	previousHead := s.Segments[0]
	oldTail := s.Segments[len(s.Segments)-1]

	s.Segments[0] = w.wrap(s.Segments[0].Add(s.Dir.Scale(w.TileSize)))
	s.lastDir = s.Dir

	// Shift the body along the path the head took.
	for i := 1; i < len(s.Segments); i++ {
		s.Segments[i], previousHead = previousHead, s.Segments[i]
	}

	if w.hitsSnake(s) {
		s.Alive = false
		s.respawnIn = w.respawnSteps
		return &Death{ID: s.ID, Score: s.Score()}
	}

	if w.Collides(s.Segments[0], w.Food) {
		s.Segments = append(s.Segments, oldTail)
		w.Food = w.freeTile()
	}
	return nil
}

// wrap teleports a coordinate that crossed the half-tile border to the
// opposite edge.
func (w *World) wrap(p glmath.Vec2f) glmath.Vec2f {
	half := w.TileSize / 2
	if p.X > 1-half {
		p.X = -1 + half
	} else if p.X < -1+half {
		p.X = 1 - half
	}
	if p.Y > 1-half {
		p.Y = -1 + half
	} else if p.Y < -1+half {
		p.Y = 1 - half
	}
	return p
}

// Collides reports whether pos falls inside the tile centered on sq.
func (w *World) Collides(pos, sq glmath.Vec2f) bool {
	half := w.TileSize / 2
	return pos.X >= sq.X-half && pos.X <= sq.X+half &&
		pos.Y >= sq.Y-half && pos.Y <= sq.Y+half
}

// hitsSnake reports whether s's head landed on any living snake's body,
// or on another living snake's head.
func (w *World) hitsSnake(s *Snake) bool {
	head := s.Segments[0]
	for _, other := range w.snakes {
		if !other.Alive {
			continue
		}
		for i, seg := range other.Segments {
			if other.ID == s.ID && i == 0 {
				continue
			}
			if w.Collides(head, seg) {
				return true
			}
		}
	}
	return false
}

// randomTile picks a random tile center on the board, the same
// integer-range scheme the food spawner has always used.
func (w *World) randomTile() glmath.Vec2f {
	lower := int(-1 / w.TileSize)
	upper := -lower

	x := lower + w.rng.Intn(upper-lower+1)
	y := lower + w.rng.Intn(upper-lower+1)
	return glmath.Vec2f{X: float32(x) * w.TileSize, Y: float32(y) * w.TileSize}
}

// freeTile picks a random tile that no snake occupies.
func (w *World) freeTile() glmath.Vec2f {
	for {
		p := w.randomTile()
		occupied := false
		for _, s := range w.snakes {
			for _, seg := range s.Segments {
				if w.Collides(p, seg) {
					occupied = true
					break
				}
			}
			if occupied {
				break
			}
		}
		if !occupied {
			return p
		}
	}
}
