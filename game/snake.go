package game

import "glsnake.com/server/glmath"

// Snake is one player's snake on the board. Segments are tile centers,
// head first.
type Snake struct {
	ID       int
	Segments []glmath.Vec2f
	Dir      glmath.Vec2f

	// lastDir is the direction the snake actually moved with on its
	// previous step. It guards against reversing onto the own body.
	lastDir glmath.Vec2f

	Alive     bool
	respawnIn int
}

// Score is the number of segments the snake has grown to.
func (s *Snake) Score() int {
	return len(s.Segments)
}

// Head returns the position of the snake's head.
func (s *Snake) Head() glmath.Vec2f {
	return s.Segments[0]
}

// turn points the snake at dir for its next step. A snake longer than
// one segment cannot reverse into itself.
func (s *Snake) turn(dir glmath.Vec2f) bool {
	if !isAxisDir(dir) {
		return false
	}
	if len(s.Segments) > 1 && dir == s.lastDir.Neg() {
		return false
	}
	s.Dir = dir
	return true
}

// isAxisDir reports whether dir is one of the four unit axis vectors.
func isAxisDir(dir glmath.Vec2f) bool {
	switch dir {
	case glmath.Vec2f{X: 1}, glmath.Vec2f{X: -1},
		glmath.Vec2f{Y: 1}, glmath.Vec2f{Y: -1}:
		return true
	}
	return false
}
