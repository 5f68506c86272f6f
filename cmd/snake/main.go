// Command snake runs the local single-player game in a window.
package main

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"glsnake.com/server/game"
	"glsnake.com/server/glmath"
)

const (
	screenSize = 640

	// Updates between snake steps, the game's pace.
	stepEvery = 9

	playerID = 1
)

type snakeGame struct {
	world *game.World
	snake *game.Snake

	head *ebiten.Image
	body *ebiten.Image
	food *ebiten.Image

	updates  int
	gameOver bool
}

func newSnakeGame(seed int64) *snakeGame {
	w := game.NewWorld(game.DefaultTileSize, 0, seed)
	g := &snakeGame{
		world: w,
		snake: w.Spawn(playerID),
	}

	px := g.tilePx()
	g.head = ebiten.NewImage(px, px)
	g.head.Fill(color.RGBA{R: 0x2e, G: 0xcc, B: 0x40, A: 0xff})
	g.body = ebiten.NewImage(px, px)
	g.body.Fill(color.RGBA{R: 0x1e, G: 0x8c, B: 0x2c, A: 0xff})
	g.food = ebiten.NewImage(px, px)
	g.food.Fill(color.RGBA{R: 0xd0, G: 0x30, B: 0x28, A: 0xff})
	return g
}

// tilePx is the side of one board tile in pixels.
func (g *snakeGame) tilePx() int {
	return int(float32(screenSize) * g.world.TileSize / 2)
}

func (g *snakeGame) Update() error {
	if !g.gameOver {
		g.updates++
		if g.updates >= stepEvery {
			g.updates = 0
			if deaths := g.world.Step(); len(deaths) > 0 {
				g.gameOver = true
				log.Printf("Game over! Score: %d", deaths[0].Score)
			}
		}
	}

	// The world rejects reversing onto the body.
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.world.Turn(playerID, glmath.Vec2f{Y: 1})
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.world.Turn(playerID, glmath.Vec2f{Y: -1})
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.world.Turn(playerID, glmath.Vec2f{X: -1})
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.world.Turn(playerID, glmath.Vec2f{X: 1})
	}
	return nil
}

func (g *snakeGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})

	g.drawTile(screen, g.food, g.world.Food)
	for i := len(g.snake.Segments) - 1; i >= 1; i-- {
		g.drawTile(screen, g.body, g.snake.Segments[i])
	}
	g.drawTile(screen, g.head, g.snake.Head())
}

// drawTile draws img centered on the board position p. Board y points
// up, screen y points down.
func (g *snakeGame) drawTile(screen, img *ebiten.Image, p glmath.Vec2f) {
	half := float64(g.tilePx()) / 2
	px := float64(p.X+1) / 2 * screenSize
	py := float64(1-p.Y) / 2 * screenSize

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(px-half, py-half)
	screen.DrawImage(img, op)
}

func (g *snakeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	ebiten.SetWindowTitle("glsnake")
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(newSnakeGame(time.Now().UnixNano())); err != nil {
		log.Fatal(err)
	}
}
