package network

import (
	"encoding/json"
	"time"

	"glsnake.com/server/entity"
	"glsnake.com/server/game"
	"glsnake.com/server/glmath"
)

// turnRequest is a direction change requested by one client.
type turnRequest struct {
	id  int
	dir glmath.Vec2f
}

// Hub maintains the set of active clients, owns the game world and
// broadcasts messages to the clients. All world access happens on the
// Run goroutine.
type Hub struct {
	// The shared board.
	world *game.World

	// Registered clients.
	clients map[*Client]bool

	// Inbound messages from the clients.
	broadcast chan Event

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Direction changes from the clients.
	turns chan turnRequest

	// Full snapshot requests from the clients.
	syncs chan *Client

	// Ticker driving the world steps.
	ticker *time.Ticker
}

// NewHub creates a new Hub stepping the world every stepEvery.
func NewHub(world *game.World, stepEvery time.Duration) *Hub {
	return &Hub{
		world:      world,
		broadcast:  make(chan Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		turns:      make(chan turnRequest),
		syncs:      make(chan *Client),
		clients:    make(map[*Client]bool),
		ticker:     time.NewTicker(stepEvery),
	}
}

// Run serve the hub to listen for new messages.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.player.Sync(h.world.Spawn(client.player.ID))
			h.clients[client] = true

			// Tell clients that a new player joined.
			data := struct {
				Player *entity.Player `json:"player"`
			}{client.player}
			h.send(Event{EventPlayerJoin, data})
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)

				data := struct {
					Player *entity.Player `json:"player"`
				}{client.player}
				h.send(Event{EventPlayerQuit, data})
			}
		case e := <-h.broadcast:
			h.send(e)
		case t := <-h.turns:
			h.world.Turn(t.id, t.dir)
		case client := <-h.syncs:
			h.syncWorld(client)
		case <-h.ticker.C:
			h.step()
		}
	}
}

// step advances the world by one tile and broadcasts the results.
func (h *Hub) step() {
	for _, death := range h.world.Step() {
		h.send(Event{EventGameOver, death})
	}

	players := make([]*entity.Player, 0, len(h.clients))
	for client := range h.clients {
		client.player.Sync(h.world.Snake(client.player.ID))
		players = append(players, client.player)
	}

	data := struct {
		Players []*entity.Player `json:"players"`
		Food    glmath.Vec2f     `json:"food"`
	}{players, h.world.Food}
	h.send(Event{EventUpdate, data})
}

// syncWorld answers one client with the full board state. The
// requester's own player is left out, matching the join flow where the
// client already knows itself.
func (h *Hub) syncWorld(c *Client) {
	data := struct {
		Players  []*entity.Player `json:"players"`
		Food     glmath.Vec2f     `json:"food"`
		TileSize float32          `json:"tileSize"`
	}{[]*entity.Player{}, h.world.Food, h.world.TileSize}

	for client := range h.clients {
		if client.player.ID == c.player.ID {
			continue
		}
		client.player.Sync(h.world.Snake(client.player.ID))
		data.Players = append(data.Players, client.player)
	}

	event, _ := json.Marshal(Event{EventSyncWorld, data})
	select {
	case c.send <- event:
	default:
		h.drop(c)
	}
}

// send marshals e and fans it out to every client.
func (h *Hub) send(e Event) {
	event, _ := json.Marshal(e)
	for client := range h.clients {
		select {
		case client.send <- event:
		default:
			h.drop(client)
		}
	}
}

// drop removes a client and its snake.
func (h *Hub) drop(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	h.world.Remove(c.player.ID)
	delete(h.clients, c)
	close(c.send)
}
