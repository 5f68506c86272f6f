package network

// Event is the struct sent and received from the clients
type Event struct {
	Name string      `json:"name"`
	Data interface{} `json:"data"`
}

// Event names understood by the server.
const (
	// Inbound.
	EventTurn        = "turn"
	EventSyncWorld   = "syncWorld"
	EventChatMessage = "chatMessage"

	// Outbound.
	EventUpdate     = "update"
	EventPlayerJoin = "playerJoin"
	EventPlayerQuit = "playerQuit"
	EventGameOver   = "gameOver"
)
