package socket

import (
	"log"
	"net/http"

	"github.com/parvarora1603/BTechConnect/models"

	socketio "github.com/googollee/go-socket.io"
)

// Server wraps the socket.io server that relays chat messages between the
// two participants of a match.
type Server struct {
	io *socketio.Server
}

// NewServer initializes the socket.io server and its event handlers
func NewServer() *Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	io.OnEvent("/", "join", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			log.Println("Invalid matchId in join request")
			return
		}
		c.Join(models.MatchRoomName(matchID))
	})

	io.OnEvent("/", "leave", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			return
		}
		c.Leave(models.MatchRoomName(matchID))
	})

	io.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return &Server{io: io}
}

// Broadcast sends an event to every connection in a room
func (s *Server) Broadcast(room, event string, msg interface{}) {
	s.io.BroadcastToRoom("/", room, event, msg)
}

// Handler exposes the socket.io endpoint for the HTTP router
func (s *Server) Handler() http.Handler {
	return s.io
}

// Serve runs the socket.io event loop; call in a goroutine
func (s *Server) Serve() error {
	return s.io.Serve()
}

// Close shuts the event loop down
func (s *Server) Close() error {
	return s.io.Close()
}
