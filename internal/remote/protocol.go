// Package remote serves a websocket channel that executes command lines.
package remote

// Message types.
const (
	TypeExec   = "exec"
	TypePing   = "ping"
	TypePong   = "pong"
	TypeResult = "result"
)

// Message is a client payload.
type Message struct {
	T    string `json:"t"`
	ID   int    `json:"id,omitempty"`
	Line string `json:"line,omitempty"`
}

// Reply answers one client message.
type Reply struct {
	T     string `json:"t"`
	ID    int    `json:"id,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
