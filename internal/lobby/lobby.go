package lobby

import (
	"context"

	"github.com/DoyleJ11/lol-draft-sim/internal/engine"
	"go.uber.org/zap"
)

type Msg interface{ isLobbyMsg() }

// Publish folds one draft event into the board.
type Publish struct {
	Event engine.Event
}

func (Publish) isLobbyMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this spectator wants to receive snapshots
}

func (Join) isLobbyMsg() {}

type Leave struct{ ClientID string }

func (Leave) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

type Snapshot struct {
	Version int
	Board   engine.Board
}

type View struct {
	Version    int
	NumClients int
	Board      engine.Board
}

// Lobby owns the spectator view of one series. All state lives in the loop
// goroutine; everything else talks to it through the inbox.
type Lobby struct {
	inbox   chan Msg
	board   engine.Board
	version int
	clients map[string]chan Snapshot
	logger  *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewLobby(parent context.Context, initial engine.Board, logger *zap.Logger) *Lobby {
	ctx, cancel := context.WithCancel(parent)
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Lobby{
		inbox:   make(chan Msg, 64),
		board:   initial,
		clients: make(map[string]chan Snapshot),
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}

	go l.loop()
	return l
}

func (l *Lobby) loop() {
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately
				l.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: l.version, Board: l.board}

			case Leave:
				if ch, ok := l.clients[msg.ClientID]; ok {
					close(ch)
					delete(l.clients, msg.ClientID)
				}

			case Publish:
				l.board = l.board.Apply(msg.Event)
				l.version++
				l.broadcast(Snapshot{Version: l.version, Board: l.board})

			case GetState:
				msg.Reply <- View{
					Version:    l.version,
					NumClients: len(l.clients),
					Board:      l.board,
				}

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) shutdown() {
	for id, ch := range l.clients {
		close(ch) // Tell client no more snapshots
		delete(l.clients, id)
	}
	l.cancel()
}

func (l *Lobby) broadcast(snap Snapshot) {
	for id, ch := range l.clients {
		select {
		case ch <- snap:
		default:
			// Slow spectator: drop them rather than stall the draft.
			l.logger.Debug("dropping slow spectator", zap.String("client", id))
			close(ch)
			delete(l.clients, id)
		}
	}
}

// Expose the inbox so tests or the WS layer can send messages.
func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

// Send delivers m unless the lobby has already shut down.
func (l *Lobby) Send(m Msg) bool {
	if l.ctx.Err() != nil {
		return false
	}
	select {
	case l.inbox <- m:
		return true
	case <-l.ctx.Done():
		return false
	}
}

// Announce lets a lobby sit behind engine.Announcer.
func (l *Lobby) Announce(e engine.Event) { l.Send(Publish{Event: e}) }

func (l *Lobby) Done() <-chan struct{} { return l.ctx.Done() }
