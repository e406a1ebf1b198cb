package types

import (
	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/DoyleJ11/lol-draft-sim/internal/engine"
)

const (
	MsgStateSnapshot = "StateSnapshot"
	MsgError         = "Error"
)

type ServerMessage struct {
	Type    string        `json:"type"` // "StateSnapshot" | "Error"
	Version int           `json:"version,omitempty"`
	Board   *engine.Board `json:"board,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type ChampionList struct {
	Count     int                 `json:"count"`
	Champions []champion.Champion `json:"champions"`
}

type LobbyView struct {
	Code       string       `json:"code"`
	Version    int          `json:"version"`
	Spectators int          `json:"spectators"`
	Board      engine.Board `json:"board"`
}
