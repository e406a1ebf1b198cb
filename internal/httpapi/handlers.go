package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/DoyleJ11/lol-draft-sim/internal/hub"
	"github.com/DoyleJ11/lol-draft-sim/internal/lobby"
	"github.com/DoyleJ11/lol-draft-sim/internal/types"
	"github.com/go-chi/chi/v5"
)

func ListChampions(reg *champion.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		champs := reg.Champions()
		if role := r.URL.Query().Get("role"); role != "" {
			champs = reg.WithRole(role)
		}
		writeJSON(w, http.StatusOK, types.ChampionList{Count: len(champs), Champions: champs})
	}
}

func GetChampion(reg *champion.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := reg.Resolve(chi.URLParam(r, "name"))
		if errors.Is(err, champion.ErrUnknownChampion) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		c, _ := reg.Get(name)
		writeJSON(w, http.StatusOK, c)
	}
}

func GetLobby(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		lb := h.Get(code)
		if lb == nil {
			http.Error(w, "lobby not found", http.StatusNotFound)
			return
		}

		reply := make(chan lobby.View, 1)
		if !lb.Send(lobby.GetState{Reply: reply}) {
			http.Error(w, "lobby closed", http.StatusGone)
			return
		}
		select {
		case v := <-reply:
			writeJSON(w, http.StatusOK, types.LobbyView{
				Code:       code,
				Version:    v.Version,
				Spectators: v.NumClients,
				Board:      v.Board,
			})
		case <-lb.Done():
			http.Error(w, "lobby closed", http.StatusGone)
		case <-time.After(2 * time.Second):
			http.Error(w, "lobby busy", http.StatusServiceUnavailable)
		}
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
