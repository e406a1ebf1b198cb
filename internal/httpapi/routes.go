package httpapi

import (
	"net/http"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/DoyleJ11/lol-draft-sim/internal/hub"
	"github.com/DoyleJ11/lol-draft-sim/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRoutes builds the read-only spectator API. Nothing here can submit a
// ban or pick.
func SetupRoutes(h *hub.Hub, reg *champion.Registry, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz)
	r.Get("/champions", ListChampions(reg))
	r.Get("/champions/{name}", GetChampion(reg))
	r.Get("/lobbies/{code}", GetLobby(h))
	r.Get("/ws", ws.Handler(h, logger))
	return r
}
