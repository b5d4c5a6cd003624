package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
	"github.com/juliocloud/s206-projeto-final/internal/modules/notification/infrastructure/websocket"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
)

type EventLister interface {
	List(ctx context.Context, limit, offset int) ([]domain.Event, error)
}

type EventHandler struct {
	events EventLister
	hub    *websocket.Hub
}

func NewEventHandler(events EventLister, hub *websocket.Hub) *EventHandler {
	return &EventHandler{events: events, hub: hub}
}

// Subscribe upgrades to a websocket that receives every catalog event as a
// JSON text frame.
func (h *EventHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWs(h.hub, w, r)
}

// List returns stored events, newest first. Non-numeric limit or offset
// values fall back to the defaults.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	events, err := h.events.List(r.Context(), limit, offset)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, events)
}
