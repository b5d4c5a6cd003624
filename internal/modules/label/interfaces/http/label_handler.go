package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juliocloud/s206-projeto-final/internal/modules/label/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/label/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
)

type LabelService interface {
	CreateLabel(ctx context.Context, req application.LabelRequest) (*domain.Label, error)
	ListLabels(ctx context.Context) ([]domain.Label, error)
	GetLabel(ctx context.Context, id int64) (*domain.Label, error)
	UpdateLabel(ctx context.Context, id int64, req application.LabelRequest) (*domain.Label, error)
	DeleteLabel(ctx context.Context, id int64) error
}

type LabelHandler struct {
	service LabelService
}

func NewLabelHandler(service LabelService) *LabelHandler {
	return &LabelHandler{service: service}
}

func (h *LabelHandler) List(w http.ResponseWriter, r *http.Request) {
	labels, err := h.service.ListLabels(r.Context())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, labels)
}

func (h *LabelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	label, err := h.service.GetLabel(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, label)
}

func (h *LabelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req application.LabelRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	label, err := h.service.CreateLabel(r.Context(), req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, label)
}

func (h *LabelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	var req application.LabelRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	label, err := h.service.UpdateLabel(r.Context(), id, req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, label)
}

func (h *LabelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	if err := h.service.DeleteLabel(r.Context(), id); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
