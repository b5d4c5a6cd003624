package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/juliocloud/s206-projeto-final/internal/modules/analytics/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
)

type StatsReader interface {
	Overview(ctx context.Context, top int) (*domain.Overview, error)
}

type StatsHandler struct {
	stats StatsReader
}

func NewStatsHandler(stats StatsReader) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview answers GET /stats. The optional top parameter sets how many
// artists are ranked.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	top, _ := strconv.Atoi(r.URL.Query().Get("top"))

	out, err := h.stats.Overview(r.Context(), top)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}
