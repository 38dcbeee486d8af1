package handler

import (
	"net/http"
	"strings"

	"github.com/albapepper/worth-the-bag/internal/api/respond"
	"github.com/albapepper/worth-the-bag/internal/locale"
	"github.com/albapepper/worth-the-bag/internal/scoring"
)

// ImpactView is the qualitative label for one metric value.
type ImpactView struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	Known  bool    `json:"known_metric"`
}

// GetImpactLabel maps a metric value onto its qualitative label.
// @Summary Get impact label
// @Description Returns the first label whose minimum the value reaches. Values accept a decimal comma. Unknown metrics and values below every threshold yield "-".
// @Tags metrics
// @Produce json
// @Param metric query string true "Metric (PER, AST/TOV, BPM, OBPM, DBPM, WS)"
// @Param value query string true "Metric value"
// @Success 200 {object} ImpactView
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/impact [get]
func (h *Handler) GetImpactLabel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	metric := strings.TrimSpace(q.Get("metric"))
	if metric == "" {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeMissingParam, "metric is required")
		return
	}
	raw := q.Get("value")
	if strings.TrimSpace(raw) == "" {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeMissingParam, "value is required")
		return
	}
	value, err := locale.Decimal(raw)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeInvalidParam, "value must be numeric", err.Error())
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, ImpactView{
		Metric: metric,
		Value:  value,
		Label:  scoring.ImpactLabel(metric, value),
		Known:  scoring.Thresholds(metric) != nil,
	})
}

// GetImpactTables returns every metric's threshold table.
// @Summary List impact tables
// @Description Returns each metric with its ordered thresholds, highest first.
// @Tags metrics
// @Produce json
// @Success 200 {object} map[string][]scoring.Threshold
// @Router /api/v1/impact/tables [get]
func (h *Handler) GetImpactTables(w http.ResponseWriter, r *http.Request) {
	tables := make(map[string][]scoring.Threshold)
	for _, m := range scoring.Metrics() {
		tables[m] = scoring.Thresholds(m)
	}
	respond.WriteJSONObject(w, http.StatusOK, tables)
}
