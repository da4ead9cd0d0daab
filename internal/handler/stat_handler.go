package handler

import (
	"net/http"

	"anoa.com/ruangkelas/internal/store"
	"github.com/gin-gonic/gin"
)

// StatHandler feeds the dashboard: per-collection counts.
type StatHandler struct {
	store *store.Store
}

func NewStatHandler(st *store.Store) *StatHandler {
	return &StatHandler{store: st}
}

func (h *StatHandler) Counts(c *gin.Context) {
	counts := h.store.Counts()
	c.JSON(http.StatusOK, gin.H{
		"classes":       counts[store.ColClasses],
		"students":      counts[store.ColStudents],
		"scores":        counts[store.ColScores],
		"announcements": counts[store.ColAnnouncements],
		"attendance":    counts[store.ColAttendance],
	})
}
