package handler

import (
	"net/http"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/internal/store"
	"anoa.com/ruangkelas/pkg/apperror"
	"anoa.com/ruangkelas/pkg/response"
	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	store *store.Store
}

func NewScoreHandler(st *store.Store) *ScoreHandler {
	return &ScoreHandler{store: st}
}

// Value is a pointer so zero scores survive the required check; the range is
// validated here because the store trusts its input.
type CreateScoreInput struct {
	StudentID string   `json:"studentId" binding:"required"`
	ClassID   string   `json:"classId" binding:"required"`
	Subject   string   `json:"subject" binding:"required"`
	Value     *float64 `json:"value" binding:"required,gte=0,lte=100"`
	Date      string   `json:"date" binding:"required"`
}

type UpdateScoreInput struct {
	StudentID *string  `json:"studentId"`
	ClassID   *string  `json:"classId"`
	Subject   *string  `json:"subject"`
	Value     *float64 `json:"value" binding:"omitempty,gte=0,lte=100"`
	Date      *string  `json:"date"`
}

func (h *ScoreHandler) Create(c *gin.Context) {
	var input CreateScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	created := h.store.AddScore(model.Score{
		StudentID: input.StudentID,
		ClassID:   input.ClassID,
		Subject:   input.Subject,
		Value:     *input.Value,
		Date:      input.Date,
	})
	c.JSON(http.StatusCreated, created)
}

func (h *ScoreHandler) CreateBatch(c *gin.Context) {
	var inputs []CreateScoreInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		bindError(c, err)
		return
	}

	batch := make([]model.Score, 0, len(inputs))
	for _, in := range inputs {
		batch = append(batch, model.Score{
			StudentID: in.StudentID,
			ClassID:   in.ClassID,
			Subject:   in.Subject,
			Value:     *in.Value,
			Date:      in.Date,
		})
	}

	added := h.store.AddScores(batch)
	c.JSON(http.StatusCreated, gin.H{"count": len(added), "data": added})
}

func (h *ScoreHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Scores()})
}

func (h *ScoreHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var input UpdateScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	if _, ok := h.store.ScoreByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}

	h.store.UpdateScore(id, model.ScorePatch{
		StudentID: input.StudentID,
		ClassID:   input.ClassID,
		Subject:   input.Subject,
		Value:     input.Value,
		Date:      input.Date,
	})

	updated, _ := h.store.ScoreByID(id)
	c.JSON(http.StatusOK, updated)
}

func (h *ScoreHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.ScoreByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	h.store.RemoveScore(id)
	c.JSON(http.StatusOK, gin.H{"message": "Nilai berhasil dihapus"})
}
