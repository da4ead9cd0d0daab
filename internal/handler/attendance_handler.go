package handler

import (
	"net/http"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/internal/store"
	"anoa.com/ruangkelas/pkg/apperror"
	"anoa.com/ruangkelas/pkg/response"
	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	store *store.Store
}

func NewAttendanceHandler(st *store.Store) *AttendanceHandler {
	return &AttendanceHandler{store: st}
}

type CreateAttendanceInput struct {
	StudentID string  `json:"studentId" binding:"required"`
	ClassID   string  `json:"classId" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	Status    string  `json:"status" binding:"required,oneof=present absent sick permission"`
	Note      *string `json:"note"`
}

type UpdateAttendanceInput struct {
	Date   *string `json:"date"`
	Status *string `json:"status" binding:"omitempty,oneof=present absent sick permission"`
	Note   *string `json:"note"`
}

func (h *AttendanceHandler) Create(c *gin.Context) {
	var input CreateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	created := h.store.AddAttendance(model.AttendanceRecord{
		StudentID: input.StudentID,
		ClassID:   input.ClassID,
		Date:      input.Date,
		Status:    model.AttendanceStatus(input.Status),
		Note:      input.Note,
	})
	c.JSON(http.StatusCreated, created)
}

// CreateBatch records attendance for a whole class in one atomic store
// transition, the shape the class grid submits.
func (h *AttendanceHandler) CreateBatch(c *gin.Context) {
	var inputs []CreateAttendanceInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		bindError(c, err)
		return
	}

	batch := make([]model.AttendanceRecord, 0, len(inputs))
	for _, in := range inputs {
		batch = append(batch, model.AttendanceRecord{
			StudentID: in.StudentID,
			ClassID:   in.ClassID,
			Date:      in.Date,
			Status:    model.AttendanceStatus(in.Status),
			Note:      in.Note,
		})
	}

	added := h.store.AddAttendanceBatch(batch)
	c.JSON(http.StatusCreated, gin.H{"count": len(added), "data": added})
}

// List serves the attendance collection; with a date query parameter it
// narrows to records on that calendar day.
func (h *AttendanceHandler) List(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		c.JSON(http.StatusOK, gin.H{"data": h.store.AttendanceByDate(date)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.Attendance()})
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var input UpdateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	if _, ok := h.store.AttendanceByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}

	patch := model.AttendancePatch{
		Date: input.Date,
		Note: input.Note,
	}
	if input.Status != nil {
		status := model.AttendanceStatus(*input.Status)
		patch.Status = &status
	}
	h.store.UpdateAttendance(id, patch)

	updated, _ := h.store.AttendanceByID(id)
	c.JSON(http.StatusOK, updated)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.AttendanceByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	h.store.RemoveAttendance(id)
	c.JSON(http.StatusOK, gin.H{"message": "Kehadiran berhasil dihapus"})
}
