package handler

import (
	"net/http"
	"strconv"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/internal/store"
	"anoa.com/ruangkelas/pkg/apperror"
	"anoa.com/ruangkelas/pkg/response"
	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	store *store.Store
}

func NewClassHandler(st *store.Store) *ClassHandler {
	return &ClassHandler{store: st}
}

type CreateClassInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TeacherID   string `json:"teacherId"`
}

type UpdateClassInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	TeacherID   *string `json:"teacherId"`
}

type EnrollInput struct {
	StudentID string `json:"studentId" binding:"required"`
}

func (h *ClassHandler) Create(c *gin.Context) {
	var input CreateClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	// A class defaults to being owned by the teacher creating it.
	teacherID := input.TeacherID
	if teacherID == "" {
		teacherID, _ = response.GetUserID(c)
	}

	created := h.store.AddClass(model.Class{
		Name:        input.Name,
		Description: input.Description,
		TeacherID:   teacherID,
	})
	c.JSON(http.StatusCreated, created)
}

func (h *ClassHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Classes()})
}

func (h *ClassHandler) Get(c *gin.Context) {
	class, ok := h.store.ClassByID(c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var input UpdateClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	if _, ok := h.store.ClassByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}

	h.store.UpdateClass(id, model.ClassPatch{
		Name:        input.Name,
		Description: input.Description,
		TeacherID:   input.TeacherID,
	})

	updated, _ := h.store.ClassByID(id)
	c.JSON(http.StatusOK, updated)
}

func (h *ClassHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.ClassByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	h.store.RemoveClass(id)
	c.JSON(http.StatusOK, gin.H{"message": "Kelas berhasil dihapus"})
}

func (h *ClassHandler) Students(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.ClassByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.StudentsInClass(id)})
}

func (h *ClassHandler) Enroll(c *gin.Context) {
	var input EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.store.Enroll(c.Param("id"), input.StudentID); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Siswa berhasil didaftarkan ke kelas"})
}

func (h *ClassHandler) Withdraw(c *gin.Context) {
	var input EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.store.Withdraw(c.Param("id"), input.StudentID); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Siswa berhasil dikeluarkan dari kelas"})
}

func (h *ClassHandler) Scores(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.ClassByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.ScoresForClass(id)})
}

func (h *ClassHandler) Announcements(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.ClassByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.AnnouncementsForClass(id)})
}

func (h *ClassHandler) Attendance(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.ClassByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.AttendanceByClass(id)})
}

// AttendanceByMonth serves the month grid of the attendance calendar:
// /classes/:id/attendance/:year/:month with a 1-indexed month.
func (h *ClassHandler) AttendanceByMonth(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.ClassByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "tahun tidak valid", apperror.ErrBadRequest))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "bulan tidak valid", apperror.ErrBadRequest))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.store.AttendanceByClassAndMonth(id, year, month)})
}
