package handler

import (
	"net/http"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/internal/store"
	"anoa.com/ruangkelas/pkg/apperror"
	"anoa.com/ruangkelas/pkg/response"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	store *store.Store
}

func NewStudentHandler(st *store.Store) *StudentHandler {
	return &StudentHandler{store: st}
}

type CreateStudentInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateStudentInput struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (h *StudentHandler) Create(c *gin.Context) {
	var input CreateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	created := h.store.AddStudent(model.Student{
		Name:     input.Name,
		Username: input.Username,
		Password: input.Password,
	})
	c.JSON(http.StatusCreated, created)
}

// CreateBatch inserts many students in one atomic store transition, the
// endpoint the spreadsheet import flow also lands on.
func (h *StudentHandler) CreateBatch(c *gin.Context) {
	var inputs []CreateStudentInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		bindError(c, err)
		return
	}

	batch := make([]model.Student, 0, len(inputs))
	for _, in := range inputs {
		batch = append(batch, model.Student{
			Name:     in.Name,
			Username: in.Username,
			Password: in.Password,
		})
	}

	added := h.store.AddStudents(batch)
	c.JSON(http.StatusCreated, gin.H{"count": len(added), "data": added})
}

func (h *StudentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Students()})
}

func (h *StudentHandler) Get(c *gin.Context) {
	student, ok := h.store.StudentByID(c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var input UpdateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	if _, ok := h.store.StudentByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}

	h.store.UpdateStudent(id, model.StudentPatch{
		Name:     input.Name,
		Username: input.Username,
		Password: input.Password,
	})

	updated, _ := h.store.StudentByID(id)
	c.JSON(http.StatusOK, updated)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.StudentByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	h.store.RemoveStudent(id)
	c.JSON(http.StatusOK, gin.H{"message": "Siswa berhasil dihapus"})
}

func (h *StudentHandler) Classes(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.StudentByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.ClassesForStudent(id)})
}

func (h *StudentHandler) Scores(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.StudentByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.ScoresForStudent(id)})
}

func (h *StudentHandler) Attendance(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.StudentByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.AttendanceByStudent(id)})
}
