package handler

import (
	"net/http"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/internal/store"
	"anoa.com/ruangkelas/pkg/apperror"
	"anoa.com/ruangkelas/pkg/response"
	"github.com/gin-gonic/gin"
)

// MeHandler serves the student-facing self views: my classes, my scores, my
// attendance and the announcements that concern me. Everything is scoped to
// the authenticated user, so a student can never read another student's
// records.
type MeHandler struct {
	store *store.Store
}

func NewMeHandler(st *store.Store) *MeHandler {
	return &MeHandler{store: st}
}

func (h *MeHandler) Profile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	user, ok := h.store.UserByID(userID)
	if !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"name":     user.Name,
		"role":     user.Role,
	})
}

func (h *MeHandler) Classes(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.ClassesForStudent(userID)})
}

func (h *MeHandler) Scores(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.ScoresForStudent(userID)})
}

func (h *MeHandler) Attendance(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.store.AttendanceByStudent(userID)})
}

// Announcements collects broadcasts plus the announcements of every class
// the student is enrolled in, without duplicating broadcasts per class.
func (h *MeHandler) Announcements(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	classes := h.store.ClassesForStudent(userID)
	mine := make(map[string]struct{}, len(classes))
	for _, cl := range classes {
		mine[cl.ID] = struct{}{}
	}

	var out []model.Announcement
	for _, a := range h.store.Announcements() {
		if a.ClassID == nil {
			out = append(out, a)
			continue
		}
		if _, ok := mine[*a.ClassID]; ok {
			out = append(out, a)
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
