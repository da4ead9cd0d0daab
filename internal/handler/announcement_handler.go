package handler

import (
	"net/http"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/internal/store"
	"anoa.com/ruangkelas/pkg/apperror"
	"anoa.com/ruangkelas/pkg/response"
	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	store *store.Store
}

func NewAnnouncementHandler(st *store.Store) *AnnouncementHandler {
	return &AnnouncementHandler{store: st}
}

type AttachmentInput struct {
	Type  string  `json:"type" binding:"required,oneof=image pdf youtube link"`
	URL   string  `json:"url" binding:"required"`
	Title *string `json:"title"`
}

// ClassID left null targets every class (a broadcast announcement).
type CreateAnnouncementInput struct {
	Title       string            `json:"title" binding:"required"`
	Content     string            `json:"content" binding:"required"`
	Date        string            `json:"date"`
	ClassID     *string           `json:"classId"`
	Attachments []AttachmentInput `json:"attachments" binding:"omitempty,dive"`
}

// Broadcast true retargets the announcement to every class; otherwise a
// non-nil ClassID retargets it to that class. Both absent leaves the target
// alone.
type UpdateAnnouncementInput struct {
	Title       *string            `json:"title"`
	Content     *string            `json:"content"`
	Date        *string            `json:"date"`
	ClassID     *string            `json:"classId"`
	Broadcast   *bool              `json:"broadcast"`
	Attachments *[]AttachmentInput `json:"attachments" binding:"omitempty,dive"`
}

func attachmentsFromInput(in []AttachmentInput) []model.AnnouncementAttachment {
	if in == nil {
		return nil
	}
	out := make([]model.AnnouncementAttachment, 0, len(in))
	for _, a := range in {
		out = append(out, model.AnnouncementAttachment{
			Type:  model.AttachmentType(a.Type),
			URL:   a.URL,
			Title: a.Title,
		})
	}
	return out
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var input CreateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	teacherID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	created := h.store.AddAnnouncement(model.Announcement{
		Title:       input.Title,
		Content:     input.Content,
		Date:        input.Date,
		TeacherID:   teacherID,
		ClassID:     input.ClassID,
		Attachments: attachmentsFromInput(input.Attachments),
	})
	c.JSON(http.StatusCreated, created)
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.Announcements()})
}

func (h *AnnouncementHandler) Get(c *gin.Context) {
	a, ok := h.store.AnnouncementByID(c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var input UpdateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	if _, ok := h.store.AnnouncementByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}

	patch := model.AnnouncementPatch{
		Title:   input.Title,
		Content: input.Content,
		Date:    input.Date,
	}
	if input.Broadcast != nil && *input.Broadcast {
		var broadcast *string
		patch.ClassID = &broadcast
	} else if input.ClassID != nil {
		patch.ClassID = &input.ClassID
	}
	if input.Attachments != nil {
		attachments := attachmentsFromInput(*input.Attachments)
		patch.Attachments = &attachments
	}

	h.store.UpdateAnnouncement(id, patch)

	updated, _ := h.store.AnnouncementByID(id)
	c.JSON(http.StatusOK, updated)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.AnnouncementByID(id); !ok {
		response.ResponseError(c, apperror.ErrNotFound)
		return
	}
	h.store.RemoveAnnouncement(id)
	c.JSON(http.StatusOK, gin.H{"message": "Pengumuman berhasil dihapus"})
}
