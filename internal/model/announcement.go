package model

// AttachmentType describes what an announcement attachment points at.
type AttachmentType string

const (
	AttachmentImage   AttachmentType = "image"
	AttachmentPDF     AttachmentType = "pdf"
	AttachmentYoutube AttachmentType = "youtube"
	AttachmentLink    AttachmentType = "link"
)

// Valid returns true when the attachment type is a supported value.
func (t AttachmentType) Valid() bool {
	switch t {
	case AttachmentImage, AttachmentPDF, AttachmentYoutube, AttachmentLink:
		return true
	default:
		return false
	}
}

// AnnouncementAttachment is a typed URL reference attached to an
// announcement. Attachments are ordered; the order is authored.
type AnnouncementAttachment struct {
	Type  AttachmentType `json:"type"`
	URL   string         `json:"url"`
	Title *string        `json:"title,omitempty"`
}

// Announcement is a message from a teacher. ClassID nil is the broadcast
// sentinel: the announcement is visible to every class.
type Announcement struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Content     string                   `json:"content"`
	Date        string                   `json:"date"`
	TeacherID   string                   `json:"teacherId"`
	ClassID     *string                  `json:"classId"`
	Attachments []AnnouncementAttachment `json:"attachments,omitempty"`
}

// AnnouncementPatch carries the fields an announcement update may change.
// ClassID uses a double pointer so a patch can distinguish "leave as is"
// (nil) from "set to broadcast" (pointer to nil). Patches are built by
// handlers, not bound from JSON directly.
type AnnouncementPatch struct {
	Title       *string
	Content     *string
	Date        *string
	ClassID     **string
	Attachments *[]AnnouncementAttachment
}
