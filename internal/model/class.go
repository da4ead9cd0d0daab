package model

// Class is a group of students taught by one teacher. Students holds student
// IDs and is kept symmetric with Student.ClassIDs by the store; membership is
// never edited directly through a class update.
type Class struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TeacherID   string   `json:"teacherId"`
	Students    []string `json:"students"`
}

// ClassPatch carries the fields a class update may change.
type ClassPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	TeacherID   *string `json:"teacherId,omitempty"`
}
