package model

// Score is a single grade for one student in one class. Value is expected to
// be within [0,100]; the range is enforced by forms and import adapters
// before a score reaches the store. Date is an RFC 3339 timestamp string.
type Score struct {
	ID        string  `json:"id"`
	StudentID string  `json:"studentId"`
	ClassID   string  `json:"classId"`
	Subject   string  `json:"subject"`
	Value     float64 `json:"value"`
	Date      string  `json:"date"`
}

// ScorePatch carries the fields a score update may change.
type ScorePatch struct {
	StudentID *string  `json:"studentId,omitempty"`
	ClassID   *string  `json:"classId,omitempty"`
	Subject   *string  `json:"subject,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Date      *string  `json:"date,omitempty"`
}
