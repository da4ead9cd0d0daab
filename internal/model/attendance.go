package model

// AttendanceStatus is the recorded presence state for one student on one day.
type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "present"
	AttendanceAbsent     AttendanceStatus = "absent"
	AttendanceSick       AttendanceStatus = "sick"
	AttendancePermission AttendanceStatus = "permission"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceSick, AttendancePermission:
		return true
	default:
		return false
	}
}

// AttendanceRecord marks one student's presence in one class on one day.
// Date is an RFC 3339 timestamp string; day-level queries compare its
// YYYY-MM-DD prefix, which sorts correctly as text.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId"`
	ClassID   string           `json:"classId"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Note      *string          `json:"note,omitempty"`
}

// AttendancePatch carries the fields an attendance update may change.
type AttendancePatch struct {
	Date   *string           `json:"date,omitempty"`
	Status *AttendanceStatus `json:"status,omitempty"`
	Note   *string           `json:"note,omitempty"`
}
