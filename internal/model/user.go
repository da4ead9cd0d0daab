package model

// Role membedakan dua jenis akun pada aplikasi.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid returns true when the role is a supported value.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// User is a login account. Students get a shadow User with the same ID as
// their Student record so they can sign in; passwords are stored and compared
// as plaintext, which is the documented contract of this application.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}
