package model

// Student is the administrative record of a pupil. ClassIDs mirrors
// Class.Students on the other side of the relation.
type Student struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	ClassIDs []string `json:"classIds"`
}

// StudentPatch carries the fields a student update may change. Name, username
// and password changes are propagated to the shadow User by the store.
type StudentPatch struct {
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}
