package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/ruangkelas/internal/config"
	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/internal/realtime"
	"anoa.com/ruangkelas/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietNotifier struct{}

func (quietNotifier) Success(string) {}
func (quietNotifier) Error(string)   {}

func newTestServer() (*Server, *store.Store) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		AppEnv:         "test",
		AllowedOrigins: "http://localhost:3000",
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
	}
	st := store.New(store.DefaultSnapshot(), store.WithNotifier(quietNotifier{}))
	return New(cfg, st, realtime.NewHub()), st
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, srv *Server, username, password string) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	return out.AccessToken
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv, _ := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "teacher",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username atau password salah")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer()
	rec := doJSON(t, srv, http.MethodGet, "/api/classes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStudentCannotAdministrate(t *testing.T) {
	srv, _ := newTestServer()
	token := login(t, srv, "student", "password")

	rec := doJSON(t, srv, http.MethodPost, "/api/classes", token, gin.H{"name": "Kelas 7A"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Reads stay open to students.
	rec = doJSON(t, srv, http.MethodGet, "/api/classes", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClassLifecycleOverHTTP(t *testing.T) {
	srv, st := newTestServer()
	token := login(t, srv, "teacher", "password")

	// Create. The class defaults to the authenticated teacher as owner.
	rec := doJSON(t, srv, http.MethodPost, "/api/classes", token, gin.H{
		"name":        "Kelas 7A",
		"description": "Kelas pagi",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID        string `json:"id"`
		TeacherID string `json:"teacherId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "teacher-1", created.TeacherID)

	// Add a student and enroll them.
	rec = doJSON(t, srv, http.MethodPost, "/api/students", token, gin.H{
		"name":     "Siti Aminah",
		"username": "siti",
		"password": "siti123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var student struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &student))

	rec = doJSON(t, srv, http.MethodPost, "/api/classes/"+created.ID+"/enroll", token, gin.H{
		"studentId": student.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	roster := st.StudentsInClass(created.ID)
	require.Len(t, roster, 1)
	assert.Equal(t, "Siti Aminah", roster[0].Name)

	// Delete cascades; the roster endpoint then answers 404.
	rec = doJSON(t, srv, http.MethodDelete, "/api/classes/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, srv, http.MethodGet, "/api/classes/"+created.ID+"/students", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMissingClassIs404(t *testing.T) {
	srv, _ := newTestServer()
	token := login(t, srv, "teacher", "password")

	rec := doJSON(t, srv, http.MethodPut, "/api/classes/missing", token, gin.H{"name": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/classes/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnrollUnknownStudentIs404(t *testing.T) {
	srv, st := newTestServer()
	token := login(t, srv, "teacher", "password")

	cl := st.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	rec := doJSON(t, srv, http.MethodPost, "/api/classes/"+cl.ID+"/enroll", token, gin.H{
		"studentId": "missing",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceMonthParamValidation(t *testing.T) {
	srv, st := newTestServer()
	token := login(t, srv, "teacher", "password")
	cl := st.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})

	rec := doJSON(t, srv, http.MethodGet, "/api/classes/"+cl.ID+"/attendance/2024/13", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/classes/"+cl.ID+"/attendance/2024/1", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScoreValueBounds(t *testing.T) {
	srv, st := newTestServer()
	token := login(t, srv, "teacher", "password")
	cl := st.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	stu := st.AddStudent(model.Student{Name: "Siti", Username: "siti", Password: "p"})

	body := gin.H{
		"studentId": stu.ID,
		"classId":   cl.ID,
		"subject":   "Matematika",
		"value":     150,
		"date":      "2024-03-01T00:00:00Z",
	}
	rec := doJSON(t, srv, http.MethodPost, "/api/scores", token, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body["value"] = 0 // zero is a legal score, not a missing field
	rec = doJSON(t, srv, http.MethodPost, "/api/scores", token, body)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestMeEndpointsForStudent(t *testing.T) {
	srv, st := newTestServer()

	stu := st.AddStudent(model.Student{Name: "Siti", Username: "siti", Password: "siti123"})
	cl := st.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	require.NoError(t, st.Enroll(cl.ID, stu.ID))
	st.AddAnnouncement(model.Announcement{Title: "Untuk semua", Content: "x", TeacherID: "teacher-1"})

	token := login(t, srv, "siti", "siti123")

	rec := doJSON(t, srv, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), stu.ID)

	rec = doJSON(t, srv, http.MethodGet, "/api/me/classes", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), cl.ID)

	rec = doJSON(t, srv, http.MethodGet, "/api/me/announcements", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Untuk semua")
}
