package handler

import (
	"mime/multipart"
	"net/http"

	"anoa.com/ruangkelas/internal/importer"
	"anoa.com/ruangkelas/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportHandler bridges uploaded workbooks and the store's batch operations.
// Validation happens entirely in the importer; whatever it accepts goes to
// the store in one atomic batch, so a file with one bad row imports nothing.
type ImportHandler struct {
	store *store.Store
}

func NewImportHandler(st *store.Store) *ImportHandler {
	return &ImportHandler{store: st}
}

func openUpload(c *gin.Context) (multipart.File, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file tidak ditemukan pada permintaan"})
		return nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gagal membuka file"})
		return nil, false
	}
	return file, true
}

func (h *ImportHandler) Students(c *gin.Context) {
	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	students, err := importer.ParseStudents(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added := h.store.AddStudents(students)
	c.JSON(http.StatusOK, gin.H{"count": len(added), "data": added})
}

func (h *ImportHandler) Scores(c *gin.Context) {
	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	scores, err := importer.ParseScores(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added := h.store.AddScores(scores)
	c.JSON(http.StatusOK, gin.H{"count": len(added), "data": added})
}

func (h *ImportHandler) Attendance(c *gin.Context) {
	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	records, err := importer.ParseAttendance(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added := h.store.AddAttendanceBatch(records)
	c.JSON(http.StatusOK, gin.H{"count": len(added), "data": added})
}

func (h *ImportHandler) options() (classes, students []importer.Option) {
	for _, cl := range h.store.Classes() {
		classes = append(classes, importer.Option{ID: cl.ID, Name: cl.Name})
	}
	for _, st := range h.store.Students() {
		students = append(students, importer.Option{ID: st.ID, Name: st.Name})
	}
	return classes, students
}

func serveWorkbook(c *gin.Context, f *excelize.File, err error, filename string) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal membuat template"})
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal membuat template"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ImportHandler) StudentTemplate(c *gin.Context) {
	f, err := importer.StudentTemplate()
	serveWorkbook(c, f, err, "template_siswa.xlsx")
}

func (h *ImportHandler) ScoreTemplate(c *gin.Context) {
	classes, students := h.options()
	f, err := importer.ScoreTemplate(classes, students)
	serveWorkbook(c, f, err, "template_nilai.xlsx")
}

func (h *ImportHandler) AttendanceTemplate(c *gin.Context) {
	classes, students := h.options()
	f, err := importer.AttendanceTemplate(classes, students)
	serveWorkbook(c, f, err, "template_kehadiran.xlsx")
}
