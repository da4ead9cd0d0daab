package importer

import (
	"io"
	"strconv"
	"time"

	"anoa.com/ruangkelas/internal/model"
	"github.com/xuri/excelize/v2"
)

// ParseScores reads score rows: classId, studentId, subject, a numeric value
// within [0,100] and a parseable date. Out-of-range values are rejected here;
// the store does not re-check them.
func ParseScores(r io.Reader) ([]model.Score, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}

	idx := columnIndex(rows[0])
	scores := make([]model.Score, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2

		classID := cell(row, idx, "classId")
		if classID == "" {
			return nil, rowError(rowNum, "ID Kelas (classId) tidak boleh kosong")
		}
		studentID := cell(row, idx, "studentId")
		if studentID == "" {
			return nil, rowError(rowNum, "ID Siswa (studentId) tidak boleh kosong")
		}
		subject := cell(row, idx, "subject")
		if subject == "" {
			return nil, rowError(rowNum, "Mata Pelajaran (subject) tidak boleh kosong")
		}
		rawValue := cell(row, idx, "value")
		if rawValue == "" {
			return nil, rowError(rowNum, "Nilai (value) tidak boleh kosong")
		}
		rawDate := cell(row, idx, "date")
		if rawDate == "" {
			return nil, rowError(rowNum, "Tanggal (date) tidak boleh kosong")
		}

		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return nil, rowError(rowNum, "Nilai harus berupa angka (%s)", rawValue)
		}
		if value < 0 || value > 100 {
			return nil, rowError(rowNum, "Nilai harus antara 0 dan 100 (%v)", value)
		}

		date, err := parseDate(rawDate)
		if err != nil {
			return nil, rowError(rowNum, "%v", err)
		}

		scores = append(scores, model.Score{
			ClassID:   extractID(classID),
			StudentID: extractID(studentID),
			Subject:   subject,
			Value:     value,
			Date:      date,
		})
	}
	return scores, nil
}

// ScoreTemplate builds the workbook for a bulk score upload: a header row,
// example rows seeded with real class and student ids when available, and an
// instruction sheet listing every valid id.
func ScoreTemplate(classes, students []Option) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Scores"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	rows := [][]any{
		{"classId", "studentId", "subject", "value", "date"},
		{optionCell(classes, 0, "Class-ID-1"), optionCell(students, 0, "Student-ID-1"), "Matematika", 85, today},
		{optionCell(classes, 0, "Class-ID-1"), optionCell(students, 1, "Student-ID-2"), "Bahasa Indonesia", 78, today},
		{optionCell(classes, 0, "Class-ID-1"), optionCell(students, 2, "Student-ID-3"), "IPA", 92, today},
		{optionCell(classes, 1, "Class-ID-2"), optionCell(students, 0, "Student-ID-1"), "IPS", 88, today},
		{optionCell(classes, 1, "Class-ID-2"), optionCell(students, 1, "Student-ID-2"), "Pendidikan Agama", 95, today},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return nil, err
		}
	}

	instructions := []string{
		"Petunjuk Pengisian Template Nilai",
		"",
		"1. Kolom classId: Gunakan ID kelas dari daftar berikut:",
	}
	for _, c := range classes {
		instructions = append(instructions, "   - "+c.Name+": "+c.ID)
	}
	instructions = append(instructions, "", "2. Kolom studentId: Gunakan ID siswa dari daftar berikut:")
	for _, s := range students {
		instructions = append(instructions, "   - "+s.Name+": "+s.ID)
	}
	instructions = append(instructions,
		"",
		"3. Kolom subject: Isi dengan nama mata pelajaran",
		"4. Kolom value: Isi dengan nilai (0-100)",
		"5. Kolom date: Isi dengan tanggal dalam format YYYY-MM-DD",
	)
	if err := addInstructionSheet(f, instructions); err != nil {
		return nil, err
	}
	return f, nil
}
