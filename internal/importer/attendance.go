package importer

import (
	"io"
	"strings"
	"time"

	"anoa.com/ruangkelas/internal/model"
	"github.com/xuri/excelize/v2"
)

// ParseAttendance reads attendance rows: classId, studentId, a parseable
// date, a status out of the four-value set (case-insensitive) and an
// optional note.
func ParseAttendance(r io.Reader) ([]model.AttendanceRecord, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}

	idx := columnIndex(rows[0])
	records := make([]model.AttendanceRecord, 0, len(rows)-1)
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
		rawDate := cell(row, idx, "date")
		if rawDate == "" {
			return nil, rowError(rowNum, "Tanggal (date) tidak boleh kosong")
		}
		rawStatus := cell(row, idx, "status")
		if rawStatus == "" {
			return nil, rowError(rowNum, "Status kehadiran (status) tidak boleh kosong")
		}

		status := model.AttendanceStatus(strings.ToLower(rawStatus))
		if !status.Valid() {
			return nil, rowError(rowNum,
				"Status kehadiran tidak valid (%s). Gunakan: present, absent, sick, atau permission", rawStatus)
		}

		date, err := parseDate(rawDate)
		if err != nil {
			return nil, rowError(rowNum, "%v", err)
		}

		rec := model.AttendanceRecord{
			ClassID:   extractID(classID),
			StudentID: extractID(studentID),
			Date:      date,
			Status:    status,
		}
		if note := cell(row, idx, "note"); note != "" {
			rec.Note = &note
		}
		records = append(records, rec)
	}
	return records, nil
}

// AttendanceTemplate builds the workbook for a bulk attendance upload, one
// example row per status plus an instruction sheet.
func AttendanceTemplate(classes, students []Option) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Attendance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	rows := [][]any{
		{"classId", "studentId", "date", "status", "note"},
		{optionCell(classes, 0, "Class-ID-1"), optionCell(students, 0, "Student-ID-1"), today, "present", "Hadir tepat waktu"},
		{optionCell(classes, 0, "Class-ID-1"), optionCell(students, 1, "Student-ID-2"), today, "absent", "Tanpa keterangan"},
		{optionCell(classes, 0, "Class-ID-1"), optionCell(students, 2, "Student-ID-3"), today, "sick", "Sakit flu"},
		{optionCell(classes, 1, "Class-ID-2"), optionCell(students, 0, "Student-ID-1"), today, "permission", "Izin acara keluarga"},
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
		"Petunjuk Pengisian Template Kehadiran",
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
		"3. Kolom date: Isi dengan tanggal dalam format YYYY-MM-DD",
		"4. Kolom status: Isi dengan salah satu status berikut:",
		"   - present (Hadir)",
		"   - absent (Tidak Hadir)",
		"   - sick (Sakit)",
		"   - permission (Izin)",
		"5. Kolom note: Isi dengan catatan kehadiran (opsional)",
	)
	if err := addInstructionSheet(f, instructions); err != nil {
		return nil, err
	}
	return f, nil
}
