package importer

import (
	"io"

	"anoa.com/ruangkelas/internal/model"
	"github.com/xuri/excelize/v2"
)

// ParseStudents reads student rows: name, username and password, all
// required. The returned students carry no ids; the store assigns those.
func ParseStudents(r io.Reader) ([]model.Student, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}

	idx := columnIndex(rows[0])
	students := make([]model.Student, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2 // data starts below the header row

		name := cell(row, idx, "name")
		username := cell(row, idx, "username")
		password := cell(row, idx, "password")
		if name == "" || username == "" || password == "" {
			return nil, rowError(rowNum, "Data siswa tidak lengkap (name, username, password)")
		}

		students = append(students, model.Student{
			Name:     name,
			Username: username,
			Password: password,
		})
	}
	return students, nil
}

// StudentTemplate builds the workbook teachers fill in for a bulk student
// upload: a header row plus example rows.
func StudentTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Students"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"name", "username", "password"},
		{"John Doe", "johndoe", "password123"},
		{"Jane Doe", "janedoe", "password456"},
		{"Siti Aminah", "siti", "siti123"},
		{"Budi Santoso", "budi", "budi456"},
		{"Dewi Kartika", "dewi", "dewi789"},
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
	return f, nil
}
