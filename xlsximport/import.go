// Package xlsximport bootstraps roster snapshots from Excel workbooks.
//
// Schools typically maintain their rosters in spreadsheets; this package
// turns such a workbook into a types.State. The workbook must contain two
// sheets:
//
//   - "Classes": columns id, name, teacher, max pupils (first row is a header)
//   - "Pupils": columns id, name, class name (first row is a header; the
//     class name may be empty for pupils not yet assigned)
//
// The imported state carries no derived fields (pupil counts and follow-up
// numbers are zero). Run Processor.Apply with an empty request afterwards to
// validate the roster and compute them:
//
//	state, err := xlsximport.Load(file)
//	if err != nil {
//	    return err
//	}
//	state, err = proc.Apply(state, nil) // derive counts and numbering
package xlsximport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Sloozu/SchoolManagerCase/types"
)

// Sheet names expected in the workbook.
const (
	ClassesSheet = "Classes"
	PupilsSheet  = "Pupils"
)

// Load reads a roster workbook and returns the raw snapshot.
//
// Rows that are entirely empty are skipped; rows with missing or
// non-numeric required cells fail the whole import with ErrMalformedRow so a
// half-read roster is never returned. Class names must be unique, and a
// pupil's class name (when present) must match a row of the Classes sheet.
//
// Parameters:
//   - r: Workbook content (.xlsx)
//
// Returns:
//   - *types.State: Imported roster with derived fields left at zero
//   - error: ErrMissingSheet, ErrMalformedRow, ErrDuplicateID,
//     ErrDuplicateName or ErrUnknownClass (wrapped), or an excelize read
//     error
func Load(r io.Reader) (*types.State, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	classes, err := readClasses(f)
	if err != nil {
		return nil, err
	}

	classNames := make(map[string]bool, len(classes))
	for _, c := range classes {
		classNames[c.Name] = true
	}

	pupils, err := readPupils(f, classNames)
	if err != nil {
		return nil, err
	}

	return &types.State{Pupils: pupils, Classes: classes}, nil
}

func readClasses(f *excelize.File) ([]types.Class, error) {
	rows, err := f.GetRows(ClassesSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, ClassesSheet)
	}

	classes := make([]types.Class, 0, len(rows))
	seen := make(map[int64]bool, len(rows))
	seenNames := make(map[string]bool, len(rows))

	// Row 0 is the header.
	for i, row := range rows[min(1, len(rows)):] {
		rowNum := i + 2 // 1-based, after the header
		if emptyRow(row) {
			continue
		}

		if len(row) < 4 {
			return nil, fmt.Errorf("%w: %s row %d: expected id, name, teacher, max pupils", ErrMalformedRow, ClassesSheet, rowNum)
		}

		id, err := parseID(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %w", ErrMalformedRow, ClassesSheet, rowNum, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %s row %d: class id %d", ErrDuplicateID, ClassesSheet, rowNum, id)
		}
		seen[id] = true

		name := strings.TrimSpace(row[1])
		if name == "" {
			return nil, fmt.Errorf("%w: %s row %d: empty class name", ErrMalformedRow, ClassesSheet, rowNum)
		}
		if seenNames[name] {
			return nil, fmt.Errorf("%w: %s row %d: class name %q", ErrDuplicateName, ClassesSheet, rowNum, name)
		}
		seenNames[name] = true

		maxPupils, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil || maxPupils <= 0 {
			return nil, fmt.Errorf("%w: %s row %d: invalid max pupils %q", ErrMalformedRow, ClassesSheet, rowNum, row[3])
		}

		classes = append(classes, types.Class{
			ID:        id,
			Name:      name,
			Teacher:   strings.TrimSpace(row[2]),
			MaxPupils: maxPupils,
		})
	}

	return classes, nil
}

func readPupils(f *excelize.File, classNames map[string]bool) ([]types.Pupil, error) {
	rows, err := f.GetRows(PupilsSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, PupilsSheet)
	}

	pupils := make([]types.Pupil, 0, len(rows))
	seen := make(map[int64]bool, len(rows))

	for i, row := range rows[min(1, len(rows)):] {
		rowNum := i + 2
		if emptyRow(row) {
			continue
		}

		if len(row) < 2 {
			return nil, fmt.Errorf("%w: %s row %d: expected id, name, class name", ErrMalformedRow, PupilsSheet, rowNum)
		}

		id, err := parseID(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %w", ErrMalformedRow, PupilsSheet, rowNum, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %s row %d: pupil id %d", ErrDuplicateID, PupilsSheet, rowNum, id)
		}
		seen[id] = true

		name := strings.TrimSpace(row[1])
		if name == "" {
			return nil, fmt.Errorf("%w: %s row %d: empty pupil name", ErrMalformedRow, PupilsSheet, rowNum)
		}

		pupil := types.Pupil{ID: id, Name: name}
		if len(row) > 2 {
			pupil.ClassName = strings.TrimSpace(row[2])
		}
		if pupil.ClassName != "" && !classNames[pupil.ClassName] {
			return nil, fmt.Errorf("%w: %s row %d: class name %q", ErrUnknownClass, PupilsSheet, rowNum, pupil.ClassName)
		}
		pupils = append(pupils, pupil)
	}

	return pupils, nil
}

func parseID(cell string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", cell)
	}

	return id, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
