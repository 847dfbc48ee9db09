package xlsximport

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Sloozu/SchoolManagerCase/types"
)

// buildWorkbook creates an in-memory roster workbook from sheet rows.
func buildWorkbook(t *testing.T, sheets map[string][][]any) io.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}

		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return bytes.NewReader(buf.Bytes())
}

func validSheets() map[string][][]any {
	return map[string][][]any{
		ClassesSheet: {
			{"id", "name", "teacher", "max pupils"},
			{1, "A", "Smith", 2},
			{2, "B", "Jones", 3},
		},
		PupilsSheet: {
			{"id", "name", "class name"},
			{10, "Zoe", "A"},
			{11, "Amy", ""},
		},
	}
}

func TestLoad(t *testing.T) {
	t.Run("imports classes and pupils", func(t *testing.T) {
		state, err := Load(buildWorkbook(t, validSheets()))

		require.NoError(t, err)
		require.Equal(t, []types.Class{
			{ID: 1, Name: "A", Teacher: "Smith", MaxPupils: 2},
			{ID: 2, Name: "B", Teacher: "Jones", MaxPupils: 3},
		}, state.Classes)
		require.Equal(t, []types.Pupil{
			{ID: 10, Name: "Zoe", ClassName: "A"},
			{ID: 11, Name: "Amy"},
		}, state.Pupils)
	})

	t.Run("skips fully empty rows", func(t *testing.T) {
		sheets := validSheets()
		sheets[PupilsSheet] = append(sheets[PupilsSheet], []any{"", "", ""}, []any{12, "Bob", "B"})

		state, err := Load(buildWorkbook(t, sheets))

		require.NoError(t, err)
		require.Len(t, state.Pupils, 3)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := Load(bytes.NewReader([]byte("not a workbook")))
		require.Error(t, err)
	})

	t.Run("requires both sheets", func(t *testing.T) {
		sheets := validSheets()
		delete(sheets, PupilsSheet)

		_, err := Load(buildWorkbook(t, sheets))

		require.ErrorIs(t, err, ErrMissingSheet)
	})

	t.Run("rejects non-numeric class id", func(t *testing.T) {
		sheets := validSheets()
		sheets[ClassesSheet][1][0] = "one"

		_, err := Load(buildWorkbook(t, sheets))

		require.ErrorIs(t, err, ErrMalformedRow)
		require.ErrorContains(t, err, "row 2")
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		sheets := validSheets()
		sheets[ClassesSheet][1][3] = 0

		_, err := Load(buildWorkbook(t, sheets))

		require.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("rejects empty pupil name", func(t *testing.T) {
		sheets := validSheets()
		sheets[PupilsSheet][1][1] = "  "

		_, err := Load(buildWorkbook(t, sheets))

		require.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("rejects duplicate pupil ids", func(t *testing.T) {
		sheets := validSheets()
		sheets[PupilsSheet] = append(sheets[PupilsSheet], []any{10, "Impostor", "B"})

		_, err := Load(buildWorkbook(t, sheets))

		require.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("rejects duplicate class ids", func(t *testing.T) {
		sheets := validSheets()
		sheets[ClassesSheet] = append(sheets[ClassesSheet], []any{1, "C", "Lee", 4})

		_, err := Load(buildWorkbook(t, sheets))

		require.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("rejects duplicate class names", func(t *testing.T) {
		sheets := validSheets()
		sheets[ClassesSheet] = append(sheets[ClassesSheet], []any{3, "A", "Lee", 4})

		_, err := Load(buildWorkbook(t, sheets))

		require.ErrorIs(t, err, ErrDuplicateName)
		require.ErrorContains(t, err, `"A"`)
	})

	t.Run("rejects pupil referencing an undeclared class", func(t *testing.T) {
		sheets := validSheets()
		sheets[PupilsSheet] = append(sheets[PupilsSheet], []any{12, "Bob", "Z"})

		_, err := Load(buildWorkbook(t, sheets))

		require.ErrorIs(t, err, ErrUnknownClass)
		require.ErrorContains(t, err, `"Z"`)
		require.ErrorContains(t, err, "row 4")
	})
}
