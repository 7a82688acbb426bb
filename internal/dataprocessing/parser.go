package dataprocessing

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "lemcli/internal/errors"
	"lemcli/pkg/contracts/domain"
)

// SheetReader turns one worksheet into RawRows keyed by the header row
type SheetReader struct {
	logger *slog.Logger
}

// NewSheetReader creates a reader
func NewSheetReader(logger *slog.Logger) *SheetReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &SheetReader{logger: logger.With(slog.String("component", "sheet_reader"))}
}

// ReadFile reads sheet from the workbook at path.
// Blank header cells drop their column; rows with no value at all are skipped.
func (r *SheetReader) ReadFile(path, sheet string) ([]domain.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.SourceNotFound(path, err)
		}
		return nil, apperrors.SourceUnreadable(path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx == -1 {
		r.logger.Error("Sheet not found",
			slog.String("sheet", sheet),
			slog.Any("available", f.GetSheetList()))
		return nil, apperrors.SheetNotFound(path, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.SourceUnreadable(path, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.HeaderMissing(path, sheet)
	}

	cells := newCellDecoder(f, sheet)

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	r.logger.Info("Reading sheet",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("columns", len(header)),
		slog.Int("total_rows", len(rows)-1))

	result := make([]domain.RawRow, 0, len(rows)-1)
	skipped := 0
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			skipped++
			continue
		}

		raw := make(domain.RawRow, len(header))
		for col, name := range header {
			if name == "" {
				continue
			}
			var text string
			if col < len(row) {
				text = row[col]
			}
			raw[name] = cells.decode(col+1, i+1, text)
		}
		result = append(result, raw)
	}

	r.logger.Info("Sheet read complete",
		slog.Int("rows", len(result)),
		slog.Int("blank_rows_skipped", skipped))

	return result, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellDecoder recovers typed values from excelize's raw cell text using the
// cell type and, for plain numbers, the number format of the cell style.
type cellDecoder struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func newCellDecoder(f *excelize.File, sheet string) *cellDecoder {
	d := &cellDecoder{f: f, sheet: sheet, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

func (d *cellDecoder) decode(col, row int, text string) domain.Value {
	if text == "" {
		return domain.Null()
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return domain.StringValue(text)
	}

	typ, err := d.f.GetCellType(d.sheet, cell)
	if err != nil {
		return domain.StringValue(text)
	}

	switch typ {
	case excelize.CellTypeBool:
		return domain.BoolValue(text == "1" || strings.EqualFold(text, "true"))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return domain.StringValue(text)
	case excelize.CellTypeDate:
		if t, ok := parseISODate(text); ok {
			return domain.TimeValue(t)
		}
		return domain.StringValue(text)
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return domain.StringValue(text)
	}
	if d.isDateCell(cell) {
		if t, err := excelize.ExcelDateToTime(n, d.date1904); err == nil {
			return domain.TimeValue(t)
		}
	}
	return domain.NumberValue(n)
}

func (d *cellDecoder) isDateCell(cell string) bool {
	styleID, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := d.dateStyles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	d.dateStyles[styleID] = isDate
	return isDate
}

// isDateNumFmt reports whether a number format renders a date or time.
// Built-in ids follow ECMA-376 18.8.30 plus the CJK date ids.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	return false
}

func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket, escaped := false, false, false
	for _, c := range code {
		switch {
		case escaped:
			escaped = false
		case c == '\\', c == '_', c == '*':
			// \x literal, _x padding and *x fill all consume the next character
			escaped = true
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '[':
			inBracket = true
		case c == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(c)
		}
	}
	stripped := strings.ToLower(b.String())
	if strings.Contains(stripped, "general") {
		return false
	}
	return strings.ContainsAny(stripped, "ymdhs")
}

var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999",
	"2006-01-02",
}

func parseISODate(text string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
