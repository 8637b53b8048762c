package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	enc "github.com/MrJamesThe3rd/fenestra/internal/encoding"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

var (
	ErrUnknownFormat = errors.New("no matching measurement sheet format found")
	ErrInvalidCount  = errors.New("not a positive whole number")
)

// Parser reads site-measurement CSV sheets into window drafts. The layout is
// auto-detected by matching header rows against known profiles; rows above
// the header are ignored.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]window.Draft, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	for _, comma := range delimiters() {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows, comma)
		if profile == nil {
			continue
		}

		drafts, skipped, err := parseRows(profile, cols, rows[headerIdx+1:], headerIdx+2)
		if err != nil {
			return nil, err
		}

		slog.Info("parsed measurement sheet",
			"profile", profile.Name, "charset", charset, "rows", len(drafts), "skipped", skipped)

		return drafts, nil
	}

	return nil, ErrUnknownFormat
}

func delimiters() []rune {
	var out []rune
	for _, p := range profiles {
		if !strings.ContainsRune(string(out), p.Comma) {
			out = append(out, p.Comma)
		}
	}

	return out
}

func readRows(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

// colIndex maps lowercased header names to their index in the row.
type colIndex map[string]int

func detectProfile(rows [][]string, comma rune) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if _, dup := cols[name]; name != "" && !dup {
				cols[name] = i
			}
		}

		for i := range profiles {
			if profiles[i].Comma == comma && matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows converts data rows to drafts. Rows without a usable width and
// height are skipped; unknown window types are kept as written. A count that
// is not a whole number fails the sheet. firstRow is the 1-based record
// number of rows[0], used in error messages.
func parseRows(p *Profile, cols colIndex, rows [][]string, firstRow int) ([]window.Draft, int, error) {
	var (
		drafts  []window.Draft
		skipped int
	)

	for i, row := range rows {
		if isBlank(row) {
			continue
		}

		cell := func(f field) string {
			name, ok := p.Columns[f]
			if !ok {
				return ""
			}

			idx, ok := cols[name]
			if !ok {
				return ""
			}

			return cellValue(row, idx)
		}

		width, okW := positive(cell(fieldWidth), p.DecimalComma)
		height, okH := positive(cell(fieldHeight), p.DecimalComma)

		if !okW || !okH {
			skipped++
			continue
		}

		d := window.Draft{
			Width:         &width,
			Height:        &height,
			Type:          text(cell(fieldType)),
			Name:          text(cell(fieldName)),
			Location:      text(cell(fieldLocation)),
			FrameMaterial: text(cell(fieldFrame)),
			FrameColor:    text(cell(fieldColor)),
		}

		if glass := cell(fieldGlass); glass != "" {
			glassType, thickness := window.ParseGlassOption(glass)
			d.GlassType = &glassType
			d.GlassThickness = text(thickness)
		}

		var err error

		if d.Quantity, err = count(cell(fieldQuantity), p.DecimalComma); err != nil {
			return nil, 0, fmt.Errorf("row %d: quantity: %w", firstRow+i, err)
		}

		if d.Panels, err = count(cell(fieldPanels), p.DecimalComma); err != nil {
			return nil, 0, fmt.Errorf("row %d: panels: %w", firstRow+i, err)
		}

		if v, ok := positive(cell(fieldBasePrice), p.DecimalComma); ok {
			d.BasePrice = &v
		}

		if v, ok := positive(cell(fieldSqFtPrice), p.DecimalComma); ok {
			d.SqFtPrice = &v
		}

		drafts = append(drafts, d)
	}

	return drafts, skipped, nil
}

// count reads a quantity or panel cell. An empty cell stays unset so the
// draft default applies.
func count(s string, decimalComma bool) (*int, error) {
	if s == "" {
		return nil, nil
	}

	d, err := parseNumber(s, decimalComma)
	if err != nil || !d.IsInteger() || !d.IsPositive() {
		return nil, fmt.Errorf("%q is %w", s, ErrInvalidCount)
	}

	return new(int(d.IntPart())), nil
}

func positive(s string, decimalComma bool) (float64, bool) {
	if s == "" {
		return 0, false
	}

	d, err := parseNumber(s, decimalComma)
	if err != nil || !d.IsPositive() {
		return 0, false
	}

	return d.InexactFloat64(), true
}

// text returns nil for an empty cell so the draft default applies.
func text(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
