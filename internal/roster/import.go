package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// RowError is one invalid CSV row. Row errors are collected, not fatal;
// the rest of the file keeps processing.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Message)
}

type ImportResult struct {
	Records []*domain.StaffRecord `json:"records"`
	Errors  []RowError            `json:"errors"`
}

var truthyTokens = map[string]bool{"true": true, "1": true, "yes": true}
var falsyTokens = map[string]bool{"false": true, "0": true, "no": true, "": true}

// Import reads a staff roster CSV. The header row is required and must
// contain a "name" column; "is_under_18" is optional. Returned row errors
// are advisory; a non-nil error means the file itself was unreadable.
func Import(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("roster file is empty, header row required")
		}
		return nil, err
	}

	nameIdx, under18Idx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameIdx = i
		case "is_under_18":
			under18Idx = i
		}
	}
	if nameIdx == -1 {
		return nil, errors.New(`roster header is missing the required "name" column`)
	}

	result := &ImportResult{
		Records: make([]*domain.StaffRecord, 0),
		Errors:  make([]RowError, 0),
	}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}

		if nameIdx >= len(row) || strings.TrimSpace(row[nameIdx]) == "" {
			result.Errors = append(result.Errors, RowError{Line: line, Message: "missing required field name"})
			continue
		}

		record := &domain.StaffRecord{
			Name: strings.TrimSpace(row[nameIdx]),
		}

		if under18Idx != -1 && under18Idx < len(row) {
			token := strings.ToLower(strings.TrimSpace(row[under18Idx]))
			switch {
			case truthyTokens[token]:
				record.IsUnder18 = true
			case falsyTokens[token]:
				record.IsUnder18 = false
			default:
				result.Errors = append(result.Errors, RowError{
					Line:    line,
					Message: fmt.Sprintf("bad boolean token %q for is_under_18", row[under18Idx]),
				})
				continue
			}
		}

		result.Records = append(result.Records, record)
	}

	return result, nil
}
