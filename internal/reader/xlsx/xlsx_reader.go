package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"swiftregistry/internal/reader"
)

// SwiftBanksReader reads raw bank rows from the first sheet of an Excel
// workbook, the format the SWIFT directory is distributed in. Columns are
// located by header name.
type SwiftBanksReader struct {
}

var requiredColumns = []string{"COUNTRY ISO2 CODE", "SWIFT CODE", "NAME", "ADDRESS", "COUNTRY NAME"}

func (x *SwiftBanksReader) LoadSwiftBanks(r io.Reader) ([]reader.SwiftBankRecord, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []reader.SwiftBankRecord{}, nil
	}

	headerMap := map[string]int{}
	for i, col := range rows[0] {
		headerMap[strings.TrimSpace(strings.ToUpper(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("invalid header: missing column '%s'", col)
		}
	}

	var records []reader.SwiftBankRecord
	for rowNum, row := range rows[1:] {
		// GetRows trims trailing empty cells
		getVal := func(field string) string {
			idx := headerMap[field]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, reader.SwiftBankRecord{
			Index:       rowNum + 1,
			SwiftCode:   getVal("SWIFT CODE"),
			BankName:    getVal("NAME"),
			CountryISO2: getVal("COUNTRY ISO2 CODE"),
			Address:     getVal("ADDRESS"),
			CountryName: getVal("COUNTRY NAME"),
		})
	}

	return records, nil
}
