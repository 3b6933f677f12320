package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"swiftregistry/internal/reader"
)

// SwiftBanksReader reads raw bank rows from a CSV export of the SWIFT
// directory. Columns are located by header name, extra columns (TOWN NAME,
// TIME ZONE, ...) are ignored.
type SwiftBanksReader struct {
}

var requiredColumns = []string{"COUNTRY ISO2 CODE", "SWIFT CODE", "NAME", "ADDRESS", "COUNTRY NAME"}

func (c *SwiftBanksReader) LoadSwiftBanks(r io.Reader) ([]reader.SwiftBankRecord, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return []reader.SwiftBankRecord{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	headerMap := map[string]int{}
	for i, col := range header {
		headerMap[strings.TrimSpace(strings.ToUpper(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("invalid header: missing column '%s'", col)
		}
	}

	var records []reader.SwiftBankRecord
	rowNum := 1
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		if len(row) < len(header) {
			return nil, fmt.Errorf("row %d: invalid length", rowNum)
		}

		getVal := func(field string) string {
			return strings.TrimSpace(row[headerMap[field]])
		}

		records = append(records, reader.SwiftBankRecord{
			Index:       rowNum,
			SwiftCode:   getVal("SWIFT CODE"),
			BankName:    getVal("NAME"),
			CountryISO2: getVal("COUNTRY ISO2 CODE"),
			Address:     getVal("ADDRESS"),
			CountryName: getVal("COUNTRY NAME"),
		})
		rowNum++
	}

	return records, nil
}
