package reader

import (
	"io"
)

// SwiftBankRecord is one raw spreadsheet row before validation.
type SwiftBankRecord struct {
	Index       int
	CountryISO2 string // COUNTRY ISO2 CODE
	SwiftCode   string // SWIFT CODE
	BankName    string // NAME
	Address     string // ADDRESS
	CountryName string // COUNTRY NAME
}

// SwiftBanksReader defines the interface for reading raw bank rows
type SwiftBanksReader interface {
	LoadSwiftBanks(reader io.Reader) ([]SwiftBankRecord, error)
}
