package model

// SwiftBank represents a single entry in the swift_banks table.
type SwiftBank struct {
	SwiftCode      string `json:"swiftCode" db:"swift_code"`
	SwiftCodeBase  string `json:"-" db:"swift_code_base"`
	BankName       string `json:"bankName" db:"bank_name"`
	Address        string `json:"address" db:"address"`
	CountryISO2    string `json:"countryISO2" db:"country_iso_code"`
	CountryName    string `json:"countryName" db:"country_name"`
	IsHeadquarters bool   `json:"isHeadquarters" db:"is_headquarter"`
}
