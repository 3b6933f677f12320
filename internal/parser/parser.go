package parser

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"swiftregistry/internal/model"
	"swiftregistry/internal/reader"
)

var bicRegex = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

type SwiftBanksParser interface {
	ParseSwiftBanks(swiftBankRecords []reader.SwiftBankRecord) ([]model.SwiftBank, error)
}

// DefaultSwiftBanksParser validates raw rows and converts them to models.
// Invalid rows are logged and skipped rather than failing the whole load.
type DefaultSwiftBanksParser struct {
	log *zap.Logger
}

func NewSwiftBanksParser(log *zap.Logger) SwiftBanksParser {
	return &DefaultSwiftBanksParser{log: log}
}

func (p *DefaultSwiftBanksParser) ParseSwiftBanks(swiftBankRecords []reader.SwiftBankRecord) ([]model.SwiftBank, error) {
	var banks []model.SwiftBank
	seen := make(map[string]bool)

	for _, record := range swiftBankRecords {
		swiftCode := strings.ToUpper(record.SwiftCode)
		countryISO2 := strings.ToUpper(record.CountryISO2)

		if swiftCode == "" {
			p.log.Warn("skipping row: empty swift code", zap.Int("index", record.Index))
			continue
		}
		if !bicRegex.MatchString(swiftCode) {
			p.log.Warn("skipping row: swift code does not match BIC format",
				zap.Int("index", record.Index), zap.String("swiftCode", record.SwiftCode))
			continue
		}
		if record.BankName == "" {
			p.log.Warn("skipping row: empty bank name",
				zap.Int("index", record.Index), zap.String("swiftCode", swiftCode))
			continue
		}
		if len(record.BankName) > 255 {
			p.log.Warn("skipping row: bank name exceeds maximum length",
				zap.Int("index", record.Index), zap.String("swiftCode", swiftCode))
			continue
		}
		if !countryCodeRegex.MatchString(countryISO2) {
			p.log.Warn("skipping row: country code does not match ISO2 format",
				zap.Int("index", record.Index), zap.String("countryISO2", record.CountryISO2))
			continue
		}
		if record.CountryName == "" {
			p.log.Warn("skipping row: empty country name",
				zap.Int("index", record.Index), zap.String("swiftCode", swiftCode))
			continue
		}
		if seen[swiftCode] {
			p.log.Warn("skipping row: duplicate swift code",
				zap.Int("index", record.Index), zap.String("swiftCode", swiftCode))
			continue
		}
		seen[swiftCode] = true

		banks = append(banks, model.SwiftBank{
			SwiftCode:      swiftCode,
			SwiftCodeBase:  swiftCode[:8],
			CountryISO2:    countryISO2,
			BankName:       record.BankName,
			IsHeadquarters: strings.HasSuffix(swiftCode, "XXX"),
			Address:        strings.TrimSpace(record.Address),
			CountryName:    record.CountryName,
		})
	}

	// Headquarters first, then by code
	sort.SliceStable(banks, func(i, j int) bool {
		if banks[i].IsHeadquarters != banks[j].IsHeadquarters {
			return banks[i].IsHeadquarters
		}
		return banks[i].SwiftCode < banks[j].SwiftCode
	})

	return banks, nil
}
