package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"swiftregistry/internal/model"
	"swiftregistry/internal/repository"
)

var (
	ErrNotFound            = errors.New("swift code not found")
	ErrInvalidInput        = errors.New("invalid input provided")
	ErrAlreadyExists       = errors.New("swift code already exists")
	ErrHeadquarterMismatch = errors.New("isHeadquarters flag does not match swift code suffix")
	ErrCountryConflict     = errors.New("country name conflicts with existing entries for this ISO2 code")
)

// SWIFT code validation regex
var swiftCodeRegex = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// SwiftService handles business logic for SWIFT codes
type SwiftService interface {
	GetSwiftCodeDetails(ctx context.Context, code string) (*repository.SwiftBankDetail, error)
	GetSwiftCodesByCountry(ctx context.Context, countryCode string) (*repository.CountrySwiftCodes, error)
	CreateSwiftCode(ctx context.Context, bank *model.SwiftBank) error
	DeleteSwiftCode(ctx context.Context, code string) error
}

// swiftService implements SwiftService
type swiftService struct {
	repo repository.SwiftRepository
}

// NewSwiftService creates a new instance of the Swift service
func NewSwiftService(repo repository.SwiftRepository) SwiftService {
	return &swiftService{repo: repo}
}

// GetSwiftCodeDetails retrieves detailed info for a SWIFT code
func (s *swiftService) GetSwiftCodeDetails(ctx context.Context, code string) (*repository.SwiftBankDetail, error) {
	if !swiftCodeRegex.MatchString(strings.ToUpper(code)) {
		return nil, ErrInvalidInput
	}

	bank, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return bank, nil
}

// GetSwiftCodesByCountry retrieves all SWIFT codes for a country
func (s *swiftService) GetSwiftCodesByCountry(ctx context.Context, countryCode string) (*repository.CountrySwiftCodes, error) {
	if !countryCodeRegex.MatchString(strings.ToUpper(countryCode)) {
		return nil, ErrInvalidInput
	}

	codes, err := s.repo.GetByCountry(ctx, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return codes, nil
}

// CreateSwiftCode adds a new SWIFT code to the database
func (s *swiftService) CreateSwiftCode(ctx context.Context, bank *model.SwiftBank) error {
	bank.SwiftCode = strings.ToUpper(bank.SwiftCode)
	bank.CountryISO2 = strings.ToUpper(bank.CountryISO2)

	if !swiftCodeRegex.MatchString(bank.SwiftCode) {
		return ErrInvalidInput
	}
	if !countryCodeRegex.MatchString(bank.CountryISO2) {
		return ErrInvalidInput
	}
	if bank.BankName == "" {
		return ErrInvalidInput
	}
	if bank.CountryName == "" {
		return ErrInvalidInput
	}

	// Headquarters codes end with XXX, branch codes must not. The declared
	// flag has to agree with the code.
	if bank.IsHeadquarters != strings.HasSuffix(bank.SwiftCode, "XXX") {
		return ErrHeadquarterMismatch
	}

	// A country keeps the name it was first stored under.
	storedName, err := s.repo.CountryName(ctx, bank.CountryISO2)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// first entry for this country
	case err != nil:
		return err
	case storedName != bank.CountryName:
		return ErrCountryConflict
	}

	if bank.SwiftCodeBase == "" {
		bank.SwiftCodeBase = bank.SwiftCode[:8]
	}

	err = s.repo.Create(ctx, bank)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

// DeleteSwiftCode removes a SWIFT code from the database
func (s *swiftService) DeleteSwiftCode(ctx context.Context, code string) error {
	if !swiftCodeRegex.MatchString(strings.ToUpper(code)) {
		return ErrInvalidInput
	}

	err := s.repo.Delete(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
