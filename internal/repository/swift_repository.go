package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"swiftregistry/internal/database"
	"swiftregistry/internal/model"
)

var (
	ErrNotFound  = errors.New("swift code not found")
	ErrDuplicate = errors.New("swift code already exists")
)

// SwiftBankDetail is a single bank entry with its branch entries when the
// bank is a headquarters.
type SwiftBankDetail struct {
	model.SwiftBank
	Branches []model.SwiftBank `json:"branches,omitempty"`
}

// CountrySwiftCodes holds all SWIFT codes for a specific country
type CountrySwiftCodes struct {
	CountryISO2 string            `json:"countryISO2"`
	CountryName string            `json:"countryName"`
	SwiftCodes  []model.SwiftBank `json:"swiftCodes"`
}

// SwiftRepository defines the interface for SWIFT code data operations
type SwiftRepository interface {
	GetByCode(ctx context.Context, code string) (*SwiftBankDetail, error)
	GetByCountry(ctx context.Context, countryCode string) (*CountrySwiftCodes, error)
	Create(ctx context.Context, bank *model.SwiftBank) error
	CreateBatch(ctx context.Context, banks []*model.SwiftBank) error
	Delete(ctx context.Context, code string) error
	Count(ctx context.Context) (int64, error)
	CountryName(ctx context.Context, countryCode string) (string, error)
}

// SQLSwiftRepository implements SwiftRepository over database/sql
type SQLSwiftRepository struct {
	db    *sql.DB
	table string
}

// NewSQLSwiftRepository creates a new repository instance
func NewSQLSwiftRepository(db *database.Database) SwiftRepository {
	return &SQLSwiftRepository{db: db.DB, table: db.Config.TableRef()}
}

const batchSize = 100

const bankColumns = "swift_code, swift_code_base, country_iso_code, bank_name, is_headquarter, address, country_name"

// Create adds a single SWIFT bank to the database
func (r *SQLSwiftRepository) Create(ctx context.Context, bank *model.SwiftBank) error {
	if err := r.checkDuplicate(ctx, bank.SwiftCode); err != nil {
		return err
	}

	bank.SwiftCode = strings.ToUpper(bank.SwiftCode)
	bank.CountryISO2 = strings.ToUpper(bank.CountryISO2)
	if bank.SwiftCodeBase == "" {
		bank.SwiftCodeBase = bank.SwiftCode[:8]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?)", r.table, bankColumns)
	_, err := r.db.ExecContext(ctx, query,
		bank.SwiftCode,
		bank.SwiftCodeBase,
		bank.CountryISO2,
		bank.BankName,
		bank.IsHeadquarters,
		bank.Address,
		bank.CountryName,
	)
	if err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	return nil
}

// CreateBatch inserts multiple SWIFT banks in batches using parameterized queries
func (r *SQLSwiftRepository) CreateBatch(ctx context.Context, banks []*model.SwiftBank) error {
	if len(banks) == 0 {
		return nil
	}

	for i := 0; i < len(banks); i += batchSize {
		endIdx := i + batchSize
		if endIdx > len(banks) {
			endIdx = len(banks)
		}
		batch := banks[i:endIdx]

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", r.table, bankColumns))
		placeholders := make([]string, 0, len(batch))
		args := make([]interface{}, 0, len(batch)*7)

		for _, bank := range batch {
			bank.SwiftCode = strings.ToUpper(bank.SwiftCode)
			bank.CountryISO2 = strings.ToUpper(bank.CountryISO2)
			if bank.SwiftCodeBase == "" {
				bank.SwiftCodeBase = bank.SwiftCode[:8]
			}

			placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?)")
			args = append(args,
				bank.SwiftCode,
				bank.SwiftCodeBase,
				bank.CountryISO2,
				bank.BankName,
				bank.IsHeadquarters,
				bank.Address,
				bank.CountryName,
			)
		}

		sb.WriteString(strings.Join(placeholders, ","))

		if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
			return fmt.Errorf("batch insert failed for rows %d-%d: %w", i+1, endIdx, err)
		}
	}

	return nil
}

// GetByCode retrieves a SWIFT bank and its branches if it's a headquarters
func (r *SQLSwiftRepository) GetByCode(ctx context.Context, code string) (*SwiftBankDetail, error) {
	bank, err := r.getBankByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}

	result := &SwiftBankDetail{SwiftBank: *bank}

	if bank.IsHeadquarters {
		branches, err := r.getBranchesByBase(ctx, bank.SwiftCodeBase, bank.SwiftCode)
		if err != nil {
			return nil, fmt.Errorf("fetch branches failed: %w", err)
		}
		result.Branches = branches
	}

	return result, nil
}

// GetByCountry retrieves all SWIFT banks for a country
func (r *SQLSwiftRepository) GetByCountry(ctx context.Context, countryCode string) (*CountrySwiftCodes, error) {
	countryCode = strings.ToUpper(countryCode)
	countryName, err := r.CountryName(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE country_iso_code = ? ORDER BY swift_code", bankColumns, r.table)
	rows, err := r.db.QueryContext(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	result := &CountrySwiftCodes{
		CountryISO2: countryCode,
		CountryName: countryName,
	}

	for rows.Next() {
		bank, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		result.SwiftCodes = append(result.SwiftCodes, *bank)
	}

	return result, rows.Err()
}

// Delete removes a SWIFT bank from the database
func (r *SQLSwiftRepository) Delete(ctx context.Context, code string) error {
	code = strings.ToUpper(code)
	if err := r.checkExists(ctx, code); err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE swift_code = ?", r.table)
	if _, err := r.db.ExecContext(ctx, query, code); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	return nil
}

// Count returns the number of stored SWIFT codes
func (r *SQLSwiftRepository) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table)
	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return count, nil
}

// CountryName returns the country name stored for an ISO2 code, or
// ErrNotFound when no entry for that country exists.
func (r *SQLSwiftRepository) CountryName(ctx context.Context, countryCode string) (string, error) {
	query := fmt.Sprintf("SELECT country_name FROM %s WHERE country_iso_code = ? LIMIT 1", r.table)
	var countryName string
	err := r.db.QueryRowContext(ctx, query, strings.ToUpper(countryCode)).Scan(&countryName)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query failed: %w", err)
	}
	return countryName, nil
}

// Helper methods

func (r *SQLSwiftRepository) getBankByCode(ctx context.Context, code string) (*model.SwiftBank, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE swift_code = ?", bankColumns, r.table)
	row := r.db.QueryRowContext(ctx, query, code)
	bank, err := scanBank(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return bank, nil
}

func (r *SQLSwiftRepository) getBranchesByBase(ctx context.Context, base, hqCode string) ([]model.SwiftBank, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE swift_code_base = ? AND swift_code != ? ORDER BY swift_code", bankColumns, r.table)
	rows, err := r.db.QueryContext(ctx, query, base, hqCode)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var branches []model.SwiftBank
	for rows.Next() {
		branch, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		branches = append(branches, *branch)
	}

	return branches, rows.Err()
}

func (r *SQLSwiftRepository) checkDuplicate(ctx context.Context, code string) error {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE swift_code = ? LIMIT 1", r.table)
	var exists int
	err := r.db.QueryRowContext(ctx, query, strings.ToUpper(code)).Scan(&exists)
	if err == nil {
		return ErrDuplicate
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check duplicate failed: %w", err)
	}
	return nil
}

func (r *SQLSwiftRepository) checkExists(ctx context.Context, code string) error {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE swift_code = ? LIMIT 1", r.table)
	var exists int
	err := r.db.QueryRowContext(ctx, query, code).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check exists failed: %w", err)
	}
	return nil
}

func scanBank(scanner interface {
	Scan(dest ...any) error
}) (*model.SwiftBank, error) {
	var bank model.SwiftBank

	err := scanner.Scan(
		&bank.SwiftCode,
		&bank.SwiftCodeBase,
		&bank.CountryISO2,
		&bank.BankName,
		&bank.IsHeadquarters,
		&bank.Address,
		&bank.CountryName,
	)
	if err != nil {
		return nil, err
	}

	return &bank, nil
}
