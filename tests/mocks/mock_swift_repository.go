package mocks

import (
	"context"

	"swiftregistry/internal/model"
	"swiftregistry/internal/repository"
)

// MockSwiftRepository implements the SwiftRepository interface for testing
type MockSwiftRepository struct {
	GetByCodeFunc    func(ctx context.Context, code string) (*repository.SwiftBankDetail, error)
	GetByCountryFunc func(ctx context.Context, countryCode string) (*repository.CountrySwiftCodes, error)
	CreateFunc       func(ctx context.Context, bank *model.SwiftBank) error
	CreateBatchFunc  func(ctx context.Context, banks []*model.SwiftBank) error
	DeleteFunc       func(ctx context.Context, code string) error
	CountFunc        func(ctx context.Context) (int64, error)
	CountryNameFunc  func(ctx context.Context, countryCode string) (string, error)
}

func (m *MockSwiftRepository) GetByCode(ctx context.Context, code string) (*repository.SwiftBankDetail, error) {
	return m.GetByCodeFunc(ctx, code)
}

func (m *MockSwiftRepository) GetByCountry(ctx context.Context, countryCode string) (*repository.CountrySwiftCodes, error) {
	return m.GetByCountryFunc(ctx, countryCode)
}

func (m *MockSwiftRepository) Create(ctx context.Context, bank *model.SwiftBank) error {
	return m.CreateFunc(ctx, bank)
}

func (m *MockSwiftRepository) CreateBatch(ctx context.Context, banks []*model.SwiftBank) error {
	return m.CreateBatchFunc(ctx, banks)
}

func (m *MockSwiftRepository) Delete(ctx context.Context, code string) error {
	return m.DeleteFunc(ctx, code)
}

func (m *MockSwiftRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockSwiftRepository) CountryName(ctx context.Context, countryCode string) (string, error) {
	if m.CountryNameFunc != nil {
		return m.CountryNameFunc(ctx, countryCode)
	}
	return "", repository.ErrNotFound
}
