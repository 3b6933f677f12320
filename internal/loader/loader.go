package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"swiftregistry/internal/model"
	"swiftregistry/internal/parser"
	"swiftregistry/internal/reader"
	"swiftregistry/internal/reader/csv"
	"swiftregistry/internal/reader/xlsx"
	"swiftregistry/internal/repository"
)

// Loader populates the store from a spreadsheet at boot.
type Loader struct {
	repo repository.SwiftRepository
	log  *zap.Logger
}

func New(repo repository.SwiftRepository, log *zap.Logger) *Loader {
	return &Loader{repo: repo, log: log}
}

// LoadIfEmpty reads the spreadsheet at path and inserts all valid rows, but
// only when the table holds no entries yet. Returns the number of rows
// inserted.
func (l *Loader) LoadIfEmpty(ctx context.Context, path string) (int, error) {
	count, err := l.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count existing entries: %w", err)
	}
	if count > 0 {
		l.log.Info("skipping data load, table already populated", zap.Int64("entries", count))
		return 0, nil
	}

	startTime := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var banksReader reader.SwiftBanksReader
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		banksReader = &xlsx.SwiftBanksReader{}
	} else {
		banksReader = &csv.SwiftBanksReader{}
	}

	records, err := banksReader.LoadSwiftBanks(file)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	banks, err := parser.NewSwiftBanksParser(l.log).ParseSwiftBanks(records)
	if err != nil {
		return 0, fmt.Errorf("failed to parse SWIFT data: %w", err)
	}

	batch := make([]*model.SwiftBank, len(banks))
	for i := range banks {
		batch[i] = &banks[i]
	}

	if err := l.repo.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("failed to insert SWIFT codes: %w", err)
	}

	l.log.Info("loaded SWIFT codes",
		zap.Int("rows", len(records)),
		zap.Int("inserted", len(banks)),
		zap.Duration("duration", time.Since(startTime)),
	)
	return len(banks), nil
}
