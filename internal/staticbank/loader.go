package staticbank

import (
	"context"

	"github.com/pomoduo/quiz-backend/internal/config"
)

// Load builds the bank from the first configured source: database, YAML
// file, then the built-in entries.
func Load(ctx context.Context, cfg config.BankConfig) (*Bank, error) {
	log := config.WithContext(ctx)

	switch {
	case cfg.DatabaseDSN != "":
		db, err := Connect(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err == nil {
			defer sqlDB.Close()
		}
		bank, err := LoadFromDB(ctx, db)
		if err != nil {
			return nil, err
		}
		log.WithField("topics", len(bank.Topics())).Info("Question bank loaded from database")
		return bank, nil
	case cfg.File != "":
		bank, err := LoadYAML(cfg.File)
		if err != nil {
			return nil, err
		}
		log.WithField("topics", len(bank.Topics())).Infof("Question bank loaded from %s", cfg.File)
		return bank, nil
	default:
		return New(DefaultEntries())
	}
}
