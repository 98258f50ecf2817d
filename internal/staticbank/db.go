package staticbank

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BankQuestion is a bank row read once at startup.
type BankQuestion struct {
	ID         uint           `gorm:"primaryKey"`
	Topic      string         `gorm:"type:text;not null;index"`
	Question   string         `gorm:"type:text;not null"`
	Options    datatypes.JSON `gorm:"type:jsonb;not null"`
	Answer     string         `gorm:"type:text;not null"`
	OrderIndex int            `gorm:"not null;default:0"`
}

func (BankQuestion) TableName() string {
	return "bank_questions"
}

func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open bank database: %w", err)
	}
	return db, nil
}

// LoadFromDB reads every bank row and builds an immutable Bank.
func LoadFromDB(ctx context.Context, db *gorm.DB) (*Bank, error) {
	var rows []BankQuestion
	if err := db.WithContext(ctx).
		Order("topic ASC, order_index ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bank questions: %w", err)
	}
	entries, err := entriesFromRows(rows)
	if err != nil {
		return nil, err
	}
	return New(entries)
}

func entriesFromRows(rows []BankQuestion) (map[string][]Entry, error) {
	entries := make(map[string][]Entry)
	for _, row := range rows {
		var options []string
		if err := json.Unmarshal(row.Options, &options); err != nil {
			return nil, fmt.Errorf("bank question %d options: %w", row.ID, err)
		}
		entries[row.Topic] = append(entries[row.Topic], Entry{
			Question: row.Question,
			Options:  options,
			Answer:   row.Answer,
		})
	}
	return entries, nil
}
