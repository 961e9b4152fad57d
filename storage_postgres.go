package infoagent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ Storage = &PostgresStorage{}

type exchangeRecord struct {
	ID               string `gorm:"primaryKey"`
	SessionID        string `gorm:"index"`
	UserMessage      string
	AssistantMessage string
	CreatedAt        time.Time
}

func (exchangeRecord) TableName() string {
	return "exchanges"
}

// PostgresStorage implements the Storage interface on PostgreSQL.
type PostgresStorage struct {
	db *gorm.DB
}

// NewPostgresStorage connects to the given PostgreSQL URI and migrates
// the exchanges table.
func NewPostgresStorage(uri string) (*PostgresStorage, error) {
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&exchangeRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &PostgresStorage{db: db}, nil
}

func (s *PostgresStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStorage) SaveExchange(ctx context.Context, sessionID string, userMessage string, assistantMessage string) error {
	record := exchangeRecord{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		CreatedAt:        time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save exchange: %w", err)
	}
	return nil
}

func (s *PostgresStorage) History(ctx context.Context, sessionID string, limit int) ([]Exchange, error) {
	records := []exchangeRecord{}
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}

	exchanges := make([]Exchange, 0, len(records))
	for _, r := range records {
		exchanges = append(exchanges, Exchange{
			ID:               r.ID,
			SessionID:        r.SessionID,
			UserMessage:      r.UserMessage,
			AssistantMessage: r.AssistantMessage,
			CreatedAt:        r.CreatedAt,
		})
	}
	return exchanges, nil
}
