package repositories

import (
	"time"

	"github.com/tuningapp/notification-service/internal/models"
	"gorm.io/gorm"
)

// DispatchLogRepository defines the interface for dispatch audit log operations
type DispatchLogRepository interface {
	Create(log *models.DispatchLog) error
	GetByRecordID(recordID string) ([]models.DispatchLog, error)
	GetRecent(limit int) ([]models.DispatchLog, error)
}

type postgresDispatchLogRepository struct {
	db *gorm.DB
}

func NewPostgresDispatchLogRepository(db *gorm.DB) DispatchLogRepository {
	return &postgresDispatchLogRepository{db: db}
}

func (r *postgresDispatchLogRepository) Create(log *models.DispatchLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *postgresDispatchLogRepository) GetByRecordID(recordID string) ([]models.DispatchLog, error) {
	var logs []models.DispatchLog
	err := r.db.Where("record_id = ?", recordID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *postgresDispatchLogRepository) GetRecent(limit int) ([]models.DispatchLog, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var logs []models.DispatchLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
