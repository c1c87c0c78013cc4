// Package postgres persists analysis results as opaque jsonb rows via gorm.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/poligap/poligap/internal/app/dto"
	"github.com/poligap/poligap/internal/app/service"
	"github.com/poligap/poligap/pkg/errors"
)

// AnalysisModel is the database row for one stored analysis.
type AnalysisModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)"`
	DocumentName string    `gorm:"type:varchar(255);index"`
	Industry     string    `gorm:"type:varchar(100);not null;index"`
	AverageScore int       `gorm:"not null"`
	Payload      string    `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName sets the table name.
func (AnalysisModel) TableName() string {
	return "analyses"
}

type analysisRepo struct {
	db *gorm.DB
}

// NewAnalysisRepository creates the analysis repository and migrates its table.
func NewAnalysisRepository(db *gorm.DB) (service.Repository, error) {
	if db == nil {
		return nil, errors.NewValidationError(errors.CodeInvalidParameter, "database connection cannot be nil")
	}

	if err := db.AutoMigrate(&AnalysisModel{}); err != nil {
		return nil, errors.WrapDatabaseError(err, errors.CodeDatabaseError, "failed to migrate analyses table")
	}

	return &analysisRepo{db: db}, nil
}

// Save stores one analysis record.
func (r *analysisRepo) Save(ctx context.Context, record *service.AnalysisRecord) error {
	if record == nil || record.ID == "" {
		return errors.NewValidationError(errors.CodeInvalidParameter, "analysis record requires an id")
	}

	payload, err := json.Marshal(record.Payload)
	if err != nil {
		return errors.WrapInternalError(err, errors.CodeInternalError, "failed to encode analysis payload")
	}

	model := &AnalysisModel{
		ID:           record.ID,
		DocumentName: record.DocumentName,
		Industry:     record.Industry,
		AverageScore: record.AverageScore,
		Payload:      string(payload),
		CreatedAt:    record.CreatedAt,
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.WrapDatabaseError(err, errors.ErrDatabase.Code, "failed to store analysis")
	}
	return nil
}

// Get loads one analysis record by id.
func (r *analysisRepo) Get(ctx context.Context, id string) (*service.AnalysisRecord, error) {
	if id == "" {
		return nil, errors.NewValidationError(errors.CodeInvalidParameter, "analysis id cannot be empty")
	}

	var model AnalysisModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewFromCode(errors.ErrAnalysisNotFound)
		}
		return nil, errors.WrapDatabaseError(err, errors.ErrDatabase.Code, "failed to load analysis")
	}

	return toRecord(&model)
}

// List pages stored analyses, newest first, optionally filtered by industry.
func (r *analysisRepo) List(ctx context.Context, industry string, offset, limit int) ([]*service.AnalysisRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&AnalysisModel{})
	if industry != "" {
		query = query.Where("industry = ?", industry)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WrapDatabaseError(err, errors.ErrDatabase.Code, "failed to count analyses")
	}

	var models []AnalysisModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, errors.WrapDatabaseError(err, errors.ErrDatabase.Code, "failed to list analyses")
	}

	records := make([]*service.AnalysisRecord, 0, len(models))
	for i := range models {
		record, err := toRecord(&models[i])
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}
	return records, total, nil
}

func toRecord(model *AnalysisModel) (*service.AnalysisRecord, error) {
	var payload dto.AnalysisResponse
	if err := json.Unmarshal([]byte(model.Payload), &payload); err != nil {
		return nil, errors.WrapInternalError(err, errors.CodeInternalError, "failed to decode analysis payload")
	}

	return &service.AnalysisRecord{
		ID:           model.ID,
		DocumentName: model.DocumentName,
		Industry:     model.Industry,
		AverageScore: model.AverageScore,
		Payload:      &payload,
		CreatedAt:    model.CreatedAt,
	}, nil
}
