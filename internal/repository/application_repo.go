package repository

import (
	"errors"

	"YClaw/internal/model"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	// Create 依赖 user_id 唯一索引，重复插入返回 gorm.ErrDuplicatedKey
	// (需要 gorm.Config{TranslateError: true})
	Create(app *model.Application) error

	// GetByUserID 查不到返回 (nil, nil)，"没有记录"是正常结果不是错误
	GetByUserID(userID uint) (*model.Application, error)

	CountAll() (int64, error)
	CountByStatus(status model.ApplicationStatus) (int64, error)

	// ListRecent 按插入顺序倒序取最近 limit 条
	ListRecent(limit int) ([]model.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) GetByUserID(userID uint) (*model.Application, error) {
	var app model.Application
	err := r.db.Where("user_id = ?", userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Application{}).Count(&count).Error
	return count, err
}

func (r *applicationRepository) CountByStatus(status model.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *applicationRepository) ListRecent(limit int) ([]model.Application, error) {
	var apps []model.Application
	// 用自增 ID 倒序表示"最近提交"，比 submitted_at 排序稳定 (同一毫秒提交也有确定顺序)
	err := r.db.Order("id desc").Limit(limit).Find(&apps).Error
	return apps, err
}
