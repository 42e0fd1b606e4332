package repository

import (
	"errors"
	"strings"

	"github.com/senghong-shop/internal/models"

	"gorm.io/gorm"
)

// CheckoutLogRepository 结账交接记录数据访问接口
type CheckoutLogRepository interface {
	Create(log *models.CheckoutLog) error
	GetByID(id string) (*models.CheckoutLog, error)
	List(filter CheckoutLogListFilter) ([]models.CheckoutLog, int64, error)
}

// GormCheckoutLogRepository GORM 实现
type GormCheckoutLogRepository struct {
	db *gorm.DB
}

// NewCheckoutLogRepository 创建结账交接记录仓库
func NewCheckoutLogRepository(db *gorm.DB) *GormCheckoutLogRepository {
	return &GormCheckoutLogRepository{db: db}
}

// Create 写入记录；同一 ID 重复写入时忽略（异步任务重试幂等）
func (r *GormCheckoutLogRepository) Create(log *models.CheckoutLog) error {
	if log == nil {
		return nil
	}
	var existing int64
	if err := r.db.Model(&models.CheckoutLog{}).Where("id = ?", log.ID).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	return r.db.Create(log).Error
}

// GetByID 按 ID 获取记录，不存在时返回 nil
func (r *GormCheckoutLogRepository) GetByID(id string) (*models.CheckoutLog, error) {
	var log models.CheckoutLog
	if err := r.db.Where("id = ?", strings.TrimSpace(id)).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// List 按创建时间倒序分页查询
func (r *GormCheckoutLogRepository) List(filter CheckoutLogListFilter) ([]models.CheckoutLog, int64, error) {
	query := r.db.Model(&models.CheckoutLog{})
	if sessionID := strings.TrimSpace(filter.SessionID); sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}
	if mode := strings.TrimSpace(filter.DeliveryMode); mode != "" {
		query = query.Where("delivery_mode = ?", mode)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.CheckoutLog
	query = applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
