package models

import (
	"time"
)

// CheckoutLog 结账交接记录（仅审计生成的聊天链接，不代表订单）
type CheckoutLog struct {
	ID           string    `gorm:"primarykey;type:varchar(36)" json:"id"`                    // 交接ID（UUID）
	SessionID    string    `gorm:"type:varchar(64);index;not null" json:"session_id"`        // 访客会话ID
	RequestID    string    `gorm:"type:varchar(64)" json:"request_id"`                       // 请求ID
	DeliveryMode string    `gorm:"type:varchar(20);not null" json:"delivery_mode"`           // 取货方式
	DeliveryTime string    `gorm:"type:varchar(100)" json:"delivery_time"`                   // 期望送达时间
	LineCount    int       `gorm:"not null;default:0" json:"line_count"`                     // 商品行数
	TotalItems   int       `gorm:"not null;default:0" json:"total_items"`                    // 商品总件数
	TotalPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 折后总额
	Currency     string    `gorm:"type:varchar(10)" json:"currency"`                         // 币种
	Message      string    `gorm:"type:text;not null" json:"message"`                        // 下单消息
	URL          string    `gorm:"type:text;not null" json:"url"`                            // 聊天跳转链接
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
}

// TableName 指定表名
func (CheckoutLog) TableName() string {
	return "checkout_logs"
}
