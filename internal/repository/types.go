package repository

import "time"

// CheckoutLogListFilter 查询结账交接记录的过滤条件
type CheckoutLogListFilter struct {
	Page         int
	PageSize     int
	SessionID    string
	DeliveryMode string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}
