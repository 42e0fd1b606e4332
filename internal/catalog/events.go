package catalog

import (
	"strings"
	"time"

	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/logger"
)

// Event 促销活动
type Event struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	DiscountPercentage int        `json:"discount_percentage"`
	Active             bool       `json:"active"`
	StartAt            *time.Time `json:"start_at,omitempty"`
	EndAt              *time.Time `json:"end_at,omitempty"`
}

// Heading 活动视图标题
func (e Event) Heading() string {
	if strings.TrimSpace(e.Description) == "" {
		return e.Title
	}
	return e.Title + " - " + e.Description
}

// IsActiveAt 判断活动在指定时间是否生效
func (e Event) IsActiveAt(now time.Time) bool {
	if !e.Active {
		return false
	}
	if e.StartAt != nil && now.Before(*e.StartAt) {
		return false
	}
	if e.EndAt != nil && !now.Before(*e.EndAt) {
		return false
	}
	return true
}

// EventsFromConfig 解析配置中的活动，时间格式错误的字段按未设置处理
func EventsFromConfig(items []config.EventConfig) []Event {
	events := make([]Event, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		events = append(events, Event{
			ID:                 id,
			Title:              strings.TrimSpace(item.Title),
			Description:        strings.TrimSpace(item.Description),
			DiscountPercentage: clampPercent(item.DiscountPercentage),
			Active:             item.Active,
			StartAt:            parseEventTime(id, "start_at", item.StartAt),
			EndAt:              parseEventTime(id, "end_at", item.EndAt),
		})
	}
	return events
}

// ActiveEvents 返回当前生效的活动，保持配置顺序
func ActiveEvents(events []Event, now time.Time) []Event {
	result := make([]Event, 0, len(events))
	for _, e := range events {
		if e.IsActiveAt(now) {
			result = append(result, e)
		}
	}
	return result
}

// FindEvent 按 ID 查找活动（忽略大小写）
func FindEvent(events []Event, id string) (Event, bool) {
	target := strings.TrimSpace(id)
	for _, e := range events {
		if strings.EqualFold(e.ID, target) {
			return e, true
		}
	}
	return Event{}, false
}

func parseEventTime(id, field, raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logger.Warnw("catalog_event_time_invalid", "event_id", id, "field", field, "value", value, "error", err)
		return nil
	}
	return &t
}
