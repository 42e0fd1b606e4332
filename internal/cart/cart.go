// Package cart 实现访客购物车的纯函数状态迁移与汇总。
package cart

import (
	"strings"

	"github.com/senghong-shop/internal/models"
)

// OptionKey 规格键：同一商品内按 (颜色, 尺码) 唯一
type OptionKey struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// NewOptionKey 构造规格键（去除首尾空白）
func NewOptionKey(color, size string) OptionKey {
	return OptionKey{Color: strings.TrimSpace(color), Size: strings.TrimSpace(size)}
}

// Option 购物车中的规格选择
type Option struct {
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Key 返回规格键
func (o Option) Key() OptionKey {
	return NewOptionKey(o.Color, o.Size)
}

// Item 购物车商品行
type Item struct {
	ProductID          string       `json:"product_id"`
	Name               string       `json:"name"`
	NameKH             string       `json:"name_kh,omitempty"`
	Image              string       `json:"image"`
	Price              models.Money `json:"price"` // 折后单价
	OriginalPrice      models.Money `json:"original_price"`
	DiscountPercentage int          `json:"discount_percentage"`
	Options            []Option     `json:"options"`
	TotalQuantity      int          `json:"total_quantity"`
	TotalPrice         models.Money `json:"total_price"`
}

// State 购物车状态，TotalItems / TotalPrice 均由商品行推导
type State struct {
	Items      []Item       `json:"items"`
	TotalItems int          `json:"total_items"`
	TotalPrice models.Money `json:"total_price"`
}

// Summary 购物车汇总
type Summary struct {
	TotalItems int          `json:"total_items"`
	TotalPrice models.Money `json:"total_price"`
}

// Totals 汇总所有商品行的件数与金额，空列表返回 0
func Totals(items []Item) Summary {
	summary := Summary{TotalPrice: models.ZeroMoney()}
	for _, item := range items {
		summary.TotalItems += item.TotalQuantity
		summary.TotalPrice = summary.TotalPrice.Add(item.TotalPrice)
	}
	return summary
}

// Empty 返回空购物车
func Empty() State {
	return State{Items: []Item{}, TotalPrice: models.ZeroMoney()}
}

// IsEmpty 是否没有任何商品行
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Find 按商品ID查找商品行
func (s State) Find(productID string) (Item, bool) {
	idx := s.indexOf(productID)
	if idx < 0 {
		return Item{}, false
	}
	return s.Items[idx], true
}

// Recalculate 按商品行重新计算汇总，用于从外部存储恢复后的校正
func (s State) Recalculate() State {
	items := make([]Item, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, recomputeItem(item))
	}
	return withItems(items)
}

func (s State) indexOf(productID string) int {
	target := strings.TrimSpace(productID)
	for i, item := range s.Items {
		if item.ProductID == target {
			return i
		}
	}
	return -1
}

// cloneItems 深拷贝商品行，保证迁移不修改入参
func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		item.Options = append([]Option(nil), item.Options...)
		out[i] = item
	}
	return out
}

func recomputeItem(item Item) Item {
	total := 0
	for _, opt := range item.Options {
		total += opt.Quantity
	}
	item.TotalQuantity = total
	item.TotalPrice = item.Price.MulQuantity(total)
	return item
}

func withItems(items []Item) State {
	if items == nil {
		items = []Item{}
	}
	summary := Totals(items)
	return State{
		Items:      items,
		TotalItems: summary.TotalItems,
		TotalPrice: summary.TotalPrice,
	}
}
