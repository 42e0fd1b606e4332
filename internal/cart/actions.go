package cart

import (
	"errors"
	"strings"

	"github.com/senghong-shop/internal/models"
)

var (
	ErrProductRequired = errors.New("cart product id is required")
	ErrOptionsEmpty    = errors.New("cart options are empty")
	ErrQuantityInvalid = errors.New("cart quantity must be positive")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrOptionNotFound  = errors.New("cart option not found")
	ErrActionUnknown   = errors.New("cart action unknown")
)

// Line 加入购物车时的商品快照
type Line struct {
	ProductID          string       `json:"product_id"`
	Name               string       `json:"name"`
	NameKH             string       `json:"name_kh"`
	Image              string       `json:"image"`
	Price              models.Money `json:"price"` // 原价
	DiscountPercentage int          `json:"discount_percentage"`
}

// AddToCart 合并加购：已有商品按 (颜色, 尺码) 合并数量，未命中的规格追加；
// 新商品以折后单价建立商品行。
func AddToCart(state State, line Line, options []Option) (State, error) {
	productID := strings.TrimSpace(line.ProductID)
	if productID == "" {
		return state, ErrProductRequired
	}
	if len(options) == 0 {
		return state, ErrOptionsEmpty
	}
	for _, opt := range options {
		if opt.Quantity <= 0 {
			return state, ErrQuantityInvalid
		}
	}

	items := cloneItems(state.Items)
	idx := state.indexOf(productID)
	if idx >= 0 {
		items[idx].Options = mergeOptions(items[idx].Options, options)
		items[idx] = recomputeItem(items[idx])
		return withItems(items), nil
	}

	item := Item{
		ProductID:          productID,
		Name:               line.Name,
		NameKH:             line.NameKH,
		Image:              line.Image,
		Price:              line.Price.ApplyPercentDiscount(line.DiscountPercentage),
		OriginalPrice:      models.NewMoneyFromDecimal(line.Price.Decimal),
		DiscountPercentage: line.DiscountPercentage,
		Options:            mergeOptions(nil, options),
	}
	items = append(items, recomputeItem(item))
	return withItems(items), nil
}

// UpdateOptionQuantity 设置规格数量，数量 <= 0 时移除该规格
func UpdateOptionQuantity(state State, productID string, key OptionKey, quantity int) (State, error) {
	if quantity <= 0 {
		return RemoveOption(state, productID, key)
	}
	idx := state.indexOf(productID)
	if idx < 0 {
		return state, ErrItemNotFound
	}
	items := cloneItems(state.Items)
	optIdx := indexOfOption(items[idx].Options, key)
	if optIdx < 0 {
		return state, ErrOptionNotFound
	}
	items[idx].Options[optIdx].Quantity = quantity
	items[idx] = recomputeItem(items[idx])
	return withItems(items), nil
}

// RemoveOption 移除规格，移除最后一个规格时同时移除商品行
func RemoveOption(state State, productID string, key OptionKey) (State, error) {
	idx := state.indexOf(productID)
	if idx < 0 {
		return state, ErrItemNotFound
	}
	items := cloneItems(state.Items)
	optIdx := indexOfOption(items[idx].Options, key)
	if optIdx < 0 {
		return state, ErrOptionNotFound
	}
	options := append(items[idx].Options[:optIdx:optIdx], items[idx].Options[optIdx+1:]...)
	if len(options) == 0 {
		return withItems(append(items[:idx:idx], items[idx+1:]...)), nil
	}
	items[idx].Options = options
	items[idx] = recomputeItem(items[idx])
	return withItems(items), nil
}

// RemoveItem 移除整个商品行
func RemoveItem(state State, productID string) (State, error) {
	idx := state.indexOf(productID)
	if idx < 0 {
		return state, ErrItemNotFound
	}
	items := cloneItems(state.Items)
	return withItems(append(items[:idx:idx], items[idx+1:]...)), nil
}

// Clear 清空购物车
func Clear(State) State {
	return Empty()
}

// ActionKind 购物车动作类型
type ActionKind string

const (
	ActionAdd            ActionKind = "add"
	ActionUpdateQuantity ActionKind = "update_quantity"
	ActionRemoveOption   ActionKind = "remove_option"
	ActionRemoveItem     ActionKind = "remove_item"
	ActionClear          ActionKind = "clear"
)

// Action 购物车动作
type Action struct {
	Kind      ActionKind
	Line      Line
	Options   []Option
	ProductID string
	Key       OptionKey
	Quantity  int
}

// Apply 按动作类型分发到对应迁移函数；出错时返回原状态
func Apply(state State, action Action) (State, error) {
	switch action.Kind {
	case ActionAdd:
		return AddToCart(state, action.Line, action.Options)
	case ActionUpdateQuantity:
		return UpdateOptionQuantity(state, action.ProductID, action.Key, action.Quantity)
	case ActionRemoveOption:
		return RemoveOption(state, action.ProductID, action.Key)
	case ActionRemoveItem:
		return RemoveItem(state, action.ProductID)
	case ActionClear:
		return Clear(state), nil
	default:
		return state, ErrActionUnknown
	}
}

// mergeOptions 将 incoming 依次合并进 existing（不修改 existing）
func mergeOptions(existing []Option, incoming []Option) []Option {
	merged := append([]Option(nil), existing...)
	for _, opt := range incoming {
		key := opt.Key()
		if idx := indexOfOption(merged, key); idx >= 0 {
			merged[idx].Quantity += opt.Quantity
			continue
		}
		merged = append(merged, Option{Color: key.Color, Size: key.Size, Quantity: opt.Quantity})
	}
	return merged
}

func indexOfOption(options []Option, key OptionKey) int {
	key = NewOptionKey(key.Color, key.Size)
	for i, opt := range options {
		if opt.Key() == key {
			return i
		}
	}
	return -1
}
