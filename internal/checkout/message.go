// Package checkout 负责把购物车渲染成下单消息并生成聊天跳转链接。
package checkout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/constants"
)

// orderTimeLayout 对应 en-GB 的 dd/mm/yyyy, HH:MM:SS
const orderTimeLayout = "02/01/2006, 15:04:05"

var (
	ErrDeliveryTimeRequired = errors.New("delivery time is required")
	ErrDeliveryModeInvalid  = errors.New("delivery mode is invalid")
)

// DeliveryMode 取货方式
type DeliveryMode string

const (
	ModeDelivery DeliveryMode = constants.DeliveryModeDelivery
	ModePickup   DeliveryMode = constants.DeliveryModePickup
)

// ParseDeliveryMode 解析取货方式（忽略大小写），空值视为配送
func ParseDeliveryMode(raw string) (DeliveryMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", constants.DeliveryModeDelivery:
		return ModeDelivery, nil
	case constants.DeliveryModePickup:
		return ModePickup, nil
	default:
		return "", ErrDeliveryModeInvalid
	}
}

// Validate 结账前校验：配送方式必须填写期望送达时间
func Validate(mode DeliveryMode, deliveryTime string) error {
	switch mode {
	case ModeDelivery:
		if strings.TrimSpace(deliveryTime) == "" {
			return ErrDeliveryTimeRequired
		}
		return nil
	case ModePickup:
		return nil
	default:
		return ErrDeliveryModeInvalid
	}
}

// FormatMessage 渲染下单消息。
// 每个 (商品, 规格) 输出一段，序号为 商品下标+1+规格下标。
func FormatMessage(items []cart.Item, mode DeliveryMode, deliveryTime string, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Order Time: %s\n\n", now.In(loc).Format(orderTimeLayout))

	for index, item := range items {
		for optionIndex, option := range item.Options {
			fmt.Fprintf(&b, "Item %d: %s\n", index+1+optionIndex, item.Name)
			fmt.Fprintf(&b, "   Amount: %d\n", option.Quantity)
			fmt.Fprintf(&b, "   Size: %s\n", option.Size)
			fmt.Fprintf(&b, "   Color: %s\n\n", option.Color)
		}
	}

	switch mode {
	case ModeDelivery:
		if strings.TrimSpace(deliveryTime) != "" {
			fmt.Fprintf(&b, "Preferred Delivery Time: %s\n\n", deliveryTime)
		}
	case ModePickup:
		b.WriteString("Pickup Option Selected\n\n")
	}

	b.WriteString("Thank you!")
	return b.String()
}
