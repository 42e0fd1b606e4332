// Package session 描述访客会话状态（购物车 + 浏览视图）及其纯函数迁移。
package session

import (
	"strings"
	"time"

	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/constants"
)

// View 浏览视图
type View struct {
	Mode     string `json:"mode"` // home / category / event
	Category string `json:"category"`
	EventID  string `json:"event_id"`
	Search   string `json:"search"`
	Heading  string `json:"heading"`
}

// State 访客会话状态
type State struct {
	ID        string     `json:"id"`
	Cart      cart.State `json:"cart"`
	View      View       `json:"view"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// New 创建新会话，视图为首页、分类为默认分类
func New(id, defaultCategory string, now time.Time) State {
	return State{
		ID:        id,
		Cart:      cart.Empty(),
		View:      HomeView(defaultCategory),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HomeView 首页视图
func HomeView(defaultCategory string) View {
	return View{Mode: constants.ViewModeHome, Category: strings.TrimSpace(defaultCategory)}
}

// ShowCategory 切换到分类视图
func ShowCategory(s State, category string) State {
	name := strings.TrimSpace(category)
	s.View = View{
		Mode:     constants.ViewModeCategory,
		Category: name,
		Search:   s.View.Search,
		Heading:  name,
	}
	return s
}

// ShowEvent 切换到活动视图，清空分类
func ShowEvent(s State, event catalog.Event) State {
	s.View = View{
		Mode:    constants.ViewModeEvent,
		EventID: event.ID,
		Search:  s.View.Search,
		Heading: event.Heading(),
	}
	return s
}

// BackToHome 回到首页：恢复默认分类，清空关键词与活动
func BackToHome(s State, defaultCategory string) State {
	s.View = HomeView(defaultCategory)
	return s
}

// SetSearch 设置搜索关键词
func SetSearch(s State, query string) State {
	s.View.Search = strings.TrimSpace(query)
	return s
}

// WithCart 替换购物车
func WithCart(s State, c cart.State) State {
	s.Cart = c
	return s
}

// Touch 更新最后活动时间
func Touch(s State, now time.Time) State {
	s.UpdatedAt = now
	return s
}

// VisibleProducts 返回当前视图可见的商品：活动视图按活动筛选，否则按分类，关键词进一步收窄
func VisibleProducts(products []catalog.Product, view View) []catalog.Product {
	filter := catalog.Filter{Search: view.Search}
	if view.Mode == constants.ViewModeEvent {
		filter.EventID = view.EventID
		if filter.EventID == "" {
			return []catalog.Product{}
		}
	} else {
		filter.Category = view.Category
	}
	return filter.Apply(products)
}
