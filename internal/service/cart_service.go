package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/repository"
	"github.com/senghong-shop/internal/session"
)

// AddItemInput 加入购物车参数
type AddItemInput struct {
	ProductID string
	Options   []cart.Option
}

// CartService 访客购物车与浏览视图服务
type CartService struct {
	sessions        repository.SessionRepository
	catalog         *CatalogService
	defaultCategory string
	now             func() time.Time

	// 同一进程内所有会话迁移串行执行，读-改-写不交错
	mu sync.Mutex
}

// NewCartService 创建购物车服务
func NewCartService(sessions repository.SessionRepository, catalogService *CatalogService, defaultCategory string) *CartService {
	return &CartService{
		sessions:        sessions,
		catalog:         catalogService,
		defaultCategory: strings.TrimSpace(defaultCategory),
		now:             time.Now,
	}
}

// GetSession 读取会话，不存在时创建并保存
func (s *CartService) GetSession(ctx context.Context, sessionID string) (session.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load(ctx, sessionID)
	return state, err
}

// GetCart 读取购物车
func (s *CartService) GetCart(ctx context.Context, sessionID string) (cart.State, error) {
	state, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return cart.State{}, err
	}
	return state.Cart, nil
}

// AddItem 合并加购。规格为空的选项取商品第一个颜色/尺码；商品声明了颜色或尺码时必须在范围内。
func (s *CartService) AddItem(ctx context.Context, sessionID string, input AddItemInput) (cart.State, error) {
	product, err := s.catalog.GetProduct(normalizeID(input.ProductID))
	if err != nil {
		return cart.State{}, err
	}
	options, err := resolveOptions(product, input.Options)
	if err != nil {
		return cart.State{}, err
	}
	line := cart.Line{
		ProductID:          product.ID,
		Name:               product.Name,
		NameKH:             product.NameKH,
		Image:              product.Image,
		Price:              product.Price,
		DiscountPercentage: product.Discount,
	}
	return s.applyCart(ctx, sessionID, cart.Action{Kind: cart.ActionAdd, Line: line, Options: options})
}

// UpdateOptionQuantity 修改规格数量，数量 ≤ 0 时移除该规格
func (s *CartService) UpdateOptionQuantity(ctx context.Context, sessionID, productID string, key cart.OptionKey, quantity int) (cart.State, error) {
	return s.applyCart(ctx, sessionID, cart.Action{
		Kind:      cart.ActionUpdateQuantity,
		ProductID: productID,
		Key:       s.canonicalKey(productID, key),
		Quantity:  quantity,
	})
}

// RemoveOption 移除规格；最后一个规格被移除时整行删除
func (s *CartService) RemoveOption(ctx context.Context, sessionID, productID string, key cart.OptionKey) (cart.State, error) {
	return s.applyCart(ctx, sessionID, cart.Action{
		Kind:      cart.ActionRemoveOption,
		ProductID: productID,
		Key:       s.canonicalKey(productID, key),
	})
}

// RemoveItem 删除商品行
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (cart.State, error) {
	return s.applyCart(ctx, sessionID, cart.Action{Kind: cart.ActionRemoveItem, ProductID: productID})
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, sessionID string) (cart.State, error) {
	return s.applyCart(ctx, sessionID, cart.Action{Kind: cart.ActionClear})
}

// ShowCategory 切换到分类视图
func (s *CartService) ShowCategory(ctx context.Context, sessionID, category string) (session.State, error) {
	return s.mutate(ctx, sessionID, func(state session.State) (session.State, error) {
		return session.ShowCategory(state, category), nil
	})
}

// ShowEvent 切换到活动视图
func (s *CartService) ShowEvent(ctx context.Context, sessionID, eventID string) (session.State, error) {
	event, err := s.catalog.GetEvent(normalizeID(eventID))
	if err != nil {
		return session.State{}, err
	}
	return s.mutate(ctx, sessionID, func(state session.State) (session.State, error) {
		return session.ShowEvent(state, event), nil
	})
}

// BackToHome 回到首页
func (s *CartService) BackToHome(ctx context.Context, sessionID string) (session.State, error) {
	return s.mutate(ctx, sessionID, func(state session.State) (session.State, error) {
		return session.BackToHome(state, s.defaultCategory), nil
	})
}

// SetSearch 设置搜索关键词
func (s *CartService) SetSearch(ctx context.Context, sessionID, query string) (session.State, error) {
	return s.mutate(ctx, sessionID, func(state session.State) (session.State, error) {
		return session.SetSearch(state, query), nil
	})
}

// VisibleProducts 当前视图下可见的商品
func (s *CartService) VisibleProducts(ctx context.Context, sessionID string) (session.View, []catalog.Product, error) {
	state, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return session.View{}, nil, err
	}
	return state.View, session.VisibleProducts(s.catalog.Catalog().Products(), state.View), nil
}

func (s *CartService) applyCart(ctx context.Context, sessionID string, action cart.Action) (cart.State, error) {
	state, err := s.mutate(ctx, sessionID, func(state session.State) (session.State, error) {
		next, err := cart.Apply(state.Cart, action)
		if err != nil {
			return state, err
		}
		return session.WithCart(state, next), nil
	})
	if err != nil {
		return cart.State{}, err
	}
	return state.Cart, nil
}

// mutate 读取（或创建）会话、执行迁移并保存；迁移失败时不保存
func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(session.State) (session.State, error)) (session.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return session.State{}, err
	}
	next, err := fn(state)
	if err != nil {
		return state, err
	}
	next = session.Touch(next, s.now())
	if err := s.sessions.Save(ctx, next); err != nil {
		return state, err
	}
	return next, nil
}

// load 调用方需持有锁
func (s *CartService) load(ctx context.Context, sessionID string) (session.State, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return session.State{}, ErrSessionIDRequired
	}
	existing, err := s.sessions.Get(ctx, id)
	if err != nil {
		return session.State{}, err
	}
	if existing != nil {
		return *existing, nil
	}
	state := session.New(id, s.defaultCategory, s.now())
	if err := s.sessions.Save(ctx, state); err != nil {
		return session.State{}, err
	}
	return state, nil
}

func resolveOptions(product catalog.Product, incoming []cart.Option) ([]cart.Option, error) {
	if len(incoming) == 0 {
		return nil, cart.ErrOptionsEmpty
	}
	options := make([]cart.Option, 0, len(incoming))
	for _, opt := range incoming {
		color := strings.TrimSpace(opt.Color)
		size := strings.TrimSpace(opt.Size)
		if color == "" && len(product.Colors) > 0 {
			color = product.Colors[0]
		}
		if size == "" && len(product.Sizes) > 0 {
			size = product.Sizes[0]
		}
		color, okColor := offered(product.Colors, color)
		size, okSize := offered(product.Sizes, size)
		if !okColor || !okSize {
			return nil, ErrCartOptionInvalid
		}
		options = append(options, cart.Option{Color: color, Size: size, Quantity: opt.Quantity})
	}
	return options, nil
}

// canonicalKey 按商品声明的取值规范化规格键，与加购时的匹配规则一致；
// 商品已下架或取值未声明时原样返回
func (s *CartService) canonicalKey(productID string, key cart.OptionKey) cart.OptionKey {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return key
	}
	color, okColor := offered(product.Colors, strings.TrimSpace(key.Color))
	size, okSize := offered(product.Sizes, strings.TrimSpace(key.Size))
	if !okColor {
		color = key.Color
	}
	if !okSize {
		size = key.Size
	}
	return cart.NewOptionKey(color, size)
}

// offered 返回商品声明的规范取值（忽略大小写）；商品未声明候选值时原样接受
func offered(values []string, value string) (string, bool) {
	if len(values) == 0 {
		return value, true
	}
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return v, true
		}
	}
	return "", false
}
