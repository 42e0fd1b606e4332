package constants

// 取货方式常量
const (
	DeliveryModeDelivery = "delivery"
	DeliveryModePickup   = "pickup"
)

// DeliveryModes 支持的取货方式（展示顺序）
var DeliveryModes = []string{DeliveryModeDelivery, DeliveryModePickup}

// 浏览视图常量
const (
	ViewModeHome     = "home"
	ViewModeCategory = "category"
	ViewModeEvent    = "event"
)

// 商品目录兜底值
const (
	CategoryUncategorized    = "Uncategorized"
	CategoryDisplayOrderLast = 999
	HomeSectionProductLimit  = 8
	HomeSectionCategoryLimit = 5
)

// 队列常量
const (
	QueueDefault            = "default"
	TaskCheckoutHandoff     = "checkout:handoff"
	CheckoutHandoffMaxRetry = 3
)

// 缓存默认配置常量
const (
	RedisPrefixDefault      = "sh"
	CacheKeyCatalogSnapshot = "catalog:snapshot"
	CacheKeySessionPrefix   = "session:"
)

// 请求头常量
const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"
)

// 币种常量
const (
	SiteCurrencyDefault = "USD"
)

// 站点语言常量
const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleZhCN}
