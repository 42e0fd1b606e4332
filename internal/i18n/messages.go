package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":             "Invalid request",
		"error.not_found":               "Resource not found",
		"error.internal":                "Internal server error",
		"error.too_many_requests":       "Too many requests, please try again later",
		"error.product_not_found":       "Product not found",
		"error.catalog_unavailable":     "Catalog is not available yet",
		"error.event_not_found":         "Event not found",
		"error.cart_item_not_found":     "Item is not in the cart",
		"error.cart_option_not_found":   "Option is not in the cart",
		"error.cart_option_invalid":     "Selected color or size is not available",
		"error.cart_quantity_invalid":   "Quantity must be at least 1",
		"error.cart_options_required":   "Please choose at least one option",
		"error.cart_empty":              "Your cart is empty",
		"error.delivery_time_required":  "Please enter a preferred delivery time",
		"error.delivery_mode_invalid":   "Please choose delivery or pickup",
		"error.session_unavailable":     "Session is not available",
		"error.rate_limit_unavailable":  "Service is busy, please try again later",
		"error.handoff_store_disabled":  "Checkout history is not enabled",
		"checkout.handoff_ready":        "Open the chat to send your order",
		"checkout.rate_limited_seconds": "Too many checkout attempts, retry in %d seconds",
	},
	LocaleZH: {
		"error.bad_request":             "请求参数错误",
		"error.not_found":               "资源不存在",
		"error.internal":                "服务器内部错误",
		"error.too_many_requests":       "请求过于频繁，请稍后再试",
		"error.product_not_found":       "商品不存在",
		"error.catalog_unavailable":     "商品目录尚未加载",
		"error.event_not_found":         "活动不存在",
		"error.cart_item_not_found":     "购物车中没有该商品",
		"error.cart_option_not_found":   "购物车中没有该规格",
		"error.cart_option_invalid":     "所选颜色或尺码不可用",
		"error.cart_quantity_invalid":   "数量至少为 1",
		"error.cart_options_required":   "请至少选择一个规格",
		"error.cart_empty":              "购物车为空",
		"error.delivery_time_required":  "请填写期望送达时间",
		"error.delivery_mode_invalid":   "请选择配送或自取",
		"error.session_unavailable":     "会话不可用",
		"error.rate_limit_unavailable":  "服务繁忙，请稍后再试",
		"error.handoff_store_disabled":  "未启用结账记录",
		"checkout.handoff_ready":        "打开聊天发送订单",
		"checkout.rate_limited_seconds": "结账过于频繁，请 %d 秒后重试",
	},
}
