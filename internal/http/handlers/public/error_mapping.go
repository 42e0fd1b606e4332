package public

import (
	"errors"

	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/checkout"
	"github.com/senghong-shop/internal/http/response"
	"github.com/senghong-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, err)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var sessionErrorRules = []mappedHandlerError{
	{target: service.ErrSessionIDRequired, code: response.CodeBadRequest, key: "error.session_unavailable"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrEventNotFound, code: response.CodeNotFound, key: "error.event_not_found"},
	{target: service.ErrCatalogUnavailable, code: response.CodeServiceUnavailable, key: "error.catalog_unavailable"},
}

var cartErrorRules = concatMappedHandlerErrors(sessionErrorRules, catalogErrorRules, []mappedHandlerError{
	{target: cart.ErrProductRequired, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: cart.ErrOptionsEmpty, code: response.CodeBadRequest, key: "error.cart_options_required"},
	{target: cart.ErrQuantityInvalid, code: response.CodeBadRequest, key: "error.cart_quantity_invalid"},
	{target: cart.ErrItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: cart.ErrOptionNotFound, code: response.CodeNotFound, key: "error.cart_option_not_found"},
	{target: service.ErrCartOptionInvalid, code: response.CodeBadRequest, key: "error.cart_option_invalid"},
})

var checkoutErrorRules = concatMappedHandlerErrors(sessionErrorRules, []mappedHandlerError{
	{target: checkout.ErrDeliveryTimeRequired, code: response.CodeUnprocessable, key: "error.delivery_time_required"},
	{target: checkout.ErrDeliveryModeInvalid, code: response.CodeBadRequest, key: "error.delivery_mode_invalid"},
	{target: service.ErrCartEmpty, code: response.CodeUnprocessable, key: "error.cart_empty"},
	{target: service.ErrHandoffStoreMissing, code: response.CodeServiceUnavailable, key: "error.handoff_store_disabled"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
})
