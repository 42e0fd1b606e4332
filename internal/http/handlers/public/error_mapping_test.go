package public

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/checkout"
	"github.com/senghong-shop/internal/http/response"
	"github.com/senghong-shop/internal/service"

	"github.com/gin-gonic/gin"
)

func TestRespondWithMappedError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name  string
		err   error
		rules []mappedHandlerError
		want  int
	}{
		{name: "wrapped cart error", err: fmt.Errorf("apply: %w", cart.ErrItemNotFound), rules: cartErrorRules, want: response.CodeNotFound},
		{name: "option invalid", err: service.ErrCartOptionInvalid, rules: cartErrorRules, want: response.CodeBadRequest},
		{name: "catalog unavailable", err: service.ErrCatalogUnavailable, rules: cartErrorRules, want: response.CodeServiceUnavailable},
		{name: "delivery time", err: checkout.ErrDeliveryTimeRequired, rules: checkoutErrorRules, want: response.CodeUnprocessable},
		{name: "empty cart", err: service.ErrCartEmpty, rules: checkoutErrorRules, want: response.CodeUnprocessable},
		{name: "fallback", err: fmt.Errorf("boom"), rules: checkoutErrorRules, want: response.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			respondWithMappedError(c, tc.err, tc.rules, response.CodeInternal, "error.internal")

			var body response.Response
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body failed: %v", err)
			}
			if body.StatusCode != tc.want {
				t.Fatalf("status_code want %d got %d", tc.want, body.StatusCode)
			}
			if body.Msg == "" {
				t.Fatalf("message should be translated")
			}
		})
	}
}

func TestConcatMappedHandlerErrors(t *testing.T) {
	got := concatMappedHandlerErrors(sessionErrorRules, catalogErrorRules)
	if len(got) != len(sessionErrorRules)+len(catalogErrorRules) {
		t.Fatalf("unexpected rule count %d", len(got))
	}
}
