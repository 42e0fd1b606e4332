package service

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrCatalogUnavailable  = errors.New("catalog not loaded")
	ErrCartOptionInvalid   = errors.New("cart option not offered by product")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrSessionIDRequired   = errors.New("session id is required")
	ErrHandoffStoreMissing = errors.New("checkout handoff store unavailable")
)
