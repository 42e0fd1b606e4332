package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/senghong-shop/internal/constants"
	"github.com/senghong-shop/internal/logger"
	"github.com/senghong-shop/internal/models"

	"github.com/shopspring/decimal"
)

var (
	leadingNumberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
	leadingIntPattern    = regexp.MustCompile(`^[+-]?\d+`)
)

// Product 规范化后的商品
type Product struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	NameKH        string                 `json:"name_kh"`
	Image         string                 `json:"image"`
	Price         models.Money           `json:"price"`
	Discount      int                    `json:"discount"`
	FinalPrice    models.Money           `json:"final_price"`
	Category      string                 `json:"category"`
	CategoryKH    string                 `json:"category_kh"`
	Description   string                 `json:"description"`
	DescriptionKH string                 `json:"description_kh"`
	DisplayOrder  int                    `json:"display_order"`
	Colors        []string               `json:"colors"`
	Sizes         []string               `json:"sizes"`
	EventIDs      []string               `json:"event_ids"`
	Options       map[string]interface{} `json:"options"`
}

// Category 规范化后的分类
type Category struct {
	Name          string `json:"name"`
	NameKH        string `json:"name_kh"`
	DisplayOrder  int    `json:"display_order"`
	Description   string `json:"description"`
	DescriptionKH string `json:"description_kh"`
}

// NormalizeCategories 解析分类表，按小写分类名建立映射，跳过无名称的行
func NormalizeCategories(rows []Row) map[string]Category {
	result := make(map[string]Category, len(rows))
	for _, row := range rows {
		name := CategoryFields.Resolve(row, FieldCategoryName)
		if name == "" {
			continue
		}
		description := CategoryFields.Resolve(row, FieldCategoryDescription)
		result[strings.ToLower(name)] = Category{
			Name:          name,
			NameKH:        firstNonEmpty(CategoryFields.Resolve(row, FieldCategoryNameKH), name),
			DisplayOrder:  parseLeadingInt(CategoryFields.Resolve(row, FieldCategoryDisplayOrder)),
			Description:   description,
			DescriptionKH: firstNonEmpty(CategoryFields.Resolve(row, FieldCategoryDescriptionKH), description),
		}
	}
	return result
}

// NormalizeProduct 将一行商品数据解析为 Product；index 为行下标（ID 为 index+1）
func NormalizeProduct(row Row, index int, categories map[string]Category, placeholderImage string) Product {
	name := ProductFields.Resolve(row, FieldName)
	description := ProductFields.Resolve(row, FieldDescription)
	category := firstNonEmpty(ProductFields.Resolve(row, FieldCategory), constants.CategoryUncategorized)
	info, hasInfo := categories[strings.ToLower(category)]

	product := Product{
		ID:            strconv.Itoa(index + 1),
		Name:          name,
		NameKH:        firstNonEmpty(ProductFields.Resolve(row, FieldNameKH), name),
		Image:         firstNonEmpty(ProductFields.Resolve(row, FieldImage), placeholderImage),
		Price:         ParsePrice(ProductFields.Resolve(row, FieldPrice)),
		Discount:      clampPercent(parseLeadingInt(ProductFields.Resolve(row, FieldDiscount))),
		Category:      category,
		CategoryKH:    category,
		Description:   description,
		DescriptionKH: firstNonEmpty(ProductFields.Resolve(row, FieldDescriptionKH), description),
		DisplayOrder:  constants.CategoryDisplayOrderLast,
		Colors:        splitList(ProductFields.Resolve(row, FieldColors)),
		Sizes:         splitList(ProductFields.Resolve(row, FieldSizes)),
		EventIDs:      splitList(ProductFields.Resolve(row, FieldEvents)),
		Options:       parseOptions(ProductFields.Resolve(row, FieldOptions), index),
	}
	if hasInfo {
		product.CategoryKH = firstNonEmpty(info.NameKH, category)
		if product.DescriptionKH == "" {
			product.DescriptionKH = info.DescriptionKH
		}
		if info.DisplayOrder != 0 {
			product.DisplayOrder = info.DisplayOrder
		}
	}
	if len(product.Colors) == 0 {
		product.Colors = optionStrings(product.Options, "colors")
	}
	if len(product.Sizes) == 0 {
		product.Sizes = optionStrings(product.Options, "sizes")
	}
	product.FinalPrice = product.Price.ApplyPercentDiscount(product.Discount)
	return product
}

// ParsePrice 解析价格：取前导数字部分，无法解析时为 0
func ParsePrice(raw string) models.Money {
	match := leadingNumberPattern.FindString(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$")))
	if match == "" {
		return models.ZeroMoney()
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(match, "."))
	if err != nil {
		return models.ZeroMoney()
	}
	return models.NewMoneyFromDecimal(d)
}

func parseLeadingInt(raw string) int {
	match := leadingIntPattern.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return value
}

func clampPercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func parseOptions(raw string, index int) map[string]interface{} {
	options := map[string]interface{}{}
	if raw == "" {
		return options
	}
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		logger.Warnw("catalog_options_parse_failed", "row", index+1, "error", err)
		return map[string]interface{}{}
	}
	return options
}

func optionStrings(options map[string]interface{}, key string) []string {
	values, ok := options[key].([]interface{})
	if !ok {
		return []string{}
	}
	result := make([]string, 0, len(values))
	for _, value := range values {
		if s := cellString(value); s != "" {
			result = append(result, s)
		}
	}
	return result
}

func splitList(raw string) []string {
	result := []string{}
	for _, part := range strings.Split(raw, ",") {
		if value := strings.TrimSpace(part); value != "" {
			result = append(result, value)
		}
	}
	return result
}

func cellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
