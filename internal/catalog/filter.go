package catalog

import (
	"strings"
)

// Filter 商品筛选条件；EventID 非空时优先于 Category
type Filter struct {
	Category string
	EventID  string
	Search   string
	Limit    int
}

// Apply 依次按活动或分类、关键词、数量筛选
func (f Filter) Apply(products []Product) []Product {
	result := products
	if strings.TrimSpace(f.EventID) != "" {
		result = ByEvent(result, f.EventID)
	} else if strings.TrimSpace(f.Category) != "" {
		result = ByCategory(result, f.Category)
	}
	if strings.TrimSpace(f.Search) != "" {
		result = Search(result, f.Search)
	}
	return Limit(result, f.Limit)
}

// ByCategory 按分类筛选（忽略大小写）
func ByCategory(products []Product, category string) []Product {
	target := strings.ToLower(strings.TrimSpace(category))
	result := make([]Product, 0)
	for _, p := range products {
		if strings.ToLower(p.Category) == target {
			result = append(result, p)
		}
	}
	return result
}

// Search 在名称、高棉语名称、描述与分类中做不区分大小写的子串匹配
func Search(products []Product, query string) []Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return products
	}
	result := make([]Product, 0)
	for _, p := range products {
		if containsFold(p.Name, needle) ||
			containsFold(p.NameKH, needle) ||
			containsFold(p.Description, needle) ||
			containsFold(p.Category, needle) {
			result = append(result, p)
		}
	}
	return result
}

// ByEvent 筛选参与指定活动的商品
func ByEvent(products []Product, eventID string) []Product {
	target := strings.TrimSpace(eventID)
	result := make([]Product, 0)
	for _, p := range products {
		for _, id := range p.EventIDs {
			if strings.EqualFold(id, target) {
				result = append(result, p)
				break
			}
		}
	}
	return result
}

// Categories 返回去重后的分类名，保持首次出现顺序
func Categories(products []Product) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		result = append(result, p.Category)
	}
	return result
}

// Limit 截取前 n 个，n <= 0 表示不限
func Limit(products []Product, n int) []Product {
	if n <= 0 || len(products) <= n {
		return products
	}
	return products[:n]
}

func containsFold(value, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(value), lowerNeedle)
}
