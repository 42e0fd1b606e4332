package catalog

// Field 规范字段名
type Field string

// 商品字段
const (
	FieldName          Field = "name"
	FieldNameKH        Field = "name_kh"
	FieldImage         Field = "image"
	FieldPrice         Field = "price"
	FieldCategory      Field = "category"
	FieldDescription   Field = "description"
	FieldDescriptionKH Field = "description_kh"
	FieldOptions       Field = "options"
	FieldDiscount      Field = "discount"
	FieldColors        Field = "colors"
	FieldSizes         Field = "sizes"
	FieldEvents        Field = "events"
)

// 分类字段
const (
	FieldCategoryName          Field = "category"
	FieldCategoryNameKH        Field = "category_kh"
	FieldCategoryDisplayOrder  Field = "display_order"
	FieldCategoryDescription   Field = "description"
	FieldCategoryDescriptionKH Field = "description_kh"
)

// FieldTable 规范字段 -> 候选列名（按优先级）
type FieldTable map[Field][]string

// ProductFields 商品表的列名解析表
var ProductFields = FieldTable{
	FieldName:          {"Name", "name", "Product Name"},
	FieldNameKH:        {"Name_KH", "name_kh", "Khmer Name"},
	FieldImage:         {"Image", "image", "Photo", "Picture"},
	FieldPrice:         {"Price", "price", "Cost"},
	FieldCategory:      {"Category", "category", "Type"},
	FieldDescription:   {"Description", "description", "Desc"},
	FieldDescriptionKH: {"Description_KH", "description_kh", "Khmer Description"},
	FieldOptions:       {"Options", "options", "Customizations", "Options (JSON)"},
	FieldDiscount:      {"Discount", "discount", "Discount %"},
	FieldColors:        {"Colors", "colors", "Color"},
	FieldSizes:         {"Sizes", "sizes", "Size"},
	FieldEvents:        {"Event", "event", "Event ID", "Events"},
}

// CategoryFields 分类表的列名解析表
var CategoryFields = FieldTable{
	FieldCategoryName:          {"Category", "category"},
	FieldCategoryNameKH:        {"Category_KH", "category_kh"},
	FieldCategoryDisplayOrder:  {"Display Order", "display_order", "order"},
	FieldCategoryDescription:   {"Description", "description"},
	FieldCategoryDescriptionKH: {"Description_KH", "description_kh"},
}

// Row 表格接口返回的一行原始数据
type Row map[string]interface{}

// Resolve 按候选列顺序取第一个非空值
func (t FieldTable) Resolve(row Row, field Field) string {
	for _, column := range t[field] {
		if value := cellString(row[column]); value != "" {
			return value
		}
	}
	return ""
}
