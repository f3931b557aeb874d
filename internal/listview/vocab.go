package listview

// VariantTable translates a domain status into the badge variant the
// rendering layer understands. Lookups never fail; unknown statuses
// get the fallback.
type VariantTable struct {
	variants map[string]string
	fallback string
}

// NewVariantTable builds a lookup with the given fallback variant.
func NewVariantTable(fallback string, variants map[string]string) VariantTable {
	m := make(map[string]string, len(variants))
	for k, v := range variants {
		m[k] = v
	}
	return VariantTable{variants: m, fallback: fallback}
}

// Variant returns the display variant for status.
func (t VariantTable) Variant(status string) string {
	if v, ok := t.variants[status]; ok {
		return v
	}
	return t.fallback
}

// OrderStatusVariants maps order lifecycle statuses to badge
// variants.
var OrderStatusVariants = NewVariantTable("default", map[string]string{
	"delivered":  "success",
	"processing": "warning",
	"shipped":    "info",
	"pending":    "default",
	"cancelled":  "danger",
})

// ProductStatusVariants maps stock statuses to badge variants.
var ProductStatusVariants = NewVariantTable("default", map[string]string{
	"active":       "success",
	"low-stock":    "warning",
	"out-of-stock": "danger",
})

// CustomerStatusVariants maps customer account statuses to badge
// variants.
var CustomerStatusVariants = NewVariantTable("default", map[string]string{
	"active":   "success",
	"inactive": "default",
	"vip":      "warning",
})
