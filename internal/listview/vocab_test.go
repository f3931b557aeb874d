package listview

import "testing"

func TestVariantTables(t *testing.T) {
	cases := []struct {
		table  VariantTable
		status string
		want   string
	}{
		{OrderStatusVariants, "delivered", "success"},
		{OrderStatusVariants, "processing", "warning"},
		{OrderStatusVariants, "shipped", "info"},
		{OrderStatusVariants, "pending", "default"},
		{OrderStatusVariants, "cancelled", "danger"},
		{OrderStatusVariants, "refunded", "default"}, // unknown: fallback
		{ProductStatusVariants, "low-stock", "warning"},
		{ProductStatusVariants, "out-of-stock", "danger"},
		{ProductStatusVariants, "", "default"},
		{CustomerStatusVariants, "vip", "warning"},
		{CustomerStatusVariants, "whatever", "default"},
	}
	for _, tc := range cases {
		if got := tc.table.Variant(tc.status); got != tc.want {
			t.Fatalf("Variant(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestVariantTableCopiesInput(t *testing.T) {
	src := map[string]string{"a": "success"}
	table := NewVariantTable("default", src)
	src["a"] = "danger"
	if got := table.Variant("a"); got != "success" {
		t.Fatalf("table shares caller's map: %q", got)
	}
}
