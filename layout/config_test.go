package layout

import "testing"

// 默认几何的派生量是分页算法的基准，数值变化会直接改变每页行数。
func TestDefaultConfigDerivedGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"CardWidth", cfg.CardWidth(), 1142},
		{"CardHeight", cfg.CardHeight(), 1460},
		{"ContentWidth", cfg.ContentWidth(), 1042},
		{"ContentTop", cfg.ContentTop(), 200},
		{"ContentBottom", cfg.ContentBottom(), 1560},
		{"TitleLineHeight", cfg.TitleLineHeight(), 84},
		{"BodyLineHeight", cfg.BodyLineHeight(), 70},
		{"SpacerHeight", cfg.SpacerHeight(), 44},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s=%.0f want=%.0f", c.name, c.got, c.want)
		}
	}
}
