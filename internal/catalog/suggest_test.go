package catalog

import "testing"

func TestSuggest(t *testing.T) {
	c := New()
	c.Set(Record{Name: "Game A", Completed: 1, Total: 2})
	c.Set(Record{Name: "Elden Ring", Completed: 10, Total: 42})

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"game a", "Game A", true},
		{"Gam A", "Game A", true},
		{"elden rign", "Elden Ring", true},
		{"Completely Different", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := c.Suggest(tt.query)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Suggest(%q): got (%q, %v), want (%q, %v)", tt.query, got, ok, tt.want, tt.ok)
		}
	}
}
