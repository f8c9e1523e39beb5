package models

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"tip", CategoryTip},
		{"free", CategoryFree},
		{"question", CategoryQuestion},
		{"all", CategoryAll},
		{"", CategoryAll},
		{"nonsense", CategoryAll},
	}
	for _, c := range cases {
		if got := ParseCategory(c.in); got != c.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryTip, CategoryFree, CategoryQuestion} {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if CategoryAll.Valid() {
		t.Error("the all sentinel is not a post category")
	}
	if Category("").Valid() {
		t.Error("empty category should be invalid")
	}
}
