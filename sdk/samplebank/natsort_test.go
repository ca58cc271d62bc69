package samplebank

import (
	"sort"
	"testing"
)

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"s1.wav", "s2.wav", true},
		{"s2.wav", "s10.wav", true},
		{"s10.wav", "s2.wav", false},
		{"s10.wav", "s10.wav", false},
		{"a.wav", "b.wav", true},
		{"B.wav", "a.wav", false},
		{"note007.ogg", "note7.ogg", false}, // equal numeric value compares equal
		{"note7.ogg", "note007.ogg", false},
		{"key12", "key12b", true},
		{"99999999999999999999", "100000000000000000000", true}, // longer than int64
	}
	for _, c := range cases {
		if got := naturalLess(c.a, c.b); got != c.want {
			t.Errorf("naturalLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNaturalSortOrder(t *testing.T) {
	files := []string{"s1.wav", "s10.wav", "s2.wav"}
	sort.SliceStable(files, func(i, j int) bool {
		return naturalLess(files[i], files[j])
	})
	want := []string{"s1.wav", "s2.wav", "s10.wav"}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", files, want)
		}
	}
}
