package match

import "testing"

func TestNormalizeRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"t123", "123"},
		{"T123", "123"},
		{"g2045", "2045"},
		{"p77", "77"},
		{"123", "123"},
		{"", ""},
		{"t", "t"},
		{"t12x", "t12x"},
		{"team-123", "team-123"},
		{"7abc", "7abc"},
	}

	for _, tc := range cases {
		if got := NormalizeRef(tc.in); got != tc.want {
			t.Fatalf("NormalizeRef(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeRefIdempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"t123", "123", "", "t12x", "p9"} {
		once := NormalizeRef(in)
		if twice := NormalizeRef(once); twice != once {
			t.Fatalf("NormalizeRef not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
