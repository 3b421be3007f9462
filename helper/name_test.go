package helper

import "testing"

func TestFormatPackageName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapses and title-cases", "  the gold  PACKAGE ", "The Gold Package"},
		{"keeps digits and ampersand", "gold & silver 2", "Gold & Silver 2"},
		{"keeps apostrophe and hyphen", "bride's all-in", "Bride's All-in"},
		{"drops disallowed runes", "g@ld! package#", "Gld Package"},
		{"all invalid yields empty", "@#$%", ""},
		{"empty stays empty", "", ""},
		{"whitespace only yields empty", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatPackageName(tc.in)
			if got != tc.want {
				t.Fatalf("FormatPackageName(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if again := FormatPackageName(got); again != got {
				t.Fatalf("FormatPackageName not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestFormatCategoryName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"title-cases words", "photo  BOOTH", "Photo Booth"},
		{"drops digits and symbols", "catering 24/7!", "Catering"},
		{"unicode letters survive", "décor", "Décor"},
		{"all invalid yields empty", "123!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatCategoryName(tc.in)
			if got != tc.want {
				t.Fatalf("FormatCategoryName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"0050", "50"},
		{"00", ""},
		{"50", "50"},
		{"0", ""},
		{"1a2b3", "123"},
		{"abc", ""},
		{"", ""},
		{" 007 ", "7"},
	}
	for _, tc := range cases {
		got := CleanDigits(tc.in)
		if got != tc.want {
			t.Fatalf("CleanDigits(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if again := CleanDigits(got); again != got {
			t.Fatalf("CleanDigits not idempotent: %q -> %q", got, again)
		}
	}
}

func TestCleanDecimal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"0050", "50"},
		{"00", ""},
		{"12.50", "12.50"},
		{"000.5", "0.5"},
		{".5", "0.5"},
		{"1.2.3", "1.23"},
		{"$1,250.75", "1250.75"},
		{"", ""},
	}
	for _, tc := range cases {
		got := CleanDecimal(tc.in)
		if got != tc.want {
			t.Fatalf("CleanDecimal(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if again := CleanDecimal(got); again != got {
			t.Fatalf("CleanDecimal not idempotent: %q -> %q", got, again)
		}
	}
}

func TestHasRedundantLeadingZero(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"050", true},
		{"007", true},
		{"00", true},
		{"0", false},
		{"0.5", false},
		{"50", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := HasRedundantLeadingZero(tc.in); got != tc.want {
			t.Fatalf("HasRedundantLeadingZero(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
