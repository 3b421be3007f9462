package helper

import "testing"

func TestIsAllowedImage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"photo.gif", false},
		{"photo.pdf", false},
		{"photo", false},
	}
	for _, tc := range cases {
		if got := IsAllowedImage(tc.filename); got != tc.want {
			t.Fatalf("IsAllowedImage(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestExtractPublicID(t *testing.T) {
	t.Parallel()

	url := "https://res.cloudinary.com/demo/image/upload/services/services_ab12cd34ef56.png"
	if got := ExtractPublicID(url); got != "services/services_ab12cd34ef56" {
		t.Fatalf("got %q", got)
	}
	if got := ExtractPublicID("not-a-url"); got != "" {
		t.Fatalf("expected empty public id, got %q", got)
	}
}
