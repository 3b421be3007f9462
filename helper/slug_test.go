package helper

import "testing"

func TestUniqueSlug(t *testing.T) {
	t.Parallel()

	takenFrom := func(existing ...string) func(string) bool {
		set := make(map[string]bool, len(existing))
		for _, s := range existing {
			set[s] = true
		}
		return func(candidate string) bool { return set[candidate] }
	}

	cases := []struct {
		name     string
		base     string
		existing []string
		want     string
	}{
		{"free base stays", "grand-hall", nil, "grand-hall"},
		{"first collision bumps", "grand-hall", []string{"grand-hall"}, "grand-hall-1"},
		{"counter keeps climbing", "grand-hall", []string{"grand-hall", "grand-hall-1"}, "grand-hall-2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := uniqueSlug(tc.base, takenFrom(tc.existing...))
			if got != tc.want {
				t.Fatalf("uniqueSlug(%q) = %q, want %q", tc.base, got, tc.want)
			}
		})
	}
}

// Renaming a venue to its current name must keep its slug. The lookup
// excludes the edited row by id, so from the generator's view the slug
// is held only by rows other than the one being edited.
func TestUniqueSlugSkipsRowsTheLookupExcludes(t *testing.T) {
	t.Parallel()

	type row struct {
		id   uint
		slug string
	}
	rows := []row{{id: 7, slug: "grand-hall"}, {id: 9, slug: "river-barn"}}

	takenExcluding := func(excludeId uint) func(string) bool {
		return func(candidate string) bool {
			for _, r := range rows {
				if r.id != excludeId && r.slug == candidate {
					return true
				}
			}
			return false
		}
	}

	if got := uniqueSlug("grand-hall", takenExcluding(7)); got != "grand-hall" {
		t.Fatalf("resave of own name: got %q, want %q", got, "grand-hall")
	}
	if got := uniqueSlug("grand-hall", takenExcluding(9)); got != "grand-hall-1" {
		t.Fatalf("name held by another row: got %q, want %q", got, "grand-hall-1")
	}
}
