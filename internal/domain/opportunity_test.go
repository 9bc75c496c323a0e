package domain

import "testing"

func TestDisplayCategory(t *testing.T) {
	if got := DisplayCategory("community-outreach"); got != "Community Outreach" {
		t.Fatalf("DisplayCategory() = %q", got)
	}
}

func TestOpportunitiesCatalogIsDisplayReady(t *testing.T) {
	items := Opportunities()
	if len(items) == 0 {
		t.Fatal("Opportunities() returned an empty catalog")
	}
	for _, o := range items {
		if o.Category == "" || o.Category[0] >= 'a' && o.Category[0] <= 'z' {
			t.Fatalf("category %q is not display-cased", o.Category)
		}
	}
}
