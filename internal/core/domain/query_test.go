package domain

import (
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		keywords    string
		attributes  map[string][]string
		tags        []string
	}{
		{
			name:     "plain keywords",
			raw:      "  chrome   bumper ",
			keywords: "chrome bumper",
		},
		{
			name:       "single attribute",
			raw:        "manufacturer:Bally",
			keywords:   "",
			attributes: map[string][]string{"manufacturer": {"Bally"}},
		},
		{
			name:       "quoted key",
			raw:        `"release year":1978`,
			attributes: map[string][]string{"release year": {"1978"}},
		},
		{
			name:       "quoted value",
			raw:        `manufacturer:"Williams Electronics"`,
			attributes: map[string][]string{"manufacturer": {"Williams Electronics"}},
		},
		{
			name:       "quoted key and value",
			raw:        `"sound set":"bell chime"`,
			attributes: map[string][]string{"sound set": {"bell chime"}},
		},
		{
			name: "same key twice unions values",
			raw:  "era:em era:ss",
			attributes: map[string][]string{
				"era": {"em", "ss"},
			},
		},
		{
			name: "single tag",
			raw:  "[approved]",
			tags: []string{"approved"},
		},
		{
			name: "mixed facets leave keyword remainder",
			raw:  `drop target manufacturer:Gottlieb [approved] [plastic]`,
			keywords: "drop target",
			attributes: map[string][]string{
				"manufacturer": {"Gottlieb"},
			},
			tags: []string{"approved", "plastic"},
		},
		{
			name:     "unclosed bracket stays keyword",
			raw:      "flipper [",
			keywords: "flipper [",
		},
		{
			name:     "bare colon stays keyword",
			raw:      "score :",
			keywords: "score :",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseQuery(tt.raw)

			if q.Keywords != tt.keywords {
				t.Errorf("keywords: expected %q, got %q", tt.keywords, q.Keywords)
			}

			if len(q.Attributes) != len(tt.attributes) {
				t.Fatalf("expected %d attribute keys, got %d (%v)",
					len(tt.attributes), len(q.Attributes), q.Attributes)
			}
			for key, want := range tt.attributes {
				got, ok := q.Attributes[key]
				if !ok {
					t.Fatalf("missing attribute key %q", key)
				}
				if len(got) != len(want) {
					t.Fatalf("key %q: expected %v, got %v", key, want, got)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("key %q value %d: expected %q, got %q", key, i, want[i], got[i])
					}
				}
			}

			if len(q.Tags) != len(tt.tags) {
				t.Fatalf("expected tags %v, got %v", tt.tags, q.Tags)
			}
			for i := range tt.tags {
				if q.Tags[i] != tt.tags[i] {
					t.Errorf("tag %d: expected %q, got %q", i, tt.tags[i], q.Tags[i])
				}
			}
		})
	}
}

func TestParseQueryIdempotent(t *testing.T) {
	// Re-parsing the keyword remainder must strip nothing further
	raws := []string{
		`drop target manufacturer:Gottlieb [approved]`,
		`"sound set":"bell chime" reel [em] era:1970s`,
		`plain words only`,
		`broken [ bracket and : colon`,
	}

	for _, raw := range raws {
		first := ParseQuery(raw)
		second := ParseQuery(first.Keywords)

		if len(second.Attributes) != 0 {
			t.Errorf("%q: residual attributes on re-parse: %v", raw, second.Attributes)
		}
		if len(second.Tags) != 0 {
			t.Errorf("%q: residual tags on re-parse: %v", raw, second.Tags)
		}
		if second.Keywords != first.Keywords {
			t.Errorf("%q: keywords changed on re-parse: %q -> %q",
				raw, first.Keywords, second.Keywords)
		}
	}
}

func testAsset(t *testing.T, name, category, description string, tags []string) *Asset {
	t.Helper()
	a, err := NewAsset(name, category, description, tags)
	if err != nil {
		t.Fatalf("failed to create asset: %v", err)
	}
	return a
}

func TestQueryScore(t *testing.T) {
	asset := testAsset(t, "Chrome Drop Target", "Playfield", "A shiny drop target bank", []string{"approved", "metal"})
	asset.Attributes["manufacturer"] = "Gottlieb,Bally"
	asset.Attributes["era"] = "em"

	tests := []struct {
		name      string
		raw       string
		wantMatch bool
		wantScore int
	}{
		{
			name:      "empty query matches with zero score",
			raw:       "",
			wantMatch: true,
			wantScore: 0,
		},
		{
			name:      "keyword hit at name start",
			raw:       "chrome",
			wantMatch: true,
			wantScore: 0,
		},
		{
			name:      "keyword hit inside name",
			raw:       "drop",
			wantMatch: true,
			wantScore: 7,
		},
		{
			name:      "description-only hit ranks after name hits",
			raw:       "shiny",
			wantMatch: true,
			wantScore: relevanceDescription + 2,
		},
		{
			name:      "keyword miss",
			raw:       "flipper",
			wantMatch: false,
		},
		{
			name:      "attribute value in comma list",
			raw:       "manufacturer:Bally",
			wantMatch: true,
			wantScore: 0,
		},
		{
			name:      "attribute accepted-value set",
			raw:       "manufacturer:Stern manufacturer:Gottlieb",
			wantMatch: true,
		},
		{
			name:      "attribute key missing",
			raw:       "voltage:50",
			wantMatch: false,
		},
		{
			name:      "attribute value mismatch",
			raw:       "era:ss",
			wantMatch: false,
		},
		{
			name:      "required tags subset",
			raw:       "[approved] [metal]",
			wantMatch: true,
		},
		{
			name:      "missing required tag",
			raw:       "[approved] [plastic]",
			wantMatch: false,
		},
		{
			name:      "all facets together",
			raw:       "target manufacturer:Gottlieb [approved]",
			wantMatch: true,
			wantScore: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseQuery(tt.raw)
			score, ok := q.Score(asset)
			if ok != tt.wantMatch {
				t.Fatalf("expected match=%v, got %v", tt.wantMatch, ok)
			}
			if ok && tt.wantScore != 0 && score != tt.wantScore {
				t.Errorf("expected score %d, got %d", tt.wantScore, score)
			}
		})
	}
}

func TestSortMatchesStable(t *testing.T) {
	a1 := testAsset(t, "Bell", "", "", nil)
	a2 := testAsset(t, "Bumper", "", "", nil)
	a3 := testAsset(t, "Buzzer", "", "", nil)

	matches := []Match{
		{Library: "first", Asset: a1, Relevance: 5},
		{Library: "first", Asset: a2, Relevance: 0},
		{Library: "second", Asset: a3, Relevance: 5},
	}

	SortMatches(matches)

	if matches[0].Asset != a2 {
		t.Errorf("expected lowest relevance first, got %s", matches[0].Asset.Name)
	}
	// Ties keep enumeration order: first library before second
	if matches[1].Library != "first" || matches[2].Library != "second" {
		t.Errorf("tie order broken: %s then %s", matches[1].Library, matches[2].Library)
	}
}
