package domain

import (
	"regexp"
	"sort"
	"strings"
)

// Query is the transient filter state parsed from a single search
// string. It is recomputed on every input change and never persisted.
type Query struct {
	Keywords   string              // whitespace-collapsed free text
	Attributes map[string][]string // key -> set of accepted values
	Tags       []string            // required tags
}

// Match is one query hit: the owning library, the asset, and the
// library-supplied relevance score (lower ranks higher).
type Match struct {
	Library   string
	Asset     *Asset
	Relevance int
}

// attrPattern matches one attribute constraint token. Key and value may
// each be quoted to carry spaces: key:value, "key name":value,
// key:"some value", "key name":"some value".
var attrPattern = regexp.MustCompile(`("[^"]*"|[^\s:"\[\]]+):("[^"]*"|[^\s:"\[\]]+)`)

// tagPattern matches one [tag] token
var tagPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// relevanceDescription offsets description hits so that any name hit
// ranks ahead of any description hit.
const relevanceDescription = 1000

// ParseQuery splits a raw search string into attribute constraints,
// required tags, and the remaining keyword text. Tokens are matched and
// stripped left-to-right, non-recursively; the collapsed remainder is
// the keyword filter, so re-parsing it yields no further tokens.
func ParseQuery(raw string) Query {
	q := Query{Attributes: make(map[string][]string)}

	rest := raw
	for {
		loc := attrPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		key := strings.ToLower(unquote(rest[loc[2]:loc[3]]))
		value := unquote(rest[loc[4]:loc[5]])
		if key != "" && value != "" {
			q.Attributes[key] = append(q.Attributes[key], value)
		}
		rest = rest[:loc[0]] + " " + rest[loc[1]:]
	}

	for {
		loc := tagPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		tag := strings.TrimSpace(rest[loc[2]:loc[3]])
		if tag != "" && !containsFold(q.Tags, tag) {
			q.Tags = append(q.Tags, tag)
		}
		rest = rest[:loc[0]] + " " + rest[loc[1]:]
	}

	q.Keywords = strings.Join(strings.Fields(rest), " ")
	return q
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// IsEmpty reports whether the query constrains nothing
func (q Query) IsEmpty() bool {
	return q.Keywords == "" && len(q.Attributes) == 0 && len(q.Tags) == 0
}

// Score reports whether the asset matches the query and, if it does,
// the relevance score: the keyword's match position in the asset name,
// or relevanceDescription plus the position for description-only hits.
// An empty keyword filter scores zero.
func (q Query) Score(a *Asset) (int, bool) {
	for _, tag := range q.Tags {
		if !a.HasTag(tag) {
			return 0, false
		}
	}

	for key, values := range q.Attributes {
		matched := false
		for _, v := range values {
			if a.MatchesAttribute(key, v) {
				matched = true
				break
			}
		}
		if !matched {
			return 0, false
		}
	}

	if q.Keywords == "" {
		return 0, true
	}

	needle := strings.ToLower(q.Keywords)
	if idx := strings.Index(strings.ToLower(a.Name), needle); idx >= 0 {
		return idx, true
	}
	if idx := strings.Index(strings.ToLower(a.Description), needle); idx >= 0 {
		return relevanceDescription + idx, true
	}
	return 0, false
}

// SortMatches orders matches ascending by relevance. The sort is
// stable, so ties keep library enumeration order.
func SortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Relevance < matches[j].Relevance
	})
}
