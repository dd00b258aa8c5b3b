package commands

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"openproject/internal/application"
	"openproject/internal/domain"
)

// MatchMode selects how a keyword is matched against project names
type MatchMode string

const (
	// MatchLiteral treats the keyword as plain text (case-insensitive substring)
	MatchLiteral MatchMode = "literal"
	// MatchRegexp compiles the keyword as a case-insensitive regular expression
	MatchRegexp MatchMode = "regexp"
	// MatchFuzzy matches the keyword as an in-order subsequence of the name
	MatchFuzzy MatchMode = "fuzzy"
)

// ParseMatchMode converts a preference value into a MatchMode.
// An empty value selects MatchLiteral.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchLiteral:
		return MatchLiteral, nil
	case MatchRegexp:
		return MatchRegexp, nil
	case MatchFuzzy:
		return MatchFuzzy, nil
	}
	return "", &application.ValidationError{
		Field:   "matchMode",
		Message: fmt.Sprintf("unknown match mode %q (want literal, regexp or fuzzy)", s),
	}
}

// Rank filters projects by keyword and orders the matches in two tiers:
// names starting with the keyword first, then every other match. Each tier
// is sorted by hits descending, keeping input order between equal hits.
func Rank(projects []domain.Project, keyword string, mode MatchMode) ([]domain.Project, error) {
	matched, err := filterByName(projects, keyword, mode)
	if err != nil {
		return nil, err
	}

	lowerKeyword := strings.ToLower(keyword)
	var prefix, other []domain.Project
	for _, p := range matched {
		if strings.HasPrefix(strings.ToLower(p.Name), lowerKeyword) {
			prefix = append(prefix, p)
		} else {
			other = append(other, p)
		}
	}

	byHits := func(a, b domain.Project) int {
		return cmp.Compare(b.Hits, a.Hits)
	}
	slices.SortStableFunc(prefix, byHits)
	slices.SortStableFunc(other, byHits)

	return append(prefix, other...), nil
}

func filterByName(projects []domain.Project, keyword string, mode MatchMode) ([]domain.Project, error) {
	if keyword == "" {
		return slices.Clone(projects), nil
	}

	switch mode {
	case MatchFuzzy:
		names := make([]string, len(projects))
		for i, p := range projects {
			names[i] = p.Name
		}
		hit := make([]bool, len(projects))
		for _, m := range fuzzy.Find(keyword, names) {
			hit[m.Index] = true
		}
		var out []domain.Project
		for i, p := range projects {
			if hit[i] {
				out = append(out, p)
			}
		}
		return out, nil

	case MatchRegexp:
		re, err := regexp.Compile("(?i)" + keyword)
		if err != nil {
			return nil, &application.PatternError{Keyword: keyword, Err: err}
		}
		return filterFunc(projects, re.MatchString), nil

	default:
		lowerKeyword := strings.ToLower(keyword)
		return filterFunc(projects, func(name string) bool {
			return strings.Contains(strings.ToLower(name), lowerKeyword)
		}), nil
	}
}

func filterFunc(projects []domain.Project, match func(string) bool) []domain.Project {
	var out []domain.Project
	for _, p := range projects {
		if match(p.Name) {
			out = append(out, p)
		}
	}
	return out
}
