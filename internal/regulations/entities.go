package regulations

import (
	"regexp"
	"sort"
	"strings"
)

// Entity categories used by the synthesis fallback.
const (
	CategoryOrganization = "Organization"
	CategoryProduct      = "Product"
	CategoryLaw          = "Law"
)

// entity is a named entity recognized in regulatory text.
type entity struct {
	Text     string
	Category string
	pos      int
}

// Pattern-and-gazetteer entity recognition. Patterns catch titled spans
// ending in a category-marking head noun; gazetteers catch the acronyms
// that dominate US insurance and privacy regulation.
var (
	lawPattern = regexp.MustCompile(
		`\b(?:[A-Z][A-Za-z'&-]*\s+)(?:(?:[A-Z][A-Za-z'&-]*|and|of|the|for|in|on)\s+)*(?:Act|Code|Regulation|Regulations|Directive|Statute|Law|Guidelines)(?:\s+of\s+\d{4})?\b`)
	orgPattern = regexp.MustCompile(
		`\b(?:[A-Z][A-Za-z'&.-]*\s+)(?:(?:[A-Z][A-Za-z'&.-]*|and|of|the|for|in|on)\s+)*(?:Inc\.?|LLC|Ltd\.?|Corp\.?|Corporation|Company|Association|Commission|Department|Agency|Bureau|Authority|Board|Institute)\b`)
	productPattern = regexp.MustCompile(
		`\b(?:[A-Z][A-Za-z'-]*\s+)+(?:Policy|Policies|Plan|Rider|Annuity|Product)\b`)

	lawGazetteer = []string{
		"HIPAA", "GDPR", "ERISA", "FCRA", "GLBA", "CCPA", "ACA", "SOX",
	}
	orgGazetteer = []string{
		"NAIC", "SEC", "FDA", "IRS", "FINRA", "FTC", "CMS", "OSHA", "DOL",
	}
)

// extractEntities returns entities in document order, de-duplicated by
// surface text (first category seen wins).
func extractEntities(text string) []entity {
	var found []entity

	collect := func(pattern *regexp.Regexp, category string) {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			found = append(found, entity{
				Text:     strings.TrimSpace(text[loc[0]:loc[1]]),
				Category: category,
				pos:      loc[0],
			})
		}
	}
	collect(lawPattern, CategoryLaw)
	collect(orgPattern, CategoryOrganization)
	collect(productPattern, CategoryProduct)

	gazetteer := func(names []string, category string) {
		for _, name := range names {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
			for _, loc := range re.FindAllStringIndex(text, -1) {
				found = append(found, entity{Text: name, Category: category, pos: loc[0]})
			}
		}
	}
	gazetteer(lawGazetteer, CategoryLaw)
	gazetteer(orgGazetteer, CategoryOrganization)

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	seen := make(map[string]struct{}, len(found))
	out := found[:0]
	for _, ent := range found {
		if _, dup := seen[ent.Text]; dup {
			continue
		}
		seen[ent.Text] = struct{}{}
		out = append(out, ent)
	}
	return out
}
