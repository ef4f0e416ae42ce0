package directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/spec-kit/org-directory/internal/domain"
)

// Group is one organization and its member records.
type Group struct {
	Key     string
	Name    string
	Records []*Record
}

// newCollator returns a Korean collator. Collators are not safe for
// concurrent use, so callers build one per sort.
func newCollator() *collate.Collator {
	return collate.New(language.Korean)
}

// GroupEmployees partitions employees by organization key and orders groups by
// display name and members by person name.
func GroupEmployees(employees []domain.Employee, opts Options) []Group {
	byKey := make(map[string]*Group)
	order := make([]string, 0)

	for _, e := range employees {
		e.Organization = strings.TrimSpace(e.Organization)
		key := strings.TrimSpace(e.OrganizationKey)
		if key == "" {
			key = OrganizationKey(e.Organization)
		}
		e.OrganizationKey = key

		rec := NewRecord(e, opts)
		g, ok := byKey[key]
		if !ok {
			g = &Group{Key: key, Name: rec.OrganizationDisplay}
			byKey[key] = g
			order = append(order, key)
		}
		g.Records = append(g.Records, rec)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}
	SortGroups(groups)
	return groups
}

// SortGroups orders groups by name and each group's records by person name,
// both with Korean collation.
func SortGroups(groups []Group) {
	c := newCollator()
	sort.SliceStable(groups, func(i, j int) bool {
		return c.CompareString(groups[i].Name, groups[j].Name) < 0
	})
	for _, g := range groups {
		recs := g.Records
		sort.SliceStable(recs, func(i, j int) bool {
			return c.CompareString(recs[i].Employee.Name, recs[j].Employee.Name) < 0
		})
	}
}

// Stats summarizes a dataset.
type Stats struct {
	Organizations int
	People        int
}

// ComputeStats counts groups and records.
func ComputeStats(groups []Group) Stats {
	st := Stats{Organizations: len(groups)}
	for _, g := range groups {
		st.People += len(g.Records)
	}
	return st
}
