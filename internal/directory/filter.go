package directory

// Result is the outcome of filtering a dataset with a query.
type Result struct {
	Groups  []Group
	Matched int
}

// Filter keeps the records matching query, dropping groups left empty.
// Group and record order is preserved.
func Filter(groups []Group, query string) Result {
	out := Result{Groups: make([]Group, 0, len(groups))}
	for _, g := range groups {
		var kept []*Record
		for _, r := range g.Records {
			if Match(r.Index, query) {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out.Groups = append(out.Groups, Group{Key: g.Key, Name: g.Name, Records: kept})
		out.Matched += len(kept)
	}
	return out
}
