package dto

import (
	"time"

	"github.com/spec-kit/org-directory/internal/directory"
	"github.com/spec-kit/org-directory/internal/domain"
	"github.com/spec-kit/org-directory/internal/service"
)

// Segment is a piece of display text; Match marks the highlighted part.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match,omitempty"`
}

// EmployeeHighlights carries per-field highlight segments.
type EmployeeHighlights struct {
	Name   []Segment `json:"name"`
	Title  []Segment `json:"title"`
	Phone  []Segment `json:"phone"`
	Mobile []Segment `json:"mobile,omitempty"`
}

// EmployeeResponse is one listed person.
type EmployeeResponse struct {
	IID          string             `json:"iid,omitempty"`
	Name         string             `json:"name"`
	Title        string             `json:"title"`
	Organization string             `json:"organization"`
	Phone        string             `json:"phone"`
	Mobile       string             `json:"mobile,omitempty"`
	Highlights   EmployeeHighlights `json:"highlights"`
}

// GroupResponse is one organization with its matching people.
type GroupResponse struct {
	Key           string             `json:"key"`
	Name          string             `json:"name"`
	NameHighlight []Segment          `json:"name_highlight"`
	Count         int                `json:"count"`
	Employees     []EmployeeResponse `json:"employees"`
}

// DirectoryResponse answers GET /api/v1/directory.
type DirectoryResponse struct {
	Query              string          `json:"query"`
	Kind               string          `json:"kind"`
	Expanded           bool            `json:"expanded"`
	TotalPeople        int             `json:"total_people"`
	TotalOrganizations int             `json:"total_organizations"`
	MatchedPeople      int             `json:"matched_people"`
	Groups             []GroupResponse `json:"groups"`
}

// StatusResponse answers GET /api/v1/status.
type StatusResponse struct {
	State              string     `json:"state"`
	Message            string     `json:"message,omitempty"`
	Source             string     `json:"source,omitempty"`
	LoadedAt           *time.Time `json:"loaded_at,omitempty"`
	TotalPeople        int        `json:"total_people"`
	TotalOrganizations int        `json:"total_organizations"`
}

// PopupResponse answers GET /api/v1/popups.
type PopupResponse struct {
	Date   string   `json:"date"`
	Popups []string `json:"popups"`
}

// RosterStatsResponse answers admin roster mutations.
type RosterStatsResponse struct {
	Organizations int `json:"organizations"`
	People        int `json:"people"`
}

func segments(text, query string) []Segment {
	raw := directory.Highlight(text, query)
	out := make([]Segment, 0, len(raw))
	for _, s := range raw {
		out = append(out, Segment{Text: s.Text, Match: s.Match})
	}
	return out
}

// NewEmployeeResponse renders a record with highlights for query.
func NewEmployeeResponse(r *directory.Record, query string) EmployeeResponse {
	resp := EmployeeResponse{
		IID:          r.Employee.ID,
		Name:         r.Employee.Name,
		Title:        r.Employee.Title,
		Organization: r.OrganizationDisplay,
		Phone:        r.PhoneDisplay,
		Highlights: EmployeeHighlights{
			Name:  segments(r.Employee.Name, query),
			Title: segments(r.Employee.Title, query),
			Phone: segments(r.PhoneDisplay, query),
		},
	}
	if r.ShowMobile {
		resp.Mobile = r.MobileDisplay
		resp.Highlights.Mobile = segments(r.MobileDisplay, query)
	}
	return resp
}

// NewDirectoryResponse renders a search result.
func NewDirectoryResponse(res *service.SearchResult) DirectoryResponse {
	out := DirectoryResponse{
		Query:              res.Query,
		Kind:               string(res.Kind),
		Expanded:           res.Expanded,
		TotalPeople:        res.Total.People,
		TotalOrganizations: res.Total.Organizations,
		MatchedPeople:      res.Matched,
		Groups:             make([]GroupResponse, 0, len(res.Groups)),
	}
	for _, g := range res.Groups {
		gr := GroupResponse{
			Key:           g.Key,
			Name:          g.Name,
			NameHighlight: segments(g.Name, res.Query),
			Count:         len(g.Records),
			Employees:     make([]EmployeeResponse, 0, len(g.Records)),
		}
		for _, r := range g.Records {
			gr.Employees = append(gr.Employees, NewEmployeeResponse(r, res.Query))
		}
		out.Groups = append(out.Groups, gr)
	}
	return out
}

// NewStatusResponse renders the roster status.
func NewStatusResponse(st domain.RosterStatus, stats directory.Stats) StatusResponse {
	return StatusResponse{
		State:              string(st.State),
		Message:            st.Message,
		Source:             st.Source,
		LoadedAt:           st.LoadedAt,
		TotalPeople:        stats.People,
		TotalOrganizations: stats.Organizations,
	}
}
