package directory

import (
	"strings"

	"github.com/spec-kit/org-directory/internal/domain"
)

const (
	// NoOrganizationName labels the group of records without an organization.
	NoOrganizationName = "(No Organization)"
	// NoOrganizationKey is the grouping key of that group.
	NoOrganizationKey = "(no_organization)"
)

// Record is an employee plus everything derived from it at load time.
// Records are immutable once built.
type Record struct {
	Employee domain.Employee

	OrganizationDisplay string
	PhoneDisplay        string
	MobileDisplay       string
	ShowMobile          bool

	Index Index
}

// NewRecord builds the display fields and the search index of e.
func NewRecord(e domain.Employee, opts Options) *Record {
	r := &Record{
		Employee:            e,
		OrganizationDisplay: DisplayOrganization(e.Organization, opts),
		PhoneDisplay:        FormatPhone(e.Phone, opts),
		MobileDisplay:       FormatPhone(e.MobilePhone, opts),
		ShowMobile:          ShowSecondaryPhone(e.Phone, e.MobilePhone, opts),
	}
	r.Index = BuildIndex(r, opts)
	return r
}

// OrganizationName returns the trimmed organization or NoOrganizationName.
func OrganizationName(org string) string {
	if s := strings.TrimSpace(org); s != "" {
		return s
	}
	return NoOrganizationName
}

// OrganizationKey normalizes an organization name into a grouping key.
func OrganizationKey(org string) string {
	s := strings.TrimSpace(org)
	if s == "" || s == NoOrganizationName {
		return NoOrganizationKey
	}
	return NormalizeBasic(s)
}

// DisplayOrganization strips the configured prefix from org for display.
// The prefix is kept when stripping would leave nothing.
func DisplayOrganization(org string, opts Options) string {
	name := OrganizationName(org)
	if !opts.StripOrgPrefix || opts.OrgPrefix == "" {
		return name
	}
	if stripped := strings.TrimSpace(strings.TrimPrefix(name, opts.OrgPrefix)); stripped != "" {
		return stripped
	}
	return name
}
