package directory

import "strings"

const keySeparator = " | "

// Index holds the precomputed search keys of one record.
type Index struct {
	Combined string
	Digits   string
	Chosung  string

	Name          string
	OrgRaw        string
	OrgDisplay    string
	Title         string
	PhoneDisplay  string
	MobileDisplay string
}

// fields returns the per-field keys checked by exact Hangul matching.
func (idx Index) fields() [6]string {
	return [6]string{idx.Name, idx.OrgRaw, idx.OrgDisplay, idx.Title, idx.PhoneDisplay, idx.MobileDisplay}
}

// BuildIndex derives the search keys of r. The record ID is never indexed.
func BuildIndex(r *Record, opts Options) Index {
	e := r.Employee

	combined := []string{e.Name, e.Organization, r.OrganizationDisplay, e.Title, e.Phone, r.PhoneDisplay}
	digits := OnlyDigits(e.Phone)
	mobileDisplay := ""
	if opts.IncludeMobile {
		combined = append(combined, e.MobilePhone, r.MobileDisplay)
		digits += "|" + OnlyDigits(e.MobilePhone)
		mobileDisplay = NormalizeBasic(r.MobileDisplay)
	}

	chosung := strings.Join([]string{
		Chosung(e.Name),
		Chosung(e.Organization),
		Chosung(r.OrganizationDisplay),
		Chosung(e.Title),
	}, " ")

	return Index{
		Combined:      NormalizeBasic(strings.Join(combined, keySeparator)),
		Digits:        digits,
		Chosung:       chosung,
		Name:          NormalizeBasic(e.Name),
		OrgRaw:        NormalizeBasic(e.Organization),
		OrgDisplay:    NormalizeBasic(r.OrganizationDisplay),
		Title:         NormalizeBasic(e.Title),
		PhoneDisplay:  NormalizeBasic(r.PhoneDisplay),
		MobileDisplay: mobileDisplay,
	}
}
