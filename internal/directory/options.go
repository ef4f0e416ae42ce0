package directory

// DefaultExtensionOfficeCode is the office prefix of internal extensions ("582 x400").
const DefaultExtensionOfficeCode = "582"

// Options controls how records are normalized, indexed and displayed.
type Options struct {
	// OrgPrefix is removed from organization names for display when StripOrgPrefix is set.
	OrgPrefix      string
	StripOrgPrefix bool
	// IncludeMobile adds the secondary phone to the search keys.
	IncludeMobile bool

	ExtensionOfficeCode string
	LabelPhone          bool
	LabelExtension      bool
}

// DefaultOptions returns options with mobile search enabled and no labels.
func DefaultOptions() Options {
	return Options{
		IncludeMobile:       true,
		ExtensionOfficeCode: DefaultExtensionOfficeCode,
	}
}

func (o Options) officeCode() string {
	if o.ExtensionOfficeCode == "" {
		return DefaultExtensionOfficeCode
	}
	return o.ExtensionOfficeCode
}
