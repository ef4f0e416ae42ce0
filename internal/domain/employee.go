package domain

// Employee is one roster entry as delivered by the data source.
// ID is an opaque upstream identifier and never takes part in search.
type Employee struct {
	ID              string
	Name            string
	Organization    string
	OrganizationKey string
	Title           string
	Phone           string
	MobilePhone     string
}
