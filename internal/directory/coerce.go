package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spec-kit/org-directory/internal/domain"
)

// envelopeKeys are the property names an envelope object may carry its list under.
var envelopeKeys = []string{"groups", "data", "items", "employees"}

// Coerce turns a roster document into groups. It accepts an array of groups
// ({orgKey, orgName, employees}), a flat array of employees, or an envelope
// object holding either under one of envelopeKeys. Unrecognized shapes yield
// no groups; only malformed JSON is an error.
func Coerce(data []byte, opts Options) ([]Group, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return coerceValue(v, opts), nil
}

// Employees flattens groups back into employees in group order.
func Employees(groups []Group) []domain.Employee {
	var out []domain.Employee
	for _, g := range groups {
		for _, r := range g.Records {
			out = append(out, r.Employee)
		}
	}
	return out
}

func coerceValue(v any, opts Options) []Group {
	switch t := v.(type) {
	case []any:
		if len(t) > 0 && isGroupShape(t[0]) {
			return coerceGroups(t, opts)
		}
		return GroupEmployees(employeesFrom(t, nil), opts)
	case map[string]any:
		for _, key := range envelopeKeys {
			if list, ok := t[key].([]any); ok {
				return coerceValue(list, opts)
			}
		}
	}
	return []Group{}
}

func isGroupShape(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = m["employees"].([]any)
	return ok
}

// coerceGroups keeps pre-grouped input in the order it was delivered.
func coerceGroups(list []any, opts Options) []Group {
	groups := make([]Group, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		orgName, _ := field(m, "orgName")
		key, _ := field(m, "orgKey")
		if strings.TrimSpace(key) == "" {
			key = OrganizationKey(orgName)
		}

		members, _ := m["employees"].([]any)
		parent := &groupDefaults{orgName: orgName, orgKey: key}

		g := Group{Key: key, Name: DisplayOrganization(orgName, opts)}
		for _, e := range employeesFrom(members, parent) {
			g.Records = append(g.Records, NewRecord(e, opts))
		}
		groups = append(groups, g)
	}
	return groups
}

type groupDefaults struct {
	orgName string
	orgKey  string
}

func employeesFrom(list []any, parent *groupDefaults) []domain.Employee {
	out := make([]domain.Employee, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		e := domain.Employee{}
		e.ID, _ = field(m, "iid")
		e.Name, _ = field(m, "name")
		e.Title, _ = field(m, "title")
		e.Phone, _ = field(m, "phone")
		e.MobilePhone, _ = field(m, "mobilePhone")

		var hasOrg, hasKey bool
		e.Organization, hasOrg = field(m, "organization")
		e.OrganizationKey, hasKey = field(m, "organizationKey")
		if parent != nil {
			if !hasOrg {
				e.Organization = parent.orgName
			}
			if !hasKey || strings.TrimSpace(e.OrganizationKey) == "" {
				e.OrganizationKey = parent.orgKey
			}
		}
		e.Organization = strings.TrimSpace(e.Organization)
		out = append(out, e)
	}
	return out
}

// field reads m[key] as text. Numbers keep their literal form; other
// non-string values read as "". The bool reports whether the key was present
// with a non-null value.
func field(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	default:
		return "", true
	}
}
