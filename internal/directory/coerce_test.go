package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_FlatList(t *testing.T) {
	data := []byte(`[
		{"iid": "1", "name": "홍길동", "organization": "개발팀", "title": "팀장", "phone": "+82 10-1111-2222"},
		{"iid": "2", "name": "김철수", "organization": "개발팀", "phone": "582 x400", "mobilePhone": "010-3333-4444"},
		{"name": "이영희"}
	]`)

	groups, err := Coerce(data, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	var dev Group
	for _, g := range groups {
		if g.Name == "개발팀" {
			dev = g
		}
	}
	require.Len(t, dev.Records, 2)
	assert.Equal(t, "김철수", dev.Records[0].Employee.Name)
	assert.Equal(t, "400", dev.Records[0].PhoneDisplay)
	assert.True(t, dev.Records[0].ShowMobile)
	assert.Equal(t, "010-1111-2222", dev.Records[1].PhoneDisplay)
	assert.Equal(t, "1", dev.Records[1].Employee.ID)
}

func TestCoerce_PreGrouped(t *testing.T) {
	data := []byte(`[
		{"orgKey": "k1", "orgName": "B팀", "employees": [{"name": "x"}, {"name": "y", "organization": "Other"}]},
		{"orgName": "A팀", "employees": []}
	]`)

	groups, err := Coerce(data, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "k1", groups[0].Key)
	assert.Equal(t, "B팀", groups[0].Name)
	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, "B팀", groups[0].Records[0].Employee.Organization)
	assert.Equal(t, "k1", groups[0].Records[0].Employee.OrganizationKey)
	assert.Equal(t, "Other", groups[0].Records[1].Employee.Organization)

	assert.Equal(t, "a팀", groups[1].Key)
	assert.Empty(t, groups[1].Records)
}

func TestCoerce_Envelope(t *testing.T) {
	for _, key := range []string{"groups", "data", "items", "employees"} {
		t.Run(key, func(t *testing.T) {
			data := []byte(`{"` + key + `": [{"name": "a", "organization": "x"}]}`)
			groups, err := Coerce(data, DefaultOptions())
			require.NoError(t, err)
			require.Len(t, groups, 1)
			assert.Equal(t, "x", groups[0].Name)
		})
	}
}

func TestCoerce_UnknownShape(t *testing.T) {
	for _, doc := range []string{`{"foo": 1}`, `"text"`, `42`, `null`, `[]`} {
		groups, err := Coerce([]byte(doc), DefaultOptions())
		require.NoError(t, err, doc)
		assert.Empty(t, groups, doc)
	}
}

func TestCoerce_InvalidJSON(t *testing.T) {
	_, err := Coerce([]byte(`[{"name": `), DefaultOptions())
	require.Error(t, err)
}

func TestCoerce_MalformedFields(t *testing.T) {
	data := []byte(`[{"name": 12, "title": true, "phone": 1012345678, "organization": null}, "junk"]`)

	groups, err := Coerce(data, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Records, 1)

	e := groups[0].Records[0].Employee
	assert.Equal(t, "12", e.Name)
	assert.Equal(t, "", e.Title)
	assert.Equal(t, "1012345678", e.Phone)
	assert.Equal(t, NoOrganizationKey, groups[0].Key)
}

func TestEmployees(t *testing.T) {
	data := []byte(`{"items": [{"name": "a", "organization": "x"}, {"name": "b", "organization": "y"}]}`)

	groups, err := Coerce(data, DefaultOptions())
	require.NoError(t, err)

	employees := Employees(groups)
	require.Len(t, employees, 2)
	assert.Equal(t, "a", employees[0].Name)
	assert.Equal(t, "x", employees[0].OrganizationKey)
	assert.Equal(t, "b", employees[1].Name)
	assert.Empty(t, Employees(nil))
}
