package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/catalog"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/record"
)

type stubRepo struct {
	record.Repository
	desc *record.Descriptor
}

func (s *stubRepo) Descriptor() *record.Descriptor { return s.desc }

func buildStub(d *record.Descriptor) record.Repository { return &stubRepo{desc: d} }

func TestDescriptors_AllValid(t *testing.T) {
	for _, d := range catalog.Descriptors() {
		t.Run(d.Name, func(t *testing.T) {
			require.NoError(t, d.Validate())
			assert.NotEmpty(t, d.Label)
			assert.NotEmpty(t, d.Required)
			assert.NotContains(t, d.Updatable, d.PrimaryKey)
		})
	}
}

func TestDescriptors_BusinessIdentifierNotUpdatable(t *testing.T) {
	for _, d := range catalog.Descriptors() {
		if d.Code != nil {
			assert.NotContains(t, d.Updatable, d.Code.Column, d.Name)
		}
	}
}

func TestDescriptors_CodeGeneratedEntities(t *testing.T) {
	prefixes := map[string]string{}
	for _, d := range catalog.Descriptors() {
		if d.Code != nil {
			prefixes[d.Name] = d.Code.Prefix
		}
	}

	assert.Equal(t, map[string]string{
		catalog.Customers:   "CUST",
		catalog.Cases:       "CASE",
		catalog.Engagements: "ENG",
	}, prefixes)
}

func TestDescriptors_FreshCopies(t *testing.T) {
	a := catalog.Descriptors()
	a[0].Label = "mutated"

	b := catalog.Descriptors()
	assert.Equal(t, "customer", b[0].Label)
}

func TestDescriptors_ListDefaults(t *testing.T) {
	reg, err := catalog.NewRegistryFrom(catalog.Descriptors(), buildStub)
	require.NoError(t, err)

	matters, ok := reg.Get(catalog.Matters)
	require.True(t, ok)
	assert.Equal(t, 50, matters.Descriptor().DefaultLimit)

	tasks, ok := reg.Get(catalog.Tasks)
	require.True(t, ok)
	assert.Equal(t, "due_date", tasks.Descriptor().Sort.Column)
	assert.False(t, tasks.Descriptor().Sort.Desc)
}

func TestNewRegistryFrom_Order(t *testing.T) {
	reg, err := catalog.NewRegistryFrom(catalog.Descriptors(), buildStub)
	require.NoError(t, err)

	names := reg.Names()
	require.Len(t, names, 11)
	assert.Equal(t, catalog.Customers, names[0])
	assert.Equal(t, catalog.Transactions, names[10])

	all := reg.All()
	require.Len(t, all, 11)
	for i, repo := range all {
		assert.Equal(t, names[i], repo.Descriptor().Name)
	}
}

func TestNewRegistryFrom_UnknownName(t *testing.T) {
	reg, err := catalog.NewRegistryFrom(catalog.Descriptors(), buildStub)
	require.NoError(t, err)

	_, ok := reg.Get("widgets")
	assert.False(t, ok)
}

func TestNewRegistryFrom_RejectsInvalidDescriptor(t *testing.T) {
	bad := &record.Descriptor{
		Name:       "bad",
		Table:      "bad; DROP TABLE users",
		PrimaryKey: "id",
		Sort:       record.Sort{Column: "created_at"},
	}

	_, err := catalog.NewRegistryFrom([]*record.Descriptor{bad}, buildStub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identifier")
}

func TestNewRegistryFrom_RejectsDuplicateName(t *testing.T) {
	descs := catalog.Descriptors()
	descs = append(descs, catalog.Descriptors()[0])

	_, err := catalog.NewRegistryFrom(descs, buildStub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate record type")
}

func TestVocabularies(t *testing.T) {
	v := catalog.Vocabularies()

	assert.Equal(t, []string{"Admin", "Attorney", "Paralegal", "Viewer"}, v.UserRoles)
	assert.Equal(t, []string{"Open", "In Progress", "Pending", "Closed", "Settled"}, v.CaseStatus)
	assert.Equal(t, []int{10, 25, 50, 100}, v.PageSizeOptions)
	assert.Contains(t, v.IndustryTypes, "Technology")
}

func TestIsRole(t *testing.T) {
	assert.True(t, catalog.IsRole("Attorney"))
	assert.False(t, catalog.IsRole("attorney"))
	assert.False(t, catalog.IsRole(""))
}
