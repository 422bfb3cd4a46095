package catalog

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBijection(t *testing.T) {
	for _, e := range Datasets() {
		t.Run(e.Name, func(t *testing.T) {
			name, err := Name(e.ID)
			require.NoError(t, err)

			id, err := ID(name)
			require.NoError(t, err)
			assert.Equal(t, e.ID, id)

			roundTrip, err := Name(id)
			require.NoError(t, err)
			assert.Equal(t, name, roundTrip)
		})
	}
}

func TestIDCaseInsensitive(t *testing.T) {
	lower, err := ID("iris")
	require.NoError(t, err)

	upper, err := ID("IRIS")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)

	mixed, err := ID("IrIs")
	require.NoError(t, err)
	assert.Equal(t, lower, mixed)
}

func TestUnknownLookups(t *testing.T) {
	_, err := Name(0)
	assert.ErrorIs(t, err, ErrUnknownDatasetID)

	_, err = Name(9999)
	assert.ErrorIs(t, err, ErrUnknownDatasetID)

	_, err = ID("mnist")
	assert.ErrorIs(t, err, ErrUnknownDatasetName)

	_, err = KValues("mnist")
	assert.ErrorIs(t, err, ErrUnknownDatasetName)
}

func TestNamesAreCanonicalLowercase(t *testing.T) {
	for _, e := range Datasets() {
		assert.Equal(t, strings.ToLower(e.Name), e.Name)
	}
}

func TestKValues(t *testing.T) {
	for _, e := range Datasets() {
		t.Run(e.Name, func(t *testing.T) {
			ks, err := KValues(e.Name)
			require.NoError(t, err)
			require.NotEmpty(t, ks)
			assert.True(t, sort.IntsAreSorted(ks))
			for _, k := range ks {
				assert.GreaterOrEqual(t, k, 2)
			}
		})
	}
}

func TestKValuesReturnsCopy(t *testing.T) {
	ks, err := KValues("iris")
	require.NoError(t, err)

	ks[0] = -1

	again, err := KValues("iris")
	require.NoError(t, err)
	assert.NotEqual(t, -1, again[0])
}

func TestDatasetsOrderedByID(t *testing.T) {
	entries := Datasets()
	require.NotEmpty(t, entries)
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	}))
}
