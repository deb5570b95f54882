package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListProjectsQuery(t *testing.T) {
	query, args, err := buildListProjectsQuery(42)
	require.NoError(t, err)

	assert.Equal(t, "SELECT project_id, name FROM projects WHERE user_id = $1 ORDER BY project_id", query)
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildListSitesQuery(t *testing.T) {
	query, args, err := buildListSitesQuery(42)
	require.NoError(t, err)

	assert.Equal(t, "SELECT site_id, project_id, name, latitude, longitude FROM sites WHERE user_id = $1 ORDER BY site_id", query)
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildListSoilDocsQuery(t *testing.T) {
	query, args, err := buildListSoilDocsQuery(soilDataTable, 7)
	require.NoError(t, err)

	assert.Equal(t, "SELECT d.site_id, d.doc FROM soil_data d JOIN sites s ON s.site_id = d.site_id WHERE s.user_id = $1 ORDER BY d.site_id", query)
	assert.Equal(t, []any{int64(7)}, args)
}
