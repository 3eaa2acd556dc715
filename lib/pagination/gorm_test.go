package pagination_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/acl-api/database/dbtest"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestGormSourceWindow(t *testing.T) {
	db := dbtest.Open(t)
	for i := 1; i <= 12; i++ {
		require.NoError(t, db.Create(&models.Role{
			Name: fmt.Sprintf("Role %02d", i),
			Slug: fmt.Sprintf("role-%02d", i),
		}).Error)
	}

	query := db.Model(&models.Role{}).Where("slug LIKE ?", "role-%")
	src := pagination.FromQuery[models.Role](query, clause.OrderByColumn{Column: clause.Column{Name: "name"}, Desc: true})

	res, err := pagination.Paginate[models.Role](context.Background(), src, pagination.Options{Page: 2, Limit: 5, Route: "http://x/roles"})
	require.NoError(t, err)

	assert.Equal(t, int64(12), res.Meta.TotalItems)
	assert.Equal(t, 3, res.Meta.TotalPages)
	require.Len(t, res.Data, 5)
	assert.Equal(t, "Role 07", res.Data[0].Name)
	assert.Equal(t, "Role 03", res.Data[4].Name)

	// The source is reusable across calls.
	again, err := pagination.Paginate[models.Role](context.Background(), src, pagination.Options{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, again.Data, 2)
}
