package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/acl-api/database/dbtest"
	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/acl-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUsers(t *testing.T, db *gorm.DB) {
	t.Helper()
	users := []models.User{
		{Name: "Alice Cooper", Email: "alice@example.com", Password: "x"},
		{Name: "Bob Stone", Email: "bob@jonas.dev", Password: "x"},
		{Name: "Jonathan Hart", Email: "jhart@example.com", Password: "x"},
		{Name: "Carol King", Email: "carol@example.com", Password: "x"},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}
}

func TestUserSearchMatchesAnyField(t *testing.T) {
	db := dbtest.Open(t)
	seedUsers(t, db)
	repo := repositories.NewUserRepository(db)

	res, err := repo.FindAllPaginated(context.Background(), repositories.ListOptions{Search: "jon", SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)

	require.Len(t, res.Data, 2)
	assert.Equal(t, "Bob Stone", res.Data[0].Name)
	assert.Equal(t, "Jonathan Hart", res.Data[1].Name)
	assert.Equal(t, int64(2), res.Meta.TotalItems)
}

func TestUserSearchEscapesWildcards(t *testing.T) {
	db := dbtest.Open(t)
	seedUsers(t, db)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	for _, search := range []string{"%", "_", `\`} {
		res, err := repo.FindAllPaginated(ctx, repositories.ListOptions{Search: search})
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Meta.TotalItems, search)
		assert.Empty(t, res.Data, search)
	}

	require.NoError(t, db.Create(&models.User{Name: "Dana 100%", Email: "dana_lee@example.com", Password: "x"}).Error)

	res, err := repo.FindAllPaginated(ctx, repositories.ListOptions{Search: "100%"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Dana 100%", res.Data[0].Name)

	res, err = repo.FindAllPaginated(ctx, repositories.ListOptions{Search: "a_l"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "dana_lee@example.com", res.Data[0].Email)
}

func TestUserSortDefaultsToDescending(t *testing.T) {
	db := dbtest.Open(t)
	seedUsers(t, db)
	repo := repositories.NewUserRepository(db)

	res, err := repo.FindAllPaginated(context.Background(), repositories.ListOptions{SortBy: "email"})
	require.NoError(t, err)

	require.Len(t, res.Data, 4)
	assert.Equal(t, "jhart@example.com", res.Data[0].Email)
	assert.Equal(t, "alice@example.com", res.Data[3].Email)
}

func TestUserUnknownSortKeepsInsertionOrder(t *testing.T) {
	db := dbtest.Open(t)
	seedUsers(t, db)
	repo := repositories.NewUserRepository(db)

	res, err := repo.FindAllPaginated(context.Background(), repositories.ListOptions{SortBy: "password", Limit: 2, Page: 2})
	require.NoError(t, err)

	require.Len(t, res.Data, 2)
	assert.Equal(t, "Jonathan Hart", res.Data[0].Name)
	assert.Equal(t, 2, res.Meta.TotalPages)
}

func TestUserSoftDelete(t *testing.T) {
	db := dbtest.Open(t)
	seedUsers(t, db)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	alice, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, alice.ID))

	_, err = repo.FindByID(ctx, alice.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, alice.ID), repositories.ErrNotFound)

	res, err := repo.FindAllPaginated(ctx, repositories.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Meta.TotalItems)

	// The row is still there, only hidden.
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.User{}).Where("id = ?", alice.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// A deleted user's email can be registered again.
	require.NoError(t, repo.Create(ctx, &models.User{Name: "Alice Again", Email: "alice@example.com", Password: "x"}))
}

func TestUserEmailUnique(t *testing.T) {
	db := dbtest.Open(t)
	seedUsers(t, db)
	repo := repositories.NewUserRepository(db)

	err := repo.Create(context.Background(), &models.User{Name: "Dup", Email: "bob@jonas.dev", Password: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserPartialUpdate(t *testing.T) {
	db := dbtest.Open(t)
	seedUsers(t, db)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	carol, err := repo.FindByEmail(ctx, "carol@example.com")
	require.NoError(t, err)

	updated, err := repo.Update(ctx, carol.ID, map[string]interface{}{"username": utils.Ptr("carol")})
	require.NoError(t, err)
	assert.Equal(t, "Carol King", updated.Name)
	assert.Equal(t, "carol", utils.Deref(updated.Username))

	unchanged, err := repo.Update(ctx, carol.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, updated.Username, unchanged.Username)

	_, err = repo.Update(ctx, 9999, map[string]interface{}{"name": "ghost"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRoleCRUD(t *testing.T) {
	db := dbtest.Open(t)
	repo := repositories.NewRoleRepository(db)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Role{
			Name:        fmt.Sprintf("Role %d", i),
			Slug:        fmt.Sprintf("role-%d", i),
			Description: "test",
		}))
	}

	res, err := repo.FindAllPaginated(ctx, repositories.ListOptions{Search: "role-2"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)

	role, err := repo.FindBySlug(ctx, "role-2")
	require.NoError(t, err)

	err = repo.Create(ctx, &models.Role{Name: "Dup", Slug: "role-2"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	_, err = repo.Update(ctx, role.ID, map[string]interface{}{"slug": "role-1"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, repo.Delete(ctx, role.ID))
	var count int64
	require.NoError(t, db.Model(&models.Role{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
	assert.ErrorIs(t, repo.Delete(ctx, role.ID), repositories.ErrNotFound)
}

func TestPermissionsGroupedByModule(t *testing.T) {
	db := dbtest.Open(t)
	modules := repositories.NewModuleRepository(db)
	permissions := repositories.NewPermissionRepository(db)
	ctx := context.Background()

	roles := &models.Module{Name: "Roles", Slug: "roles", Order: 2}
	users := &models.Module{Name: "Users", Slug: "users", Order: 1}
	empty := &models.Module{Name: "Empty", Slug: "empty", Order: 0}
	for _, m := range []*models.Module{roles, users, empty} {
		require.NoError(t, modules.Create(ctx, m))
	}
	for _, p := range []*models.Permission{
		{Name: "Roles Read", Slug: "read-roles", ModuleID: roles.ID},
		{Name: "Users Create", Slug: "create-users", ModuleID: users.ID},
		{Name: "Users Read", Slug: "read-users", ModuleID: users.ID},
	} {
		require.NoError(t, permissions.Create(ctx, p))
	}

	grouped, err := permissions.FindGroupedByModule(ctx)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	assert.Equal(t, "users", grouped[0].Slug)
	assert.Len(t, grouped[0].Permissions, 2)
	assert.Equal(t, "create-users", grouped[0].Permissions[0].Slug)
	assert.Equal(t, "roles", grouped[1].Slug)

	found, err := permissions.FindBySlugAndModule(ctx, "read-users", users.ID)
	require.NoError(t, err)
	assert.Equal(t, "Users Read", found.Name)

	_, err = permissions.FindBySlugAndModule(ctx, "read-users", roles.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	all, err := modules.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "empty", all[0].Slug)
}

func TestModuleSortByOrderColumn(t *testing.T) {
	db := dbtest.Open(t)
	repo := repositories.NewModuleRepository(db)
	ctx := context.Background()

	for i, name := range []string{"Alpha", "Beta", "Gamma"} {
		require.NoError(t, repo.Create(ctx, &models.Module{Name: name, Slug: fmt.Sprintf("m-%d", i), Order: i}))
	}

	res, err := repo.FindAllPaginated(ctx, repositories.ListOptions{SortBy: "order", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, res.Data, 3)
	assert.Equal(t, "Gamma", res.Data[0].Name)

	beta, err := repo.FindBySlug(ctx, "m-1")
	require.NoError(t, err)
	byID, err := repo.FindByID(ctx, beta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beta", byID.Name)
}
