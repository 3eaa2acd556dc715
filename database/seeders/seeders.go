// Package seeders fills a fresh database with the default modules, users,
// roles and permissions. Every seeder checks before inserting so running
// them again leaves existing rows alone.
package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/acl-api/services"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// DefaultPassword is given to every seeded user
const DefaultPassword = "password"

var (
	defaultModules = []string{"Users", "Roles", "Permissions"}

	defaultUsers = []struct{ Name, Email string }{
		{"Admin User", "admin@example.com"},
		{"John Doe", "john@example.com"},
	}

	defaultRoles = []models.Role{
		{Name: "Admin", Slug: "admin", Description: "Administrator role"},
		{Name: "User", Slug: "user", Description: "Standard user role"},
	}

	permissionActions = []string{"Create", "Read", "Update", "Delete"}
)

// DatabaseSeeder runs every seeder in dependency order
type DatabaseSeeder struct {
	moduleRepo     *repositories.ModuleRepository
	userRepo       *repositories.UserRepository
	roleRepo       *repositories.RoleRepository
	permissionRepo *repositories.PermissionRepository
	hasher         services.PasswordHasher
}

// NewDatabaseSeeder creates a seeder writing to db
func NewDatabaseSeeder(db *gorm.DB, hasher services.PasswordHasher) *DatabaseSeeder {
	return &DatabaseSeeder{
		moduleRepo:     repositories.NewModuleRepository(db),
		userRepo:       repositories.NewUserRepository(db),
		roleRepo:       repositories.NewRoleRepository(db),
		permissionRepo: repositories.NewPermissionRepository(db),
		hasher:         hasher,
	}
}

// Run seeds modules, users, roles and then permissions
func (s *DatabaseSeeder) Run(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"ModuleSeeder", s.SeedModules},
		{"UserSeeder", s.SeedUsers},
		{"RoleSeeder", s.SeedRoles},
		{"PermissionSeeder", s.SeedPermissions},
	}

	for _, step := range steps {
		log.Printf("🌱 Running %s...", step.name)
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		log.Printf("✅ %s executed", step.name)
	}
	return nil
}

// SeedModules creates the default modules missing by slug
func (s *DatabaseSeeder) SeedModules(ctx context.Context) error {
	for _, name := range defaultModules {
		moduleSlug := slug.Make(name)
		_, err := s.moduleRepo.FindBySlug(ctx, moduleSlug)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		if err := s.moduleRepo.Create(ctx, &models.Module{Name: name, Slug: moduleSlug}); err != nil {
			return fmt.Errorf("create module %s: %w", moduleSlug, err)
		}
	}
	return nil
}

// SeedUsers creates the default users missing by email
func (s *DatabaseSeeder) SeedUsers(ctx context.Context) error {
	hashed, err := s.hasher.Hash(DefaultPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	for _, u := range defaultUsers {
		_, err := s.userRepo.FindByEmail(ctx, u.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		user := &models.User{Name: u.Name, Email: u.Email, Password: hashed}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
	}
	return nil
}

// SeedRoles creates the default roles missing by slug
func (s *DatabaseSeeder) SeedRoles(ctx context.Context) error {
	for _, r := range defaultRoles {
		_, err := s.roleRepo.FindBySlug(ctx, r.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		role := r
		if err := s.roleRepo.Create(ctx, &role); err != nil {
			return fmt.Errorf("create role %s: %w", r.Slug, err)
		}
	}
	return nil
}

// SeedPermissions gives every module one permission per CRUD action, with
// slugs such as "create-users". Rows still carrying the older bare action
// slug ("create") are renamed in place instead of duplicated.
func (s *DatabaseSeeder) SeedPermissions(ctx context.Context) error {
	modules, err := s.moduleRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	for _, module := range modules {
		for _, action := range permissionActions {
			if err := s.seedPermission(ctx, module, action); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *DatabaseSeeder) seedPermission(ctx context.Context, module models.Module, action string) error {
	actionSlug := slug.Make(action)
	permissionSlug := slug.Make(actionSlug + "-" + module.Slug)

	_, err := s.permissionRepo.FindBySlugAndModule(ctx, permissionSlug, module.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	name := module.Name + " " + action
	description := action + " " + module.Name

	legacy, err := s.permissionRepo.FindBySlugAndModule(ctx, actionSlug, module.ID)
	switch {
	case err == nil:
		log.Printf("🔁 Renaming permission %s of module %s to %s", actionSlug, module.Slug, permissionSlug)
		return s.permissionRepo.Update(ctx, legacy.ID, map[string]interface{}{
			"name":        name,
			"slug":        permissionSlug,
			"description": description,
		})
	case errors.Is(err, repositories.ErrNotFound):
		return s.permissionRepo.Create(ctx, &models.Permission{
			Name:        name,
			Slug:        permissionSlug,
			Description: description,
			ModuleID:    module.ID,
		})
	default:
		return err
	}
}
