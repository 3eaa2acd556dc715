package models

// All returns every model managed by auto-migration, parents first.
func All() []interface{} {
	return []interface{}{
		&Module{},
		&Permission{},
		&Role{},
		&User{},
	}
}
