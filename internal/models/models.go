package models

// AllModels lists every normalized entity in dependency order for AutoMigrate.
func AllModels() []any {
	return []any{
		&User{},
		&Topic{},
		&Post{},
		&Comment{},
		&Vote{},
	}
}
