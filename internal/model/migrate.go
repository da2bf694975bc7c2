package model

// All 参与 AutoMigrate 的模型，顺序按外键依赖排列
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Location{},
		&Post{},
		&Comment{},
	}
}
