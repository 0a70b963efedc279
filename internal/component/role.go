// internal/component/role.go
package component

// Role — организационная роль, которую представляет тело.
type Role struct {
	Name string
	Link string // Цель навигации, может быть пустой
}

// Central помечает неподвижное центральное тело.
// Такое тело не анимируется и не участвует в проверке пересечений.
type Central struct{}
