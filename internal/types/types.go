// internal/types/types.go
package types

// EntityID — идентификатор сущности сцены. Ноль означает «нет сущности».
type EntityID uint64
