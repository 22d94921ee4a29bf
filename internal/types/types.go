// internal/types/types.go
package types

// EntityID: идентификатор сущности в ECS. Ноль никогда не выдаётся.
type EntityID uint64
