// internal/types/types.go
package types

// EntityID — идентификатор сущности внутри одной сессии.
// Ноль никогда не выдаётся и означает "нет сущности".
type EntityID uint64
