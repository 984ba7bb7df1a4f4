package types

// EntityID — идентификатор сущности в хранилище
type EntityID uint64
