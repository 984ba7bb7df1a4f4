package component

// Abilities — таймеры баффов. Метеоры и чемпион живут в хранилище сущностей.
type Abilities struct {
	FastAttackActive bool
	FastAttackEndsAt float64
	ExplosiveActive  bool
	ExplosiveEndsAt  float64
}
