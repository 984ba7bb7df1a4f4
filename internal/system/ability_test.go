package system

import (
	"testing"

	"tower-siege/internal/config"
	"tower-siege/internal/event"
)

func TestBuffExpiresAfterDuration(t *testing.T) {
	w := newTestWorld(t, 1000)
	abilities := NewAbilitySystem(w.store, w.d, NewChampionSystem(w.store, w.d))

	if !abilities.ActivateFastAttack(0) || !abilities.ActivateExplosive(0) {
		t.Fatal("activation failed")
	}
	if want := 1000.0 - config.FastAttackCost - config.ExplosiveCost; w.store.Player.Money != want {
		t.Errorf("money = %v, want %v", w.store.Player.Money, want)
	}

	abilities.Update(9.9, 0.1)
	if !w.store.Abilities.FastAttackActive || !w.store.Abilities.ExplosiveActive {
		t.Fatal("buffs expired early")
	}

	abilities.Update(10, 0.1)
	if w.store.Abilities.FastAttackActive || w.store.Abilities.ExplosiveActive {
		t.Fatal("buffs still active after duration")
	}
	if w.events[event.BuffExpired] != 2 {
		t.Errorf("expired events = %d, want 2", w.events[event.BuffExpired])
	}

	abilities.Update(11, 0.1)
	if w.events[event.BuffExpired] != 2 {
		t.Errorf("expiry reported twice")
	}
}

func TestBuffReactivationRefreshesExpiry(t *testing.T) {
	w := newTestWorld(t, 1000)
	abilities := NewAbilitySystem(w.store, w.d, NewChampionSystem(w.store, w.d))

	abilities.ActivateFastAttack(0)
	abilities.ActivateFastAttack(5)

	if got := w.store.Abilities.FastAttackEndsAt; got != 15 {
		t.Errorf("ends at %v, want 15", got)
	}
	if want := 1000.0 - 2*config.FastAttackCost; w.store.Player.Money != want {
		t.Errorf("money = %v, want %v", w.store.Player.Money, want)
	}
	abilities.Update(12, 0.1)
	if !w.store.Abilities.FastAttackActive {
		t.Errorf("refreshed buff expired at the old deadline")
	}
}

func TestAbilitiesRejectedWithoutMoney(t *testing.T) {
	w := newTestWorld(t, config.FastAttackCost-1)
	abilities := NewAbilitySystem(w.store, w.d, NewChampionSystem(w.store, w.d))

	tests := []struct {
		name     string
		activate func() bool
	}{
		{"fast attack", func() bool { return abilities.ActivateFastAttack(0) }},
		{"explosive", func() bool { return abilities.ActivateExplosive(0) }},
		{"meteor", abilities.ActivateMeteor},
		{"champion", abilities.ActivateChampion},
	}
	for _, tt := range tests {
		if tt.activate() {
			t.Errorf("%s activated without money", tt.name)
		}
	}

	if w.store.Player.Money != config.FastAttackCost-1 {
		t.Errorf("money changed: %v", w.store.Player.Money)
	}
	a := w.store.Abilities
	if a.FastAttackActive || a.ExplosiveActive || len(w.store.Meteors) != 0 || w.store.Champion != nil {
		t.Errorf("state changed by rejected activation")
	}
}
