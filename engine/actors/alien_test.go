package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/nachenblaster/engine/core"
)

func newTestAlien(class AlienClass, x, y float64) (*Alien, *fakeArena) {
	arena := newFakeArena()
	return NewAlien(arena, class, x, y), arena
}

func TestAlienPolicies(t *testing.T) {
	tests := []struct {
		class   AlienClass
		level   int
		hp      float64
		contact float64
		speed   float64
		score   int
	}{
		{AlienLight, 1, 5, 5, 2, 250},
		{AlienLight, 3, 6, 5, 2, 250},
		{AlienMedium, 1, 5, 5, 2, 250},
		{AlienHeavy, 1, 10, 15, 1.75, 1000},
		{AlienHeavy, 6, 15, 15, 1.75, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			arena := newFakeArena()
			arena.level = tt.level
			a := NewAlien(arena, tt.class, 200, 100)
			assert.InDelta(t, tt.hp, a.HitPoints(), 1e-9)
			assert.Equal(t, tt.contact, a.ContactDamage())
			assert.Equal(t, tt.speed, a.Speed())
			assert.Equal(t, tt.score, a.ScoreValue())
			assert.Equal(t, 12.0, a.Radius())
			assert.True(t, a.IsAlien())
			assert.False(t, a.IsProjectile())
		})
	}
}

func TestAlienStartingPlan(t *testing.T) {
	light, _ := newTestAlien(AlienLight, 200, 100)
	assert.Equal(t, 0, light.FlightPlan())
	dx, dy := light.Delta()
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)

	heavy, _ := newTestAlien(AlienHeavy, 200, 100)
	assert.Equal(t, NoReplan, heavy.FlightPlan())
	dx, dy = heavy.Delta()
	assert.Equal(t, -1, dx)
	assert.Equal(t, -1, dy)
}

func TestAlienOffLeftEdgeDiesSilently(t *testing.T) {
	a, arena := newTestAlien(AlienLight, 200, 100)
	// MoveTo refuses negative x, so place it there directly.
	a.Damageable.Entity = core.NewEntity(arena.bounds, -1, 100, 0, a.Sprite())
	a.Advance()
	assert.False(t, a.Alive())
	assert.Empty(t, arena.effects)
	assert.Empty(t, arena.spawned)
	assert.Empty(t, arena.destroyed)
	assert.Equal(t, 0, arena.resolves)
}

func TestAlienReplan(t *testing.T) {
	t.Run("plan exhausted draws heading and plan", func(t *testing.T) {
		a, arena := newTestAlien(AlienLight, 200, 100)
		arena.rand.Push(1, 3, int(HeadingUpLeft)).Push(1, 32, 10)
		a.Advance()

		dx, dy := a.Delta()
		assert.Equal(t, -1, dx)
		assert.Equal(t, 1, dy)
		assert.Equal(t, 9, a.FlightPlan())
		assert.Equal(t, 198.0, a.X())
		assert.Equal(t, 102.0, a.Y())
		assert.Equal(t, 2, arena.resolves)
	})

	t.Run("top edge turns down-left", func(t *testing.T) {
		a, arena := newTestAlien(AlienLight, 200, 255)
		a.plan = 5
		arena.rand.Push(1, 32, 20)
		a.Advance()

		dx, dy := a.Delta()
		assert.Equal(t, -1, dx)
		assert.Equal(t, -1, dy)
		assert.Equal(t, 19, a.FlightPlan())
		assert.Equal(t, 253.0, a.Y())
	})

	t.Run("bottom edge turns up-left", func(t *testing.T) {
		a, arena := newTestAlien(AlienMedium, 200, 0)
		a.plan = 5
		arena.rand.Push(1, 32, 3)
		a.Advance()

		_, dy := a.Delta()
		assert.Equal(t, 1, dy)
		assert.Equal(t, 2, a.FlightPlan())
	})

	t.Run("heavy keeps the sentinel plan", func(t *testing.T) {
		a, arena := newTestAlien(AlienHeavy, 200, 0)
		for i := 0; i < 5; i++ {
			a.Advance()
		}
		assert.Equal(t, NoReplan, a.FlightPlan())
		assert.Equal(t, 0, arena.rand.Pending(1, 32))
		_, dy := a.Delta()
		assert.Equal(t, 1, dy, "bottom edge still flips the heading")
	})

	t.Run("y is clamped while moving", func(t *testing.T) {
		a, _ := newTestAlien(AlienHeavy, 200, 1)
		a.Advance()
		assert.Equal(t, 0.0, a.Y())
		assert.Equal(t, 198.25, a.X())
	})
}

func TestAlienShooting(t *testing.T) {
	t.Run("light fires a spore and stops", func(t *testing.T) {
		a, arena := newTestAlien(AlienLight, 200, 100)
		a.plan = 4
		a.setHeading(HeadingDueLeft)
		arena.inLine = true
		arena.rand.Push(1, 25, 1)
		a.Advance()

		require.Len(t, arena.spawned, 1)
		spore := arena.spawned[0].(*Projectile)
		assert.Equal(t, KindSpore, spore.Kind())
		assert.Equal(t, 186.0, spore.X())
		assert.True(t, spore.FiredByAlien())
		assert.Equal(t, []core.Effect{core.EffectAlienShoot}, arena.effects)
		assert.Equal(t, 200.0, a.X(), "a shot ends the tick")
		assert.Equal(t, 4, a.FlightPlan())
	})

	t.Run("shoot range uses integer division", func(t *testing.T) {
		a, arena := newTestAlien(AlienLight, 200, 100)
		arena.level = 3
		a.plan = 4
		arena.inLine = true
		arena.rand.Push(1, 11, 1)
		a.Advance()
		assert.Len(t, arena.spawned, 1)
	})

	t.Run("missed roll keeps flying", func(t *testing.T) {
		a, arena := newTestAlien(AlienLight, 200, 100)
		a.plan = 4
		a.setHeading(HeadingDueLeft)
		arena.inLine = true
		arena.rand.Push(1, 25, 7)
		a.Advance()
		assert.Empty(t, arena.spawned)
		assert.Equal(t, 198.0, a.X())
	})

	t.Run("heavy fires an alien torpedo", func(t *testing.T) {
		a, arena := newTestAlien(AlienHeavy, 200, 100)
		arena.inLine = true
		arena.rand.Push(1, 25, 1)
		a.Advance()

		require.Len(t, arena.spawned, 1)
		torp := arena.spawned[0].(*Projectile)
		assert.Equal(t, KindTorpedo, torp.Kind())
		assert.Equal(t, FacingAlien, torp.Facing())
		assert.True(t, torp.FiredByAlien())
		assert.Equal(t, []core.Effect{core.EffectTorpedo}, arena.effects)
	})

	t.Run("no line of fire no roll", func(t *testing.T) {
		a, arena := newTestAlien(AlienHeavy, 200, 100)
		a.Advance()
		assert.Empty(t, arena.spawned)
	})
}

func TestMediumCharge(t *testing.T) {
	a, arena := newTestAlien(AlienMedium, 200, 100)
	a.plan = 4
	a.setHeading(HeadingUpLeft)
	arena.inLine = true
	arena.rand.Push(1, 25, 2)
	a.Advance()

	assert.True(t, a.Charging())
	assert.Equal(t, 5.0, a.Speed())
	dx, dy := a.Delta()
	assert.Equal(t, -1, dx)
	assert.Equal(t, 0, dy)
	assert.Equal(t, 195.0, a.X(), "a charge still moves this tick")
	assert.Equal(t, 100.0, a.Y())
	assert.Equal(t, 255, a.FlightPlan())
	assert.Empty(t, arena.spawned)

	t.Run("charging never replans", func(t *testing.T) {
		arena.inLine = false
		a.plan = 0
		a.Advance()
		_, dy := a.Delta()
		assert.Equal(t, 0, dy)
		assert.Equal(t, 190.0, a.X())
	})
}

func TestAlienLineOfFire(t *testing.T) {
	a, _ := newTestAlien(AlienLight, 200, 100)
	assert.True(t, a.InLineOfFire(50, 104))
	assert.True(t, a.InLineOfFire(50, 96))
	assert.False(t, a.InLineOfFire(50, 105))
	assert.False(t, a.InLineOfFire(200, 100), "ship must be strictly to the left")
	assert.False(t, a.InLineOfFire(210, 100))
}

func TestAlienDamage(t *testing.T) {
	t.Run("projectile hit that leaves it alive blasts", func(t *testing.T) {
		a, arena := newTestAlien(AlienHeavy, 200, 100)
		a.ApplyDamage(2, core.CauseProjectile)
		assert.True(t, a.Alive())
		assert.Equal(t, 8.0, a.HitPoints())
		assert.Equal(t, []core.Effect{core.EffectBlast}, arena.effects)
		assert.Empty(t, arena.destroyed)
	})

	t.Run("fatal projectile hit runs the kill sequence", func(t *testing.T) {
		a, arena := newTestAlien(AlienLight, 200, 100)
		a.ApplyDamage(8, core.CauseProjectile)
		assert.False(t, a.Alive())
		assert.Equal(t, []*Alien{a}, arena.destroyed)
		assert.Equal(t, []core.Effect{core.EffectDeath}, arena.effects)
		require.Len(t, arena.spawned, 1)
		boom, ok := arena.spawned[0].(*Explosion)
		require.True(t, ok)
		assert.Equal(t, 200.0, boom.X())
	})

	t.Run("ship contact always kills", func(t *testing.T) {
		a, arena := newTestAlien(AlienHeavy, 200, 100)
		a.ApplyDamage(1, core.CauseShip)
		assert.False(t, a.Alive())
		assert.Len(t, arena.destroyed, 1)
	})

	t.Run("dead alien ignores further hits", func(t *testing.T) {
		a, arena := newTestAlien(AlienLight, 200, 100)
		a.ApplyDamage(1, core.CauseShip)
		a.ApplyDamage(8, core.CauseProjectile)
		assert.Len(t, arena.destroyed, 1)
		assert.Len(t, arena.spawned, 1)
	})
}

func TestAlienDrops(t *testing.T) {
	t.Run("light never drops", func(t *testing.T) {
		a, arena := newTestAlien(AlienLight, 200, 100)
		a.ApplyDamage(1, core.CauseShip)
		assert.Len(t, arena.spawned, 1)
	})

	t.Run("medium drops repair", func(t *testing.T) {
		a, arena := newTestAlien(AlienMedium, 200, 100)
		arena.rand.Push(1, 3, 1).Push(1, 2, 1)
		a.ApplyDamage(1, core.CauseShip)
		require.Len(t, arena.spawned, 2)
		g := arena.spawned[1].(*Goodie)
		assert.Equal(t, GoodieRepair, g.Kind())
		assert.Equal(t, []core.Effect{core.EffectDeath, core.EffectGoodie}, arena.effects)
	})

	t.Run("medium drops torpedoes", func(t *testing.T) {
		a, arena := newTestAlien(AlienMedium, 200, 100)
		arena.rand.Push(1, 3, 1).Push(1, 2, 2)
		a.ApplyDamage(1, core.CauseShip)
		require.Len(t, arena.spawned, 2)
		assert.Equal(t, GoodieAmmo, arena.spawned[1].(*Goodie).Kind())
	})

	t.Run("medium missed roll", func(t *testing.T) {
		a, arena := newTestAlien(AlienMedium, 200, 100)
		arena.rand.Push(1, 3, 3)
		a.ApplyDamage(1, core.CauseShip)
		assert.Len(t, arena.spawned, 1)
	})

	t.Run("heavy drops an extra life", func(t *testing.T) {
		a, arena := newTestAlien(AlienHeavy, 200, 100)
		arena.rand.Push(1, 6, 1)
		a.ApplyDamage(1, core.CauseShip)
		require.Len(t, arena.spawned, 2)
		assert.Equal(t, GoodieExtraLife, arena.spawned[1].(*Goodie).Kind())
	})

	t.Run("heavy missed roll", func(t *testing.T) {
		a, arena := newTestAlien(AlienHeavy, 200, 100)
		arena.rand.Push(1, 6, 4)
		a.ApplyDamage(1, core.CauseShip)
		assert.Len(t, arena.spawned, 1)
	})
}
