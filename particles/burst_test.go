package particles

import (
	"math/rand"
	"testing"

	"lumen/config"
)

func burstConfig() config.BurstConfig {
	return config.BurstConfig{
		EmitChance: 1.0, // emit every tick to stress the pool
		PathFollow: 0.6,
		SparkSpeed: 0.05,
		Gravity:    0.001,
		LifeDecay:  0.02,
		SizeDecay:  0.97,
		SparkSize:  1.5,
	}
}

func TestBurstPoolNeverExceedsCapacity(t *testing.T) {
	const trailLength = 10
	poolCap := 3 * trailLength
	rng := rand.New(rand.NewSource(1))
	p := NewBurstParticle(testPath(), rng, poolCap, 0.5, 1)

	for i := 0; i < 2000; i++ {
		p.Update(0.002, burstConfig())
		if p.Live > poolCap {
			t.Fatalf("tick %d: live = %d exceeds capacity %d", i, p.Live, poolCap)
		}
		if p.Live < 0 {
			t.Fatalf("tick %d: live = %d negative", i, p.Live)
		}
	}
}

func TestBurstSparkLifeStrictlyDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	cfg := burstConfig()
	p := NewBurstParticle(testPath(), rng, 30, 0.5, 1)

	p.Update(0.002, cfg)
	if p.Live == 0 {
		t.Fatal("expected sparks after an emitting tick")
	}

	// Suppress further emission so the pool only drains.
	cfg.EmitChance = 0
	prevLive := p.Live

	for tick := 0; tick < 200 && p.Live > 0; tick++ {
		p.Update(0.002, cfg)
		if p.Live > prevLive {
			t.Fatalf("live count grew from %d to %d with emission disabled", prevLive, p.Live)
		}
		for i := 0; i < p.Live; i++ {
			if p.Sparks[i].Life <= 0 {
				t.Fatalf("dead spark (life %v) in live prefix", p.Sparks[i].Life)
			}
		}
		prevLive = p.Live
	}
	if p.Live != 0 {
		t.Errorf("pool should fully drain, %d sparks remain", p.Live)
	}
}

func TestBurstLivePrefixContiguous(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := NewBurstParticle(testPath(), rng, 12, 0.5, 1)
	cfg := burstConfig()
	cfg.EmitChance = 0.5

	for i := 0; i < 500; i++ {
		p.Update(0.002, cfg)
		for j := 0; j < p.Live; j++ {
			if p.Sparks[j].Life <= 0 {
				t.Fatalf("slot %d in the live prefix holds an expired spark", j)
			}
		}
	}
}

func TestBurstCapacityFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := NewBurstParticle(testPath(), rng, 0, 0.5, 1)
	if len(p.Sparks) < 1 {
		t.Error("degenerate pool capacity should be floored at 1")
	}
	p.Update(0.002, burstConfig())
}
