package components

import (
	"testing"

	"github.com/automoto/flyshoot/config"
)

func TestHeatAfterOneShot(t *testing.T) {
	p := NewPlayerData()
	p.IncreaseHeat()
	if p.Heat != config.Player.BulletHeat {
		t.Errorf("Heat = %v, want %v", p.Heat, config.Player.BulletHeat)
	}
	if p.HeatRecovery != config.Player.MinHeatRecovery {
		t.Errorf("HeatRecovery = %v, want %v", p.HeatRecovery, config.Player.MinHeatRecovery)
	}

	for i := 0; i < 60; i++ {
		p.Cooldown(1.0 / 60)
	}
	if p.Heat != 0 {
		t.Errorf("Heat = %v after 1s idle, want 0", p.Heat)
	}
	if p.HeatRecovery <= config.Player.MinHeatRecovery || p.HeatRecovery > config.Player.MaxHeatRecovery {
		t.Errorf("HeatRecovery = %v after 1s idle, want in (%v, %v]",
			p.HeatRecovery, config.Player.MinHeatRecovery, config.Player.MaxHeatRecovery)
	}

	for i := 0; i < 600; i++ {
		p.Cooldown(1.0 / 60)
	}
	if p.HeatRecovery != config.Player.MaxHeatRecovery {
		t.Errorf("HeatRecovery = %v after a long rest, want cap %v", p.HeatRecovery, config.Player.MaxHeatRecovery)
	}
}

func TestOverheat(t *testing.T) {
	p := NewPlayerData()
	shots := 0
	for !p.Overheated() {
		p.IncreaseHeat()
		shots++
		if shots > 100 {
			t.Fatal("weapon never overheats")
		}
	}
	if shots < 19 || shots > 21 {
		t.Errorf("overheated after %d shots, want about 20", shots)
	}
}
