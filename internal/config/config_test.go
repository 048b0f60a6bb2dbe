package config

import "testing"

func TestEnginePolicy_Defaults(t *testing.T) {
	p := DefaultConfig().EnginePolicy()

	if p.NearLimitRatio != 0.8 {
		t.Errorf("NearLimitRatio = %v, want 0.8", p.NearLimitRatio)
	}
	if p.UnderusedRatio != 0.3 {
		t.Errorf("UnderusedRatio = %v, want 0.3", p.UnderusedRatio)
	}
	if p.OverusedRatio != 0.8 {
		t.Errorf("OverusedRatio = %v, want 0.8", p.OverusedRatio)
	}
}

func TestEnginePolicy_IgnoresNonsenseValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.NearLimitPercent = 0
	cfg.Policy.UnderusedPercent = -10
	cfg.Policy.OverusedPercent = 250

	p := cfg.EnginePolicy()
	if p.NearLimitRatio != 0.8 || p.UnderusedRatio != 0.3 || p.OverusedRatio != 0.8 {
		t.Errorf("nonsense config leaked into policy: %+v", p)
	}
}

func TestEnginePolicy_CustomValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.NearLimitPercent = 90
	cfg.Policy.UnderusedPercent = 20

	p := cfg.EnginePolicy()
	if p.NearLimitRatio != 0.9 {
		t.Errorf("NearLimitRatio = %v, want 0.9", p.NearLimitRatio)
	}
	if p.UnderusedRatio != 0.2 {
		t.Errorf("UnderusedRatio = %v, want 0.2", p.UnderusedRatio)
	}
}
