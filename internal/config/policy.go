package config

import "github.com/theirongolddev/pocket/internal/engine"

// EnginePolicy converts the configured percentages into engine ratios,
// falling back to the engine defaults for unset or nonsense values.
func (c Config) EnginePolicy() engine.Policy {
	p := engine.DefaultPolicy()
	if pct := c.Policy.NearLimitPercent; pct > 0 && pct <= 100 {
		p.NearLimitRatio = float64(pct) / 100
	}
	if pct := c.Policy.UnderusedPercent; pct > 0 && pct <= 100 {
		p.UnderusedRatio = float64(pct) / 100
	}
	if pct := c.Policy.OverusedPercent; pct > 0 && pct <= 100 {
		p.OverusedRatio = float64(pct) / 100
	}
	return p
}
