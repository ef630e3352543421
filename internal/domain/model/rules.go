package model

type RuleEngine string

const (
	EngineCycle           RuleEngine = "cycle"
	EngineFrequency       RuleEngine = "maintenance_frequency"
	EngineDetergentFormat RuleEngine = "detergent_format"
)

func RuleEngines() []RuleEngine {
	return []RuleEngine{EngineCycle, EngineFrequency, EngineDetergentFormat}
}

// RuleInfo describes one entry of an ordered rule list. Order is 1-based
// within its engine.
type RuleInfo struct {
	Engine  RuleEngine `json:"engine"`
	Order   int        `json:"order"`
	ID      string     `json:"id"`
	Outcome string     `json:"outcome"`
}
