package domain

// Preset is a named ParameterSet the UI can apply wholesale to its current
// parameter state. The catalog is a closed enumeration - presets are
// defined here, never computed.
type Preset struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Params      ParameterSet `json:"params"`
}

const (
	PresetDefault = "default"
	PresetLab1    = "lab1"
	PresetLab2    = "lab2"
	PresetLab3    = "lab3"
)

func DefaultParameterSet() ParameterSet {
	return ParameterSet{
		Alpha:    0.005,
		BetaMkt:  1.0,
		BetaSMB:  0.2,
		BetaHML:  -0.3,
		RiskFree: 0.02,
		Noise:    0.02,
	}
}

func Presets() []Preset {
	return []Preset{
		{
			ID:          PresetDefault,
			Name:        "Default",
			Description: "A typical diversified equity position with a small positive alpha.",
			Params:      DefaultParameterSet(),
		},
		{
			ID:          PresetLab1,
			Name:        "Lab 1: Detecting Manager Skill",
			Description: "Neutral size and value exposure with low noise, so a 0.5%/month alpha should show up as statistically significant.",
			Params: ParameterSet{
				Alpha:    0.005,
				BetaMkt:  1.0,
				BetaSMB:  0.0,
				BetaHML:  0.0,
				RiskFree: 0.02,
				Noise:    0.01,
			},
		},
		{
			ID:          PresetLab2,
			Name:        "Lab 2: Factor Timing Strategy",
			Description: "A strategy tilted hard toward small caps and value, paying for it with a small negative alpha.",
			Params: ParameterSet{
				Alpha:    -0.003,
				BetaMkt:  1.2,
				BetaSMB:  1.0,
				BetaHML:  1.1,
				RiskFree: 0.03,
				Noise:    0.03,
			},
		},
		{
			ID:          PresetLab3,
			Name:        "Lab 3: Crisis Period Analysis",
			Description: "A downturn profile: muted market sensitivity, negative size exposure and a strong tilt away from value, with high noise.",
			Params: ParameterSet{
				Alpha:    0.010,
				BetaMkt:  0.8,
				BetaSMB:  -0.7,
				BetaHML:  -1.2,
				RiskFree: 0.01,
				Noise:    0.05,
			},
		},
	}
}

func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
