package domain

// AxisScores holds the three per-axis scores, each in [0,1].
type AxisScores struct {
	Foundation float64 `json:"foundation"`
	Context    float64 `json:"context"`
	Principle  float64 `json:"principle"`
}

// Evaluation is the transparent scoring payload produced from a finalized
// DiscernmentObject. Numeric fields are rounded to 3 decimal places.
type Evaluation struct {
	Scores        AxisScores `json:"scores"`
	WeightedScore float64    `json:"weighted_score"`
	RiskIndex     float64    `json:"risk_index"`
	Confidence    float64    `json:"confidence"`
	Penalties     []string   `json:"penalties"`
	Notes         string     `json:"notes"`
}
