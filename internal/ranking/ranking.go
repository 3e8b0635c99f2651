package ranking

// Tier pairs a minimum score ratio with the label awarded at or above it.
type Tier struct {
	Threshold float64
	Label     string
}

const (
	LabelMetaModeller     = "Meta-Modeller"
	LabelTraitWhisperer   = "Trait Whisperer"
	LabelSemanticSeedling = "Semantic Seedling"
	LabelInitiate         = "Initiate"
)

// tiers is ordered highest threshold first.
var tiers = []Tier{
	{Threshold: 0.9, Label: LabelMetaModeller},
	{Threshold: 0.7, Label: LabelTraitWhisperer},
	{Threshold: 0.4, Label: LabelSemanticSeedling},
	{Threshold: 0, Label: LabelInitiate},
}

// Tiers returns the ranking table, highest threshold first.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// Lowest returns the label of the bottom tier.
func Lowest() string {
	return tiers[len(tiers)-1].Label
}

// ForRatio returns the label of the highest tier whose threshold is at or
// below ratio. Ratios below every threshold get the lowest label.
func ForRatio(ratio float64) string {
	for _, t := range tiers {
		if ratio >= t.Threshold {
			return t.Label
		}
	}
	return Lowest()
}

// ForScore ranks score out of total rounds.
func ForScore(score, total int) string {
	if total <= 0 {
		return Lowest()
	}
	return ForRatio(float64(score) / float64(total))
}
