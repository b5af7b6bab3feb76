package intervals

// DateRange describes the window the training data was retrieved over.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// TrainingData bundles everything one analysis run consumes. Activities
// arrive newest-first, which downstream filtering relies on.
type TrainingData struct {
	Profile      Profile
	Activities   []Activity
	Wellness     []WellnessEntry
	FitnessTrend []TrendPoint
	DateRange    DateRange
}
