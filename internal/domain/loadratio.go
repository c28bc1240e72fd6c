package domain

// LoadRatio is the acute:chronic workload report for one planning run. It is
// derived per run and persisted only as a report artifact, never as input.
type LoadRatio struct {
	AcuteMin            int
	ChronicWeeklyAvgMin float64
	Ratio               float64
	Tier                RiskTier
	DaysOfData          int
}
