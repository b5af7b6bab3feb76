package report

// Candidate key lists for every concept the formatter reads. intervals.icu
// has shipped both icu_-prefixed and bare names for several of these, so
// each concept is an ordered list and the first present key wins. Schema
// drift lands here, not in the rendering code.
var (
	keysName        = []string{"name"}
	keysWeight      = []string{"icu_weight", "weight"}
	keysHeight      = []string{"height"}
	keysRestingHR   = []string{"icu_resting_hr", "resting_hr", "restingHR"}
	keysMaxHR       = []string{"icu_max_hr", "max_hr"}
	keysFitness     = []string{"ctl", "icu_ctl"}
	keysFatigue     = []string{"atl", "icu_atl"}
	keysRampRate    = []string{"rampRate", "icu_ramp_rate"}
	keysFTP         = []string{"icu_ftp", "ftp"}
	keysFTPPerKg    = []string{"ftpWattsPerKg", "icu_ftp_w_per_kg"}
	keysLTHR        = []string{"lthr", "icu_lthr"}
	keysPace        = []string{"pace", "threshold_pace"}

	keysActivityType = []string{"type"}
	keysStartLocal   = []string{"start_date_local", "start_date"}
	keysDistance     = []string{"distance"}
	keysMovingTime   = []string{"moving_time", "elapsed_time"}
	keysAvgHR        = []string{"average_heartrate", "average_hr"}
	keysActMaxHR     = []string{"max_heartrate", "max_hr"}
	keysAvgWatts     = []string{"icu_average_watts", "average_watts"}
	keysMaxWatts     = []string{"max_watts"}
	keysNormWatts    = []string{"icu_weighted_avg_watts", "normalized_watts"}
	keysCadence      = []string{"average_cadence"}
	keysRPE          = []string{"icu_rpe", "perceived_exertion"}
	keysLoad         = []string{"icu_training_load", "training_load"}
	keysIntensity    = []string{"icu_intensity", "intensity"}
	keysDecoupling   = []string{"decoupling", "icu_decoupling"}
	keysEfficiency   = []string{"icu_efficiency_factor", "efficiency_factor"}
	keysHRZoneTimes  = []string{"icu_hr_zone_times", "hr_zone_times"}
	keysWeatherTemp  = []string{"average_temp", "weather_temp"}
	keysDevice       = []string{"device_name"}

	keysTrendDate = []string{"id", "date"}

	// the wellness identifier doubles as the entry's date label
	wellnessIDKeys = map[string]bool{"id": true, "date": true}
)
