package habit

// Frequency partitions habits for listing and defines how often a habit
// recurs.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Metric is the semantic dimension of a habit's target.
type Metric string

const (
	MetricCount    Metric = "count"
	MetricDuration Metric = "duration"
	MetricDistance Metric = "distance"
)

func (m Metric) IsValid() bool {
	switch m {
	case MetricCount, MetricDuration, MetricDistance:
		return true
	}
	return false
}

// Unit labels the target quantity. Pairing a unit with a matching metric
// (duration with minutes/hours, distance with km/miles) is the caller's
// responsibility and is not enforced here.
type Unit string

const (
	UnitTimes   Unit = "times"
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
	UnitKm      Unit = "km"
	UnitMiles   Unit = "miles"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitTimes, UnitMinutes, UnitHours, UnitKm, UnitMiles:
		return true
	}
	return false
}
