package domain

// ActivityType is the short code a sensor package carries to identify the
// kind of workout it describes.
type ActivityType string

const (
	ActivityRunning  ActivityType = "RUN"
	ActivityWalking  ActivityType = "WLK"
	ActivitySwimming ActivityType = "SWM"
)

// ActivityTypes lists every recognized code in display order.
var ActivityTypes = []ActivityType{
	ActivitySwimming,
	ActivityRunning,
	ActivityWalking,
}

// Label returns the training type name shown in reports.
func (t ActivityType) Label() string {
	switch t {
	case ActivityRunning:
		return "Running"
	case ActivityWalking:
		return "SportsWalking"
	case ActivitySwimming:
		return "Swimming"
	default:
		return string(t)
	}
}
