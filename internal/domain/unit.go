package domain

// Unit is the measurement type of a task's workload.
type Unit string

const (
	UnitPages     Unit = "pages"
	UnitExercises Unit = "exercises"
	UnitVideoMin  Unit = "video_min"
)

// ValidUnits is the canonical set of accepted unit strings.
var ValidUnits = map[Unit]bool{
	UnitPages:     true,
	UnitExercises: true,
	UnitVideoMin:  true,
}

// DefaultMinutesPerUnit is the fallback throughput used when a student has
// no recorded history for a unit. Video review runs at 1.5x real time.
var DefaultMinutesPerUnit = map[Unit]float64{
	UnitPages:     3.0,
	UnitExercises: 5.0,
	UnitVideoMin:  1.5,
}

// Label returns a human-readable name for the unit.
func (u Unit) Label() string {
	switch u {
	case UnitPages:
		return "pages"
	case UnitExercises:
		return "exercises"
	case UnitVideoMin:
		return "video minutes"
	default:
		return string(u)
	}
}
