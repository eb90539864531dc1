package domain

// Working window used only for the booked-percentage display
const (
	WorkdayStartHour = 6
	WorkdayEndHour   = 18
	WorkdayMinutes   = (WorkdayEndHour - WorkdayStartHour) * 60 // 720
)

// Badge colors and thresholds of the floorplan markers
const (
	BadgeColorFree    = "#22c55e"
	BadgeColorPartial = "#f59e0b"
	BadgeColorFull    = "#ef4444"

	BadgeFullThreshold = 95.0
)

// Floorplan canvas size; resource coordinates live inside it
const (
	FloorplanWidth  = 800
	FloorplanHeight = 480
)

// Business validation constants
const (
	MaxResourceNameLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
