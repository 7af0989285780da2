package ledger

import "time"

// Category is a technician's compensation class. Unrecognized labels
// map to CategoryUnknown, which earns no technician payment.
type Category string

const (
	CategoryRegistering Category = "Registering"
	CategoryTechnician  Category = "Technician"
	CategoryStarted     Category = "Started"
	CategoryTraining    Category = "Training"
	CategoryCoordinator Category = "Coordinator"
	CategoryUnknown     Category = "Unknown"
)

// ParseCategory maps a raw category cell to a Category. The fallback
// arm is explicit so unknown labels stay visible in the ledger.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryRegistering, CategoryTechnician, CategoryStarted,
		CategoryTraining, CategoryCoordinator:
		return Category(s)
	default:
		return CategoryUnknown
	}
}

// Weekday is a day-of-week slot index, Sunday-first, matching the
// seven fixed day columns of a weekly sheet.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (d Weekday) String() string {
	if d < 0 || int(d) >= len(weekdayNames) {
		return "Unknown"
	}
	return weekdayNames[d]
}

// Identity is the technician block header: name, compensation category
// and, when the sheet carries a "From:" marker, the technician's origin.
type Identity struct {
	Name        string
	Category    Category
	RawCategory string
	Origin      string
}

// Appointment is one canonical ledger row. Payment and Profit are zero
// until the proration pass fills them in; the row is never mutated
// afterwards.
type Appointment struct {
	Week       string
	Day        Weekday
	Technician string
	Category   Category
	Date       time.Time
	Client     string
	Service    float64
	Tip        float64
	Pets       int
	// Method is nil when the cell was absent or not in the configured
	// valid payment-method set.
	Method    *string
	PaymentID string
	Verified  bool
	Completed bool
	Payment   float64
	Profit    float64
}

// WeeklyTotal aggregates completed appointments for one
// (technician, week, category) group.
type WeeklyTotal struct {
	Technician   string
	Week         string
	Category     Category
	Service      float64
	Tips         float64
	Appointments int
	DaysWorked   int
	Payment      float64
	Profit       float64
}
