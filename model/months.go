package model

// MonthNames is the closed set accepted wherever an entity carries a month
// column, in calendar order.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// IsMonthName reports whether s is one of the twelve full month names.
func IsMonthName(s string) bool {
	for _, m := range MonthNames {
		if s == m {
			return true
		}
	}
	return false
}

// Weekdays in planner order, used for the default habit grid.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
