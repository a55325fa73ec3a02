package profile

import "strconv"

// OS categories driving all conditional trait distributions.
const (
	OSLinux   = "linux"
	OSWindows = "windows"
	OSMac     = "mac"
)

// Header is the fixed CSV field order for serialized profiles.
var Header = []string{
	"name",
	"country",
	"state",
	"age",
	"os",
	"is_rich",
	"is_insane",
	"is_nice",
	"reason",
}

// UserProfile is one fully populated dataset row. Profiles are built fresh
// per row, serialized immediately and never referenced again.
type UserProfile struct {
	Name     string
	Country  string
	State    string
	Age      int
	OS       string
	IsRich   string
	IsInsane string
	IsNice   string
	Reason   string
}

// Record returns the profile as a CSV record matching Header order.
func (p UserProfile) Record() []string {
	return []string{
		p.Name,
		p.Country,
		p.State,
		strconv.Itoa(p.Age),
		p.OS,
		p.IsRich,
		p.IsInsane,
		p.IsNice,
		p.Reason,
	}
}
