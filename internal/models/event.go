package models

const (
	CategoryTechnical = "TECHNICAL"
	CategoryCultural  = "CULTURAL"
	CategorySports    = "SPORTS"
	CategoryWorkshop  = "WORKSHOP"
)

// Categories lists every event category the backend accepts.
var Categories = []string{CategoryTechnical, CategoryCultural, CategorySports, CategoryWorkshop}

// ValidCategory reports whether cat is one of the fixed category set.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

type Event struct {
	EventID         int64  `json:"eventId"`
	EventName       string `json:"eventName"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM:SS, 24-hour
	Venue           string `json:"venue"`
	Capacity        int    `json:"capacity"`
	CurrentCapacity int    `json:"currentCapacity"`
	Category        string `json:"category"`
	Description     string `json:"description,omitempty"`
}

// EventPage is one page of the backend's paginated event listing.
type EventPage struct {
	Content    []Event `json:"content"`
	TotalPages int     `json:"totalPages"`
}
