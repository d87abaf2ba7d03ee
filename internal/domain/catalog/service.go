package catalog

type ServiceCategory string

const (
	ServiceGroup     ServiceCategory = "group"
	ServicePrivate   ServiceCategory = "private"
	ServiceVirtual   ServiceCategory = "virtual"
	ServiceChildcare ServiceCategory = "childcare"
)

// Service is a bookable class offering.
type Service struct {
	ID          string
	Name        string
	Description string
	DurationMin int
	PriceCents  int64
	Image       string
	Category    ServiceCategory
}

var services = []Service{
	{
		ID:          "1",
		Name:        "Reformer: Ascension",
		Description: "A gravity-defying reformer class focused on lifting the spirit and the glutes.",
		DurationMin: 50,
		PriceCents:  3500,
		Image:       "https://images.unsplash.com/photo-1518310383802-640c2de311b2?q=80&w=800&auto=format&fit=crop",
		Category:    ServiceGroup,
	},
	{
		ID:          "2",
		Name:        "Mat: Grounded Faith",
		Description: "Connect to the earth. A restorative flow to center your intentions.",
		DurationMin: 60,
		PriceCents:  2500,
		Image:       "https://images.unsplash.com/photo-1599901860904-17e6ed7083a0?q=80&w=800&auto=format&fit=crop",
		Category:    ServiceGroup,
	},
	{
		ID:          "3",
		Name:        "Private: Soul Architecture",
		Description: "1-on-1 kinetic worship tailored to your specific anatomical and spiritual needs.",
		DurationMin: 55,
		PriceCents:  9500,
		Image:       "https://images.unsplash.com/photo-1518611012118-696072aa579a?q=80&w=800&auto=format&fit=crop",
		Category:    ServicePrivate,
	},
}

// TimeSlots are the fixed bookable times of day.
var TimeSlots = []string{
	"07:00 AM", "08:30 AM", "10:00 AM", "12:00 PM", "04:30 PM", "06:00 PM", "07:30 PM",
}

func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func FindService(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
