package catalog

// Tier is a membership offering. DaycareCostCents of zero means childcare
// is included and the add-on cannot be toggled.
type Tier struct {
	ID               string
	Name             string
	Subtitle         string
	PriceCents       int64
	Period           string
	Description      string
	Features         []string
	DaycareCostCents int64
	Subscription     bool
	Highlight        bool
}

var tiers = []Tier{
	{
		ID:          "vessel",
		Name:        "The Vessel",
		Subtitle:    "Drop-In Class",
		PriceCents:  3500,
		Period:      "/class",
		Description: "For the seeker who needs a momentary realignment.",
		Features: []string{
			"Single Reformer or Mat Session",
			"Access to Boutique",
			"Complimentary Water",
			"Little Angels Access: +$5",
		},
		DaycareCostCents: 500,
		Subscription:     false,
	},
	{
		ID:          "disciple",
		Name:        "The Disciple",
		Subtitle:    "Monthly Covenant",
		PriceCents:  25000,
		Period:      "/month",
		Description: "Commit to the practice. Consistency creates reality.",
		Features: []string{
			"8 Classes Monthly",
			"Priority Booking Window",
			"5% Boutique Discount",
			"1 Guest Pass / Month",
			"Little Angels Access: +$10/mo",
		},
		DaycareCostCents: 1000,
		Subscription:     true,
	},
	{
		ID:          "kingdom",
		Name:        "The Kingdom",
		Subtitle:    "Unlimited Ascension",
		PriceCents:  38000,
		Period:      "/month",
		Description: "Complete immersion. The body becomes a living temple.",
		Features: []string{
			"Unlimited Classes",
			"Private Concierge Booking",
			"15% Boutique Discount",
			"Access to VIP Workshops",
			"Little Angels Access: Included",
		},
		DaycareCostCents: 0,
		Subscription:     true,
		Highlight:        true,
	},
}

func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

func FindTier(id string) (Tier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}
