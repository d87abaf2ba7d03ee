package booking

import (
	"strings"

	"leen-studio/internal/domain/catalog"
)

// Alignment is the structured result of a soul check: a short affirmation
// and the raw class recommendation text.
type Alignment struct {
	Mantra         string
	Recommendation string
}

// FallbackAlignment is returned whenever the aligner cannot produce a
// result. Callers never see an error from a soul check.
var FallbackAlignment = Alignment{
	Mantra:         "Your presence is a prayer, and your breath is the song of your soul.",
	Recommendation: "Mat: Grounded Faith",
}

// MatchRecommendation maps free-text model output onto a typed catalog
// service: the first word of the recommendation, lowercased, must appear
// in a service name. This is the only place free text crosses into the
// domain, so it stays a pure function.
func MatchRecommendation(recommendation string) (catalog.Service, bool) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(recommendation)))
	if len(fields) == 0 {
		return catalog.Service{}, false
	}
	first := fields[0]

	for _, s := range catalog.Services() {
		if strings.Contains(strings.ToLower(s.Name), first) {
			return s, true
		}
	}
	return catalog.Service{}, false
}
