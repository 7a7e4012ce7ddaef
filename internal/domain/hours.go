package domain

// HoursSource resolves the total effort of an assignment from one optional
// input, reporting whether that input was present.
type HoursSource func(a *Assignment, t *Team) (float64, bool)

// hoursSources is the fixed resolution order for assignment effort:
// explicit override first, then the team's tier table scaled by headcount,
// then the raw estimate as a last resort.
var hoursSources = []HoursSource{
	func(a *Assignment, _ *Team) (float64, bool) {
		return a.HoursOverride, a.HoursOverride > 0
	},
	func(a *Assignment, t *Team) (float64, bool) {
		perPerson := t.HoursForTier(a.Tier)
		return perPerson * a.Headcount, perPerson > 0
	},
	func(a *Assignment, _ *Team) (float64, bool) {
		return a.EstimateHours, a.EstimateHours > 0
	},
}

// ResolveHours returns the total effort in hours for an assignment, taking
// the first source in the fixed order that has a value. Returns 0 when no
// source applies.
func ResolveHours(a *Assignment, t *Team) float64 {
	for _, source := range hoursSources {
		if hours, ok := source(a, t); ok {
			return hours
		}
	}
	return 0
}
