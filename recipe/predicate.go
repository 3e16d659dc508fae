package recipe

import "strings"

// Predicate decides whether a recipe is eligible for the front group of a filtered sort.
type Predicate func(r *Recipe) bool

// Reference thresholds of the "cheap and quick" filter.
const (
	DefaultMaxPrice       = 10.0
	DefaultMaxCookingTime = 30
)

// PriceAtMost matches recipes costing no more than limit.
func PriceAtMost(limit float64) Predicate {
	return func(r *Recipe) bool { return r.Price <= limit }
}

// CookingTimeAtMost matches recipes ready within limit minutes.
func CookingTimeAtMost(limit int) Predicate {
	return func(r *Recipe) bool { return r.CookingTime <= limit }
}

// HasIngredient matches recipes with an ingredient containing term, ignoring
// case. term must already be lower-cased.
func HasIngredient(term string) Predicate {
	return func(r *Recipe) bool {
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), term) {
				return true
			}
		}
		return false
	}
}

// CheapAndQuick matches recipes with price <= maxPrice and cooking time <= maxMinutes.
func CheapAndQuick(maxPrice float64, maxMinutes int) Predicate {
	return And(PriceAtMost(maxPrice), CookingTimeAtMost(maxMinutes))
}

// DefaultEligibility is the reference filter: price <= 10 AND cooking_time <= 30.
var DefaultEligibility = CheapAndQuick(DefaultMaxPrice, DefaultMaxCookingTime)

// Not negates p.
func Not(p Predicate) Predicate {
	return func(r *Recipe) bool { return !p(r) }
}

// And matches when every predicate matches.
func And(ps ...Predicate) Predicate {
	return func(r *Recipe) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}
