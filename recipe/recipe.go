// Package recipe defines the recipe record and the attributes it can be ordered by.
package recipe

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Categories offered to users. The set is advisory and never enforced.
const (
	CategorySoup    = "soup"
	CategoryStarter = "starter"
	CategoryMain    = "main"
	CategoryDessert = "dessert"
)

// Rating bounds.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	// ErrInvalidRating is returned when a rating falls outside [MinRating, MaxRating].
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	// ErrInvalidPrice is returned by ParsePrice for text that is not a finite number.
	ErrInvalidPrice = errors.New("price must be a finite number")
)

// Recipe is a single catalog entry.
type Recipe struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price" validate:"finite,gte=0"`
	CookingTime int      `json:"cooking_time" validate:"gte=0"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Rating      float64  `json:"rating" validate:"finite,gte=0,lte=5"`
}

// New builds a recipe with the default rating.
func New(name, category string, price float64, cookingTime int, ingredients, steps []string) *Recipe {
	return &Recipe{
		Name:        name,
		Category:    category,
		Price:       price,
		CookingTime: cookingTime,
		Ingredients: ingredients,
		Steps:       steps,
	}
}

// Clone returns a deep copy so callers can hand out records without aliasing the owner's lists.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Steps = slices.Clone(r.Steps)
	return &c
}

// SetRating assigns a rating after checking the bounds.
func (r *Recipe) SetRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	r.Rating = rating
	return nil
}

// ParsePrice reads a price, accepting ',' as the decimal separator. Infinities
// and NaN are rejected; the sign is left to validation.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	price, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return price, nil
}

// Patch is a partial update. Nil fields and empty lists keep the current value.
type Patch struct {
	Name        *string
	Category    *string
	Price       *float64
	CookingTime *int
	Ingredients []string
	Steps       []string
}

// Apply writes the set fields of p into r.
func (p Patch) Apply(r *Recipe) {
	if p.Name != nil && *p.Name != "" {
		r.Name = *p.Name
	}
	if p.Category != nil && *p.Category != "" {
		r.Category = *p.Category
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	if p.CookingTime != nil {
		r.CookingTime = *p.CookingTime
	}
	if len(p.Ingredients) > 0 {
		r.Ingredients = slices.Clone(p.Ingredients)
	}
	if len(p.Steps) > 0 {
		r.Steps = slices.Clone(p.Steps)
	}
}
