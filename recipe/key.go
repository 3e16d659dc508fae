package recipe

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is the sentinel behind every UnknownKeyError.
var ErrUnknownKey = errors.New("unknown sort key")

// UnknownKeyError reports a key name or value that maps to no orderable attribute.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownKey, e.Key)
}

func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

// Key selects the attribute recipes are ordered by.
type Key int

const (
	KeyPrice Key = iota + 1
	KeyCookingTime
	KeyRating
	KeyName
)

// Keys lists every orderable attribute in menu order.
var Keys = []Key{KeyPrice, KeyCookingTime, KeyRating, KeyName}

var keyNames = map[Key]string{
	KeyPrice:       "price",
	KeyCookingTime: "cooking_time",
	KeyRating:      "rating",
	KeyName:        "name",
}

// Compare orders two recipes on a single attribute: negative, zero or positive.
type Compare func(a, b *Recipe) int

var comparators = map[Key]Compare{
	KeyPrice:       func(a, b *Recipe) int { return cmp.Compare(a.Price, b.Price) },
	KeyCookingTime: func(a, b *Recipe) int { return cmp.Compare(a.CookingTime, b.CookingTime) },
	KeyRating:      func(a, b *Recipe) int { return cmp.Compare(a.Rating, b.Rating) },
	KeyName:        func(a, b *Recipe) int { return strings.Compare(a.Name, b.Name) },
}

// ParseKey resolves a symbolic attribute name such as "cooking_time".
func ParseKey(name string) (Key, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == normalized {
			return k, nil
		}
	}
	return 0, &UnknownKeyError{Key: name}
}

// String returns the attribute name, or a placeholder for invalid keys.
func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Valid reports whether k maps to an attribute.
func (k Key) Valid() bool {
	_, ok := comparators[k]
	return ok
}

// Comparator returns the typed comparison for k.
func (k Key) Comparator() (Compare, error) {
	c, ok := comparators[k]
	if !ok {
		return nil, &UnknownKeyError{Key: k.String()}
	}
	return c, nil
}

// Value returns the attribute value of r selected by k: float64, int or string.
func (k Key) Value(r *Recipe) (any, error) {
	switch k {
	case KeyPrice:
		return r.Price, nil
	case KeyCookingTime:
		return r.CookingTime, nil
	case KeyRating:
		return r.Rating, nil
	case KeyName:
		return r.Name, nil
	default:
		return nil, &UnknownKeyError{Key: k.String()}
	}
}
