package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Price  float64 `json:"price" validate:"gte=0"`
	Rating float64 `json:"rating,omitempty" validate:"gte=0,lte=5"`
	Mode   string  `koanf:"mode" validate:"oneof=a b"`
	Plain  int     `validate:"min=1"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Price: 1, Rating: 5, Mode: "a", Plain: 1}))
}

func TestStructReportsEveryField(t *testing.T) {
	err := Struct(sample{Price: -1, Rating: 6, Mode: "c", Plain: 0})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 4)

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Tag
	}
	assert.Equal(t, map[string]string{"price": "gte", "rating": "lte", "mode": "oneof", "Plain": "min"}, fields)
	assert.Contains(t, err.Error(), "price must be greater than or equal to 0")
	assert.Contains(t, err.Error(), "mode must be one of: a b")
}

func TestStructRejectsNonFinite(t *testing.T) {
	type priced struct {
		Price float64 `json:"price" validate:"finite,gte=0"`
		Count int     `validate:"finite"`
	}
	assert.NoError(t, Struct(priced{Price: 3, Count: 1}))

	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		err := Struct(priced{Price: v})
		var verr *Error
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "finite", verr.Fields[0].Tag)
		assert.Contains(t, err.Error(), "price must be a finite number")
	}
}
