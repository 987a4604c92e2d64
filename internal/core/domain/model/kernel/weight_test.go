package kernel_test

import (
	"math"
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should accept zero and positive values", func(t *testing.T) {
		cases := map[float64]string{0: "0", 0.5: "0.5", 10: "10", 100: "100"}
		for v, want := range cases {
			w, err := kernel.NewWeight(v)

			require.NoError(t, err)
			assert.Equal(t, want, w.String())
		}
	})

	t.Run("should reject negative values", func(t *testing.T) {
		_, err := kernel.NewWeight(-5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-5 is less than 0")
	})

	t.Run("should reject non finite values", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := kernel.NewWeight(v)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestWeight_Add(t *testing.T) {
	t.Run("should sum without float drift", func(t *testing.T) {
		a, _ := kernel.NewWeight(0.1)
		b, _ := kernel.NewWeight(0.2)
		want, _ := kernel.NewWeight(0.3)

		assert.True(t, a.Add(b).Equal(want))
		assert.Equal(t, "0.3", a.Add(b).String())
	})

	t.Run("should start from zero", func(t *testing.T) {
		total := kernel.ZeroWeight()
		assert.True(t, total.IsZero())
		assert.False(t, total.IsPositive())

		ten, _ := kernel.NewWeight(10)
		for i := 0; i < 3; i++ {
			total = total.Add(ten)
		}

		assert.True(t, total.IsPositive())
		assert.Equal(t, "30", total.String())
	})

	t.Run("zero value behaves as zero weight", func(t *testing.T) {
		var w kernel.Weight

		assert.True(t, w.Equal(kernel.ZeroWeight()))
		assert.False(t, w.IsPositive())
	})
}
