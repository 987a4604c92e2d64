package treatment_test

import (
	"testing"

	"dispatch/internal/core/domain/model/treatment"

	"github.com/stretchr/testify/assert"
)

func TestDenyRule(t *testing.T) {
	t.Run("rejects only the forbidden value", func(t *testing.T) {
		rule := treatment.NewDenyRule("Mordor")

		assert.False(t, rule.Allows("Mordor"))
	})

	t.Run("accepts everything else including empty and near matches", func(t *testing.T) {
		rule := treatment.NewDenyRule("Mordor")

		for _, v := range []string{"", "mordor", "MORDOR", " Mordor", "Mordor ", "Comarca", "Mordor del Sur"} {
			assert.True(t, rule.Allows(v), "value %q", v)
		}
	})

	t.Run("works for any comparable type", func(t *testing.T) {
		rule := treatment.NewDenyRule(13)

		assert.False(t, rule.Allows(13))
		assert.True(t, rule.Allows(12))
	})
}
