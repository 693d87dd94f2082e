package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKey(t *testing.T) {
	t.Run("symmetric in its arguments", func(t *testing.T) {
		assert.Equal(t, PairKey("30202001", "40105002"), PairKey("40105002", "30202001"))
	})

	t.Run("distinct pairs produce distinct keys", func(t *testing.T) {
		assert.NotEqual(t, PairKey("a", "b"), PairKey("a", "c"))
	})

	t.Run("identical codes join with themselves", func(t *testing.T) {
		assert.Equal(t, "a|a", PairKey("a", "a"))
	})
}

func TestSpecKey(t *testing.T) {
	t.Run("insertion order does not matter", func(t *testing.T) {
		first := map[string]string{"bore": "100", "stroke": "200", "series": "10"}
		second := map[string]string{"series": "10", "bore": "100", "stroke": "200"}
		assert.Equal(t, SpecKey(first), SpecKey(second))
	})

	t.Run("keys sort before joining", func(t *testing.T) {
		key := SpecKey(map[string]string{"stroke": "200", "bore": "100"})
		assert.Equal(t, "bore=100,stroke=200", key)
	})

	t.Run("different values produce different keys", func(t *testing.T) {
		assert.NotEqual(t,
			SpecKey(map[string]string{"bore": "100"}),
			SpecKey(map[string]string{"bore": "101"}))
	})

	t.Run("empty map yields empty key", func(t *testing.T) {
		assert.Equal(t, "", SpecKey(nil))
	})
}
