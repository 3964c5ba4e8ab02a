package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"recseq/seqs"
)

func TestCountdown(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		got := slices.Collect(seqs.Countdown(0))
		assert.Equal(t, []seqs.Count{seqs.Liftoff}, got)
	})

	t.Run("Three", func(t *testing.T) {
		got := slices.Collect(seqs.Countdown(3))
		want := []seqs.Count{seqs.Number(3), seqs.Number(2), seqs.Number(1), seqs.Liftoff}
		assert.Equal(t, want, got)
	})

	t.Run("Negative", func(t *testing.T) {
		for _, k := range []int{-1, -7, -1000} {
			got := slices.Collect(seqs.Countdown(k))
			assert.Equal(t, []seqs.Count{seqs.Liftoff}, got, "k=%d", k)
		}
	})

	t.Run("Length", func(t *testing.T) {
		for k := -3; k <= 50; k++ {
			assert.Equal(t, max(k, 0)+1, seqs.Len(seqs.Countdown(k)), "k=%d", k)
		}
	})

	t.Run("DescendingThenMarker", func(t *testing.T) {
		got := slices.Collect(seqs.Countdown(20))
		require.NotEmpty(t, got)

		last := got[len(got)-1]
		assert.True(t, last.Done())

		prev := 21
		for _, c := range got[:len(got)-1] {
			n, ok := c.Int()
			require.True(t, ok, "marker before the end")
			assert.Equal(t, prev-1, n)
			prev = n
		}
	})

	t.Run("EarlyStop", func(t *testing.T) {
		got := slices.Collect(seqs.Take(seqs.Countdown(1_000_000), 2))
		assert.Equal(t, []seqs.Count{seqs.Number(1_000_000), seqs.Number(999_999)}, got)
	})
}

func TestCount(t *testing.T) {
	n, ok := seqs.Number(4).Int()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.False(t, seqs.Number(0).Done())

	_, ok = seqs.Liftoff.Int()
	assert.False(t, ok)
	assert.True(t, seqs.Liftoff.Done())
	assert.NotEqual(t, seqs.Number(0), seqs.Liftoff)

	assert.Equal(t, "4", seqs.Number(4).String())
	assert.Equal(t, "Blast off", seqs.Liftoff.String())

	text, err := seqs.Liftoff.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Blast off", string(text))
}

func TestCount_YAML(t *testing.T) {
	out, err := yaml.Marshal(slices.Collect(seqs.Countdown(2)))
	require.NoError(t, err)
	assert.Equal(t, "- 2\n- 1\n- Blast off\n", string(out))

	var decoded []any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, []any{2, 1, "Blast off"}, decoded)
}
