package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highways/internal/network"
)

func TestLedger_NewestEntryShadows(t *testing.T) {
	var l network.Ledger
	l.Add("Niteroi", 5)
	l.Add("Macae", 7)
	l.Add("Niteroi", 6.5)

	amount, ok := l.Find("niteroi")
	require.True(t, ok)
	assert.Equal(t, 6.5, amount)

	latest, ok := l.Latest()
	require.True(t, ok)
	assert.Equal(t, network.Toll{Target: "Niteroi", Amount: 6.5}, latest)

	assert.Equal(t, []network.Toll{
		{Target: "Niteroi", Amount: 6.5},
		{Target: "Macae", Amount: 7},
		{Target: "Niteroi", Amount: 5},
	}, l.Entries())
	assert.InDelta(t, 18.5, l.Total(), 1e-9)

	_, ok = l.Find("Campos")
	assert.False(t, ok)
}

func TestBetween_ForwardEntryWins(t *testing.T) {
	var s network.Sequence
	a, _ := s.Insert("A", 0)
	b, _ := s.Insert("B", 10)

	_, ok := network.Between(a, b)
	assert.False(t, ok)

	b.Ledger().Add("A", 3)
	amount, ok := network.Between(a, b)
	require.True(t, ok)
	assert.Equal(t, 3.0, amount, "falls back to the reverse entry")

	a.Ledger().Add("B", 8)
	amount, ok = network.Between(a, b)
	require.True(t, ok)
	assert.Equal(t, 8.0, amount, "forward entry takes precedence")
}

func TestHighway_TotalTollIsStructural(t *testing.T) {
	reg := network.NewRegistry()
	h, err := reg.Insert("BR-116")
	require.NoError(t, err)
	for _, c := range []struct {
		name string
		km   float64
	}{{"A", 0}, {"B", 10}, {"C", 20}} {
		_, err := reg.InsertCity("BR-116", c.name, c.km)
		require.NoError(t, err)
	}
	require.NoError(t, reg.AddToll("BR-116", "A", "B", 2))
	require.NoError(t, reg.AddToll("BR-116", "A", "B", 3))
	require.NoError(t, reg.AddToll("BR-116", "C", "A", 4))
	h.Cities().Find("B").Ledger().Add("Nowhere", 1)

	assert.InDelta(t, 10.0, h.TotalToll(), 1e-9)
	assert.InDelta(t, 10.0, h.CachedToll(), 1e-9)
}
