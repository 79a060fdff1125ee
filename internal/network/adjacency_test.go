package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"highways/internal/network"
)

func TestAdjacency_EmptyUntilBuilt(t *testing.T) {
	reg := network.NewRegistry()
	h := br101(t, reg)
	br116(t, reg)

	assert.Empty(t, h.Neighbors())
	_, ok := h.ConnectionTo("BR-116")
	assert.False(t, ok)
}

func TestAdjacency_RecordsSharedCities(t *testing.T) {
	reg := network.NewRegistry()
	a := br101(t, reg)
	b := br116(t, reg)
	c := build(t, reg, "RJ-106", []stop{{"Cabo Frio", 0}, {"campos", 60}})

	reg.RebuildAdjacency()

	// discovery walks a's cities in order; newest discovery comes first
	assert.Equal(t, []network.Link{
		{Highway: "RJ-106", City: "Cabo Frio"},
		{Highway: "RJ-106", City: "Campos"},
		{Highway: "BR-116", City: "Campos"},
	}, a.Neighbors())
	assert.Equal(t, []network.Link{
		{Highway: "RJ-106", City: "Campos"},
		{Highway: "BR-101", City: "Campos"},
	}, b.Neighbors())
	assert.Equal(t, []network.Link{
		{Highway: "BR-116", City: "campos"},
		{Highway: "BR-101", City: "campos"},
		{Highway: "BR-101", City: "Cabo Frio"},
	}, c.Neighbors())

	link, ok := a.ConnectionTo("rj-106")
	assert.True(t, ok)
	assert.Equal(t, "Cabo Frio", link.City)
}

func TestAdjacency_RebuildIsIdempotent(t *testing.T) {
	reg := network.NewRegistry()
	a := br101(t, reg)
	b := br116(t, reg)

	reg.RebuildAdjacency()
	first := [][]network.Link{a.Neighbors(), b.Neighbors()}
	reg.RebuildAdjacency()
	reg.RebuildAdjacency()

	assert.Equal(t, first, [][]network.Link{a.Neighbors(), b.Neighbors()})
}

func TestAdjacency_RebuildDropsStaleLinks(t *testing.T) {
	reg := network.NewRegistry()
	a := br101(t, reg)
	br116(t, reg)
	reg.RebuildAdjacency()
	assert.Len(t, a.Neighbors(), 1)

	reg.Remove("BR-116")
	reg.RebuildAdjacency()
	assert.Empty(t, a.Neighbors())
}

func TestCrossings(t *testing.T) {
	reg := network.NewRegistry()
	a := br101(t, reg)
	b := br116(t, reg)
	build(t, reg, "RJ-106", []stop{{"Cabo Frio", 0}})

	got := network.Crossings(a, b)
	assert.Len(t, got, 1)
	assert.Equal(t, "Campos", got[0].City)
	assert.Equal(t, 100.0, got[0].FirstKm)
	assert.Equal(t, 40.0, got[0].SecondKm)

	all := reg.AllCrossings()
	assert.Len(t, all, 2)
	assert.Equal(t, "BR-101", all[1].First)
	assert.Equal(t, "RJ-106", all[1].Second)
	assert.Equal(t, "Cabo Frio", all[1].City)
}
