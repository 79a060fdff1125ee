package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highways/internal/domain/types"
	"highways/internal/network"
)

func TestSingleHighwayRoute_SumsSegments(t *testing.T) {
	reg := network.NewRegistry()
	build(t, reg, "BR-101",
		[]stop{{"Rio", 0}, {"Niteroi", 13}, {"Cabo Frio", 150}},
		toll{"Rio", "Niteroi", 5},
		toll{"Niteroi", "Cabo Frio", 10},
	)

	leg, err := network.NewPlanner(reg).HighwayRoute("BR-101", "Rio", "Cabo Frio")
	require.NoError(t, err)
	assert.InDelta(t, 150.0, leg.Distance, 1e-9)
	assert.InDelta(t, 15.0, leg.Toll, 1e-9)
	assert.Equal(t, "Rio", leg.From)
	assert.Equal(t, "Cabo Frio", leg.To)
	require.Len(t, leg.Segments, 2)
	assert.Equal(t, types.Segment{From: "Niteroi", To: "Cabo Frio", FromKm: 13, ToKm: 150, Distance: 137, Toll: 10}, leg.Segments[1])
}

func TestSingleHighwayRoute_ReverseTollCounted(t *testing.T) {
	reg := network.NewRegistry()
	h := build(t, reg, "BR-040",
		[]stop{{"Rio", 0}, {"Petropolis", 68}, {"Juiz de Fora", 180}},
		toll{"Petropolis", "Rio", 12.4},
		toll{"Petropolis", "Juiz de Fora", 9},
		toll{"Juiz de Fora", "Petropolis", 100},
	)

	leg, err := network.SingleHighwayRoute(h, "rio", "JUIZ DE FORA")
	require.NoError(t, err)
	assert.InDelta(t, 180.0, leg.Distance, 1e-9)
	assert.InDelta(t, 21.4, leg.Toll, 1e-9)
}

func TestSingleHighwayRoute_SameCity(t *testing.T) {
	reg := network.NewRegistry()
	h := br101(t, reg)

	leg, err := network.SingleHighwayRoute(h, "Campos", "campos")
	require.NoError(t, err)
	assert.Zero(t, leg.Distance)
	assert.Zero(t, leg.Toll)
	assert.Empty(t, leg.Segments)
}

func TestSingleHighwayRoute_Errors(t *testing.T) {
	reg := network.NewRegistry()
	br101(t, reg)
	p := network.NewPlanner(reg)

	cases := []struct {
		name, highway, start, end string
		err                       error
	}{
		{"UnknownHighway", "BR-999", "Rio", "Campos", types.ErrHighwayNotFound},
		{"UnknownStart", "BR-101", "Macae", "Campos", types.ErrStartCityNotFound},
		{"UnknownEnd", "BR-101", "Rio", "Macae", types.ErrEndCityNotFound},
		{"Backwards", "BR-101", "Cabo Frio", "Rio", types.ErrEndCityNotReachedForward},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			leg, err := p.HighwayRoute(tc.highway, tc.start, tc.end)
			require.ErrorIs(t, err, tc.err)
			assert.Zero(t, leg.Distance)
			assert.Zero(t, leg.Toll)
		})
	}
}

func TestCrossHighwayRoute_SameHighwayDelegates(t *testing.T) {
	reg := network.NewRegistry()
	br101(t, reg)
	br116(t, reg)
	reg.RebuildAdjacency()

	it, err := network.NewPlanner(reg).CrossHighwayRoute(" rio ", "CABO FRIO")
	require.NoError(t, err)
	assert.True(t, it.Direct())
	assert.Empty(t, it.Connection)
	assert.InDelta(t, 150.0, it.Distance, 1e-9)
	assert.InDelta(t, 15.0, it.Toll, 1e-9)
}

func TestCrossHighwayRoute_TwoLegs(t *testing.T) {
	reg := network.NewRegistry()
	br101(t, reg)
	br116(t, reg)
	reg.RebuildAdjacency()

	it, err := network.NewPlanner(reg).CrossHighwayRoute("Niteroi", "Vitoria")
	require.NoError(t, err)
	assert.False(t, it.Direct())
	assert.Equal(t, "Campos", it.Connection)
	require.Len(t, it.Legs, 2)

	assert.Equal(t, "BR-101", it.Legs[0].Highway)
	assert.InDelta(t, 87.0, it.Legs[0].Distance, 1e-9)
	assert.InDelta(t, 10.0, it.Legs[0].Toll, 1e-9)

	assert.Equal(t, "BR-116", it.Legs[1].Highway)
	assert.InDelta(t, 120.0, it.Legs[1].Distance, 1e-9)
	assert.InDelta(t, 8.0, it.Legs[1].Toll, 1e-9)

	assert.InDelta(t, 207.0, it.Distance, 1e-9)
	assert.InDelta(t, 18.0, it.Toll, 1e-9)
}

func TestCrossHighwayRoute_StripsAnnotation(t *testing.T) {
	reg := network.NewRegistry()
	build(t, reg, "SP-330", []stop{{"Campinas, SP", 90}, {"Ribeirao Preto, SP", 310}})

	it, err := network.NewPlanner(reg).CrossHighwayRoute("campinas", "Ribeirao Preto")
	require.NoError(t, err)
	assert.Equal(t, "Campinas, SP", it.Start)
	assert.InDelta(t, 220.0, it.Distance, 1e-9)
}

func TestCrossHighwayRoute_Errors(t *testing.T) {
	reg := network.NewRegistry()
	br101(t, reg)
	br116(t, reg)
	build(t, reg, "BR-364", []stop{{"Cuiaba", 0}, {"Porto Velho", 1400}})
	reg.RebuildAdjacency()
	p := network.NewPlanner(reg)

	cases := []struct {
		name, start, end string
		err              error
	}{
		{"UnknownStart", "Manaus", "Rio", types.ErrStartCityNotFound},
		{"UnknownEnd", "Rio", "Manaus", types.ErrEndCityNotFound},
		{"NoConnection", "Rio", "Cuiaba", types.ErrNoDirectConnection},
		{"BackwardsOnSecondLeg", "Rio", "Leopoldina", types.ErrEndCityNotReachedForward},
		{"BackwardsOnFirstLeg", "Cabo Frio", "Vitoria", types.ErrEndCityNotReachedForward},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.CrossHighwayRoute(tc.start, tc.end)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCrossHighwayRoute_NeedsAdjacency(t *testing.T) {
	reg := network.NewRegistry()
	br101(t, reg)
	br116(t, reg)

	_, err := network.NewPlanner(reg).CrossHighwayRoute("Rio", "Vitoria")
	require.ErrorIs(t, err, types.ErrNoDirectConnection)

	reg.RebuildAdjacency()
	it, err := network.NewPlanner(reg).CrossHighwayRoute("Rio", "Vitoria")
	require.NoError(t, err)
	assert.InDelta(t, 220.0, it.Distance, 1e-9)
	assert.InDelta(t, 23.0, it.Toll, 1e-9)
}
