package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"highways/internal/network"
)

type stop struct {
	name string
	km   float64
}

type toll struct {
	from, to string
	amount   float64
}

// build registers a highway with its stops and tolls.
func build(t *testing.T, reg *network.Registry, name string, stops []stop, tolls ...toll) *network.Highway {
	t.Helper()
	h, err := reg.Insert(name)
	require.NoError(t, err)
	for _, s := range stops {
		_, err := reg.InsertCity(name, s.name, s.km)
		require.NoError(t, err)
	}
	for _, tl := range tolls {
		require.NoError(t, reg.AddToll(name, tl.from, tl.to, tl.amount))
	}
	return h
}

// br101 is the coastal example: Rio -> Niteroi -> Campos -> Cabo Frio.
func br101(t *testing.T, reg *network.Registry) *network.Highway {
	t.Helper()
	return build(t, reg, "BR-101",
		[]stop{{"Rio", 0}, {"Niteroi", 13}, {"Campos", 100}, {"Cabo Frio", 150}},
		toll{"Rio", "Niteroi", 5},
		toll{"Niteroi", "Campos", 10},
	)
}

// br116 meets BR-101 at Campos.
func br116(t *testing.T, reg *network.Registry) *network.Highway {
	t.Helper()
	return build(t, reg, "BR-116",
		[]stop{{"Leopoldina", 0}, {"Campos", 40}, {"Vitoria", 160}},
		toll{"Campos", "Vitoria", 8},
		toll{"Campos", "Leopoldina", 99},
	)
}
