package console_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"highways/internal/app"
	"highways/internal/console"
)

// run feeds one answer per line to a fresh menu and returns its output.
func run(t *testing.T, w *app.Wire, opts console.Options, answers ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	m := console.New(in, &out, w.Network, w.Files, opts, zap.NewNop())
	require.NoError(t, m.Run())
	return out.String()
}

func newWire(t *testing.T, dataFile string) *app.Wire {
	t.Helper()
	w := app.NewWireWithLogger(app.Config{DataFile: dataFile}, zap.NewNop())
	t.Cleanup(w.Close)
	return w
}

func TestMenu_ConsentDeclined(t *testing.T) {
	w := newWire(t, "")
	out := run(t, w, console.Options{AskConsent: true}, "2")
	assert.Contains(t, out, "did not accept")
	assert.NotContains(t, out, "Choose an option")
}

func TestMenu_BuildNetworkAndRoute(t *testing.T) {
	w := newWire(t, "")
	out := run(t, w, console.Options{AskConsent: true},
		"1", // consent
		"0", // start empty
		"1", "BR-101",
		"1", "br-101", // duplicate
		"3", "BR-101", "Rio", "0",
		"3", "BR-101", "Niteroi", "13", "0",
		"3", "BR-101", "Cabo Frio", "150", "1", "1", "10,50",
		"3", "BR-101", "rio", // duplicate city, no further prompts
		"3", "BR-999",
		"5", "Rio", "Cabo Frio",
		"5", "Cabo Frio", "Rio",
		"7",
		"0",
	)

	assert.Contains(t, out, "Highway 'BR-101' added.")
	assert.Contains(t, out, "highway already exists")
	assert.Contains(t, out, "1. Rio (Distance: 0.00 km)")
	assert.Contains(t, out, "1. Niteroi (Distance: 13.00 km)")
	assert.NotContains(t, out, "2. Rio (Distance: 0.00 km)")
	assert.Contains(t, out, "Toll of R$ 10.50 added between Cabo Frio and Niteroi.")
	assert.Contains(t, out, "Error: city 'rio' already exists on highway 'BR-101'!")
	assert.Contains(t, out, "highway not found")
	assert.Contains(t, out, "Distance travelled: 150.00 km")
	assert.Contains(t, out, "Toll cost: R$ 10.50")
	assert.Contains(t, out, "not reachable travelling forward")
	assert.Contains(t, out, "City: Cabo Frio, Distance: 150.00, Toll: R$ 10.50")
	assert.Contains(t, out, "Exiting...")
}

func TestMenu_CrossHighwayRouteAndCrossings(t *testing.T) {
	w := newWire(t, "")
	out := run(t, w, console.Options{},
		"0",
		"1", "BR-101",
		"1", "BR-116",
		"6",
		"3", "BR-101", "Rio", "0",
		"3", "BR-101", "Campos", "100", "0",
		"3", "BR-116", "Campos", "40",
		"3", "BR-116", "Vitoria", "160", "0",
		"5", "Rio", "Vitoria",
		"6",
		"9", "BR-101", "BR-116",
		"0",
	)

	assert.Contains(t, out, "No crossings found.")
	assert.Contains(t, out, "2. Connect at Campos")
	assert.Contains(t, out, "Total distance: 220.00 km")
	assert.Contains(t, out, "- Campos (km 100.00 on BR-101, km 40.00 on BR-116)")
}

func TestMenu_SaveFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novo.txt")
	w := newWire(t, "")
	out := run(t, w, console.Options{ConfirmSaveOnExit: true},
		"0",
		"10", // nothing bound yet
		"1", "BR-101",
		"8", path,
		"2", "BR-101",
		"0", "1",
	)

	assert.Contains(t, out, "No file was loaded. Use option 8")
	assert.Contains(t, out, "Data saved to '"+path+"'!")
	assert.Contains(t, out, "Save changes before exiting?")
	assert.Contains(t, out, "Changes saved to '"+path+"'!")
	assert.False(t, w.Files.Dirty())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "BR-101")
}

func TestMenu_ExitWithoutChangesSkipsPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novo.txt")
	w := newWire(t, "")
	out := run(t, w, console.Options{ConfirmSaveOnExit: true},
		"0",
		"1", "BR-101",
		"8", path,
		"0",
	)
	assert.NotContains(t, out, "Save changes before exiting?")
	assert.Contains(t, out, "Exiting...")
}

func TestMenu_LoadAtStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rodovias.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rodovia: BR-040\n\tCidade: Rio, Distância: 0.00\n"), 0o644))

	w := newWire(t, "")
	out := run(t, w, console.Options{}, "1", path, "7", "0")
	assert.Contains(t, out, "Data loaded from '"+path+"'.")
	assert.Contains(t, out, "Highway: BR-040")
}

func TestMenu_InvalidInput(t *testing.T) {
	w := newWire(t, "")
	out := run(t, w, console.Options{}, "0", "abc", "42", "1", "  ")
	assert.Equal(t, 2, strings.Count(out, "Invalid option!"))
	assert.Contains(t, out, "invalid input")
}
