package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"highways/internal/domain"
	"highways/internal/network"
)

// Options tune the menu's start and exit behaviour.
type Options struct {
	AskConsent        bool
	ConfirmSaveOnExit bool
}

// Menu is the interactive front end over the network and persistence services.
type Menu struct {
	in    *bufio.Scanner
	out   io.Writer
	net   domain.NetworkService
	files domain.PersistenceService
	opts  Options
	log   *zap.Logger
}

// New returns a menu reading answers from in and writing to out.
func New(
	in io.Reader,
	out io.Writer,
	net domain.NetworkService,
	files domain.PersistenceService,
	opts Options,
	log *zap.Logger,
) *Menu {
	return &Menu{
		in:    bufio.NewScanner(in),
		out:   out,
		net:   net,
		files: files,
		opts:  opts,
		log:   log,
	}
}

const options = `
-> Choose an option:
1. Insert highway
2. Remove highway
3. Insert city on highway
4. Remove city from highway
5. Show route between two cities
6. Check crossings between all highways
7. Print highways
8. Save to a new file
9. List crossings between two highways
10. Save changes to the current file
0. Exit
`

// Run drives the menu until the user exits or input ends.
func (m *Menu) Run() error {
	if m.opts.AskConsent && !m.consent() {
		fmt.Fprintln(m.out, "\n[You did not accept the usage guidelines. Exiting.]")
		return m.in.Err()
	}
	if m.files.Path() == "" && !m.chooseStart() {
		return m.in.Err()
	}

	for {
		fmt.Fprint(m.out, options)
		line, ok := m.read()
		if !ok {
			return m.in.Err()
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid option!")
			continue
		}

		switch choice {
		case 0:
			m.exit()
			fmt.Fprintln(m.out, "Exiting...")
			return m.in.Err()
		case 1:
			m.insertHighway()
		case 2:
			m.removeHighway()
		case 3:
			m.insertCity()
		case 4:
			m.removeCity()
		case 5:
			m.route()
		case 6:
			m.allCrossings()
		case 7:
			WriteHighways(m.out, m.net.Highways())
		case 8:
			m.saveAs()
		case 9:
			m.crossings()
		case 10:
			m.save()
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}
	}
}

func (m *Menu) consent() bool {
	fmt.Fprint(m.out, `Welcome to the highway network manager!

For the best experience, please read the following:

- Use clear, concise names for highways and cities.
- Prefer a hyphen in highway names (e.g. BR-101).
- Check spelling to avoid mistakes.
- Back up your data regularly.

Do you agree with the practices above?
1 - Yes
2 - No
`)
	line, ok := m.read()
	return ok && strings.TrimSpace(line) == "1"
}

func (m *Menu) chooseStart() bool {
	line, ok := m.ask("\nStart with an empty network or load a file with existing data?\n" +
		"0 to start empty, 1 to load a file: ")
	if !ok {
		return false
	}
	if strings.TrimSpace(line) != "1" {
		return true
	}
	path, ok := m.ask("File to load (e.g. rodovias.txt): ")
	if !ok {
		return false
	}
	if err := m.files.Open(path); err != nil {
		m.fail(err)
		return true
	}
	fmt.Fprintf(m.out, "Data loaded from '%s'.\n", m.files.Path())
	return true
}

func (m *Menu) insertHighway() {
	name, ok := m.ask("Highway name: ")
	if !ok {
		return
	}
	if err := m.net.AddHighway(domain.HighwayRequest{Name: name}); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Highway '%s' added.\n", strings.TrimSpace(name))
}

func (m *Menu) removeHighway() {
	name, ok := m.ask("Highway to remove: ")
	if !ok {
		return
	}
	if err := m.net.RemoveHighway(domain.HighwayRequest{Name: name}); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Highway '%s' removed.\n", strings.TrimSpace(name))
}

func (m *Menu) insertCity() {
	hw, ok := m.ask("Highway to add the city to: ")
	if !ok {
		return
	}
	view, err := m.net.Highway(hw)
	if err != nil {
		m.fail(err)
		return
	}
	city, ok := m.ask("City name: ")
	if !ok {
		return
	}
	city = strings.TrimSpace(city)
	for _, c := range view.Cities {
		if network.SameName(c.Name, city) {
			fmt.Fprintf(m.out, "Error: city '%s' already exists on highway '%s'!\n", city, view.Name)
			return
		}
	}
	km, ok := m.askFloat("Distance from the start of the highway: ")
	if !ok {
		return
	}
	if err := m.net.AddCity(domain.CityRequest{Highway: view.Name, Name: city, Distance: km}); err != nil {
		m.fail(err)
		return
	}
	if updated, err := m.net.Highway(view.Name); err == nil && len(updated.Cities) > 1 {
		m.offerToll(updated, city)
	}
	fmt.Fprintf(m.out, "City '%s' added to highway '%s'!\n", city, view.Name)
}

// offerToll lets the user charge a toll from the new city toward one of
// its neighbours on the highway.
func (m *Menu) offerToll(view domain.HighwayView, city string) {
	var others []domain.CityView
	fmt.Fprintf(m.out, "\nNeighbouring cities on highway %s:\n", view.Name)
	for i, c := range view.Cities {
		if !network.SameName(c.Name, city) {
			continue
		}
		if i > 0 {
			others = append(others, view.Cities[i-1])
		}
		if i+1 < len(view.Cities) {
			others = append(others, view.Cities[i+1])
		}
	}
	for i, c := range others {
		fmt.Fprintf(m.out, "%d. %s (Distance: %.2f km)\n", i+1, c.Name, c.Distance)
	}

	line, ok := m.ask("\nAdd a toll toward one of these cities? (1-Yes, 0-No): ")
	if !ok || strings.TrimSpace(line) != "1" {
		return
	}
	line, ok = m.ask("Choose the city number: ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(others) {
		fmt.Fprintln(m.out, "Invalid choice!")
		return
	}
	target := others[n-1].Name
	amount, ok := m.askFloat(fmt.Sprintf("Toll between %s and %s: R$ ", city, target))
	if !ok {
		return
	}
	req := domain.TollRequest{Highway: view.Name, From: city, To: target, Amount: amount}
	if err := m.net.AddToll(req); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Toll of R$ %.2f added between %s and %s.\n", amount, city, target)
}

func (m *Menu) removeCity() {
	hw, ok := m.ask("Highway to remove the city from: ")
	if !ok {
		return
	}
	if _, err := m.net.Highway(hw); err != nil {
		m.fail(err)
		return
	}
	city, ok := m.ask("City to remove: ")
	if !ok {
		return
	}
	if err := m.net.RemoveCity(domain.CityRequest{Highway: hw, Name: city}); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "City '%s' removed.\n", strings.TrimSpace(city))
}

func (m *Menu) route() {
	start, ok := m.ask("Start city: ")
	if !ok {
		return
	}
	end, ok := m.ask("End city: ")
	if !ok {
		return
	}
	it, err := m.net.Route(domain.RouteRequest{Start: start, End: end})
	if err != nil {
		m.fail(err)
		return
	}
	WriteItinerary(m.out, it)
}

func (m *Menu) allCrossings() {
	fmt.Fprintln(m.out, "\nChecking crossings between all highways...")
	crossings, err := m.net.AllCrossings()
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintln(m.out, "\n=== All crossings ===")
	WriteCrossings(m.out, crossings)
}

func (m *Menu) crossings() {
	fmt.Fprintln(m.out, "Enter the two highways, one per line:")
	first, ok := m.read()
	if !ok {
		return
	}
	second, ok := m.read()
	if !ok {
		return
	}
	crossings, err := m.net.Crossings(domain.CrossingRequest{First: first, Second: second})
	if err != nil {
		m.fail(err)
		return
	}
	WriteCrossings(m.out, crossings)
}

func (m *Menu) saveAs() {
	path, ok := m.ask("New file name (e.g. novo_rodovias.txt): ")
	if !ok {
		return
	}
	if err := m.files.SaveAs(path); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Data saved to '%s'!\n", m.files.Path())
}

func (m *Menu) save() {
	if err := m.files.Save(); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Changes saved to '%s'!\n", m.files.Path())
}

func (m *Menu) exit() {
	if !m.opts.ConfirmSaveOnExit || m.files.Path() == "" || !m.files.Dirty() {
		return
	}
	line, ok := m.ask("\nSave changes before exiting? (1-Yes, 0-No): ")
	if ok && strings.TrimSpace(line) == "1" {
		m.save()
	}
}

// fail reports err to the user; the menu always carries on afterwards.
func (m *Menu) fail(err error) {
	m.log.Warn("menu operation failed", zap.Error(err))
	switch {
	case errors.Is(err, domain.ErrNoFile):
		fmt.Fprintln(m.out, "No file was loaded. Use option 8 to save to a new file.")
	case errors.Is(err, domain.ErrTooFewHighways):
		fmt.Fprintln(m.out, "At least two highways are needed to check crossings!")
	case errors.Is(err, domain.ErrNoDirectConnection):
		fmt.Fprintln(m.out, "No direct route between these cities.")
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

func (m *Menu) ask(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	return m.read()
}

// askFloat accepts a decimal point or a decimal comma.
func (m *Menu) askFloat(prompt string) (float64, bool) {
	line, ok := m.ask(prompt)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(line), ",", ".", 1), 64)
	if err != nil {
		fmt.Fprintln(m.out, "Error: invalid number")
		return 0, false
	}
	return v, true
}

func (m *Menu) read() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
