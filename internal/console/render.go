package console

import (
	"fmt"
	"io"

	"highways/internal/domain"
)

// WriteLeg prints the stop-by-stop breakdown of one leg.
func WriteLeg(w io.Writer, leg domain.Leg) {
	fmt.Fprintf(w, "\n=== Route on highway %s ===\n", leg.Highway)
	fmt.Fprintf(w, "Start at: %s (km %.2f)\n", leg.From, leg.StartKm)
	for _, s := range leg.Segments {
		fmt.Fprintf(w, "\n-> Next city: %s (km %.2f)\n", s.To, s.ToKm)
		fmt.Fprintf(w, "   Segment distance: %.2f km\n", s.Distance)
		if s.Toll > 0 {
			fmt.Fprintf(w, "   Segment toll: R$ %.2f\n", s.Toll)
		}
	}
	fmt.Fprintf(w, "\n=== End of route ===\n")
	fmt.Fprintf(w, "Distance travelled: %.2f km\n", leg.Distance)
	fmt.Fprintf(w, "Toll cost: R$ %.2f\n", leg.Toll)
}

// WriteItinerary prints a full trip, with a summary when it spans two highways.
func WriteItinerary(w io.Writer, it domain.Itinerary) {
	fmt.Fprintf(w, "\n=== Route from %s to %s ===\n", it.Start, it.End)
	if it.Direct() {
		for _, leg := range it.Legs {
			WriteLeg(w, leg)
		}
		return
	}

	first, second := it.Legs[0], it.Legs[1]
	fmt.Fprintf(w, "Route found:\n")
	fmt.Fprintf(w, "1. Start at %s on highway %s\n", it.Start, first.Highway)
	fmt.Fprintf(w, "2. Connect at %s\n", it.Connection)
	fmt.Fprintf(w, "3. Continue on highway %s to %s\n", second.Highway, it.End)

	fmt.Fprintf(w, "\nFirst leg (%s):\n", first.Highway)
	WriteLeg(w, first)
	fmt.Fprintf(w, "\nSecond leg (%s):\n", second.Highway)
	WriteLeg(w, second)

	fmt.Fprintf(w, "\n=== Trip summary ===\n")
	fmt.Fprintf(w, "Total distance: %.2f km\n", it.Distance)
	fmt.Fprintf(w, "Total toll cost: R$ %.2f\n", it.Toll)
}

// WriteHighways prints every highway with its recomputed total toll.
func WriteHighways(w io.Writer, views []domain.HighwayView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No highways registered.")
		return
	}
	for _, v := range views {
		fmt.Fprintf(w, "Highway: %s\n", v.Name)
		fmt.Fprintf(w, "Total toll: R$ %.2f\n", v.TotalToll)
		for _, c := range v.Cities {
			fmt.Fprintf(w, "City: %s, Distance: %.2f", c.Name, c.Distance)
			if c.HasToll {
				fmt.Fprintf(w, ", Toll: R$ %.2f", c.Toll)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}

// WriteCrossings prints crossings grouped by highway pair.
func WriteCrossings(w io.Writer, crossings []domain.Crossing) {
	if len(crossings) == 0 {
		fmt.Fprintln(w, "No crossings found.")
		return
	}
	var first, second string
	for _, c := range crossings {
		if c.First != first || c.Second != second {
			first, second = c.First, c.Second
			fmt.Fprintf(w, "\nCrossings between %s and %s:\n", first, second)
		}
		fmt.Fprintf(w, "- %s (km %.2f on %s, km %.2f on %s)\n", c.City, c.FirstKm, c.First, c.SecondKm, c.Second)
	}
}
