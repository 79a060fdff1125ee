package store

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"highways/internal/network"
)

const (
	highwayPrefix = "Rodovia:"
	tollPrefix    = "Pedágio:"
)

var (
	tollLine = regexp.MustCompile(`^Pedágio:\s*R\$\s*([0-9]+(?:\.[0-9]+)?)\s*$`)
	cityLine = regexp.MustCompile(
		`^\s+Cidade:\s*(.+?),\s*Distância:\s*([0-9]+(?:\.[0-9]+)?)` +
			`(?:,\s*Pedágio:\s*R\$\s*([0-9]+(?:\.[0-9]+)?))?\s*$`)
)

// DecodeStats summarises a decode run.
type DecodeStats struct {
	Highways int
	Cities   int
	Tolls    int
	Skipped  int
}

// Decode reads the line format written by Encode into reg. A highway header
// reuses an existing highway of the same name. Cities keep file order among
// equal distances. A toll on a city line is charged by the city preceding it
// toward it. Lines that do not parse, and
// cities that clash with existing ones, are skipped.
func Decode(r io.Reader, reg *network.Registry, log *zap.Logger) (DecodeStats, error) {
	var (
		stats   DecodeStats
		current *network.Highway
		lineNo  int
	)
	skip := func(line, reason string) {
		stats.Skipped++
		log.Debug("skipping line", zap.Int("line", lineNo), zap.String("reason", reason), zap.String("text", line))
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.TrimSpace(line) == "":
			continue

		case strings.HasPrefix(line, highwayPrefix):
			name := strings.TrimSpace(strings.TrimPrefix(line, highwayPrefix))
			if name == "" {
				current = nil
				skip(line, "empty highway name")
				continue
			}
			current = reg.Ensure(name)
			stats.Highways++

		case strings.HasPrefix(line, tollPrefix):
			m := tollLine.FindStringSubmatch(line)
			if m == nil || current == nil {
				skip(line, "malformed toll header")
				continue
			}
			v, _ := strconv.ParseFloat(m[1], 64)
			current.SetCachedToll(v)

		default:
			m := cityLine.FindStringSubmatch(line)
			if m == nil || current == nil {
				skip(line, "malformed city line")
				continue
			}
			km, _ := strconv.ParseFloat(m[2], 64)
			city, err := current.Cities().Append(strings.TrimSpace(m[1]), km)
			if err != nil {
				skip(line, err.Error())
				continue
			}
			stats.Cities++
			if m[3] == "" {
				continue
			}
			amount, _ := strconv.ParseFloat(m[3], 64)
			if prev := current.Cities().Before(city); prev != nil && amount > 0 {
				prev.Ledger().Add(city.Name(), amount)
				stats.Tolls++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("read network: %w", err)
	}
	return stats, nil
}

// Encode writes every highway of reg in registry order. The header total is
// recomputed; a city line carries the toll between the city and the one
// before it, which is what Decode reads back.
func Encode(w io.Writer, reg *network.Registry) error {
	bw := bufio.NewWriter(w)
	for _, h := range reg.Highways() {
		fmt.Fprintf(bw, "%s %s\n", highwayPrefix, h.Name())
		fmt.Fprintf(bw, "%s R$ %.2f\n", tollPrefix, h.TotalToll())
		var prev *network.City
		for _, c := range h.Cities().Cities() {
			fmt.Fprintf(bw, "\tCidade: %s, Distância: %.2f", c.Name(), c.Distance())
			if prev != nil {
				if amount, ok := network.Between(prev, c); ok {
					fmt.Fprintf(bw, ", Pedágio: R$ %.2f", amount)
				}
			}
			bw.WriteString("\n")
			prev = c
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// LostToll is a ledger entry the line format has no place for.
type LostToll struct {
	Highway string
	From    string
	Target  string
	Amount  float64
}

// LostTolls lists the entries Encode cannot write: tolls toward a city that
// is not a neighbour (or no longer exists), and entries shadowed by a newer
// one for the same pair. They still count toward the header total.
func LostTolls(reg *network.Registry) []LostToll {
	var lost []LostToll
	for _, h := range reg.Highways() {
		cities := h.Cities().Cities()
		for i, c := range cities {
			seen := make(map[string]bool)
			for _, e := range c.Ledger().Entries() {
				key := network.Fold(e.Target)
				written := false
				if !seen[key] {
					seen[key] = true
					switch {
					case i+1 < len(cities) && key == network.Fold(cities[i+1].Name()):
						written = true
					case i > 0 && key == network.Fold(cities[i-1].Name()):
						_, shadowed := cities[i-1].Ledger().Find(c.Name())
						written = !shadowed
					}
				}
				if !written {
					lost = append(lost, LostToll{Highway: h.Name(), From: c.Name(), Target: e.Target, Amount: e.Amount})
				}
			}
		}
	}
	return lost
}
