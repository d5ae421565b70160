// Command dogcli is a terminal demo driving a single dog.Engine game,
// showing one seat's view while the other three seats are played by a
// uniform-random policy. Grounded on the teacher's cmd/pokersrv/main.go
// flag-based bootstrap.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vctt94/dogengine/internal/dog"
	"github.com/vctt94/dogengine/internal/logging"
)

func main() {
	var (
		seed       int64
		debugLevel string
		seatFlag   string
	)
	flag.Int64Var(&seed, "seed", 0, "Deterministic RNG seed (0 = random)")
	flag.StringVar(&debugLevel, "debuglevel", "info", "Logging level: trace, debug, info, warn, error")
	flag.StringVar(&seatFlag, "seat", "Blue", "Seat to view/play: Blue, Green, Red, Yellow")
	flag.Parse()

	seat, err := parseSeat(seatFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(os.Stderr, "dogcli", debugLevel)

	engine, err := dog.NewGame(dog.GameConfig{Seed: seed, Log: log})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start game: %v\n", err)
		os.Exit(1)
	}

	m := newModel(engine, seat, log)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ui error: %v\n", err)
		os.Exit(1)
	}
}

func parseSeat(s string) (dog.Color, error) {
	switch s {
	case "Blue":
		return dog.Blue, nil
	case "Green":
		return dog.Green, nil
	case "Red":
		return dog.Red, nil
	case "Yellow":
		return dog.Yellow, nil
	default:
		return 0, fmt.Errorf("dogcli: unknown seat %q", s)
	}
}
