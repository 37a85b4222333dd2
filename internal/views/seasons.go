package views

import (
	"fmt"
	"slices"

	"journeys/pkg/utils"
)

type Season int

const (
	SeasonWinter Season = iota
	SeasonSpring
	SeasonSummer
	SeasonFall
)

var seasonLabels = [...]string{
	SeasonWinter: "Winter Escapes",
	SeasonSpring: "Spring Blooms",
	SeasonSummer: "Summer Vibes",
	SeasonFall:   "Fall Colors",
}

func ParseSeason(i int) (Season, error) {
	if i < int(SeasonWinter) || i > int(SeasonFall) {
		return 0, fmt.Errorf("%w: season %d", utils.ErrInvalidInput, i)
	}
	return Season(i), nil
}

func (s Season) Label() string {
	if s < SeasonWinter || s > SeasonFall {
		return ""
	}
	return seasonLabels[s]
}

// SeasonTable lists the city ids featured under each discover season.
type SeasonTable map[Season][]string

func DefaultSeasonTable() SeasonTable {
	return SeasonTable{
		SeasonWinter: {"tokyo", "istanbul", "mexico-city"},
		SeasonSpring: {"paris", "barcelona", "lisbon"},
		SeasonSummer: {"barcelona", "lisbon", "bangkok"},
		SeasonFall:   {"tokyo", "paris", "mexico-city", "istanbul"},
	}
}

func (t SeasonTable) Includes(s Season, cityID string) bool {
	return slices.Contains(t[s], cityID)
}

type SeasonOption struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

func SeasonOptions() []SeasonOption {
	out := make([]SeasonOption, 0, len(seasonLabels))
	for i, label := range seasonLabels {
		out = append(out, SeasonOption{Index: i, Label: label})
	}
	return out
}
