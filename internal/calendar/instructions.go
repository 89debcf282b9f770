package calendar

import (
	"fmt"
	"iter"

	"github.com/nibzard/greenthumb/internal/season"
)

// Instructions maps each season to its named instruction lists.
type Instructions struct {
	seasons map[season.Season]*TaskLists
}

// NewInstructions returns instructions with all four seasons present and
// no lists.
func NewInstructions() *Instructions {
	in := &Instructions{seasons: make(map[season.Season]*TaskLists, len(season.All()))}
	for _, s := range season.All() {
		in.seasons[s] = NewTaskLists()
	}
	return in
}

// GetOrCreateList returns the named instruction list of season s.
func (in *Instructions) GetOrCreateList(s season.Season, name string) (*TaskList, error) {
	lists, ok := in.seasons[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", season.ErrUnknownSeason, int(s))
	}
	return lists.GetOrCreate(name), nil
}

// Season returns the instruction lists of season s.
func (in *Instructions) Season(s season.Season) (*TaskLists, bool) {
	lists, ok := in.seasons[s]
	return lists, ok
}

// Seasons yields every season with its lists in the fixed season order.
func (in *Instructions) Seasons() iter.Seq2[season.Season, *TaskLists] {
	return func(yield func(season.Season, *TaskLists) bool) {
		for _, s := range season.All() {
			if !yield(s, in.seasons[s]) {
				return
			}
		}
	}
}
