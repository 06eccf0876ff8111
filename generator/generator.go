package generator

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/jsphweid/aleatoric/model"
	"github.com/jsphweid/aleatoric/util"
	"github.com/pkg/errors"
)

// Generator draws excerpts for tracks. It is not safe for concurrent use;
// give each goroutine its own.
type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Draw picks k indices with replacement, weighting index i by weights[i].
func (g *Generator) Draw(weights []float64, k int) ([]int, error) {
	cumulative := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		total += w
		cumulative[i] = total
	}
	if len(weights) == 0 || total <= 0 {
		return nil, errors.Errorf("cannot draw from weights %v", weights)
	}

	res := make([]int, k)
	for i := range res {
		r := g.rng.Float64() * total
		idx := sort.Search(len(cumulative), func(j int) bool {
			return cumulative[j] > r
		})
		res[i] = util.Min(idx, len(cumulative)-1)
	}
	return res, nil
}

// Generate replaces the composition's tracks with freshly assembled ones.
// Every track is cleared; the first MaxTracks are then validated and filled
// with Length draws each. A track that fails validation is left empty and out
// of the composition, its siblings are still generated, and the first failure
// is returned.
func (g *Generator) Generate(c *model.Composition, tracks []*model.Track) error {
	c.Tracks = nil
	for _, track := range tracks {
		track.ClearExcerpts()
	}

	var firstErr error
	n := util.Min(c.MaxTracks, len(tracks))
	for _, track := range tracks[:n] {
		if err := g.fill(track, c.Length); err != nil {
			slog.Warn("skipping track", "track", track.Name, "err", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		c.Tracks = append(c.Tracks, track)
	}

	c.Sanitize()
	return firstErr
}

func (g *Generator) fill(track *model.Track, length int) error {
	if err := track.Validate(); err != nil {
		return err
	}

	lib := track.Library()
	picks, err := g.Draw(track.Probabilities, length)
	if err != nil {
		return errors.Wrapf(err, "track %q", track.Name)
	}
	for _, idx := range picks {
		track.AddExcerpt(lib.Excerpts[idx])
	}
	slog.Debug("filled track", "track", track.Name, "picks", picks)
	return nil
}
