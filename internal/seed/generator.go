package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/stuffscore/internal/adapters/repository"
	"github.com/okian/stuffscore/internal/domain/dedupe"
)

// pitchUIDSpace namespaces the deterministic pitch uids.
var pitchUIDSpace = uuid.MustParse("6f1d3c2a-8b4e-4f7a-9c1d-2e5b7a9f0c34")

// profile is the league-typical shape of one pitch type.
type profile struct {
	pitchType string
	speed     float64
	hb        float64
	ivb       float64
	spin      float64
}

var profiles = []profile{
	{"FF", 94.5, 7.0, 16.0, 2300},
	{"SI", 93.5, 15.0, 8.0, 2200},
	{"FC", 89.0, -2.5, 9.0, 2400},
	{"SL", 85.5, -5.5, 1.5, 2450},
	{"ST", 81.5, -14.0, 1.0, 2600},
	{"CU", 79.5, -8.0, -9.5, 2550},
	{"CH", 85.5, 14.0, 6.0, 1750},
	{"FS", 86.0, 10.0, 2.5, 1300},
}

// generator produces synthetic players and pitches from a seeded PRNG.
type generator struct {
	rng         *rand.Rand
	seed        uint64
	perPitcher  int
	contactRate float64
}

func newGenerator(cfg *Config) *generator {
	return &generator{
		rng:         rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		seed:        cfg.Seed,
		perPitcher:  cfg.PitchesPerPitcher,
		contactRate: cfg.ContactRate,
	}
}

// rosterNames returns every distinct name across cohorts, compared the way
// the service compares them, sorted so player ids do not depend on map
// iteration order.
func rosterNames(ctx context.Context, cohorts map[string][]string) []string {
	var all []string
	for _, names := range cohorts {
		all = append(all, names...)
	}
	unique := dedupe.Unique(ctx, all)
	slices.Sort(unique)
	return dedupe.Unique(ctx, unique, dedupe.WithCaseFold())
}

// splitName splits a display name into the players table columns so that
// Player.Name reproduces it.
func splitName(name string) (use, last string) {
	i := strings.LastIndex(name, " ")
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// players assigns sequential ids to names.
func players(names []string) []repository.Player {
	out := make([]repository.Player, len(names))
	for i, n := range names {
		use, last := splitName(n)
		out[i] = repository.Player{PlayerID: int64(firstPlayerID + i), NameUse: use, NameLast: last}
	}
	return out
}

// arsenal picks the pitch types a pitcher throws and their usage weights.
func (g *generator) arsenal() ([]profile, []float64) {
	n := minArsenal + g.rng.IntN(maxArsenal-minArsenal+1)
	picked := make([]profile, 0, n)
	picked = append(picked, profiles[g.rng.IntN(2)])
	for _, i := range g.rng.Perm(len(profiles) - 2)[:n-1] {
		picked = append(picked, profiles[i+2])
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 + g.rng.Float64()*float64(n-i)
	}
	return picked, weights
}

// pick draws an index with probability proportional to weights.
func (g *generator) pick(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

func (g *generator) around(mean, sd float64) *float64 {
	v := mean + g.rng.NormFloat64()*sd
	return &v
}

// pitches generates the pitches of one player. A pitcher-level talent
// offset shifts every pitch so cohorts have real spread.
func (g *generator) pitches(p repository.Player) []repository.Pitch {
	arsenal, weights := g.arsenal()
	velo := g.rng.NormFloat64() * 1.5
	spin := g.rng.NormFloat64() * 80
	contact := g.rng.NormFloat64() * 1.5

	out := make([]repository.Pitch, g.perPitcher)
	for i := range out {
		pr := arsenal[g.pick(weights)]
		pt := repository.Pitch{
			PitchUID:             uuid.NewSHA1(pitchUIDSpace, []byte(fmt.Sprintf("%d/%d/%d", g.seed, p.PlayerID, i))).String(),
			PitcherID:            p.PlayerID,
			PitchType:            pr.pitchType,
			ReleaseSpeed:         g.around(pr.speed+velo, 0.9),
			HorizontalBreak:      g.around(pr.hb, 1.8),
			InducedVerticalBreak: g.around(pr.ivb, 1.8),
			SpinRate:             g.around(pr.spin+spin, 60),
		}
		if g.rng.Float64() < g.contactRate {
			pt.HitExitSpeed = g.around(88+contact, 9)
			pt.HitLaunchAngle = g.around(12, 24)
		}
		out[i] = pt
	}
	return out
}
