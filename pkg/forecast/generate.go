package forecast

import (
	"math"
	"math/rand"
	"time"
)

// Generator produces fictional but plausible forecast data, replacing fixed
// data files for demos and checks. Output is deterministic for a given seed.
type Generator struct {
	rng      *rand.Rand
	baseTemp float64
	variance float64
}

// GeneratorOption adjusts the generated climate.
type GeneratorOption func(*Generator)

// WithBaseTemp sets the temperature the daily curve oscillates around.
func WithBaseTemp(temp float64) GeneratorOption {
	return func(g *Generator) {
		g.baseTemp = temp
	}
}

// WithVariance sets the maximum swing of the daily temperature curve.
func WithVariance(variance float64) GeneratorOption {
	return func(g *Generator) {
		if variance > 0 {
			g.variance = variance
		}
	}
}

// NewGenerator constructs a Generator seeded for reproducible output.
func NewGenerator(seed int64, options ...GeneratorOption) *Generator {
	g := &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		baseTemp: 22,
		variance: 8,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Day generates a single record for the given date: hourly temperatures on a
// curve that peaks mid-afternoon, rainfall chances clustered on rainy days,
// and a condition derived from the rain and humidity profile.
func (g *Generator) Day(date time.Time) Record {
	temps := g.hourlyTemps()
	humidity := g.hourlyHumidity()
	rainChance := g.hourlyRainChance()

	high, low := temps[0], temps[0]
	for _, temp := range temps[1:] {
		high = math.Max(high, temp)
		low = math.Min(low, temp)
	}

	return Record{
		Date:      date,
		Condition: condition(maxInt(rainChance), avgInt(humidity)),
		High:      math.Round(high),
		Low:       math.Round(low),
	}
}

// Week generates seven records starting from the Monday of the week that
// contains from.
func (g *Generator) Week(from time.Time) []Record {
	return g.daysFrom(weekStart(from))
}

// NextWeek generates seven records starting from the Monday after the week
// that contains from.
func (g *Generator) NextWeek(from time.Time) []Record {
	return g.daysFrom(weekStart(from).AddDate(0, 0, 7))
}

func (g *Generator) daysFrom(start time.Time) []Record {
	records := make([]Record, 0, 7)
	for offset := 0; offset < 7; offset++ {
		records = append(records, g.Day(start.AddDate(0, 0, offset)))
	}
	return records
}

func (g *Generator) hourlyTemps() []float64 {
	temps := make([]float64, 24)
	for hour := range temps {
		// Natural curve: cool overnight, peak around 2 PM.
		timeFactor := -0.5*math.Pow((float64(hour)-14)/12, 2) + 0.5
		temp := g.baseTemp + timeFactor*g.variance + g.uniform(-2, 2)
		temps[hour] = math.Max(0, temp)
	}
	return temps
}

func (g *Generator) hourlyHumidity() []int {
	base := 40 + g.rng.Intn(41)
	values := make([]int, 24)
	for hour := range values {
		timeFactor := 0.3*math.Pow((float64(hour)-6)/12, 2) - 0.3
		humidity := float64(base) - timeFactor*20 + g.uniform(-10, 10)
		values[hour] = clampInt(int(humidity), 20, 100)
	}
	return values
}

func (g *Generator) hourlyRainChance() []int {
	chances := make([]int, 24)
	if g.rng.Intn(4) != 0 {
		// Clear day with minimal rain chance.
		for hour := range chances {
			chances[hour] = g.rng.Intn(16)
		}
		return chances
	}

	// Rainy day: cluster around an afternoon or evening peak.
	peak := 12 + g.rng.Intn(7)
	for hour := range chances {
		distance := math.Abs(float64(hour - peak))
		base := math.Max(0, 80-distance*8)
		chances[hour] = clampInt(int(base+g.uniform(-15, 15)), 0, 100)
	}
	return chances
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func condition(maxRainChance, avgHumidity int) string {
	switch {
	case maxRainChance >= 70:
		return "Rainy"
	case maxRainChance >= 40:
		return "Showers"
	case avgHumidity >= 75:
		return "Cloudy"
	default:
		return "Sunny"
	}
}

func weekStart(from time.Time) time.Time {
	year, month, day := from.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, from.Location())

	weekday := int(midnight.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started six days earlier.
	}
	return midnight.AddDate(0, 0, -(weekday - 1))
}

func maxInt(values []int) int {
	out := values[0]
	for _, v := range values[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

func avgInt(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total / len(values)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
