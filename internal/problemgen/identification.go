package problemgen

import (
	"math/rand/v2"
	"strconv"
)

// Shapes is the shape-identification catalog.
var Shapes = []string{
	"Circle ⭕",
	"Square ⬛",
	"Triangle 🔺",
	"Star ⭐",
	"Heart ❤️",
	"Diamond 💠",
	"Pentagon ⬠",
	"Hexagon ⬡",
}

// Colors is the colour-identification catalog: colour, object, emoji.
var Colors = []string{
	"Red Apple 🍎",
	"Blue Book 📘",
	"Green Leaf 🌿",
	"Yellow Sunflower 🌻",
	"Orange Fruit 🍊",
	"Purple Grapes 🍇",
	"Pink Flower 🌸",
	"Brown Bear 🐻",
	"Black Cat 🐈‍⬛",
	"White Cloud ☁️",
}

// Letter pool variants for alphabet drills.
const (
	TagUppercase = "uppercase"
	TagLowercase = "lowercase"
	TagBoth      = "both"
)

func generateIdentification(rng *rand.Rand, op Operation, tag string, count int) []Problem {
	switch op {
	case OpNumbers:
		return numberProblems(rng, RangeForTag(tag), count)
	case OpAlphabets:
		return pick(rng, letterPool(tag), count)
	case OpShapes:
		return pick(rng, Shapes, count)
	case OpColors:
		return pick(rng, Colors, count)
	}
	return []Problem{}
}

// numberProblems lists every value in r once (shuffled) before padding
// with random repeats, then shuffles again so the guaranteed values are
// spread across the page.
func numberProblems(rng *rand.Rand, r Range, count int) []Problem {
	values := make([]int, 0, r.Size())
	for v := r.Min; v <= r.Max; v++ {
		values = append(values, v)
	}
	rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	problems := make([]Problem, 0, count)
	for _, v := range values {
		if len(problems) >= count {
			break
		}
		problems = append(problems, Problem{Display: strconv.Itoa(v)})
	}
	for len(problems) < count {
		problems = append(problems, Problem{Display: strconv.Itoa(draw(rng, r))})
	}

	rng.Shuffle(len(problems), func(i, j int) { problems[i], problems[j] = problems[j], problems[i] })
	return problems
}

func letterPool(tag string) []string {
	upper := letters('A', 'Z')
	lower := letters('a', 'z')
	switch tag {
	case TagLowercase:
		return lower
	case TagBoth:
		return append(upper, lower...)
	default:
		return upper
	}
}

func letters(from, to rune) []string {
	out := make([]string, 0, to-from+1)
	for c := from; c <= to; c++ {
		out = append(out, string(c))
	}
	return out
}

// pick draws count items from pool independently, with repetition.
func pick(rng *rand.Rand, pool []string, count int) []Problem {
	problems := make([]Problem, 0, count)
	for range count {
		problems = append(problems, Problem{Display: pool[rng.IntN(len(pool))]})
	}
	return problems
}
