package domain

// GenerationRange maps one game generation to its closed national-dex id
// interval.
type GenerationRange struct {
	Generation int `json:"generation"`
	Min        int `json:"min"`
	Max        int `json:"max"`
}

// GenerationRanges lists the nine generations covering ids 1..1025.
var GenerationRanges = []GenerationRange{
	{Generation: 1, Min: 1, Max: 151},
	{Generation: 2, Min: 152, Max: 251},
	{Generation: 3, Min: 252, Max: 386},
	{Generation: 4, Min: 387, Max: 493},
	{Generation: 5, Min: 494, Max: 649},
	{Generation: 6, Min: 650, Max: 721},
	{Generation: 7, Min: 722, Max: 809},
	{Generation: 8, Min: 810, Max: 905},
	{Generation: 9, Min: 906, Max: 1025},
}

// RangeForGeneration returns the id interval for a generation, if known.
func RangeForGeneration(generation int) (GenerationRange, bool) {
	for _, r := range GenerationRanges {
		if r.Generation == generation {
			return r, true
		}
	}
	return GenerationRange{}, false
}

// GenerationOf returns the generation an id belongs to, or 0 when the id is
// outside every range.
func GenerationOf(id int) int {
	for _, r := range GenerationRanges {
		if id >= r.Min && id <= r.Max {
			return r.Generation
		}
	}
	return 0
}
