package pokeapi

const sourceName = "pokeapi"

type listResponse struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []listItem `json:"results"`
}

type listItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type detailResponse struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Types          []typeSlot `json:"types"`
	Height         int        `json:"height"`
	Weight         int        `json:"weight"`
	BaseExperience int        `json:"base_experience"`
	Sprites        sprites    `json:"sprites"`
	Species        namedRef   `json:"species"`
}

type typeSlot struct {
	Slot int      `json:"slot"`
	Type namedRef `json:"type"`
}

type sprites struct {
	FrontDefault string `json:"front_default"`
}

type namedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type speciesResponse struct {
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
	Genera            []genusEntry      `json:"genera"`
	Names             []nameEntry       `json:"names"`
}

type flavorTextEntry struct {
	FlavorText string   `json:"flavor_text"`
	Language   namedRef `json:"language"`
	Version    namedRef `json:"version"`
}

type genusEntry struct {
	Genus    string   `json:"genus"`
	Language namedRef `json:"language"`
}

type nameEntry struct {
	Name     string   `json:"name"`
	Language namedRef `json:"language"`
}
