package pokeapi

import (
	"strings"

	"pokedex-service/internal/domain"
)

func mapSummary(item listItem) domain.Summary {
	return domain.Summary{
		ID:   domain.IDFromURL(item.URL),
		Name: item.Name,
		URL:  item.URL,
	}
}

func mapDetail(d detailResponse) domain.Detail {
	types := make([]domain.TypeSlot, 0, len(d.Types))
	for _, t := range d.Types {
		types = append(types, domain.TypeSlot{Slot: t.Slot, Name: t.Type.Name})
	}
	return domain.Detail{
		ID:             d.ID,
		Name:           d.Name,
		Types:          types,
		Height:         d.Height,
		Weight:         d.Weight,
		BaseExperience: d.BaseExperience,
		SpriteURL:      d.Sprites.FrontDefault,
		SpeciesURL:     d.Species.URL,
	}
}

func mapSpecies(s speciesResponse) domain.Species {
	flavors := make([]domain.FlavorText, 0, len(s.FlavorTextEntries))
	for _, f := range s.FlavorTextEntries {
		flavors = append(flavors, domain.FlavorText{
			Text:         normalizeFlavorText(f.FlavorText),
			LanguageCode: f.Language.Name,
			VersionName:  f.Version.Name,
		})
	}

	genera := make([]domain.Genus, 0, len(s.Genera))
	for _, g := range s.Genera {
		genera = append(genera, domain.Genus{Text: g.Genus, LanguageCode: g.Language.Name})
	}

	names := make([]domain.LocalizedName, 0, len(s.Names))
	for _, n := range s.Names {
		names = append(names, domain.LocalizedName{Name: n.Name, LanguageCode: n.Language.Name})
	}

	return domain.Species{
		FlavorTextEntries: flavors,
		Genera:            genera,
		LocalizedNames:    names,
	}
}

// normalizeFlavorText strips the control characters PokeAPI carries over
// from the game ROM text (form feeds, soft hyphens rendered as newlines).
func normalizeFlavorText(text string) string {
	replacer := strings.NewReplacer("\f", " ", "\n", " ", "\r", " ")
	return strings.Join(strings.Fields(replacer.Replace(text)), " ")
}
