package parsers

import (
	"fmt"
	"io"
	"os"
)

// SourcePaths locates the four data exports.
type SourcePaths struct {
	Heroes      string
	HeroDetails string
	Items       string
	Abilities   string
}

// All returns the paths in load order.
func (p SourcePaths) All() []string {
	return []string{p.Heroes, p.HeroDetails, p.Items, p.Abilities}
}

// SourceData is the parsed content of the four exports.
type SourceData struct {
	Heroes      *Keyed[RawHero]
	HeroDetails *Keyed[RawHeroDetails]
	Items       *Keyed[RawItem]
	Abilities   *Keyed[RawAbility]
}

// LoadSourceData parses every export. The first failure aborts the load.
func LoadSourceData(paths SourcePaths) (*SourceData, error) {
	var (
		data SourceData
		err  error
	)

	if data.Heroes, err = decodeFile[RawHero](paths.Heroes); err != nil {
		return nil, err
	}
	if data.HeroDetails, err = decodeFile[RawHeroDetails](paths.HeroDetails); err != nil {
		return nil, err
	}
	if data.Items, err = decodeFile[RawItem](paths.Items); err != nil {
		return nil, err
	}
	if data.Abilities, err = decodeFile[RawAbility](paths.Abilities); err != nil {
		return nil, err
	}

	return &data, nil
}

// ParseSourceData parses the four exports from readers.
func ParseSourceData(heroes, heroDetails, items, abilities io.Reader) (*SourceData, error) {
	var (
		data SourceData
		err  error
	)

	if data.Heroes, err = DecodeKeyed[RawHero](heroes); err != nil {
		return nil, fmt.Errorf("parsing heroes: %w", err)
	}
	if data.HeroDetails, err = DecodeKeyed[RawHeroDetails](heroDetails); err != nil {
		return nil, fmt.Errorf("parsing hero details: %w", err)
	}
	if data.Items, err = DecodeKeyed[RawItem](items); err != nil {
		return nil, fmt.Errorf("parsing items: %w", err)
	}
	if data.Abilities, err = DecodeKeyed[RawAbility](abilities); err != nil {
		return nil, fmt.Errorf("parsing abilities: %w", err)
	}

	return &data, nil
}

func decodeFile[T any](path string) (*Keyed[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	result, err := DecodeKeyed[T](f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return result, nil
}
