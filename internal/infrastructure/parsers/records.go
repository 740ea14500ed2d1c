// Package parsers reads the game data exports the ontology is populated from.
package parsers

import (
	"encoding/json"
	"fmt"
)

// Record is a flat JSON object with loosely typed fields.
type Record map[string]Value

// Field returns the named field; absent fields are null.
func (r Record) Field(name string) Value {
	return r[name]
}

// RawHero is an entry of heroes.json, keyed by numeric hero id.
type RawHero struct {
	Name          string   `json:"name"`
	LocalizedName Value    `json:"localized_name"`
	PrimaryAttr   string   `json:"primary_attr"`
	AttackType    Value    `json:"attack_type"`
	Roles         []string `json:"roles"`
	Img           Value    `json:"img"`

	// Fields holds every field of the record, including the named ones.
	Fields Record `json:"-"`
}

// UnmarshalJSON decodes the named fields and keeps the full record.
func (h *RawHero) UnmarshalJSON(data []byte) error {
	type plain RawHero
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decoding hero: %w", err)
	}
	var fields Record
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decoding hero fields: %w", err)
	}
	*h = RawHero(p)
	h.Fields = fields
	return nil
}

// RawHeroDetails is an entry of hero_abilities.json, keyed by hero name.
type RawHeroDetails struct {
	Abilities []string    `json:"abilities"`
	Talents   []RawTalent `json:"talents"`
	Facets    []RawFacet  `json:"facets"`
}

// RawTalent is a talent of a hero.
type RawTalent struct {
	Name  string `json:"name"`
	Level Value  `json:"level"`
}

// RawFacet is a facet of a hero.
type RawFacet struct {
	Name        string `json:"name"`
	Title       Value  `json:"title"`
	Description Value  `json:"description"`
	Color       Value  `json:"color"`
}

// RawItem is an entry of items.json, keyed by item name.
type RawItem struct {
	DisplayName Value `json:"dname"`
	Created     Value `json:"created"`
	Qual        Value `json:"qual"`
	Tier        Value `json:"tier"`
	Cost        Value `json:"cost"`
	Lore        Value `json:"lore"`
	Notes       Value `json:"notes"`
	Img         Value `json:"img"`
	Cooldown    Value `json:"cd"`
	Components  Value `json:"components"`
	Behavior    Value `json:"behavior"`
}

// RawAbility is an entry of abilities.json, keyed by ability name.
type RawAbility struct {
	DisplayName Value `json:"dname"`
	Img         Value `json:"img"`
	Description Value `json:"desc"`
	DamageType  Value `json:"dmg_type"`
	ManaCost    Value `json:"mc"`
	Cooldown    Value `json:"cd"`
	Behavior    Value `json:"behavior"`
}
