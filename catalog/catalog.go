// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package catalog loads static weapon records from YAML: the weapon part
// of what spec.md §1 names as an out-of-scope external collaborator:
// "Static equipment and monster data providers (flat records keyed by
// name/version)." It has no monster loader. The combat engine never
// reaches into this package at query time — callers load a catalog
// once, look up the records they need, and hand plain equipment.Weapon
// values to the engine.
package catalog

import (
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/rpgerr"
)

// weaponRecord mirrors the YAML shape of one weapon entry; it is
// translated into equipment.Weapon on load rather than used directly,
// keeping the wire format decoupled from the engine's in-memory types.
type weaponRecord struct {
	Name       string `yaml:"name"`
	SpeedTicks int64  `yaml:"speed_ticks"`
	TwoHanded  bool   `yaml:"two_handed"`
	StyleClass string `yaml:"combat_style_class"`
	Bonuses    struct {
		Stab   int64 `yaml:"stab"`
		Slash  int64 `yaml:"slash"`
		Crush  int64 `yaml:"crush"`
		Ranged int64 `yaml:"ranged"`
		Magic  int64 `yaml:"magic"`
		Melee  int64 `yaml:"strength_melee"`
		RangedStr int64 `yaml:"strength_ranged"`
		Prayer int64 `yaml:"prayer"`
	} `yaml:"bonuses"`
}

// Catalog holds weapons indexed by name, loaded once from a YAML
// document and consulted read-only thereafter.
type Catalog struct {
	weapons map[string]equipment.Weapon
}

// LoadWeapons parses a YAML document (a top-level list of weapon
// records) into a Catalog. Returns rpgerr.CodeInvalidArgument on
// malformed YAML.
func LoadWeapons(doc []byte) (*Catalog, error) {
	var records []weaponRecord
	if err := yaml.Unmarshal(doc, &records); err != nil {
		return nil, rpgerr.New(rpgerr.CodeInvalidArgument, "catalog: malformed weapon YAML",
			rpgerr.WithMeta("cause", err.Error()))
	}

	c := &Catalog{weapons: make(map[string]equipment.Weapon, len(records))}
	for _, r := range records {
		c.weapons[r.Name] = equipment.Weapon{
			Name:       r.Name,
			SpeedTicks: r.SpeedTicks,
			TwoHanded:  r.TwoHanded,
			StyleClass: equipment.CombatStyleClass(r.StyleClass),
			Bonuses: equipment.Bonuses{
				Attack: map[equipment.CombatType]int64{
					equipment.Stab:   r.Bonuses.Stab,
					equipment.Slash:  r.Bonuses.Slash,
					equipment.Crush:  r.Bonuses.Crush,
					equipment.Ranged: r.Bonuses.Ranged,
					equipment.Magic:  r.Bonuses.Magic,
				},
				Defence: map[equipment.CombatType]int64{},
				Strength: equipment.StrengthBonus{
					Melee:  r.Bonuses.Melee,
					Ranged: r.Bonuses.RangedStr,
				},
				Prayer: r.Bonuses.Prayer,
			},
		}
	}
	return c, nil
}

// Weapon looks up a weapon by exact name. Returns rpgerr.CodeNotFound
// if absent.
func (c *Catalog) Weapon(name string) (equipment.Weapon, error) {
	w, ok := c.weapons[name]
	if !ok {
		return equipment.Weapon{}, rpgerr.New(rpgerr.CodeNotFound, "catalog: weapon not found",
			rpgerr.WithMeta("name", name))
	}
	return w, nil
}
