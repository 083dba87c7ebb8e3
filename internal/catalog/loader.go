package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/omarzaki/boqplan/internal/domain"
)

// YAML schema for caller-supplied catalogue files. The on-disk format is
// caller-owned; the engine only ever sees the validated Catalogue that
// comes out of New.

type catalogueFile struct {
	Breakdowns []breakdownYAML `yaml:"breakdowns"`
	Rules      []ruleYAML      `yaml:"rules"`
}

type breakdownYAML struct {
	BOQCode       string            `yaml:"boq_code"`
	Description   string            `yaml:"description"`
	TotalQuantity float64           `yaml:"total_quantity"`
	Unit          string            `yaml:"unit"`
	Category      string            `yaml:"category"`
	SubActivities []subActivityYAML `yaml:"sub_activities"`
}

type subActivityYAML struct {
	Code             string     `yaml:"code"`
	Name             string     `yaml:"name"`
	Unit             string     `yaml:"unit"`
	RatePerDay       float64    `yaml:"rate_per_day"`
	RateUnit         string     `yaml:"rate_unit"`
	Crew             crewYAML   `yaml:"crew"`
	Type             string     `yaml:"type"`
	AdditionalBuffer float64    `yaml:"additional_buffer"`
	Links            []linkYAML `yaml:"links"`
	Remarks          string     `yaml:"remarks"`
}

type crewYAML struct {
	Skilled    int    `yaml:"skilled"`
	Helpers    int    `yaml:"helpers"`
	Equipment  string `yaml:"equipment"`
	Supervisor bool   `yaml:"supervisor"`
}

type linkYAML struct {
	Type        string  `yaml:"type"`
	Predecessor string  `yaml:"predecessor"`
	LagDays     float64 `yaml:"lag_days"`
}

type ruleYAML struct {
	Category string  `yaml:"category"`
	Unit     string  `yaml:"unit"`
	Factor   float64 `yaml:"factor"`
}

// LoadFile reads a YAML catalogue file and returns a validated Catalogue.
// Rules in the file are merged over the embedded defaults, so a file only
// needs to declare the (category, unit) pairs it introduces.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue file: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated Catalogue from YAML bytes.
func Parse(data []byte) (*Catalogue, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalogue file: %w", err)
	}

	breakdowns := make([]domain.Breakdown, 0, len(file.Breakdowns))
	for _, by := range file.Breakdowns {
		breakdowns = append(breakdowns, convertBreakdown(by))
	}

	overrides := make(QuantityRules, len(file.Rules))
	for _, r := range file.Rules {
		overrides[RuleKey{Category: r.Category, Unit: r.Unit}] = r.Factor
	}

	return New(breakdowns, DefaultRules().Merge(overrides))
}

func convertBreakdown(by breakdownYAML) domain.Breakdown {
	b := domain.Breakdown{
		BOQCode:       by.BOQCode,
		Description:   by.Description,
		TotalQuantity: by.TotalQuantity,
		Unit:          by.Unit,
		Category:      by.Category,
	}
	for _, sy := range by.SubActivities {
		sub := domain.SubActivity{
			Code: sy.Code,
			Name: sy.Name,
			Unit: sy.Unit,
			Productivity: domain.ProductivityRate{
				RatePerDay: sy.RatePerDay,
				Unit:       sy.RateUnit,
				Crew: domain.Crew{
					SkilledWorkers: sy.Crew.Skilled,
					Helpers:        sy.Crew.Helpers,
					Equipment:      sy.Crew.Equipment,
					Supervisor:     sy.Crew.Supervisor,
				},
			},
			Type:             domain.ActivityType(sy.Type),
			AdditionalBuffer: sy.AdditionalBuffer,
			Remarks:          sy.Remarks,
		}
		if sub.Type == "" {
			sub.Type = domain.ActivityNormal
		}
		for _, ly := range sy.Links {
			sub.Links = append(sub.Links, domain.LogicLink{
				Type:        domain.LogicType(ly.Type),
				Predecessor: ly.Predecessor,
				LagDays:     ly.LagDays,
			})
		}
		b.SubActivities = append(b.SubActivities, sub)
	}
	return b
}
