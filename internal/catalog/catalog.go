// Package catalog holds the static BOQ breakdown catalogue: every known
// BOQ code with its sub-activity decomposition, plus the quantity rules
// that size each sub-activity. Catalogue data is validated once at load
// time and is read-only afterwards, so a single catalogue may be shared
// across solves without synchronisation.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/omarzaki/boqplan/internal/domain"
)

// Catalogue is an immutable set of validated breakdowns plus the quantity
// rules used to resolve per-sub-activity quantities.
type Catalogue struct {
	entries map[string]*domain.Breakdown
	codes   []string
	rules   QuantityRules
}

// New builds a catalogue from the given breakdowns and rules, running the
// full load-time validation: unique BOQ codes, unique sub-activity codes
// per breakdown, no dangling logic-link predecessors, positive
// productivity rates, and acyclic precedence graphs. Any violation fails
// with domain.ErrCatalogueInvalid carrying every finding.
func New(breakdowns []domain.Breakdown, rules QuantityRules) (*Catalogue, error) {
	c := &Catalogue{
		entries: make(map[string]*domain.Breakdown, len(breakdowns)),
		rules:   rules,
	}

	var errs []error
	for i := range breakdowns {
		b := &breakdowns[i]
		if _, dup := c.entries[b.BOQCode]; dup {
			errs = append(errs, fmt.Errorf("duplicate boq code %s", b.BOQCode))
			continue
		}
		errs = append(errs, validateBreakdown(b)...)
		c.entries[b.BOQCode] = b
		c.codes = append(c.codes, b.BOQCode)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogueInvalid, errors.Join(errs...))
	}

	sort.Strings(c.codes)
	return c, nil
}

// ListCodes returns all known BOQ codes in stable (sorted) order.
func (c *Catalogue) ListCodes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Get returns the breakdown for the given BOQ code, or
// domain.ErrNotFound when the code is unknown.
func (c *Catalogue) Get(code string) (*domain.Breakdown, error) {
	b, ok := c.entries[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}
	return b, nil
}

// Rules returns the catalogue's quantity rules.
func (c *Catalogue) Rules() QuantityRules {
	return c.rules
}

func validateBreakdown(b *domain.Breakdown) []error {
	var errs []error

	if b.TotalQuantity <= 0 {
		errs = append(errs, fmt.Errorf("%s: total quantity must be positive, got %g", b.BOQCode, b.TotalQuantity))
	}

	subs := make(map[string]bool, len(b.SubActivities))
	for i := range b.SubActivities {
		sub := &b.SubActivities[i]
		if subs[sub.Code] {
			errs = append(errs, fmt.Errorf("%s: duplicate sub-activity code %s", b.BOQCode, sub.Code))
		}
		subs[sub.Code] = true

		if sub.Productivity.RatePerDay <= 0 {
			errs = append(errs, fmt.Errorf("%s/%s: productivity rate must be positive, got %g",
				b.BOQCode, sub.Code, sub.Productivity.RatePerDay))
		}
		if sub.AdditionalBuffer < 0 {
			errs = append(errs, fmt.Errorf("%s/%s: additional risk buffer must not be negative",
				b.BOQCode, sub.Code))
		}
		for _, link := range sub.Links {
			if !domain.ValidLogicTypes[link.Type] {
				errs = append(errs, fmt.Errorf("%s/%s: unknown logic type %q", b.BOQCode, sub.Code, link.Type))
			}
		}
	}

	// Dangling predecessors are checked against the full sub set, not
	// insertion order, so forward references are allowed.
	for i := range b.SubActivities {
		sub := &b.SubActivities[i]
		for _, link := range sub.Links {
			if !subs[link.Predecessor] {
				errs = append(errs, fmt.Errorf("%s/%s: logic link references unknown predecessor %s",
					b.BOQCode, sub.Code, link.Predecessor))
			}
		}
	}

	if cycle := findCycle(b); cycle != "" {
		errs = append(errs, fmt.Errorf("%s: precedence cycle %s", b.BOQCode, cycle))
	}

	return errs
}

// findCycle runs a visited/on-stack DFS over the logic links and returns
// a printable cycle such as "A -> B -> A", or "" when the graph is acyclic.
func findCycle(b *domain.Breakdown) string {
	succ := make(map[string][]string)
	for i := range b.SubActivities {
		sub := &b.SubActivities[i]
		for _, link := range sub.Links {
			succ[link.Predecessor] = append(succ[link.Predecessor], sub.Code)
		}
	}

	const (
		white = 0
		grey  = 1
		black = 2
	)
	state := make(map[string]int)
	var stack []string
	var cycle []string

	var visit func(code string) bool
	visit = func(code string) bool {
		state[code] = grey
		stack = append(stack, code)
		for _, next := range succ[code] {
			switch state[next] {
			case grey:
				// Back edge: slice the stack from the first occurrence.
				for i, c := range stack {
					if c == next {
						cycle = append(append([]string{}, stack[i:]...), next)
						return true
					}
				}
			case white:
				if visit(next) {
					return true
				}
			}
		}
		state[code] = black
		stack = stack[:len(stack)-1]
		return false
	}

	for i := range b.SubActivities {
		code := b.SubActivities[i].Code
		if state[code] == white && visit(code) {
			out := ""
			for i, c := range cycle {
				if i > 0 {
					out += " -> "
				}
				out += c
			}
			return out
		}
	}
	return ""
}
