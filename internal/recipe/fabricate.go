// Package recipe parses Fabricate and Deconstruct sub-trees.
package recipe

import (
	"fmt"
	"strings"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

// Resolve parses one Fabricate node. ok is false when the node only describes
// a vending machine entry, which is not a player recipe.
func Resolve(fab *node.Node) (r domain.Recipe, ok bool, err error) {
	if !fab.IsTag(domain.TagFabricate) {
		return domain.Recipe{}, false, fmt.Errorf(ErrFmtWrongTag, domain.ErrStructuralMismatch, domain.TagFabricate, tagOf(fab))
	}

	machine, craftable := suitableMachine(fab.String(AttrSuitableFabricators, domain.DefaultFabricator))
	if !craftable {
		return domain.Recipe{}, false, nil
	}

	output, err := fab.IntOr(AttrAmount, 1)
	if err != nil {
		return domain.Recipe{}, false, err
	}
	seconds, err := fab.FloatOr(AttrRequiredTime, domain.DefaultFabricationTime)
	if err != nil {
		return domain.Recipe{}, false, err
	}
	money, err := fab.IntOr(AttrRequiredMoney, 0)
	if err != nil {
		return domain.Recipe{}, false, err
	}

	required, err := sumByIdentifier(fab.ChildrenByTag(domain.TagRequiredItem), ErrFmtRequiredItemEntry)
	if err != nil {
		return domain.Recipe{}, false, err
	}

	skills := make(map[string]int)
	for _, s := range fab.ChildrenByTag(domain.TagRequiredSkill) {
		id, hasID := s.Attr(AttrIdentifier)
		if !hasID {
			continue
		}
		level, hasLevel, err := s.Int(AttrLevel)
		if err != nil {
			return domain.Recipe{}, false, fmt.Errorf(ErrFmtSkillEntry, id, err)
		}
		if !hasLevel {
			continue
		}
		skills[id] = level
	}

	return domain.Recipe{
		Required:      required,
		Output:        output,
		Machine:       machine,
		Time:          seconds,
		Skills:        skills,
		RequiredMoney: money,
	}, true, nil
}

// ResolveAll parses Fabricate nodes in source order. A node that fails to parse is
// left out and its error returned alongside the recipes that did resolve.
func ResolveAll(fabs []*node.Node) ([]domain.Recipe, []error) {
	recipes := make([]domain.Recipe, 0, len(fabs))
	var errs []error
	for i, fab := range fabs {
		r, ok, err := Resolve(fab)
		if err != nil {
			errs = append(errs, fmt.Errorf(ErrFmtRecipeAtIndex, i, err))
			continue
		}
		if ok {
			recipes = append(recipes, r)
		}
	}
	return recipes, errs
}

// suitableMachine drops vending machines from a comma separated fabricator list.
func suitableMachine(list string) (string, bool) {
	var keep []string
	for _, m := range strings.Split(list, ",") {
		m = strings.TrimSpace(m)
		if m == "" || strings.EqualFold(m, domain.VendingMachine) {
			continue
		}
		keep = append(keep, m)
	}
	if len(keep) == 0 {
		return "", false
	}
	return strings.Join(keep, ","), true
}

// sumByIdentifier groups entries by identifier and sums their amounts (default 1).
// Entries without an identifier are skipped.
func sumByIdentifier(entries []*node.Node, errFmt string) (map[string]int, error) {
	out := make(map[string]int, len(entries))
	for _, e := range entries {
		id, ok := e.Attr(AttrIdentifier)
		if !ok {
			continue
		}
		amount, err := e.IntOr(AttrAmount, 1)
		if err != nil {
			return nil, fmt.Errorf(errFmt, id, err)
		}
		out[id] += amount
	}
	return out, nil
}

func tagOf(n *node.Node) string {
	if n == nil {
		return ""
	}
	return n.Tag
}
