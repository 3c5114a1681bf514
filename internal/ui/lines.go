// Package ui builds the status panel shown next to a running simulation.
package ui

import (
	"fmt"
	"strings"

	"cellgen/internal/core"
)

type generationer interface {
	Generation() int
}

type populator interface {
	Population() int
}

// Title returns the panel heading for sim.
func Title(sim core.Sim) string {
	name := sim.Name()
	if name == "" {
		return "Status"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Lines renders the sim's progress and parameters as panel rows. Parameter
// groups start with a "[name]" row followed by their summary, if any;
// parameters are indented "label: value" with their description one level
// deeper.
func Lines(sim core.Sim) []string {
	var out []string
	if g, ok := sim.(generationer); ok {
		out = append(out, fmt.Sprintf("generation: %d", g.Generation()))
	}
	if p, ok := sim.(populator); ok {
		out = append(out, fmt.Sprintf("population: %d", p.Population()))
	}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return out
	}
	for _, group := range provider.Parameters().Groups {
		out = append(out, "["+group.Name+"]")
		if group.Summary != "" {
			out = append(out, "  "+group.Summary)
		}
		for _, p := range group.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			out = append(out, fmt.Sprintf("  %s: %s", label, p.Value))
			if p.Description != "" {
				out = append(out, "    "+p.Description)
			}
		}
	}
	return out
}
