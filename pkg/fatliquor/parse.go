package fatliquor

import (
	"fmt"
	"strings"
)

// ParseFurniture maps a case-insensitive label to a Furniture value.
func ParseFurniture(s string) (Furniture, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "smooth":
		return FurnitureNone, nil
	case "pegs":
		return FurniturePegs, nil
	case "hybrid":
		return FurnitureHybrid, nil
	}
	return FurnitureNone, fmt.Errorf("fatliquor: unknown furniture %q", s)
}

// ParsePickle maps a case-insensitive label to a PickleStrategy.
func ParsePickle(s string) (PickleStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "equilibrium":
		return PickleEquilibrium, nil
	case "chaser", "chaser-core-heavy":
		return PickleChaser, nil
	}
	return PickleEquilibrium, fmt.Errorf("fatliquor: unknown pickle strategy %q", s)
}

// ParseDrying maps a case-insensitive label to a DryingMethod.
func ParseDrying(s string) (DryingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "air", "air drying", "air-drying":
		return AirDrying, nil
	case "vacuum", "partial vacuum", "partial-vacuum":
		return PartialVacuum, nil
	}
	return AirDrying, fmt.Errorf("fatliquor: unknown drying method %q", s)
}

// ParseClimate maps a case-insensitive label to a ClimateZone.
func ParseClimate(s string) (ClimateZone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "temperate":
		return Temperate, nil
	case "tropical":
		return Tropical, nil
	}
	return Temperate, fmt.Errorf("fatliquor: unknown climate zone %q", s)
}
