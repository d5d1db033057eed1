package derive

import (
	"encoding/json"
	"testing"

	"helio_sync/internal/domain/entities"
)

func TestExtractEquipment(t *testing.T) {
	t.Run("all component types", func(t *testing.T) {
		components := []entities.ComponentLine{
			{ComponentType: entities.ComponentTypeModules, Name: "Q.PEAK DUO BLK ML-G10+ 400", Quantity: 33, Price: 9900},
			{ComponentType: entities.ComponentTypeInverters, Name: "IQ8PLUS-72-2-US", Quantity: 33, Price: 4200},
			{ComponentType: entities.ComponentTypeDCOptimizers, Name: "P401", Quantity: 33, Price: 1650},
			{ComponentType: entities.ComponentTypeBatteries, Name: "Powerwall 3", Quantity: 2, Price: 18500.5},
		}
		e := ExtractEquipment(components)

		if e.ModuleModel != "Q.PEAK DUO BLK ML-G10+ 400" || e.ModuleCount != 33 {
			t.Fatalf("unexpected module capture: %+v", e)
		}
		if e.InverterModel != "IQ8PLUS-72-2-US" || e.InverterCount != 33 {
			t.Fatalf("unexpected inverter capture: %+v", e)
		}
		if e.OptimizerCount != 33 {
			t.Fatalf("expected optimizer count 33, got %d", e.OptimizerCount)
		}
		if e.BatteryModel != "Powerwall 3" || e.BatteryCount != 2 || e.BatteryBasePrice != 18500.5 {
			t.Fatalf("unexpected battery capture: %+v", e)
		}
	})

	t.Run("repeat component type last one wins", func(t *testing.T) {
		components := []entities.ComponentLine{
			{ComponentType: entities.ComponentTypeModules, Name: "Model A", Quantity: 10},
			{ComponentType: entities.ComponentTypeModules, Name: "Model B", Quantity: 20},
		}
		e := ExtractEquipment(components)
		if e.ModuleModel != "Model B" || e.ModuleCount != 20 {
			t.Fatalf("expected last module line, got %+v", e)
		}
	})

	t.Run("fractional quantity truncates", func(t *testing.T) {
		components := []entities.ComponentLine{
			{ComponentType: entities.ComponentTypeInverters, Name: "X", Quantity: 2.9},
		}
		e := ExtractEquipment(components)
		if e.InverterCount != 2 {
			t.Fatalf("expected 2, got %d", e.InverterCount)
		}
	})

	t.Run("unparsable quantity defaults to zero", func(t *testing.T) {
		var line entities.ComponentLine
		if err := json.Unmarshal([]byte(`{"component_type":"modules","name":"Model A","quantity":"n/a"}`), &line); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		e := ExtractEquipment([]entities.ComponentLine{line})
		if e.ModuleCount != 0 || e.ModuleModel != "Model A" {
			t.Fatalf("expected zero count with model kept, got %+v", e)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if e := ExtractEquipment(nil); e != (Equipment{}) {
			t.Fatalf("expected zero equipment, got %+v", e)
		}
	})
}
