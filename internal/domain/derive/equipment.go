package derive

import "helio_sync/internal/domain/entities"

// Equipment is the module/inverter/optimizer/battery summary pulled from
// pricing_by_component. Repeated component types overwrite, last one wins.
type Equipment struct {
	ModuleModel      string
	ModuleCount      int
	InverterModel    string
	InverterCount    int
	OptimizerCount   int
	BatteryModel     string
	BatteryCount     int
	BatteryBasePrice float64
}

// ExtractEquipment folds the per-component pricing list. Quantities are
// parsed as floats then truncated to whole units, 0 on any parse failure.
func ExtractEquipment(components []entities.ComponentLine) Equipment {
	var e Equipment
	for _, line := range components {
		count := int(line.Quantity.Float())
		switch line.ComponentType {
		case entities.ComponentTypeModules:
			e.ModuleModel = line.Name
			e.ModuleCount = count
		case entities.ComponentTypeInverters:
			e.InverterModel = line.Name
			e.InverterCount = count
		case entities.ComponentTypeDCOptimizers:
			e.OptimizerCount = count
		case entities.ComponentTypeBatteries:
			e.BatteryModel = line.Name
			e.BatteryCount = count
			e.BatteryBasePrice = line.Price.Float()
		}
	}
	return e
}
