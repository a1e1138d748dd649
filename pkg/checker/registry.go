package checker

// Defaults returns the built-in rules in priority order.
// A new slice is returned on every call.
func Defaults() []Checker {
	checkers := make([]Checker, 0, 32)
	checkers = append(checkers, CompletenessCheckers()...)
	checkers = append(checkers, CompatibilityCheckers()...)
	checkers = append(checkers, OptimalityCheckers()...)
	Sort(checkers)
	return checkers
}

// CompletenessCheckers returns the completeness family.
func CompletenessCheckers() []Checker {
	return []Checker{
		NewCompleteness("cpu-selected", 100, cpuSelected),
		NewCompleteness("motherboard-selected", 110, motherboardSelected),
		NewCompleteness("psu-selected", 120, psuSelected),
		NewCompleteness("case-selected", 130, caseSelected),
		NewCompleteness("cooler-selected", 140, coolerSelected),
		NewCompleteness("gpu-selected", 150, gpuSelected),
		NewCompleteness("ram-selected", 160, ramSelected),
		NewCompleteness("storage-selected", 170, storageSelected),
		NewCompleteness("fans-selected", 180, fansSelected),
	}
}

// CompatibilityCheckers returns the compatibility family.
func CompatibilityCheckers() []Checker {
	return []Checker{
		NewCompatibility("cpu-socket", 200, cpuSocket),
		NewCompatibility("cooler-socket", 210, coolerSocket),
		NewCompatibility("cooler-dissipation", 220, coolerDissipation),
		NewCompatibility("cooler-height", 230, coolerHeight),
		NewCompatibility("psu-power", 240, psuPower),
		NewCompatibility("gpu-length", 250, gpuLength),
		NewCompatibility("case-form-factor", 260, caseFormFactor),
		NewCompatibility("ram-slots", 270, ramSlots),
		NewCompatibility("ram-type", 280, ramType),
		NewCompatibility("motherboard-power", 300, motherboardPower),
		NewCompatibility("gpu-power", 310, gpuPower),
		NewCompatibility("storage-power", 320, storagePower),
		NewCompatibility("storage-connectors", 330, storageConnectors),
		NewCompatibility("fan-power", 340, fanPower),
		NewCompatibility("drive-bays", 350, driveBays),
		NewCompatibility("fan-sizes", 360, fanSizes),
	}
}

// OptimalityCheckers returns the optimality family.
func OptimalityCheckers() []Checker {
	return []Checker{
		NewOptimality("pcie-version", 400, pcieVersion),
		NewOptimality("ram-mixed-types", 410, ramMixedTypes),
		NewOptimality("ram-mixed-clocks", 420, ramMixedClocks),
		NewOptimality("ram-cpu-clock", 430, ramAboveCPUClock),
		NewOptimality("ram-motherboard-clock", 440, ramAboveBoardClock),
	}
}
