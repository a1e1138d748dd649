package message

// Message keys. Checkers report a key plus positional arguments; the text is
// looked up here.
const (
	KeyCPUMissing         = "completeness.cpu.missing"
	KeyMotherboardMissing = "completeness.motherboard.missing"
	KeyPSUMissing         = "completeness.psu.missing"
	KeyCaseMissing        = "completeness.case.missing"
	KeyCoolerMissing      = "completeness.cooler.missing"
	KeyGPUMissing         = "completeness.gpu.missing"
	KeyRAMMissing         = "completeness.ram.missing"
	KeyStorageMissing     = "completeness.storage.missing"
	KeyFansInsufficient   = "completeness.fans.insufficient"

	KeyCoolerHeight      = "compatibility.cooler.height"
	KeyCPUSocket         = "compatibility.cpu.socket"
	KeyCoolerSocket      = "compatibility.cooler.socket"
	KeyCoolerDissipation = "compatibility.cooler.dissipation"
	KeyPSUPower          = "compatibility.psu.power"
	KeyGPULength         = "compatibility.gpu.length"
	KeyCaseFormFactor    = "compatibility.case.form-factor"
	KeyRAMSlots          = "compatibility.ram.slots"
	KeyRAMType           = "compatibility.ram.type"
	KeyFanPower          = "compatibility.fan.power"
	KeyStorageConnectors = "compatibility.storage.connectors"
	KeyStoragePower      = "compatibility.storage.power"
	KeyGPUPower          = "compatibility.gpu.power"
	KeyDriveBays         = "compatibility.case.bays"
	KeyFanSizes          = "compatibility.case.fans"
	KeyMotherboardPower  = "compatibility.motherboard.power"

	KeyPCIeGPULimited     = "optimality.pcie.gpu-limited"
	KeyPCIeSlotUnderused  = "optimality.pcie.slot-underused"
	KeyPCIeMismatch       = "optimality.pcie.mismatch"
	KeyRAMMixedTypes      = "optimality.ram.mixed-types"
	KeyRAMMixedClocks     = "optimality.ram.mixed-clocks"
	KeyRAMAboveCPUClock   = "optimality.ram.cpu-clock"
	KeyRAMAboveBoardClock = "optimality.ram.motherboard-clock"
)
