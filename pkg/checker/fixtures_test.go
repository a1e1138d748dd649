package checker

import (
	"github.com/rigcheck/rigcheck/pkg/build"
	"github.com/rigcheck/rigcheck/pkg/catalog"
)

func item(kind catalog.Kind, id, name string, compatibleWith ...string) *catalog.Item {
	return &catalog.Item{ID: id, Kind: kind, Name: name, CompatibleWith: compatibleWith}
}

var (
	am5     = item(catalog.KindSocket, "am5", "AM5")
	lga1700 = item(catalog.KindSocket, "lga1700", "LGA1700")

	atx  = item(catalog.KindFormFactor, "atx", "ATX", "matx")
	matx = item(catalog.KindFormFactor, "matx", "Micro-ATX")

	ddr4 = item(catalog.KindMemoryType, "ddr4", "DDR4")
	ddr5 = item(catalog.KindMemoryType, "ddr5", "DDR5")

	pcie3 = item(catalog.KindPCIeVersion, "pcie-3", "PCIe 3.0")
	pcie4 = item(catalog.KindPCIeVersion, "pcie-4", "PCIe 4.0", "pcie-3")
	pcie5 = item(catalog.KindPCIeVersion, "pcie-5", "PCIe 5.0", "pcie-4", "pcie-3")

	sata2  = item(catalog.KindStorageConnector, "sata-2", "SATA II")
	sata3  = item(catalog.KindStorageConnector, "sata-3", "SATA III", "sata-2")
	m2NVMe = item(catalog.KindStorageConnector, "m2-nvme", "M.2 NVMe")

	atx24     = item(catalog.KindPowerConnector, "atx-24", "ATX 24-pin")
	eps8      = item(catalog.KindPowerConnector, "eps-8", "EPS 8-pin")
	pcie8     = item(catalog.KindPowerConnector, "pcie-8", "PCIe 8-pin")
	pcie6     = item(catalog.KindPowerConnector, "pcie-6", "PCIe 6-pin")
	pcie62    = item(catalog.KindPowerConnector, "pcie-6+2", "PCIe 6+2-pin", "pcie-8", "pcie-6")
	sataPower = item(catalog.KindPowerConnector, "sata-power", "SATA power")

	fan4pin = item(catalog.KindFanConnector, "fan-4pin", "4-pin PWM", "fan-3pin")
	fan3pin = item(catalog.KindFanConnector, "fan-3pin", "3-pin DC")

	fan120 = item(catalog.KindFanSize, "fan-120", "120 mm")
	fan140 = item(catalog.KindFanSize, "fan-140", "140 mm", "fan-120")

	bay35 = item(catalog.KindDriveBay, "bay-35", "3.5\"", "bay-25")
	bay25 = item(catalog.KindDriveBay, "bay-25", "2.5\"")
)

func count(it *catalog.Item, q int) catalog.Count {
	return catalog.Count{Item: it, Quantity: q}
}

// validBuild returns a fresh complete build that passes every default rule.
func validBuild() *build.Build {
	return &build.Build{
		ID:   "valid",
		Name: "Valid build",
		CPU: &build.CPU{
			ID: "r7-7700x", Name: "Ryzen 7 7700X", Socket: am5, TDP: 105, MaxMemoryClock: 5200,
		},
		Motherboard: &build.Motherboard{
			ID:             "b650",
			Name:           "B650 Tomahawk",
			Chipset:        &build.Chipset{ID: "b650", Name: "B650", Socket: am5},
			FormFactor:     atx,
			MemoryType:     ddr5,
			RAMSlots:       4,
			MaxMemoryClock: 6000,
			PCIeVersion:    pcie4,
			StorageConnectors: []catalog.Count{
				count(sata3, 4), count(m2NVMe, 2),
			},
			FanHeaders:      []catalog.Count{count(fan4pin, 4)},
			PowerConnectors: []catalog.Count{count(atx24, 1), count(eps8, 1)},
		},
		PSU: &build.PSU{
			ID: "rm750", Name: "RM750", Power12V: 744,
			Connectors: []catalog.Count{
				count(atx24, 1), count(eps8, 2), count(pcie62, 4), count(sataPower, 6),
			},
		},
		Case: &build.Case{
			ID: "meshify", Name: "Meshify 2", MaxCoolerHeight: 165, MaxGPULength: 360,
			MotherboardFormFactors: []*catalog.Item{atx},
			DriveBays:              []catalog.Count{count(bay35, 2), count(bay25, 2)},
			FanMounts:              []catalog.Count{count(fan140, 3), count(fan120, 4)},
		},
		Cooler: &build.Cooler{
			ID: "ak620", Name: "AK620", Height: 158, Dissipation: 220,
			Sockets: []*catalog.Item{am5, lga1700}, FanConnector: fan4pin,
		},
		GPU: &build.GPU{
			ID: "rtx4070", Name: "RTX 4070", PowerDraw: 200, Length: 300, PCIeVersion: pcie4,
			PowerConnectors: []catalog.Count{count(pcie8, 2)},
		},
		Fans: []build.Entry[build.Fan]{
			{Component: &build.Fan{ID: "p12", Name: "P12", Size: fan120, Connector: fan4pin}, Quantity: 3},
		},
		RAM: []build.Entry[build.RAM]{
			{Component: &build.RAM{ID: "ddr5-5200", Name: "Vengeance DDR5-5200", MemoryType: ddr5, Clock: 5200, Modules: 2}, Quantity: 1},
		},
		HDDs: []build.Entry[build.Drive]{
			{Component: &build.Drive{ID: "wd4", Name: "WD Blue 4TB", Interface: sata3, PowerConnector: sataPower, Bay: bay35}, Quantity: 1},
		},
		SSDs: []build.Entry[build.Drive]{
			{Component: &build.Drive{ID: "980pro", Name: "980 PRO", Interface: m2NVMe}, Quantity: 1},
		},
	}
}

// slotRemovals clears one slot of a build each.
var slotRemovals = map[string]func(*build.Build){
	"cpu":         func(b *build.Build) { b.CPU = nil },
	"motherboard": func(b *build.Build) { b.Motherboard = nil },
	"psu":         func(b *build.Build) { b.PSU = nil },
	"case":        func(b *build.Build) { b.Case = nil },
	"cooler":      func(b *build.Build) { b.Cooler = nil },
	"gpu":         func(b *build.Build) { b.GPU = nil },
	"fans":        func(b *build.Build) { b.Fans = nil },
	"ram":         func(b *build.Build) { b.RAM = nil },
	"hdds":        func(b *build.Build) { b.HDDs = nil },
	"ssds":        func(b *build.Build) { b.SSDs = nil },
}
