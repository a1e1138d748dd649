package store

import "github.com/rigcheck/rigcheck/pkg/catalog"

// Document is the on-disk form of a store: catalog items, component
// records referring to items by ID, and builds referring to components by
// ID.
type Document struct {
	Items        []catalog.Item    `yaml:"items" validate:"dive"`
	CPUs         []CPUSpec         `yaml:"cpus" validate:"dive"`
	Chipsets     []ChipsetSpec     `yaml:"chipsets" validate:"dive"`
	Motherboards []MotherboardSpec `yaml:"motherboards" validate:"dive"`
	PSUs         []PSUSpec         `yaml:"psus" validate:"dive"`
	Cases        []CaseSpec        `yaml:"cases" validate:"dive"`
	Coolers      []CoolerSpec      `yaml:"coolers" validate:"dive"`
	GPUs         []GPUSpec         `yaml:"gpus" validate:"dive"`
	Fans         []FanSpec         `yaml:"fans" validate:"dive"`
	RAM          []RAMSpec         `yaml:"ram" validate:"dive"`
	Drives       []DriveSpec       `yaml:"drives" validate:"dive"`
	Builds       []BuildSpec       `yaml:"builds" validate:"dive"`
}

// CountSpec is an item reference with a quantity.
type CountSpec struct {
	Item     string `yaml:"item" validate:"required"`
	Quantity int    `yaml:"quantity" validate:"min=1"`
}

type CPUSpec struct {
	ID             string `yaml:"id" validate:"required"`
	Name           string `yaml:"name" validate:"required"`
	Socket         string `yaml:"socket"`
	TDP            int    `yaml:"tdp" validate:"min=0"`
	MaxMemoryClock int    `yaml:"maxMemoryClock" validate:"min=0"`
}

type ChipsetSpec struct {
	ID     string `yaml:"id" validate:"required"`
	Name   string `yaml:"name" validate:"required"`
	Socket string `yaml:"socket"`
}

type MotherboardSpec struct {
	ID                string      `yaml:"id" validate:"required"`
	Name              string      `yaml:"name" validate:"required"`
	Chipset           string      `yaml:"chipset"`
	FormFactor        string      `yaml:"formFactor"`
	MemoryType        string      `yaml:"memoryType"`
	RAMSlots          int         `yaml:"ramSlots" validate:"min=0"`
	MaxMemoryClock    int         `yaml:"maxMemoryClock" validate:"min=0"`
	PCIeVersion       string      `yaml:"pcieVersion"`
	StorageConnectors []CountSpec `yaml:"storageConnectors" validate:"dive"`
	FanHeaders        []CountSpec `yaml:"fanHeaders" validate:"dive"`
	PowerConnectors   []CountSpec `yaml:"powerConnectors" validate:"dive"`
}

type PSUSpec struct {
	ID         string      `yaml:"id" validate:"required"`
	Name       string      `yaml:"name" validate:"required"`
	Power12V   int         `yaml:"power12v" validate:"min=0"`
	Connectors []CountSpec `yaml:"connectors" validate:"dive"`
}

type CaseSpec struct {
	ID                     string      `yaml:"id" validate:"required"`
	Name                   string      `yaml:"name" validate:"required"`
	MaxCoolerHeight        int         `yaml:"maxCoolerHeight" validate:"min=0"`
	MaxGPULength           int         `yaml:"maxGpuLength" validate:"min=0"`
	MotherboardFormFactors []string    `yaml:"motherboardFormFactors"`
	DriveBays              []CountSpec `yaml:"driveBays" validate:"dive"`
	FanMounts              []CountSpec `yaml:"fanMounts" validate:"dive"`
}

type CoolerSpec struct {
	ID           string   `yaml:"id" validate:"required"`
	Name         string   `yaml:"name" validate:"required"`
	Height       int      `yaml:"height" validate:"min=0"`
	Dissipation  int      `yaml:"dissipation" validate:"min=0"`
	Sockets      []string `yaml:"sockets"`
	FanConnector string   `yaml:"fanConnector"`
}

type GPUSpec struct {
	ID              string      `yaml:"id" validate:"required"`
	Name            string      `yaml:"name" validate:"required"`
	PowerDraw       int         `yaml:"powerDraw" validate:"min=0"`
	Length          int         `yaml:"length" validate:"min=0"`
	PCIeVersion     string      `yaml:"pcieVersion"`
	PowerConnectors []CountSpec `yaml:"powerConnectors" validate:"dive"`
}

type FanSpec struct {
	ID        string `yaml:"id" validate:"required"`
	Name      string `yaml:"name" validate:"required"`
	Size      string `yaml:"size"`
	Connector string `yaml:"connector"`
}

type RAMSpec struct {
	ID         string `yaml:"id" validate:"required"`
	Name       string `yaml:"name" validate:"required"`
	MemoryType string `yaml:"memoryType"`
	Clock      int    `yaml:"clock" validate:"min=0"`
	Modules    int    `yaml:"modules" validate:"min=0"`
}

type DriveSpec struct {
	ID             string `yaml:"id" validate:"required"`
	Name           string `yaml:"name" validate:"required"`
	Interface      string `yaml:"interface"`
	PowerConnector string `yaml:"powerConnector"`
	Bay            string `yaml:"bay"`
}

// EntrySpec references a component by ID with a quantity.
type EntrySpec struct {
	ID       string `yaml:"id" validate:"required"`
	Quantity int    `yaml:"quantity" validate:"min=1"`
}

// BuildSpec is a build whose slots reference components by ID. Empty
// single-slot references leave the slot unselected.
type BuildSpec struct {
	ID          string      `yaml:"id" validate:"required"`
	Name        string      `yaml:"name"`
	CPU         string      `yaml:"cpu"`
	Motherboard string      `yaml:"motherboard"`
	PSU         string      `yaml:"psu"`
	Case        string      `yaml:"case"`
	Cooler      string      `yaml:"cooler"`
	GPU         string      `yaml:"gpu"`
	Fans        []EntrySpec `yaml:"fans" validate:"dive"`
	RAM         []EntrySpec `yaml:"ram" validate:"dive"`
	HDDs        []EntrySpec `yaml:"hdds" validate:"dive"`
	SSDs        []EntrySpec `yaml:"ssds" validate:"dive"`
}
