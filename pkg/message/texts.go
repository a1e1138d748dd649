package message

var english = map[string]string{
	KeyCPUMissing:         "No CPU selected",
	KeyMotherboardMissing: "No motherboard selected",
	KeyPSUMissing:         "No power supply selected",
	KeyCaseMissing:        "No case selected",
	KeyCoolerMissing:      "No CPU cooler selected",
	KeyGPUMissing:         "No graphics card selected",
	KeyRAMMissing:         "No memory selected",
	KeyStorageMissing:     "No storage device selected",
	KeyFansInsufficient:   "At least two case fans are required",

	KeyCoolerHeight:      "Cooler %[1]s is %[2]d mm tall, but case %[3]s only fits coolers up to %[4]d mm",
	KeyCPUSocket:         "CPU %[1]s uses socket %[2]s, but motherboard %[3]s provides socket %[4]s",
	KeyCoolerSocket:      "Cooler %[1]s cannot be mounted on socket %[3]s of CPU %[2]s",
	KeyCoolerDissipation: "Cooler %[1]s dissipates %[2]d W, less than the %[4]d W TDP of CPU %[3]s",
	KeyPSUPower:          "Power supply %[1]s delivers %[2]d W on the 12V rail, but %[3]d W are required",
	KeyGPULength:         "Graphics card %[1]s is %[2]d mm long, but case %[3]s only fits cards up to %[4]d mm",
	KeyCaseFormFactor:    "Case %[1]s does not fit motherboard %[2]s (%[3]s)",
	KeyRAMSlots:          "%[1]d memory modules selected, but motherboard %[2]s has only %[3]d slots",
	KeyRAMType:           "Memory %[1]s (%[2]s) is not supported by motherboard %[3]s",
	KeyFanPower:          "Motherboard %[1]s does not have enough fan headers for the selected fans",
	KeyStorageConnectors: "Motherboard %[1]s does not have enough storage connectors for the selected drives",
	KeyStoragePower:      "Power supply %[1]s does not have enough power connectors for the selected drives",
	KeyGPUPower:          "Power supply %[1]s cannot provide the power connectors required by graphics card %[2]s",
	KeyDriveBays:         "Case %[1]s does not have enough drive bays for the selected drives",
	KeyFanSizes:          "Case %[1]s does not have enough fan mounts for the selected fans",
	KeyMotherboardPower:  "Power supply %[1]s cannot provide the power connectors required by motherboard %[2]s",

	KeyPCIeGPULimited:     "Motherboard %[1]s (%[2]s) limits the bandwidth of graphics card %[3]s (%[4]s)",
	KeyPCIeSlotUnderused:  "Graphics card %[3]s (%[4]s) does not use the full bandwidth of motherboard %[1]s (%[2]s)",
	KeyPCIeMismatch:       "PCIe version %[2]s of motherboard %[1]s does not match %[4]s of graphics card %[3]s",
	KeyRAMMixedTypes:      "Memory kits of different types are combined: %[1]s",
	KeyRAMMixedClocks:     "Memory kits with different clocks are combined: %[1]s",
	KeyRAMAboveCPUClock:   "Memory %[1]s runs at %[2]d MHz, above the %[4]d MHz supported by CPU %[3]s",
	KeyRAMAboveBoardClock: "Memory %[1]s runs at %[2]d MHz, above the %[4]d MHz supported by motherboard %[3]s",
}

var german = map[string]string{
	KeyCPUMissing:         "Kein Prozessor ausgewählt",
	KeyMotherboardMissing: "Kein Mainboard ausgewählt",
	KeyPSUMissing:         "Kein Netzteil ausgewählt",
	KeyCaseMissing:        "Kein Gehäuse ausgewählt",
	KeyCoolerMissing:      "Kein CPU-Kühler ausgewählt",
	KeyGPUMissing:         "Keine Grafikkarte ausgewählt",
	KeyRAMMissing:         "Kein Arbeitsspeicher ausgewählt",
	KeyStorageMissing:     "Kein Massenspeicher ausgewählt",
	KeyFansInsufficient:   "Mindestens zwei Gehäuselüfter sind erforderlich",

	KeyCoolerHeight:      "Gehäuse %[3]s fasst Kühler bis %[4]d mm, Kühler %[1]s ist aber %[2]d mm hoch",
	KeyCPUSocket:         "Prozessor %[1]s benötigt Sockel %[2]s, Mainboard %[3]s bietet Sockel %[4]s",
	KeyCoolerSocket:      "Kühler %[1]s passt nicht auf Sockel %[3]s des Prozessors %[2]s",
	KeyCoolerDissipation: "Kühler %[1]s führt %[2]d W ab, weniger als die TDP von %[4]d W des Prozessors %[3]s",
	KeyPSUPower:          "Netzteil %[1]s liefert %[2]d W auf der 12V-Schiene, benötigt werden %[3]d W",
	KeyGPULength:         "Gehäuse %[3]s fasst Grafikkarten bis %[4]d mm, Grafikkarte %[1]s ist aber %[2]d mm lang",
	KeyCaseFormFactor:    "Mainboard %[2]s (%[3]s) passt nicht in Gehäuse %[1]s",
	KeyRAMSlots:          "%[1]d Speichermodule ausgewählt, Mainboard %[2]s hat nur %[3]d Steckplätze",
	KeyRAMType:           "Arbeitsspeicher %[1]s (%[2]s) wird von Mainboard %[3]s nicht unterstützt",
	KeyFanPower:          "Mainboard %[1]s hat nicht genug Lüfteranschlüsse für die ausgewählten Lüfter",
	KeyStorageConnectors: "Mainboard %[1]s hat nicht genug Laufwerksanschlüsse für die ausgewählten Laufwerke",
	KeyStoragePower:      "Netzteil %[1]s hat nicht genug Stromanschlüsse für die ausgewählten Laufwerke",
	KeyGPUPower:          "Netzteil %[1]s kann die Stromanschlüsse der Grafikkarte %[2]s nicht bereitstellen",
	KeyDriveBays:         "Gehäuse %[1]s hat nicht genug Laufwerksschächte für die ausgewählten Laufwerke",
	KeyFanSizes:          "Gehäuse %[1]s hat nicht genug Lüfterplätze für die ausgewählten Lüfter",
	KeyMotherboardPower:  "Netzteil %[1]s kann die Stromanschlüsse des Mainboards %[2]s nicht bereitstellen",

	KeyPCIeGPULimited:     "Mainboard %[1]s (%[2]s) begrenzt die Bandbreite der Grafikkarte %[3]s (%[4]s)",
	KeyPCIeSlotUnderused:  "Grafikkarte %[3]s (%[4]s) nutzt die Bandbreite des Mainboards %[1]s (%[2]s) nicht aus",
	KeyPCIeMismatch:       "PCIe-Version %[2]s des Mainboards %[1]s passt nicht zu %[4]s der Grafikkarte %[3]s",
	KeyRAMMixedTypes:      "Speicherkits unterschiedlicher Typen werden kombiniert: %[1]s",
	KeyRAMMixedClocks:     "Speicherkits mit unterschiedlichem Takt werden kombiniert: %[1]s",
	KeyRAMAboveCPUClock:   "Arbeitsspeicher %[1]s läuft mit %[2]d MHz, Prozessor %[3]s unterstützt nur %[4]d MHz",
	KeyRAMAboveBoardClock: "Arbeitsspeicher %[1]s läuft mit %[2]d MHz, Mainboard %[3]s unterstützt nur %[4]d MHz",
}
