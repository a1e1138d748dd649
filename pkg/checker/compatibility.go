package checker

import (
	"math"

	"github.com/rigcheck/rigcheck/pkg/build"
	"github.com/rigcheck/rigcheck/pkg/message"
)

// PSUHeadroom is the factor applied to CPU TDP plus GPU draw when sizing
// the 12V rail.
const PSUHeadroom = 1.5

// RequiredPower returns the 12V rail capacity needed for a CPU TDP and a
// GPU power draw, rounded up to the next watt.
func RequiredPower(tdp, gpuDraw int) int {
	return int(math.Ceil(PSUHeadroom * float64(tdp+gpuDraw)))
}

func cpuSocket(b *build.Build) *Finding {
	if b.CPU == nil || b.Motherboard == nil || b.Motherboard.Chipset == nil {
		return nil
	}
	cpu, board := b.CPU, b.Motherboard
	if cpu.Socket == nil || board.Chipset.Socket == nil || cpu.Socket.Is(board.Chipset.Socket) {
		return nil
	}
	return finding(message.KeyCPUSocket, cpu.Name, cpu.Socket.String(), board.Name, board.Chipset.Socket.String())
}

func coolerSocket(b *build.Build) *Finding {
	if b.Cooler == nil || b.CPU == nil || b.CPU.Socket == nil {
		return nil
	}
	if b.Cooler.SupportsSocket(b.CPU.Socket) {
		return nil
	}
	return finding(message.KeyCoolerSocket, b.Cooler.Name, b.CPU.Name, b.CPU.Socket.String())
}

func coolerDissipation(b *build.Build) *Finding {
	if b.Cooler == nil || b.CPU == nil {
		return nil
	}
	if b.Cooler.Dissipation >= b.CPU.TDP {
		return nil
	}
	return finding(message.KeyCoolerDissipation, b.Cooler.Name, b.Cooler.Dissipation, b.CPU.Name, b.CPU.TDP)
}

func coolerHeight(b *build.Build) *Finding {
	if b.Cooler == nil || b.Case == nil {
		return nil
	}
	if b.Cooler.Height <= b.Case.MaxCoolerHeight {
		return nil
	}
	return finding(message.KeyCoolerHeight, b.Cooler.Name, b.Cooler.Height, b.Case.Name, b.Case.MaxCoolerHeight)
}

func psuPower(b *build.Build) *Finding {
	if b.PSU == nil || b.CPU == nil || b.GPU == nil {
		return nil
	}
	required := RequiredPower(b.CPU.TDP, b.GPU.PowerDraw)
	if required <= b.PSU.Power12V {
		return nil
	}
	return finding(message.KeyPSUPower, b.PSU.Name, b.PSU.Power12V, required)
}

func gpuLength(b *build.Build) *Finding {
	if b.GPU == nil || b.Case == nil {
		return nil
	}
	if b.GPU.Length <= b.Case.MaxGPULength {
		return nil
	}
	return finding(message.KeyGPULength, b.GPU.Name, b.GPU.Length, b.Case.Name, b.Case.MaxGPULength)
}

func caseFormFactor(b *build.Build) *Finding {
	if b.Case == nil || b.Motherboard == nil || b.Motherboard.FormFactor == nil {
		return nil
	}
	if b.Case.AcceptsFormFactor(b.Motherboard.FormFactor) {
		return nil
	}
	return finding(message.KeyCaseFormFactor, b.Case.Name, b.Motherboard.Name, b.Motherboard.FormFactor.String())
}

func ramSlots(b *build.Build) *Finding {
	if b.Motherboard == nil || len(b.RAM) == 0 {
		return nil
	}
	modules := b.RAMModuleCount()
	if modules <= b.Motherboard.RAMSlots {
		return nil
	}
	return finding(message.KeyRAMSlots, modules, b.Motherboard.Name, b.Motherboard.RAMSlots)
}

func ramType(b *build.Build) *Finding {
	if b.Motherboard == nil || b.Motherboard.MemoryType == nil {
		return nil
	}
	supported := b.Motherboard.MemoryType
	for _, e := range b.RAM {
		kit := e.Component
		if kit.MemoryType == nil {
			continue
		}
		if supported.Is(kit.MemoryType) || supported.IsCompatibleWith(kit.MemoryType.ID) {
			continue
		}
		return finding(message.KeyRAMType, kit.Name, kit.MemoryType.String(), b.Motherboard.Name)
	}
	return nil
}
