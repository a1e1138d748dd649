package checker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rigcheck/rigcheck/pkg/build"
	"github.com/rigcheck/rigcheck/pkg/message"
)

// pcieVersion compares the GPU slot of the motherboard with the GPU.
// Version order comes from the catalog relation: the newer version declares
// compatibility with the older one.
func pcieVersion(b *build.Build) *Finding {
	if b.Motherboard == nil || b.GPU == nil {
		return nil
	}
	slot, card := b.Motherboard.PCIeVersion, b.GPU.PCIeVersion
	if slot == nil || card == nil || slot.Is(card) {
		return nil
	}

	key := message.KeyPCIeMismatch
	switch {
	case card.IsCompatibleWith(slot.ID):
		key = message.KeyPCIeGPULimited
	case slot.IsCompatibleWith(card.ID):
		key = message.KeyPCIeSlotUnderused
	}
	return finding(key, b.Motherboard.Name, slot.String(), b.GPU.Name, card.String())
}

func ramMixedTypes(b *build.Build) *Finding {
	seen := make(map[string]string)
	for _, e := range b.RAM {
		if t := e.Component.MemoryType; t != nil {
			seen[t.ID] = t.Name
		}
	}
	if len(seen) < 2 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for _, name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return finding(message.KeyRAMMixedTypes, strings.Join(names, ", "))
}

func ramMixedClocks(b *build.Build) *Finding {
	seen := make(map[int]struct{})
	for _, e := range b.RAM {
		seen[e.Component.Clock] = struct{}{}
	}
	if len(seen) < 2 {
		return nil
	}
	clocks := make([]int, 0, len(seen))
	for c := range seen {
		clocks = append(clocks, c)
	}
	sort.Ints(clocks)
	labels := make([]string, len(clocks))
	for i, c := range clocks {
		labels[i] = fmt.Sprintf("%d MHz", c)
	}
	return finding(message.KeyRAMMixedClocks, strings.Join(labels, ", "))
}

func ramAboveCPUClock(b *build.Build) *Finding {
	if b.CPU == nil || b.CPU.MaxMemoryClock <= 0 {
		return nil
	}
	for _, e := range b.RAM {
		if kit := e.Component; kit.Clock > b.CPU.MaxMemoryClock {
			return finding(message.KeyRAMAboveCPUClock, kit.Name, kit.Clock, b.CPU.Name, b.CPU.MaxMemoryClock)
		}
	}
	return nil
}

func ramAboveBoardClock(b *build.Build) *Finding {
	if b.Motherboard == nil || b.Motherboard.MaxMemoryClock <= 0 {
		return nil
	}
	for _, e := range b.RAM {
		if kit := e.Component; kit.Clock > b.Motherboard.MaxMemoryClock {
			return finding(message.KeyRAMAboveBoardClock, kit.Name, kit.Clock, b.Motherboard.Name, b.Motherboard.MaxMemoryClock)
		}
	}
	return nil
}
