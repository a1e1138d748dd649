package checker

import (
	"github.com/rigcheck/rigcheck/pkg/build"
	"github.com/rigcheck/rigcheck/pkg/message"
)

// MinFans is the minimum number of case fans a complete build needs.
const MinFans = 2

func cpuSelected(b *build.Build) *Finding {
	if b.CPU == nil {
		return finding(message.KeyCPUMissing)
	}
	return nil
}

func motherboardSelected(b *build.Build) *Finding {
	if b.Motherboard == nil {
		return finding(message.KeyMotherboardMissing)
	}
	return nil
}

func psuSelected(b *build.Build) *Finding {
	if b.PSU == nil {
		return finding(message.KeyPSUMissing)
	}
	return nil
}

func caseSelected(b *build.Build) *Finding {
	if b.Case == nil {
		return finding(message.KeyCaseMissing)
	}
	return nil
}

func coolerSelected(b *build.Build) *Finding {
	if b.Cooler == nil {
		return finding(message.KeyCoolerMissing)
	}
	return nil
}

func gpuSelected(b *build.Build) *Finding {
	if b.GPU == nil {
		return finding(message.KeyGPUMissing)
	}
	return nil
}

func ramSelected(b *build.Build) *Finding {
	if len(b.RAM) == 0 {
		return finding(message.KeyRAMMissing)
	}
	return nil
}

func storageSelected(b *build.Build) *Finding {
	if !b.HasStorage() {
		return finding(message.KeyStorageMissing)
	}
	return nil
}

func fansSelected(b *build.Build) *Finding {
	if b.FanCount() < MinFans {
		return finding(message.KeyFansInsufficient)
	}
	return nil
}
