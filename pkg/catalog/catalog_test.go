package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_IsCompatibleWith(t *testing.T) {
	sata3 := &Item{ID: "sata-3", Kind: KindStorageConnector, Name: "SATA III", CompatibleWith: []string{"sata-2"}}

	tests := []struct {
		name string
		item *Item
		id   string
		want bool
	}{
		{"declared", sata3, "sata-2", true},
		{"not declared", sata3, "m2-nvme", false},
		{"self is not declared", sata3, "sata-3", false},
		{"nil item", nil, "sata-2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.IsCompatibleWith(tt.id))
		})
	}
}

func TestIndex_CompatibleIsDirected(t *testing.T) {
	ix := NewIndex(
		&Item{ID: "pcie-8", Name: "PCIe 6+2-pin", CompatibleWith: []string{"pcie-6"}},
		&Item{ID: "pcie-6", Name: "PCIe 6-pin"},
		nil,
	)

	assert.True(t, ix.Compatible("pcie-8", "pcie-6"))
	assert.False(t, ix.Compatible("pcie-6", "pcie-8"))
	assert.False(t, ix.Compatible("unknown", "pcie-6"))
	assert.Equal(t, []string{"pcie-6", "pcie-8"}, ix.IDs())
	assert.Equal(t, []string{"PCIe 6-pin", "ghost"}, ix.Names([]string{"pcie-6", "ghost"}))
}

func TestItem_Is(t *testing.T) {
	a := &Item{ID: "am5"}
	b := &Item{ID: "am5"}
	c := &Item{ID: "lga1700"}

	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
	assert.False(t, a.Is(nil))
	assert.Equal(t, "", (*Item)(nil).String())
}

func TestKind_IsValid(t *testing.T) {
	assert.True(t, KindFanSize.IsValid())
	assert.False(t, Kind("cable").IsValid())
}
