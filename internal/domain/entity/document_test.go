package entity

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_UnmarshalFillsSections(t *testing.T) {
	var d Document
	require.NoError(t, json.Unmarshal([]byte(`{"presets":{"shop":{"company_name":"Shop"}}}`), &d))

	assert.Equal(t, DocumentVersion, d.Version)
	assert.NotNil(t, d.WarrantyDatabase)
	assert.NotNil(t, d.History)
	assert.Equal(t, DefaultReceiptWidth, d.Settings.DefaultReceiptWidth)
	require.Contains(t, d.Presets, "shop")
	assert.Equal(t, "shop", d.Presets["shop"].PresetID)
}

func TestDocument_RoundTrip(t *testing.T) {
	d := NewDocument()
	d.Presets["b"] = NewMerchantProfile("b", "B", enum.TemplateMinimal)
	d.Presets["a"] = NewMerchantProfile("a", "A", enum.TemplateCompact)
	d.WarrantyDatabase["SN"] = &WarrantyRecord{SerialNumber: "SN", PurchaseDate: "2024-01-01", WarrantyMonths: 12, ReturnDays: 14}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"version", "presets", "warranty_database", "settings", "history"} {
		assert.Contains(t, raw, key)
	}

	var back Document
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, &back)
	assert.Equal(t, []string{"a", "b"}, back.PresetIDs())
}

func TestDocument_HistoryIsCappedNewestFirst(t *testing.T) {
	d := NewDocument()
	for i := 0; i < MaxHistory+5; i++ {
		d.AppendHistory(HistoryEntry{ReceiptNumber: fmt.Sprintf("KU%08d", i)})
	}

	require.Len(t, d.History, MaxHistory)
	assert.Equal(t, fmt.Sprintf("KU%08d", MaxHistory+4), d.History[0].ReceiptNumber)
	assert.Equal(t, "KU00000005", d.History[MaxHistory-1].ReceiptNumber)
}

func TestDocument_CloneIsDeep(t *testing.T) {
	d := NewDocument()
	d.Presets["a"] = NewMerchantProfile("a", "A", enum.TemplateCorporate)
	d.WarrantyDatabase["SN"] = &WarrantyRecord{SerialNumber: "SN"}

	c := d.Clone()
	c.Presets["a"].CompanyName = "changed"
	c.WarrantyDatabase["SN"].Notes = "changed"
	delete(c.Presets, "a")

	assert.Equal(t, "A", d.Presets["a"].CompanyName)
	assert.Empty(t, d.WarrantyDatabase["SN"].Notes)
}
