package entity

import (
	"encoding/json"
	"sort"
)

const (
	DocumentVersion     = "1.0.0"
	DefaultReceiptWidth = 50
	// MaxHistory is how many journal entries a document keeps
	MaxHistory = 50
	// PreviewLength is how many runes of receipt text a journal entry keeps
	PreviewLength = 200
)

// Settings are the store-wide receipt settings
type Settings struct {
	DefaultReceiptWidth  int    `json:"default_receipt_width"`
	EnableOfflineLogging bool   `json:"enable_offline_logging"`
	BackupDirectory      string `json:"backup_directory"`
}

// DefaultSettings returns the settings of a new store
func DefaultSettings() Settings {
	return Settings{
		DefaultReceiptWidth:  DefaultReceiptWidth,
		EnableOfflineLogging: true,
		BackupDirectory:      "./backups",
	}
}

// HistoryEntry is one issued receipt in the journal
type HistoryEntry struct {
	Timestamp     string     `json:"timestamp"`
	ReceiptNumber string     `json:"receipt_number"`
	PresetID      string     `json:"preset_id"`
	Template      string     `json:"template"`
	Products      []LineItem `json:"products"`
	Total         float64    `json:"total"`
	TextPreview   string     `json:"text_preview"`
}

// Document is the single persisted record holding every profile, warranty
// and journal entry of a store
type Document struct {
	Version          string                      `json:"version"`
	Presets          map[string]*MerchantProfile `json:"presets"`
	WarrantyDatabase map[string]*WarrantyRecord  `json:"warranty_database"`
	Settings         Settings                    `json:"settings"`
	History          []HistoryEntry              `json:"history"`
}

// NewDocument returns an empty store document
func NewDocument() *Document {
	return &Document{
		Version:          DocumentVersion,
		Presets:          make(map[string]*MerchantProfile),
		WarrantyDatabase: make(map[string]*WarrantyRecord),
		Settings:         DefaultSettings(),
		History:          []HistoryEntry{},
	}
}

// UnmarshalJSON fills missing sections with empty defaults
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	a := alias(*NewDocument())
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Presets == nil {
		a.Presets = make(map[string]*MerchantProfile)
	}
	if a.WarrantyDatabase == nil {
		a.WarrantyDatabase = make(map[string]*WarrantyRecord)
	}
	for id, p := range a.Presets {
		if p == nil {
			delete(a.Presets, id)
			continue
		}
		if p.PresetID == "" {
			p.PresetID = id
		}
	}
	for serial, w := range a.WarrantyDatabase {
		if w == nil {
			delete(a.WarrantyDatabase, serial)
		}
	}
	if a.History == nil {
		a.History = []HistoryEntry{}
	}
	if a.Settings.DefaultReceiptWidth <= 0 {
		a.Settings.DefaultReceiptWidth = DefaultReceiptWidth
	}
	*d = Document(a)
	return nil
}

// PresetIDs returns the profile ids in sorted order
func (d *Document) PresetIDs() []string {
	ids := make([]string, 0, len(d.Presets))
	for id := range d.Presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AppendHistory puts entry first and trims the journal to MaxHistory
func (d *Document) AppendHistory(entry HistoryEntry) {
	d.History = append([]HistoryEntry{entry}, d.History...)
	if len(d.History) > MaxHistory {
		d.History = d.History[:MaxHistory]
	}
}

// Clone returns a deep copy
func (d *Document) Clone() *Document {
	c := &Document{
		Version:          d.Version,
		Presets:          make(map[string]*MerchantProfile, len(d.Presets)),
		WarrantyDatabase: make(map[string]*WarrantyRecord, len(d.WarrantyDatabase)),
		Settings:         d.Settings,
		History:          make([]HistoryEntry, len(d.History)),
	}
	for id, p := range d.Presets {
		c.Presets[id] = p.Clone()
	}
	for serial, w := range d.WarrantyDatabase {
		rec := *w
		c.WarrantyDatabase[serial] = &rec
	}
	for i, h := range d.History {
		h.Products = append([]LineItem(nil), h.Products...)
		c.History[i] = h
	}
	return c
}
