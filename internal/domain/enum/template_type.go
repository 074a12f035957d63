package enum

import "encoding/json"

// TemplateType groups merchant profiles cosmetically and selects the
// default layout of a new profile
type TemplateType int

const (
	TemplateCorporate    TemplateType = 0
	TemplateMinimal      TemplateType = 1
	TemplateCompact      TemplateType = 2
	TemplatePromo        TemplateType = 3
	TemplateLegalHeavy   TemplateType = 4
	TemplateVATBreakdown TemplateType = 5
)

var templateTypeNames = [...]string{"corporate", "minimal", "compact", "promo", "legal_heavy", "vat_breakdown"}

func (t TemplateType) String() string {
	if int(t) < 0 || int(t) >= len(templateTypeNames) {
		return "corporate"
	}
	return templateTypeNames[t]
}

// ParseTemplateType maps a lowercase tag to a TemplateType
func ParseTemplateType(tag string) (TemplateType, error) {
	i, err := lookup(templateTypeNames[:], tag, "template type")
	return TemplateType(i), err
}

// TemplateTypes lists every template family
func TemplateTypes() []TemplateType {
	out := make([]TemplateType, len(templateTypeNames))
	for i := range templateTypeNames {
		out[i] = TemplateType(i)
	}
	return out
}

func (t TemplateType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TemplateType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTemplateType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
