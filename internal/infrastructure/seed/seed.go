package seed

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultProfiles returns the profiles an empty store starts with
func DefaultProfiles() []*entity.MerchantProfile {
	hrk := entity.NewMerchantProfile("hrk_default", "Harjun Raskaskone Oy", enum.TemplateCorporate)
	hrk.BusinessID = "FI12345678"
	hrk.Address = "Teollisuustie 1, 00100 Helsinki"
	hrk.Phone = "+358 40 123 4567"
	hrk.Email = "info@hrk.fi"
	hrk.Slogan = "Laadukasta laitevuokrausta"
	hrk.FooterText = "Kiitos ostoksesta! Tervetuloa uudelleen!"
	hrk.PromoRules = append(hrk.PromoRules, entity.NewAmountOverRule(
		"promo1",
		"Over 50€ bonus",
		decimal.NewFromInt(50),
		enum.PromoAddLine,
		"🎁 Seuraavasta ostoksesta -10% (koodi: KIITOS10)",
	))

	minimal := entity.NewMerchantProfile("minimal_company", "Quick Services Oy", enum.TemplateMinimal)
	minimal.BusinessID = "FI87654321"
	minimal.Address = "Pikatie 5"
	minimal.Phone = "+358 50 999 8888"
	minimal.Email = "quick@example.com"
	minimal.FooterText = "Kiitos!"
	minimal.Layout.ShowVATBreakdown = false
	minimal.Layout.ShowWarranty = false

	return []*entity.MerchantProfile{hrk, minimal}
}

type profileFile struct {
	Presets map[string]json.RawMessage `json:"presets"`
}

// LoadProfiles reads profiles from a YAML file shaped like the store
// document's presets section. Keys are the profile ids.
func LoadProfiles(fs afero.Fs, path string) ([]*entity.MerchantProfile, error) {
	var file profileFile
	if err := decodeYAML(fs, path, &file); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(file.Presets))
	for id := range file.Presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	profiles := make([]*entity.MerchantProfile, 0, len(ids))
	for _, id := range ids {
		var p entity.MerchantProfile
		if err := json.Unmarshal(file.Presets[id], &p); err != nil {
			return nil, errors.Wrapf(err, "profile %s", id)
		}
		if p.PresetID == "" {
			p.PresetID = id
		}
		p.Sanitize()
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "profile %s", id)
		}
		profiles = append(profiles, &p)
	}

	log.Debug().Str("path", path).Int("profiles", len(profiles)).Msg("seed profiles loaded")
	return profiles, nil
}

// CartFile is a cart plus its payment, as read by LoadCart
type CartFile struct {
	Payment entity.PaymentContext `json:"payment"`
	Items   []entity.LineItem     `json:"items"`
}

// LoadCart reads a cart YAML file. Every item must be valid.
func LoadCart(fs afero.Fs, path string) (*CartFile, error) {
	var cart CartFile
	if err := decodeYAML(fs, path, &cart); err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart %s has no items", path)
	}
	c, err := entity.NewCart(cart.Items...)
	if err != nil {
		return nil, errors.Wrapf(err, "cart %s", path)
	}
	cart.Items = c.Items()
	return &cart, nil
}

// decodeYAML parses YAML and decodes it through the JSON codecs of the
// entity types, so YAML and the store document share one set of defaults.
func decodeYAML(fs afero.Fs, path string, out interface{}) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	encoded, err := json.Marshal(normalize(raw))
	if err != nil {
		return errors.Wrapf(err, "convert %s", path)
	}
	if err := json.Unmarshal(encoded, out); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

// normalize turns map[interface{}]interface{} nodes into string-keyed maps
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []interface{}:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	}
	return v
}
