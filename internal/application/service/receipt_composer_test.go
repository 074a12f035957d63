package service

import (
	"strings"
	"testing"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/sangkips/kuittikone/pkg/fontengine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer() *ReceiptComposer {
	return NewReceiptComposer(20).
		WithClock(fixedClock).
		WithNumbers(func() string { return "KU00000001" })
}

func TestCompose_FullReceipt(t *testing.T) {
	r, err := testComposer().Compose(shopProfile(), widgets(), entity.PaymentContext{
		Method: enum.PaymentCard,
		Card:   card(enum.CardTypeVisa),
	}, nil)
	require.NoError(t, err)

	R := strings.Repeat("=", 20)
	T := strings.Repeat("-", 20)
	want := "\nShop Oy\nY-tunnus: FI1\nKatu 1\nPuh: 123\nEmail: a@b.fi" +
		"\n\nPäivämäärä: 15.03.2024 10:30\n" + R +
		"\n\nTUOTTEET:\n" + T +
		"\n1. Widget\n   2 kpl x 30.00 € = 60.00 €\n" + T +
		"\nVälisumma (ilman ALV): 60.00 €\nALV 24%: 14.40 €\n" + R +
		"\nYHTEENSÄ: 74.40 €\n" + R +
		"\n\nMaksutapa: CARD\nKorttityyppi: Visa 💳" +
		"\n\n" + R + "\nTARJOUKSET:\n🎁" +
		"\n\n" + R + "\nKiitos!\n"
	assert.Equal(t, want, r.Text)

	assert.Equal(t, "KU00000001", r.Number)
	assert.Equal(t, "shop", r.PresetID)
	assert.Equal(t, "corporate", r.Template)
	assert.Equal(t, fixedNow, r.IssuedAt)
	assert.Equal(t, "60.00", r.Subtotal.StringFixed(2))
	assert.Equal(t, "14.40", r.Tax.StringFixed(2))
	assert.Equal(t, "74.40", r.Total.StringFixed(2))
	assert.True(t, r.CardFee.IsZero())
	assert.Equal(t, []string{"🎁"}, r.PromoLines)
}

func TestCompose_CardFee(t *testing.T) {
	p := shopProfile()
	p.PaymentPresets[2].FeePercentage = 2.5

	r, err := testComposer().Compose(p, widgets(), entity.PaymentContext{Card: card(enum.CardTypeAmex)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "1.86", r.CardFee.StringFixed(2))
	assert.Contains(t, r.Text, "Korttityyppi: American Express 💳\nKorttimaksu: 1.86 €")
}

func TestCompose_CardNotShownWhenDisabledOrMissing(t *testing.T) {
	p := shopProfile()
	p.PaymentPresets[0].Enabled = false

	r, err := testComposer().Compose(p, widgets(), entity.PaymentContext{Card: card(enum.CardTypeVisa)}, nil)
	require.NoError(t, err)
	assert.NotContains(t, r.Text, "Korttityyppi")

	r, err = testComposer().Compose(p, widgets(), entity.PaymentContext{Card: card(enum.CardTypeDebit)}, nil)
	require.NoError(t, err)
	assert.NotContains(t, r.Text, "Korttityyppi")
}

func TestCompose_NilProfile(t *testing.T) {
	_, err := testComposer().Compose(nil, widgets(), entity.PaymentContext{}, nil)
	assert.ErrorIs(t, err, apperror.ErrNoActiveProfile)
}

func TestCompose_SubtotalWithoutProductSection(t *testing.T) {
	p := shopProfile()
	p.Layout.ShowProducts = false

	r, err := testComposer().Compose(p, widgets(), entity.PaymentContext{}, nil)
	require.NoError(t, err)
	assert.NotContains(t, r.Text, "TUOTTEET:")
	assert.Contains(t, r.Text, "YHTEENSÄ: 74.40 €")
	assert.Contains(t, r.Text, "TARJOUKSET:\n🎁")
}

func TestCompose_PromoBoundary(t *testing.T) {
	items := []entity.LineItem{{Name: "Exact", Quantity: 1, UnitPrice: decimal.RequireFromString("50.00")}}
	r, err := testComposer().Compose(shopProfile(), items, entity.PaymentContext{}, nil)
	require.NoError(t, err)
	assert.NotContains(t, r.Text, "TARJOUKSET:")
	assert.Empty(t, r.PromoLines)

	items[0].UnitPrice = decimal.RequireFromString("50.01")
	r, err = testComposer().Compose(shopProfile(), items, entity.PaymentContext{}, nil)
	require.NoError(t, err)
	assert.Contains(t, r.Text, "TARJOUKSET:\n🎁")
}

func TestCompose_HiddenSections(t *testing.T) {
	p := shopProfile()
	p.Layout = entity.Layout{}

	r, err := testComposer().Compose(p, widgets(), entity.PaymentContext{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "\nPäivämäärä: 15.03.2024 10:30\n"+strings.Repeat("=", 20), r.Text)
	assert.Equal(t, "74.40", r.Total.StringFixed(2))
}

func TestCompose_WithoutVATBreakdown(t *testing.T) {
	p := shopProfile()
	p.Layout.ShowVATBreakdown = false

	r, err := testComposer().Compose(p, widgets(), entity.PaymentContext{Method: enum.PaymentCash}, nil)
	require.NoError(t, err)
	assert.NotContains(t, r.Text, "ALV")
	assert.Contains(t, r.Text, "Maksutapa: CASH")
}

func TestCompose_Warranty(t *testing.T) {
	p := shopProfile()
	p.Layout.ShowWarranty = true
	rec := entity.NewWarrantyRecord("SN1", "Drill", fixedNow.AddDate(0, 0, -10), 12)
	lookup := func(serial string) (*entity.WarrantyRecord, bool) {
		if serial == "SN1" {
			return rec, true
		}
		return nil, false
	}

	r, err := testComposer().Compose(p, widgets(), entity.PaymentContext{Serials: []string{"SN1", "missing"}}, lookup)
	require.NoError(t, err)
	assert.Contains(t, r.Text, "TAKUUTIEDOT:")
	assert.Contains(t, r.Text, "Sarjanumero: SN1\nTuote: Drill")
	assert.Contains(t, r.Text, "✓ Takuu voimassa")
	assert.Contains(t, r.Text, "✓ Palautusoikeus voimassa (14 pv)")
	assert.NotContains(t, r.Text, "missing")

	r, err = testComposer().Compose(p, widgets(), entity.PaymentContext{}, lookup)
	require.NoError(t, err)
	assert.NotContains(t, r.Text, "TAKUUTIEDOT:")
}

func TestCompose_LogoAndFonts(t *testing.T) {
	p := shopProfile()
	p.LogoBase64 = "logo"
	p.Slogan = "Hyvää päivää"
	p.Layout.HeaderFont = fontengine.BoldBig
	p.Layout.FooterFont = fontengine.Block

	r, err := testComposer().Compose(p, widgets(), entity.PaymentContext{}, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.Text, "╔"))
	assert.Contains(t, r.Text, "║  SHOP OY  ║")
	assert.Contains(t, r.Text, "S  h  o  p     O  y")
	assert.Contains(t, r.Text, "█ Hyvää päivää █\n█ Kiitos! █")
}

func TestCompose_ExtraLines(t *testing.T) {
	p := shopProfile()
	p.Layout.ExtraLinesBeforeProducts = 2

	r, err := testComposer().Compose(p, widgets(), entity.PaymentContext{}, nil)
	require.NoError(t, err)
	assert.Contains(t, r.Text, strings.Repeat("=", 20)+"\n\n\n\nTUOTTEET:")
}

func TestCompose_DoesNotModifyProfile(t *testing.T) {
	p := shopProfile()
	before := p.Clone()

	_, err := testComposer().Compose(p, widgets(), entity.PaymentContext{Card: card(enum.CardTypeAmex)}, nil)
	require.NoError(t, err)
	assert.Equal(t, before, p)
}
