package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/domain/enum"
	infraRepo "github.com/sangkips/kuittikone/internal/infrastructure/repository"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Load(ctx context.Context) (*entity.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Document), args.Error(1)
}

func (m *MockDocumentRepository) Save(ctx context.Context, doc *entity.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

type recordingPrinter struct {
	jobs [][]byte
	err  error
}

func (p *recordingPrinter) Print(ctx context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *recordingPrinter) IsConnected(ctx context.Context) bool { return p.err == nil }

func (p *recordingPrinter) Kind() string { return "network" }

// --- Fixtures ---

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

// newTestStore returns a loaded store backed by an in-memory file system
func newTestStore(t *testing.T, seeds ...*entity.MerchantProfile) (*DocumentStore, afero.Fs) {
	t.Helper()
	return newTestStoreOn(t, afero.NewMemMapFs(), seeds...)
}

func newTestStoreOn(t *testing.T, fs afero.Fs, seeds ...*entity.MerchantProfile) (*DocumentStore, afero.Fs) {
	t.Helper()
	store := NewDocumentStore(infraRepo.NewDocumentFileRepository(fs, "/data/store.json"))
	require.NoError(t, store.Load(context.Background(), seeds))
	return store, fs
}

func shopProfile() *entity.MerchantProfile {
	p := entity.NewMerchantProfile("shop", "Shop Oy", enum.TemplateCorporate)
	p.BusinessID = "FI1"
	p.Address = "Katu 1"
	p.Phone = "123"
	p.Email = "a@b.fi"
	p.FooterText = "Kiitos!"
	p.PromoRules = []entity.PromotionRule{
		entity.NewAmountOverRule("gift", "over 50", decimal.NewFromInt(50), enum.PromoAddLine, "🎁"),
	}
	return p
}

func widgets() []entity.LineItem {
	return []entity.LineItem{{Name: "Widget", Quantity: 2, UnitPrice: decimal.RequireFromString("30.00")}}
}

func card(c enum.CardType) *enum.CardType {
	return &c
}
