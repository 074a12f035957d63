package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/pkg/apperror"
)

// ProfileService manages merchant profiles and the active selection
type ProfileService struct {
	store *DocumentStore
}

// NewProfileService creates a new profile service
func NewProfileService(store *DocumentStore) *ProfileService {
	return &ProfileService{store: store}
}

// Upsert inserts or fully replaces the profile stored under p.PresetID
func (s *ProfileService) Upsert(ctx context.Context, p *entity.MerchantProfile) (*entity.MerchantProfile, error) {
	profile := p.Clone()
	profile.Sanitize()
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	var created bool
	err := s.store.Update(ctx, func(doc *entity.Document) error {
		_, exists := doc.Presets[profile.PresetID]
		created = !exists
		doc.Presets[profile.PresetID] = profile.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("preset_id", profile.PresetID).Bool("created", created).Msg("profile saved")
	return profile, nil
}

// Get returns a copy of the profile stored under id
func (s *ProfileService) Get(id string) (*entity.MerchantProfile, error) {
	var profile *entity.MerchantProfile
	s.store.View(func(doc *entity.Document) {
		profile = doc.Presets[id].Clone()
	})
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}
	return profile, nil
}

// List returns copies of all profiles ordered by id
func (s *ProfileService) List() []*entity.MerchantProfile {
	var profiles []*entity.MerchantProfile
	s.store.View(func(doc *entity.Document) {
		profiles = make([]*entity.MerchantProfile, 0, len(doc.Presets))
		for _, id := range doc.PresetIDs() {
			profiles = append(profiles, doc.Presets[id].Clone())
		}
	})
	return profiles
}

// Remove deletes the profile stored under id. Removing the active profile
// clears the selection.
func (s *ProfileService) Remove(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(doc *entity.Document) error {
		if _, ok := doc.Presets[id]; !ok {
			return apperror.NewNotFoundError("Profile")
		}
		delete(doc.Presets, id)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("preset_id", id).Msg("profile removed")
	return nil
}

// SetActive selects the profile used when a receipt names none. It returns
// false for an unknown id and leaves the selection unchanged.
func (s *ProfileService) SetActive(id string) bool {
	ok := s.store.SetActive(id)
	if ok {
		log.Info().Str("preset_id", id).Msg("active profile changed")
	}
	return ok
}

// Active returns the selected profile, or ErrNoActiveProfile
func (s *ProfileService) Active() (*entity.MerchantProfile, error) {
	id := s.store.ActiveID()
	if id == "" {
		return nil, apperror.ErrNoActiveProfile
	}
	profile, err := s.Get(id)
	if err != nil {
		return nil, apperror.ErrNoActiveProfile
	}
	return profile, nil
}

// Resolve returns the profile with id, or the active profile when id is
// empty. Unknown ids yield ErrNoActiveProfile.
func (s *ProfileService) Resolve(id string) (*entity.MerchantProfile, error) {
	if id == "" {
		return s.Active()
	}
	profile, err := s.Get(id)
	if err != nil {
		return nil, apperror.ErrNoActiveProfile
	}
	return profile, nil
}
