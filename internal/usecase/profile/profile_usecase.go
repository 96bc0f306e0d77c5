package profile

import (
	"context"
	"fmt"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
)

type ProfileUseCase struct {
	profiles repository.ProfileStore
	state    repository.StateRepository
}

func NewProfileUseCase(profiles repository.ProfileStore, state repository.StateRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, state: state}
}

// Me returns the signed-in profile.
func (uc *ProfileUseCase) Me(ctx context.Context) (*domain.Profile, error) {
	user, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}

// ByID resolves a user id against the current user first, then the seed pool.
func (uc *ProfileUseCase) ByID(ctx context.Context, id string) (*domain.Profile, error) {
	if current, ok := uc.state.CurrentUser(ctx); ok && (id == current.ID || id == "demo-user") {
		return current, nil
	}
	if user, ok := uc.profiles.ByID(id); ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// UpdateRequest carries partial profile updates; nil fields are untouched.
type UpdateRequest struct {
	Name               *string                    `json:"name" binding:"omitempty,min=2,max=100"`
	Bio                *string                    `json:"bio" binding:"omitempty,max=500"`
	City               *string                    `json:"city" binding:"omitempty,max=100"`
	Country            *string                    `json:"country" binding:"omitempty,max=100"`
	Interests          *[]string                  `json:"interests" binding:"omitempty,max=10"`
	Languages          *[]string                  `json:"languages" binding:"omitempty,max=10"`
	HostingEnabled     *bool                      `json:"hosting_enabled"`
	MaxGuests          *int                       `json:"max_guests" binding:"omitempty,min=0,max=16"`
	TravelStyle        *[]string                  `json:"travel_style" binding:"omitempty,max=6"`
	RomanticIntent     *string                    `json:"romantic_intent" binding:"omitempty,oneof=open platonic-only"`
	AgePreference      *domain.AgeRange           `json:"age_preference"`
	PersonalitySliders *domain.PersonalitySliders `json:"personality_sliders"`
}

// Update applies a partial update to the signed-in profile and persists it.
func (uc *ProfileUseCase) Update(ctx context.Context, req *UpdateRequest) (*domain.Profile, error) {
	user, ok := uc.state.CurrentUser(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	updated := *user
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Bio != nil {
		updated.Bio = *req.Bio
	}
	if req.City != nil {
		updated.City = *req.City
	}
	if req.Country != nil {
		updated.Country = *req.Country
	}
	if req.Interests != nil {
		updated.Interests = *req.Interests
	}
	if req.Languages != nil {
		updated.Languages = *req.Languages
	}
	if req.HostingEnabled != nil {
		updated.HostingEnabled = *req.HostingEnabled
	}
	if req.MaxGuests != nil {
		updated.MaxGuests = *req.MaxGuests
	}
	if req.TravelStyle != nil {
		updated.TravelStyle = *req.TravelStyle
	}
	if req.RomanticIntent != nil {
		updated.RomanticIntent = *req.RomanticIntent
	}
	if req.AgePreference != nil {
		updated.AgePreference = *req.AgePreference
	}
	if req.PersonalitySliders != nil {
		updated.PersonalitySliders = *req.PersonalitySliders
	}

	if err := uc.state.SetCurrentUser(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}
	return &updated, nil
}

// Settings returns the current user settings.
func (uc *ProfileUseCase) Settings(ctx context.Context) domain.UserSettings {
	return uc.state.Settings(ctx)
}

// SettingsRequest carries partial settings updates.
type SettingsRequest struct {
	Notifications    *bool   `json:"notifications"`
	EmailUpdates     *bool   `json:"email_updates"`
	ShowOnlineStatus *bool   `json:"show_online_status"`
	Language         *string `json:"language" binding:"omitempty,min=2,max=8"`
	DarkMode         *bool   `json:"dark_mode"`
}

// UpdateSettings merges a partial settings update and persists the result.
func (uc *ProfileUseCase) UpdateSettings(ctx context.Context, req *SettingsRequest) (domain.UserSettings, error) {
	settings := uc.state.Settings(ctx)
	if req.Notifications != nil {
		settings.Notifications = *req.Notifications
	}
	if req.EmailUpdates != nil {
		settings.EmailUpdates = *req.EmailUpdates
	}
	if req.ShowOnlineStatus != nil {
		settings.ShowOnlineStatus = *req.ShowOnlineStatus
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.DarkMode != nil {
		settings.DarkMode = *req.DarkMode
	}
	if err := uc.state.SetSettings(ctx, settings); err != nil {
		return settings, fmt.Errorf("failed to persist settings: %w", err)
	}
	return settings, nil
}

// CompleteOnboarding flips the onboarding flag.
func (uc *ProfileUseCase) CompleteOnboarding(ctx context.Context) error {
	if _, ok := uc.state.CurrentUser(ctx); !ok {
		return domain.ErrNotAuthenticated
	}
	return uc.state.SetOnboardingComplete(ctx, true)
}

// OnboardingComplete reports the onboarding flag.
func (uc *ProfileUseCase) OnboardingComplete(ctx context.Context) bool {
	return uc.state.OnboardingComplete(ctx)
}
