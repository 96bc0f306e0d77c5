package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/scheduler"
	"github.com/passportpals/passportpals-backend/internal/seed"
)

// AuthUseCase simulates authentication against the static seed list. There
// is no account backend: a successful login pins the seed profile as the
// current user and issues a JWT for the HTTP layer.
type AuthUseCase struct {
	profiles repository.ProfileStore
	state    repository.StateRepository
	swipes   repository.SwipeRepository
	matches  repository.MatchRepository
	trips    repository.TripRepository
	messages repository.MessageRepository
	points   repository.PointsRepository
	reviews  repository.ReviewRepository
	sched    scheduler.Scheduler
	clk      clock.Clock

	jwtSecret string
	expiry    time.Duration
}

func NewAuthUseCase(
	profiles repository.ProfileStore,
	state repository.StateRepository,
	swipes repository.SwipeRepository,
	matches repository.MatchRepository,
	trips repository.TripRepository,
	messages repository.MessageRepository,
	points repository.PointsRepository,
	reviews repository.ReviewRepository,
	sched scheduler.Scheduler,
	clk clock.Clock,
	jwtSecret string,
	expiry time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		profiles:  profiles,
		state:     state,
		swipes:    swipes,
		matches:   matches,
		trips:     trips,
		messages:  messages,
		points:    points,
		reviews:   reviews,
		sched:     sched,
		clk:       clk,
		jwtSecret: jwtSecret,
		expiry:    expiry,
	}
}

// AuthResult is returned by every login variant.
type AuthResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      *domain.Profile `json:"user"`
}

// Login resolves email against the seed list and verifies the password.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, ok := uc.profiles.ByEmail(email)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.state.SetCurrentUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to set current user: %w", err)
	}
	return uc.issueToken(user)
}

// LoginAsDemo signs in the demo profile and seeds the starter collections so
// the app opens populated.
func (uc *AuthUseCase) LoginAsDemo(ctx context.Context) (*AuthResult, error) {
	user := uc.profiles.DemoUser()
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := uc.state.SetCurrentUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to set current user: %w", err)
	}
	if err := uc.seedDemoCollections(ctx, user.ID); err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

// OnboardingRequest carries the answers of the signup wizard.
type OnboardingRequest struct {
	Name          string   `json:"name" binding:"required,min=2,max=100"`
	Age           int      `json:"age" binding:"required,min=18,max=100"`
	City          string   `json:"city" binding:"required"`
	Country       string   `json:"country" binding:"required"`
	Interests     []string `json:"interests" binding:"required,min=1,max=10"`
	HostingStatus string   `json:"hosting_status" binding:"required,oneof=hosting traveling both"`
	Photo         string   `json:"photo"`
}

// CreateUserFromOnboarding builds a fresh profile from the wizard answers,
// signs it in and seeds demo content remapped to the new user.
func (uc *AuthUseCase) CreateUserFromOnboarding(ctx context.Context, req *OnboardingRequest) (*AuthResult, error) {
	photo := req.Photo
	if photo == "" {
		photo = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop"
	}

	now := uc.clk.Now()
	user := &domain.Profile{
		ID:                 fmt.Sprintf("user-%d", now.UnixMilli()),
		Name:               req.Name,
		Email:              fmt.Sprintf("%s@passportpals.app", sanitizeEmailLocal(req.Name)),
		Age:                req.Age,
		City:               req.City,
		Country:            req.Country,
		Bio:                "Excited to explore the world and meet new friends through Passport Pals!",
		Photos:             []string{photo},
		Interests:          req.Interests,
		Languages:          []string{"English"},
		PrimaryLanguage:    "English",
		HostingEnabled:     req.HostingStatus == "hosting" || req.HostingStatus == "both",
		MaxGuests:          2,
		HouseRules:         []string{},
		HouseVibe:          "quiet-cozy",
		Level:              "Explorer",
		VerificationStatus: domain.Unverified,
		PersonalitySliders: domain.PersonalitySliders{PlanningStyle: 50, SocialBattery: 50, FoodAdventure: 50, DailyPace: 50},
		TravelStyle:        []string{"culture", "people"},
		RomanticIntent:     domain.IntentOpen,
		AgePreference:      domain.AgeRange{Min: 18, Max: 65},
		GenderPreference:   []string{},
		LanguagePreference: []string{},
		CreatedAt:          now,
	}

	if err := uc.state.SetCurrentUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to set current user: %w", err)
	}
	if err := uc.seedDemoCollections(ctx, user.ID); err != nil {
		return nil, err
	}

	// Fresh accounts start from the welcome bonus only.
	welcome := []*domain.PointsLedgerEntry{{
		ID:        "pts-welcome",
		UserID:    user.ID,
		Type:      domain.PointsEarn,
		Amount:    100,
		Reason:    "Welcome bonus",
		CreatedAt: now,
	}}
	if err := uc.points.Replace(ctx, welcome); err != nil {
		return nil, err
	}

	return uc.issueToken(user)
}

// Logout clears every collection including settings, cancels pending
// simulated-latency tasks and removes the persisted state.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	uc.sched.CancelAll()

	if err := uc.state.Reset(ctx); err != nil {
		return err
	}
	_ = uc.swipes.Reset(ctx)
	_ = uc.matches.Reset(ctx)
	_ = uc.trips.Reset(ctx)
	_ = uc.messages.Reset(ctx)
	_ = uc.points.Reset(ctx)
	_ = uc.reviews.Reset(ctx)
	return nil
}

// VerifyToken validates a JWT and returns the user id it was issued for.
func (uc *AuthUseCase) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}

// CurrentUser returns the signed-in profile, if any.
func (uc *AuthUseCase) CurrentUser(ctx context.Context) (*domain.Profile, bool) {
	return uc.state.CurrentUser(ctx)
}

func (uc *AuthUseCase) issueToken(user *domain.Profile) (*AuthResult, error) {
	now := uc.clk.Now()
	expiresAt := now.Add(uc.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     expiresAt.Unix(),
		"iat":     now.Unix(),
	})
	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResult{Token: tokenString, ExpiresAt: expiresAt, User: user}, nil
}

func (uc *AuthUseCase) seedDemoCollections(ctx context.Context, userID string) error {
	if err := uc.state.SetDemoMode(ctx, true); err != nil {
		return err
	}
	if err := uc.state.SetOnboardingComplete(ctx, true); err != nil {
		return err
	}
	if err := uc.swipes.Reset(ctx); err != nil {
		return err
	}
	if err := uc.matches.Replace(ctx, seed.DemoMatches(userID)); err != nil {
		return err
	}
	if err := uc.messages.Replace(ctx, seed.DemoMessages(userID)); err != nil {
		return err
	}
	if err := uc.trips.Replace(ctx, seed.DemoTrips(userID)); err != nil {
		return err
	}
	return uc.points.Replace(ctx, seed.DemoPointsLedger(userID))
}

func sanitizeEmailLocal(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == ' ' || r == '\t' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
