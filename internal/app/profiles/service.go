package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticketfront/internal/clock"
	"ticketfront/internal/kv"
)

var (
	// ErrProfileNotFound signals that the client has no stored profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidProfile indicates validation failure for profile data.
	ErrInvalidProfile = errors.New("invalid profile")
)

// DefaultAvatar is used until the user picks their own picture.
const DefaultAvatar = "/profile-image.png"

// JoinedDateLayout renders the month a profile was created, e.g. "June 2025".
const JoinedDateLayout = "January 2006"

// Profile is the storefront's view of a returning buyer.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	JoinedDate string `json:"joinedDate"`
	Avatar     string `json:"avatar"`
}

// Service coordinates profile reads and edits
type Service interface {
	Get(ctx context.Context, clientID string) (Profile, error)
	Update(ctx context.Context, clientID string, profile Profile) (Profile, error)
	CreateIfMissing(ctx context.Context, clientID string, profile Profile) (bool, error)
}

type service struct {
	store kv.Store
	clock clock.Clock
}

// New constructs a profiles Service
func New(store kv.Store, clk clock.Clock) Service {
	return &service{store: store, clock: clk}
}

func (s *service) Get(ctx context.Context, clientID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}

	profile, found, err := s.load(ctx, clientID)
	if err != nil {
		return Profile{}, err
	}
	if !found {
		return Profile{}, ErrProfileNotFound
	}
	return profile, nil
}

// Update replaces the stored profile. Joined date and avatar carry over from
// the previous profile when left blank.
func (s *service) Update(ctx context.Context, clientID string, profile Profile) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	if err := validateProfile(profile); err != nil {
		return Profile{}, err
	}

	existing, found, err := s.load(ctx, clientID)
	if err != nil {
		return Profile{}, err
	}
	if found {
		if profile.JoinedDate == "" {
			profile.JoinedDate = existing.JoinedDate
		}
		if profile.Avatar == "" {
			profile.Avatar = existing.Avatar
		}
	}
	profile = s.withDefaults(profile)

	if err := kv.PutJSON(ctx, kv.Namespace(s.store, clientID), kv.KeyProfile, profile); err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// CreateIfMissing stores profile unless the client already has one. It reports
// whether a profile was written.
func (s *service) CreateIfMissing(ctx context.Context, clientID string, profile Profile) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := validateProfile(profile); err != nil {
		return false, err
	}

	_, found, err := s.load(ctx, clientID)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}

	if err := kv.PutJSON(ctx, kv.Namespace(s.store, clientID), kv.KeyProfile, s.withDefaults(profile)); err != nil {
		return false, fmt.Errorf("save profile: %w", err)
	}
	return true, nil
}

func (s *service) load(ctx context.Context, clientID string) (Profile, bool, error) {
	profile, err := kv.LoadJSON[*Profile](ctx, kv.Namespace(s.store, clientID), kv.KeyProfile)
	if err != nil {
		return Profile{}, false, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return Profile{}, false, nil
	}
	return *profile, true, nil
}

func (s *service) withDefaults(profile Profile) Profile {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.JoinedDate == "" {
		profile.JoinedDate = s.clock.Now().Format(JoinedDateLayout)
	}
	if profile.Avatar == "" {
		profile.Avatar = DefaultAvatar
	}
	return profile
}

func validateProfile(profile Profile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if strings.TrimSpace(profile.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidProfile)
	}
	return nil
}
