package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/soukhub/soukhub-go/schema"
)

// Session is the persisted snapshot of the logged-in account. An empty
// AuthToken means anonymous; the identity fields are only meaningful while a
// token is present, but partial snapshots (token without profile, or stale
// profile fields) are legal and readers must tolerate them.
type Session struct {
	AuthToken   string      `json:"authToken,omitempty"`
	UserID      schema.ID   `json:"userId,omitempty"`
	Role        schema.Role `json:"role,omitempty"`
	DisplayName string      `json:"displayName,omitempty"`
	Email       string      `json:"email,omitempty"`
	Telephone   string      `json:"telephone,omitempty"`
	Address     string      `json:"address,omitempty"`
	VendorID    schema.ID   `json:"vendorId,omitempty"`
	CourierID   schema.ID   `json:"courierId,omitempty"`
}

// Profile carries the identity fields written on login. A nil field is not
// written, leaving any previously stored value untouched; the store never
// merges beyond that.
type Profile struct {
	UserID      *schema.ID
	Role        *schema.Role
	DisplayName *string
	Email       *string
	Telephone   *string
	Address     *string
	VendorID    *schema.ID
	CourierID   *schema.ID
}

// ProfileOf builds the full Profile for a user record, as written on login.
func ProfileOf(user schema.User) Profile {
	p := Profile{
		UserID:      &user.ID,
		Role:        &user.Role,
		DisplayName: &user.Name,
		Email:       &user.Email,
	}
	if user.Telephone != "" {
		p.Telephone = &user.Telephone
	}
	if user.Address != "" {
		p.Address = &user.Address
	}
	if user.VendorID != "" {
		p.VendorID = &user.VendorID
	}
	if user.CourierID != "" {
		p.CourierID = &user.CourierID
	}
	return p
}

func (s *Session) apply(p Profile) {
	if p.UserID != nil {
		s.UserID = *p.UserID
	}
	if p.Role != nil {
		s.Role = *p.Role
	}
	if p.DisplayName != nil {
		s.DisplayName = *p.DisplayName
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Telephone != nil {
		s.Telephone = *p.Telephone
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.VendorID != nil {
		s.VendorID = *p.VendorID
	}
	if p.CourierID != nil {
		s.CourierID = *p.CourierID
	}
}

// Claims returns the claim set of a JWT-shaped token. The token is parsed
// without signature verification; the client has no issuer keys and only
// inspects claims to anticipate expiry or display the subject. Opaque tokens
// return ok=false.
func (s Session) Claims() (jwt.MapClaims, bool) {
	if s.AuthToken == "" {
		return nil, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AuthToken, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// ExpiresAt returns the expiry claim of a JWT-shaped token, when it carries
// one.
func (s Session) ExpiresAt() (time.Time, bool) {
	claims, ok := s.Claims()
	if !ok {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ErrNoToken is returned by the TokenSource when the store holds no credential.
var ErrNoToken = errors.New("session: no token stored")

type tokenSource struct {
	store Store
}

func (t tokenSource) Token() (*oauth2.Token, error) {
	token, ok := t.store.Token()
	if !ok {
		return nil, ErrNoToken
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// TokenSource adapts a Store to oauth2.TokenSource so the stored credential
// can feed any oauth2-aware HTTP stack.
func TokenSource(store Store) oauth2.TokenSource {
	return tokenSource{store: store}
}
