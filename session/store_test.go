package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/soukhub/soukhub-go/schema"
)

func TestMemoryStore_TokenLifecycle(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Token()
	require.False(t, ok)
	require.False(t, store.IsAuthenticated())

	require.NoError(t, store.SaveToken("abc"))
	token, ok := store.Token()
	require.True(t, ok)
	require.Equal(t, "abc", token)
	require.True(t, store.IsAuthenticated())

	// overwrite, no validation of shape
	require.NoError(t, store.SaveToken("def"))
	token, _ = store.Token()
	require.Equal(t, "def", token)

	require.NoError(t, store.Clear())
	require.False(t, store.IsAuthenticated())
	// idempotent
	require.NoError(t, store.Clear())
}

func TestMemoryStore_PartialProfile(t *testing.T) {
	store := NewMemoryStore()
	id := schema.ID("7")
	role := schema.RoleSeller
	name := "Amina"
	email := "amina@example.com"
	phone := "0601020304"

	require.NoError(t, store.SaveProfile(Profile{
		UserID:      &id,
		Role:        &role,
		DisplayName: &name,
		Email:       &email,
		Telephone:   &phone,
	}))

	// second write omits telephone: the stored value must survive
	other := "Amina B."
	require.NoError(t, store.SaveProfile(Profile{DisplayName: &other}))

	snap := store.Snapshot()
	require.Equal(t, "0601020304", snap.Telephone)
	require.Equal(t, "Amina B.", snap.DisplayName)
	require.Equal(t, schema.RoleSeller, snap.Role)
}

func TestProfileOf(t *testing.T) {
	user := schema.User{
		ID:        "9",
		Name:      "Karim",
		Email:     "karim@example.com",
		Role:      schema.RoleCourier,
		CourierID: "c-3",
	}
	store := NewMemoryStore()
	require.NoError(t, store.SaveProfile(ProfileOf(user)))

	snap := store.Snapshot()
	require.Equal(t, schema.ID("9"), snap.UserID)
	require.Equal(t, schema.RoleCourier, snap.Role)
	require.Equal(t, schema.ID("c-3"), snap.CourierID)
	require.Empty(t, snap.VendorID)
}

func TestSession_Claims(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "9",
		"role": "courier",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, ok := Session{AuthToken: signed}.Claims()
	require.True(t, ok)
	require.Equal(t, "9", claims["sub"])
	require.Equal(t, "courier", claims["role"])

	_, ok = Session{AuthToken: "opaque-token"}.Claims()
	require.False(t, ok)
	_, ok = Session{}.Claims()
	require.False(t, ok)
}

func TestSession_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "9",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	got, ok := Session{AuthToken: signed}.ExpiresAt()
	require.True(t, ok)
	require.Equal(t, exp.Unix(), got.Unix())

	// opaque tokens carry no claims
	_, ok = Session{AuthToken: "opaque-token"}.ExpiresAt()
	require.False(t, ok)
	_, ok = Session{}.ExpiresAt()
	require.False(t, ok)
}

func TestTokenSource(t *testing.T) {
	store := NewMemoryStore()
	_, err := TokenSource(store).Token()
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.SaveToken("abc"))
	token, err := TokenSource(store).Token()
	require.NoError(t, err)
	require.Equal(t, "abc", token.AccessToken)
	require.Equal(t, "Bearer", token.TokenType)
}
