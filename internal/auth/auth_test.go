package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeAccount struct {
	loginErr  error
	logoutErr error
	jar       *Jar
}

func (f *fakeAccount) Login(context.Context, string, string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	u, _ := url.Parse("http://shop.example.sn/")
	f.jar.SetCookies(u, []*http.Cookie{{Name: "storefront_token", Value: "jwt", Path: "/"}})
	return nil
}

func (f *fakeAccount) Logout(context.Context) error {
	return f.logoutErr
}

func TestState_SubscribeReceivesChanges(t *testing.T) {
	s := NewState()
	ch, cancel := s.Subscribe()
	defer cancel()

	assert.False(t, s.IsAuthenticated())

	s.Set(true)
	assert.True(t, <-ch)
	assert.True(t, s.IsAuthenticated())

	// то же значение повторно не рассылается
	s.Set(true)
	select {
	case v := <-ch:
		t.Fatalf("unexpected notification %v", v)
	default:
	}

	s.Set(false)
	assert.False(t, <-ch)
}

func TestState_SlowSubscriberSeesLatest(t *testing.T) {
	s := NewState()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Set(true)
	s.Set(false)
	s.Set(true)

	assert.True(t, <-ch)
}

func TestState_CancelClosesChannel(t *testing.T) {
	s := NewState()
	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	s.Set(true)
}

func TestJar_Reset(t *testing.T) {
	jar, err := NewJar()
	require.NoError(t, err)

	u, _ := url.Parse("http://shop.example.sn/api/wishlist")
	jar.SetCookies(u, []*http.Cookie{{Name: "storefront_token", Value: "abc", Path: "/"}})
	assert.Len(t, jar.Cookies(u), 1)

	require.NoError(t, jar.Reset())
	assert.Empty(t, jar.Cookies(u))
}

func TestManager_LoginLogout(t *testing.T) {
	jar, err := NewJar()
	require.NoError(t, err)
	state := NewState()
	account := &fakeAccount{jar: jar}
	m := NewManager(state, jar, account, zaptest.NewLogger(t).Sugar())
	u, _ := url.Parse("http://shop.example.sn/")

	require.NoError(t, m.Login(context.Background(), "awa@example.sn", "secret"))
	assert.True(t, state.IsAuthenticated())
	assert.Len(t, jar.Cookies(u), 1)

	// бэкенд недоступен, но локально выходим
	account.logoutErr = errors.New("connection refused")
	require.NoError(t, m.Logout(context.Background()))
	assert.False(t, state.IsAuthenticated())
	assert.Empty(t, jar.Cookies(u))
}

func TestManager_LoginFailureKeepsSignedOut(t *testing.T) {
	jar, err := NewJar()
	require.NoError(t, err)
	state := NewState()
	m := NewManager(state, jar, &fakeAccount{jar: jar, loginErr: errors.New("bad password")}, zaptest.NewLogger(t).Sugar())

	assert.Error(t, m.Login(context.Background(), "awa@example.sn", "wrong"))
	assert.False(t, state.IsAuthenticated())
}
