package session

import (
	"net/http"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcblab/internal/apperrors"
	"pcblab/internal/catalog"
	"pcblab/internal/metrics"
	"pcblab/internal/models"
)

func newSession() *Session {
	return New(catalog.Default())
}

func TestLoginLogout(t *testing.T) {
	s := newSession()
	assert.False(t, s.IsLoggedIn())

	_, ok := s.Current()
	assert.False(t, ok)

	s.Login(models.User{ID: "u1", Email: "a@b.com", Name: "Ana"})
	u, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a@b.com", u.Email)
	assert.True(t, s.IsLoggedIn())

	s.Logout()
	assert.False(t, s.IsLoggedIn())

	// logout is unconditional
	s.Logout()
	assert.False(t, s.IsLoggedIn())
}

func TestLoginIsLastWriteWins(t *testing.T) {
	s := newSession()
	s.Login(models.User{ID: "u1", Email: "first@b.com"})
	s.Login(models.User{ID: "u2", Email: "second@b.com"})

	u, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "u2", u.ID)
}

func TestSelectPlanRequiresLogin(t *testing.T) {
	s := newSession()

	_, err := s.SelectPlan("basic")
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Equal(t, http.StatusUnauthorized, apperrors.HTTPStatus(err))

	_, ok := s.SelectedPlan()
	assert.False(t, ok)
}

func TestSelectPlan(t *testing.T) {
	s := newSession()
	s.Login(models.User{ID: "u1", Email: "a@b.com"})

	plan, err := s.SelectPlan("enterprise")
	require.NoError(t, err)
	assert.Equal(t, "Enterprise Plan", plan.Name)

	selected, ok := s.SelectedPlan()
	require.True(t, ok)
	assert.Equal(t, "enterprise", selected.ID)

	_, err = s.SelectPlan("platinum")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	selected, _ = s.SelectedPlan()
	assert.Equal(t, "enterprise", selected.ID, "a failed selection keeps the previous plan")

	s.Logout()
	_, ok = s.SelectedPlan()
	assert.False(t, ok)
}

func TestSwitchingUserClearsPlan(t *testing.T) {
	s := newSession()
	s.Login(models.User{ID: "u1", Email: "first@b.com"})
	_, err := s.SelectPlan("basic")
	require.NoError(t, err)

	s.Login(models.User{ID: "u2", Email: "second@b.com"})
	_, ok := s.SelectedPlan()
	assert.False(t, ok)
}

func TestSameAccountReloginKeepsPlan(t *testing.T) {
	s := newSession()
	s.Login(models.User{ID: "u1", Email: "a@b.com"})
	_, err := s.SelectPlan("basic")
	require.NoError(t, err)

	s.Login(models.User{ID: "u2", Email: "A@B.com"})
	plan, ok := s.SelectedPlan()
	require.True(t, ok)
	assert.Equal(t, "basic", plan.ID)

	user, _ := s.Current()
	assert.Equal(t, "u2", user.ID)
}

func TestActiveSessionsGauge(t *testing.T) {
	before := testutil.ToFloat64(metrics.SessionsActive)

	a, b := newSession(), newSession()
	a.Login(models.User{ID: "u1", Email: "a@b.com"})
	a.Login(models.User{ID: "u2", Email: "c@d.com"})
	b.Login(models.User{ID: "u3", Email: "e@f.com"})
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.SessionsActive))

	b.Logout()
	b.Logout()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SessionsActive))

	a.Logout()
	assert.Equal(t, before, testutil.ToFloat64(metrics.SessionsActive))
}

func TestConcurrentAccess(t *testing.T) {
	s := newSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Login(models.User{ID: "u", Email: "a@b.com"})
		}()
		go func() {
			defer wg.Done()
			s.Current()
			s.IsLoggedIn()
		}()
	}
	wg.Wait()
	assert.True(t, s.IsLoggedIn())
}
