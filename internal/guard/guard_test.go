package guard

import (
	"testing"
	"time"

	"dermasilk/config"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPIN = "9103784"

func newTestGuard(t *testing.T) (*Guard, *repository.GuardRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.GuardState{}))

	repo := repository.NewGuardRepository(db)
	g := New(repo, &config.GuardConfig{
		PIN:           testPIN,
		MaxAttempts:   3,
		BlockDuration: 15 * time.Minute,
	})
	return g, repo
}

func TestCorrectPINResetsAttempts(t *testing.T) {
	g, _ := newTestGuard(t)
	const action = "clients:delete"

	ok, st, err := g.Submit(action, "0000000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, st.AttemptsUsed)

	ok, st, err = g.Submit(action, testPIN)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, st.AttemptsUsed)
	assert.False(t, st.Blocked)
}

func TestThreeWrongAttemptsBlockEvenCorrectPIN(t *testing.T) {
	g, _ := newTestGuard(t)
	const action = "clients:delete"

	for i := 0; i < 3; i++ {
		ok, _, err := g.Submit(action, "1111111")
		require.NoError(t, err)
		assert.False(t, ok)
	}

	st, err := g.Status(action)
	require.NoError(t, err)
	assert.True(t, st.Blocked)
	// ~15 minutes remaining, reported in seconds.
	assert.InDelta(t, 900, st.RemainingSeconds, 2)

	// A fourth submission with the CORRECT pin is still rejected.
	ok, st, err := g.Submit(action, testPIN)
	assert.ErrorIs(t, err, ErrBlocked)
	assert.False(t, ok)
	assert.True(t, st.Blocked)
}

func TestBlockExpiresNaturally(t *testing.T) {
	g, _ := newTestGuard(t)
	const action = "clients:delete"

	base := time.Now()
	g.now = func() time.Time { return base }
	for i := 0; i < 3; i++ {
		_, _, err := g.Submit(action, "1111111")
		require.NoError(t, err)
	}
	_, _, err := g.Submit(action, testPIN)
	assert.ErrorIs(t, err, ErrBlocked)

	// Move past the deadline: attempts reset to zero and a correct PIN
	// goes through.
	g.now = func() time.Time { return base.Add(15*time.Minute + time.Second) }
	st, err := g.Status(action)
	require.NoError(t, err)
	assert.False(t, st.Blocked)
	assert.Equal(t, 0, st.AttemptsUsed)

	ok, _, err := g.Submit(action, testPIN)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBlockSurvivesRestart(t *testing.T) {
	g, repo := newTestGuard(t)
	const action = "clients:delete"

	for i := 0; i < 3; i++ {
		_, _, err := g.Submit(action, "2222222")
		require.NoError(t, err)
	}

	// A fresh Guard over the same persisted state stays locked, like the
	// console after a page reload.
	g2 := New(repo, &config.GuardConfig{PIN: testPIN, MaxAttempts: 3, BlockDuration: 15 * time.Minute})
	_, st, err := g2.Submit(action, testPIN)
	assert.ErrorIs(t, err, ErrBlocked)
	assert.True(t, st.Blocked)
}

func TestActionsAreIndependent(t *testing.T) {
	g, _ := newTestGuard(t)

	for i := 0; i < 3; i++ {
		_, _, err := g.Submit("clients:delete", "3333333")
		require.NoError(t, err)
	}
	_, _, err := g.Submit("clients:delete", testPIN)
	assert.ErrorIs(t, err, ErrBlocked)

	// A different guarded action has its own state and is not blocked.
	ok, _, err := g.Submit("memberships:delete", testPIN)
	require.NoError(t, err)
	assert.True(t, ok)
}
