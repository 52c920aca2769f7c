package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2030, 6, 10, 12, 0, 0, 0, time.UTC)

func createPolicy() WindowPolicy {
	return WindowPolicy{
		RequireFuture:      true,
		Now:                fixedNow,
		MinDurationMinutes: DefaultMinDurationMinutes,
	}
}

func TestBuildWindow_ConferenceRoomScenario(t *testing.T) {
	w, err := BuildWindow("2099-01-01", "09:00", 60, createPolicy())
	require.NoError(t, err)

	assert.Equal(t, "2099-01-01T09:00:00Z", w.StartISO())
	assert.Equal(t, "2099-01-01T10:00:00Z", w.EndISO())
	assert.Equal(t, time.UTC, w.Start().Location())
}

func TestBuildWindow_EndMinusStartEqualsDuration(t *testing.T) {
	for _, minutes := range []int{15, 30, 45, 60, 90, 240, 24 * 60, 3 * 24 * 60} {
		w, err := BuildWindow("2031-03-01", "23:45", minutes, createPolicy())
		require.NoError(t, err, "duration %d", minutes)
		assert.Equal(t, time.Duration(minutes)*time.Minute, w.Duration(), "duration %d", minutes)
	}
}

func TestBuildWindow_ValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		start    string
		duration int
		policy   WindowPolicy
		reason   string
	}{
		{
			name: "zero duration", date: "2099-01-01", start: "09:00", duration: 0,
			policy: createPolicy(), reason: ReasonDurationNotPositive,
		},
		{
			name: "negative duration wins over bad date", date: "not-a-date", start: "xx", duration: -30,
			policy: createPolicy(), reason: ReasonDurationNotPositive,
		},
		{
			name: "below minimum", date: "2099-01-01", start: "09:00", duration: 10,
			policy: createPolicy(), reason: "duration must be at least 15 minutes",
		},
		{
			name: "bad date", date: "2099-13-01", start: "09:00", duration: 30,
			policy: createPolicy(), reason: ReasonInvalidDateOrTime,
		},
		{
			name: "bad time", date: "2099-01-01", start: "25:00", duration: 30,
			policy: createPolicy(), reason: ReasonInvalidDateOrTime,
		},
		{
			name: "bad date wins over past", date: "yesterday", start: "09:00", duration: 30,
			policy: createPolicy(), reason: ReasonInvalidDateOrTime,
		},
		{
			name: "past start", date: "2030-06-10", start: "11:59", duration: 30,
			policy: createPolicy(), reason: ReasonStartInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := BuildWindow(tt.date, tt.start, tt.duration, tt.policy)
			require.ErrorIs(t, err, ErrValidation)
			reason, ok := ValidationReason(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, reason)
			assert.True(t, w.IsZero())
		})
	}
}

func TestBuildWindow_NonPositiveDurationNeverBuilds(t *testing.T) {
	for _, minutes := range []int{0, -1, -15, -1440} {
		w, err := BuildWindow("2099-01-01", "09:00", minutes, createPolicy())
		require.Error(t, err)
		reason, _ := ValidationReason(err)
		assert.Equal(t, ReasonDurationNotPositive, reason)
		assert.True(t, w.IsZero())
	}
}

func TestBuildWindow_StartEqualToNowIsAllowed(t *testing.T) {
	_, err := BuildWindow("2030-06-10", "12:00", 30, createPolicy())
	assert.NoError(t, err)
}

func TestBuildWindow_PastAllowedWithoutRequireFuture(t *testing.T) {
	policy := createPolicy()
	policy.RequireFuture = false

	w, err := BuildWindow("2020-01-01", "08:00", 30, policy)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01T08:00:00Z", w.StartISO())
}

func TestBuildWindow_MinimumDisabled(t *testing.T) {
	policy := createPolicy()
	policy.MinDurationMinutes = 0

	w, err := BuildWindow("2099-01-01", "09:00", 5, policy)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, w.Duration())
}

func TestBuildWindow_Idempotent(t *testing.T) {
	a, errA := BuildWindow("2099-01-01", "09:00", 45, createPolicy())
	b, errB := BuildWindow("2099-01-01", "09:00", 45, createPolicy())
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestBuildWindow_LocationNormalizedToUTC(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	policy := createPolicy()
	policy.Location = bangkok

	w, err := BuildWindow("2099-01-01", "09:00", 60, policy)
	require.NoError(t, err)
	assert.Equal(t, "2099-01-01T02:00:00Z", w.StartISO())
	assert.Equal(t, "2099-01-01T03:00:00Z", w.EndISO())
}

func TestBuildWindow_AcceptsSecondsSuffix(t *testing.T) {
	w, err := BuildWindow("2099-01-01", "09:00:00", 15, createPolicy())
	require.NoError(t, err)
	assert.Equal(t, "2099-01-01T09:15:00Z", w.EndISO())
}

func TestBuildRange(t *testing.T) {
	policy := createPolicy()
	policy.RequireFuture = false

	t.Run("valid", func(t *testing.T) {
		w, err := BuildRange("2099-02-03", "10:00", "11:30", policy)
		require.NoError(t, err)
		assert.Equal(t, "2099-02-03T10:00:00Z", w.StartISO())
		assert.Equal(t, 90*time.Minute, w.Duration())
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := BuildRange("2099-02-03", "10:00", "10:00", policy)
		reason, _ := ValidationReason(err)
		assert.Equal(t, ReasonEndBeforeStart, reason)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := BuildRange("2099-02-03", "23:00", "01:00", policy)
		reason, _ := ValidationReason(err)
		assert.Equal(t, ReasonEndBeforeStart, reason)
	})

	t.Run("missing end", func(t *testing.T) {
		_, err := BuildRange("2099-02-03", "10:00", "", policy)
		reason, _ := ValidationReason(err)
		assert.Equal(t, ReasonInvalidDateOrTime, reason)
	})

	t.Run("shorter than minimum", func(t *testing.T) {
		_, err := BuildRange("2099-01-01", "09:00", "09:01", policy)
		reason, _ := ValidationReason(err)
		assert.Equal(t, "duration must be at least 15 minutes", reason)
	})

	t.Run("minimum disabled", func(t *testing.T) {
		open := policy
		open.MinDurationMinutes = 0
		w, err := BuildRange("2099-01-01", "09:00", "09:01", open)
		require.NoError(t, err)
		assert.Equal(t, time.Minute, w.Duration())
	})

	t.Run("past checked before ordering when required", func(t *testing.T) {
		strict := createPolicy()
		_, err := BuildRange("2020-01-01", "10:00", "09:00", strict)
		reason, _ := ValidationReason(err)
		assert.Equal(t, ReasonStartInPast, reason)
	})
}

func TestTimeWindow_Overlaps(t *testing.T) {
	policy := createPolicy()
	a, _ := BuildWindow("2099-01-01", "09:00", 60, policy)
	b, _ := BuildWindow("2099-01-01", "09:30", 60, policy)
	c, _ := BuildWindow("2099-01-01", "10:00", 60, policy)

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c), "adjacent windows do not overlap")
}

func TestBuildWindow_DurationTooLong(t *testing.T) {
	for _, minutes := range []int{153722868, 307445735, math.MaxInt32} {
		_, err := BuildWindow("2099-01-01", "09:00", minutes, createPolicy())
		reason, ok := ValidationReason(err)
		require.True(t, ok, "duration %d", minutes)
		assert.Equal(t, ReasonDurationTooLong, reason)
	}

	w, err := BuildWindow("2099-01-01", "09:00", 153722867, createPolicy())
	require.NoError(t, err)
	assert.Equal(t, time.Duration(153722867)*time.Minute, w.Duration())
}

func TestBuildWindow_ClockInDSTGap(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	policy := WindowPolicy{Location: loc}

	_, err = BuildWindow("2030-03-31", "02:30", 30, policy)
	reason, _ := ValidationReason(err)
	assert.Equal(t, ReasonInvalidDateOrTime, reason)

	_, err = BuildRange("2030-03-31", "01:30", "02:15", policy)
	reason, _ = ValidationReason(err)
	assert.Equal(t, ReasonInvalidDateOrTime, reason)

	w, err := BuildWindow("2030-03-31", "03:00", 30, policy)
	require.NoError(t, err)
	assert.Equal(t, "2030-03-31T01:00:00Z", w.StartISO())
}
