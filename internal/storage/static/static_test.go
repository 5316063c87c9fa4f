package static

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewValidatesAndStampsRecord(t *testing.T) {
	before := time.Now()

	src, err := New()
	require.NoError(t, err)

	info := src.GetPersonalInfo()
	require.Equal(t, "Your Name", info.Name)
	require.Equal(t, "Your Bio", info.Bio)
	require.Equal(t, "Available", info.CurrentStatus)
	require.False(t, info.LastUpdated.Before(before))
}

func TestGetPersonalInfoReturnsSameRecordEveryCall(t *testing.T) {
	src, err := New()
	require.NoError(t, err)

	first := src.GetPersonalInfo()
	second := src.GetPersonalInfo()

	require.Equal(t, first, second)
	require.True(t, first.LastUpdated.Equal(second.LastUpdated))
}

func TestGetStudyInfoIsFreshPerCall(t *testing.T) {
	src, err := New()
	require.NoError(t, err)

	first := src.GetStudyInfo()
	require.Equal(t, "Your University", first.Institution)
	require.Equal(t, "Your Course", first.Course)
	require.Equal(t, 2024, first.Year)
	require.Len(t, first.Achievements, 2)
	require.Equal(t, "Dean's List", first.Achievements["2024"])
	require.Equal(t, "Best Project Award", first.Achievements["2023"])

	// Mutating one returned map must not bleed into later calls.
	first.Achievements["2025"] = "tampered"

	second := src.GetStudyInfo()
	require.Len(t, second.Achievements, 2)
	require.NotContains(t, second.Achievements, "2025")
}
