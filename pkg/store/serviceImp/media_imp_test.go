package serviceImp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawncare/entities"
	"lawncare/pkg/store/service"
)

func TestMediaLogLifecycle(t *testing.T) {
	s, clock := newStore(t, baseSeed(true))

	id, err := s.AddMediaLog(service.NewMediaLog{
		MediaURL:  "data:image/png;base64,AAAA",
		MediaType: entities.MediaImage,
		Note:      "brown patch by the fence",
		Tags:      []string{" problem", "dry", "", "problem"},
	})
	require.NoError(t, err)

	logs, err := s.MediaLogs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	got := logs[0]
	assert.Equal(t, id, got.ID)
	assert.False(t, got.Liked)
	assert.True(t, clock.Now().Equal(got.Date))
	assert.Equal(t, []string{"problem", "dry"}, got.Tags)

	require.NoError(t, s.ToggleMediaLogLike(id))
	logs, err = s.MediaLogs()
	require.NoError(t, err)
	assert.True(t, logs[0].Liked)

	edited := logs[0]
	edited.Note = "patch recovered"
	edited.Tags = []string{"growth"}
	edited.Date = time.Time{}
	require.NoError(t, s.UpdateMediaLog(edited))
	logs, err = s.MediaLogs()
	require.NoError(t, err)
	assert.Equal(t, "patch recovered", logs[0].Note)
	assert.Equal(t, []string{"growth"}, logs[0].Tags)
	assert.True(t, logs[0].Liked, "edit keeps the like")
	assert.True(t, got.Date.Equal(logs[0].Date))

	require.NoError(t, s.DeleteMediaLog(id))
	require.NoError(t, s.DeleteMediaLog(id))
	logs, err = s.MediaLogs()
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestUpdateMediaLog_KeepsLike(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	id, err := s.AddMediaLog(service.NewMediaLog{MediaURL: "data:image/png;base64,AAAA", MediaType: entities.MediaImage})
	require.NoError(t, err)
	require.NoError(t, s.ToggleMediaLogLike(id))

	require.NoError(t, s.UpdateMediaLog(entities.MediaLog{
		ID:        id,
		MediaURL:  "data:image/png;base64,AAAA",
		MediaType: entities.MediaImage,
		Note:      "edited note",
	}))
	logs, err := s.MediaLogs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "edited note", logs[0].Note)
	assert.True(t, logs[0].Liked)
}

func TestMediaLogs_UnknownIDsAreNoops(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	require.NoError(t, s.UpdateMediaLog(entities.MediaLog{ID: "missing", Note: "x"}))
	require.NoError(t, s.ToggleMediaLogLike("missing"))
	require.NoError(t, s.DeleteMediaLog("missing"))

	logs, err := s.MediaLogs()
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMediaLogs_NewestFirstAndByTag(t *testing.T) {
	s, clock := newStore(t, baseSeed(true))

	a, err := s.AddMediaLog(service.NewMediaLog{MediaType: entities.MediaImage, Tags: []string{"growth"}})
	require.NoError(t, err)
	clock.Advance(time.Hour)
	b, err := s.AddMediaLog(service.NewMediaLog{MediaType: entities.MediaVideo, Tags: []string{"dry", "growth"}})
	require.NoError(t, err)

	logs, err := s.MediaLogs()
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, b, logs[0].ID)
	assert.Equal(t, a, logs[1].ID)

	dry, err := s.MediaLogsByTag("dry")
	require.NoError(t, err)
	require.Len(t, dry, 1)
	assert.Equal(t, b, dry[0].ID)

	growth, err := s.MediaLogsByTag("growth")
	require.NoError(t, err)
	assert.Len(t, growth, 2)
}
