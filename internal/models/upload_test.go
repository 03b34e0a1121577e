package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() UploadDraft {
	return UploadDraft{
		Title:           "Sunset",
		Notes:           "quick study",
		SessionDateTime: time.Now().Add(-2 * time.Hour),
		ArtworkPhoto:    "/photos/art_1.jpg",
		LocationPhoto:   "/photos/loc_1.jpg",
		Location: UploadLocation{
			Name:   "Dock",
			Coords: Coordinates{Latitude: 1, Longitude: 2},
		},
	}
}

func TestUploadDraft_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validDraft().Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		d := validDraft()
		d.Title = ""
		assert.Error(t, d.Validate())
	})

	t.Run("missing session time", func(t *testing.T) {
		d := validDraft()
		d.SessionDateTime = time.Time{}
		assert.Error(t, d.Validate())
	})

	t.Run("future session time", func(t *testing.T) {
		d := validDraft()
		d.SessionDateTime = time.Now().Add(time.Hour)
		assert.Error(t, d.Validate())
	})

	t.Run("missing location name", func(t *testing.T) {
		d := validDraft()
		d.Location.Name = ""
		assert.Error(t, d.Validate())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		d := validDraft()
		d.Location.Coords.Latitude = 91
		assert.Error(t, d.Validate())
	})
}

func TestUpload_Apply(t *testing.T) {
	session := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	u := Upload{
		ID:              "id-1",
		CreatedAt:       time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		Title:           "Old title",
		Notes:           "old notes",
		SessionDateTime: session,
		ArtworkPhoto:    "/photos/art_old.jpg",
		Location:        UploadLocation{Name: "Dock", Coords: Coordinates{Latitude: 1, Longitude: 2}},
	}

	title := "New title"
	art := "/photos/art_new.jpg"
	u.Apply(UploadPatch{Title: &title, ArtworkPhoto: &art})

	assert.Equal(t, "New title", u.Title)
	assert.Equal(t, "/photos/art_new.jpg", u.ArtworkPhoto)
	// untouched fields retained
	assert.Equal(t, "old notes", u.Notes)
	assert.Equal(t, session, u.SessionDateTime)
	assert.Equal(t, "Dock", u.Location.Name)
}

func TestUpload_PhotoPaths(t *testing.T) {
	u := Upload{ArtworkPhoto: "/a.jpg", LocationPhoto: "/b.jpg"}
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, u.PhotoPaths())

	assert.Empty(t, Upload{}.PhotoPaths())
	assert.Equal(t, []string{"/b.jpg"}, Upload{LocationPhoto: "/b.jpg"}.PhotoPaths())
}

func TestUpload_JSONLayout(t *testing.T) {
	u := Upload{
		ID:              "1700000000000",
		CreatedAt:       time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		Title:           "Sunset",
		SessionDateTime: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
		Location:        UploadLocation{Name: "Dock", Coords: Coordinates{Latitude: 1, Longitude: 2}},
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	// key names are the persisted wire format and must stay stable
	for _, k := range []string{"id", "createdAt", "title", "sessionDateTime", "location"} {
		assert.Contains(t, m, k)
	}
	loc, ok := m["location"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, loc, "name")
	assert.Contains(t, loc, "coords")
}
