package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/easel-app/easel/internal/models"
	"github.com/easel-app/easel/internal/photos"
)

const sessionTimeLayout = "2006-01-02 15:04"

// ListUploads prints the gallery: all recorded sessions, newest first.
func (a *App) ListUploads(ctx context.Context) error {
	uploads := a.store.GetAllUploads(ctx)
	if len(uploads) == 0 {
		fmt.Fprintln(a.out, "No sessions recorded yet.")
		return nil
	}

	sortByRecency(uploads)
	for _, u := range uploads {
		fmt.Fprintln(a.out, formatUploadLine(u))
	}
	return nil
}

// ShowUpload prints one session in full.
func (a *App) ShowUpload(ctx context.Context, id string) error {
	u := a.store.GetUploadByID(ctx, id)
	if u == nil {
		fmt.Fprintf(a.out, "No session with id %s.\n", id)
		return nil
	}

	fmt.Fprintf(a.out, "Title:    %s\n", u.Title)
	fmt.Fprintf(a.out, "Session:  %s\n", u.SessionDateTime.Local().Format(sessionTimeLayout))
	fmt.Fprintf(a.out, "Place:    %s (%.4f, %.4f)\n",
		u.Location.Name, u.Location.Coords.Latitude, u.Location.Coords.Longitude)
	if u.Notes != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", u.Notes)
	}
	if u.ArtworkPhoto != "" {
		fmt.Fprintf(a.out, "Artwork:  %s\n", u.ArtworkPhoto)
	}
	if u.LocationPhoto != "" {
		fmt.Fprintf(a.out, "Location: %s\n", u.LocationPhoto)
	}
	fmt.Fprintf(a.out, "Recorded: %s (id %s)\n", u.CreatedAt.Local().Format(sessionTimeLayout), u.ID)
	return nil
}

// AddUpload walks through recording a new session: fields, photos, save.
// Photos are imported into managed storage before the record is written, so
// a saved record never references a file that was not copied.
func (a *App) AddUpload(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	notes, err := GetMultiline(a.reader, "Notes", a.out)
	if err != nil {
		return err
	}

	dtRaw, err := GetSimpleText(a.reader, "Session date & time ("+sessionTimeLayout+")", a.out)
	if err != nil {
		return err
	}
	sessionAt, err := time.ParseInLocation(sessionTimeLayout, dtRaw, time.Local)
	if err != nil {
		fmt.Fprintln(a.out, "That is not a valid date & time.")
		return nil
	}

	locName, err := GetSimpleText(a.reader, "Location name", a.out)
	if err != nil {
		return err
	}
	lat, err := GetFloat(a.reader, "Latitude", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Latitude must be a number.")
		return nil
	}
	lon, err := GetFloat(a.reader, "Longitude", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Longitude must be a number.")
		return nil
	}

	artSrc, err := GetSimpleText(a.reader, "Artwork photo file (empty to skip)", a.out)
	if err != nil {
		return err
	}
	locSrc, err := GetSimpleText(a.reader, "Location photo file (empty to skip)", a.out)
	if err != nil {
		return err
	}

	var artPath, locPath string
	if artSrc != "" {
		if artPath, err = a.photos.Import(ctx, artSrc, photos.KindArtwork); err != nil {
			a.log.Error(ctx, "artwork photo import failed", "src", artSrc, "error", err)
			fmt.Fprintln(a.out, "Could not copy the artwork photo. Please try again.")
			return nil
		}
	}
	if locSrc != "" {
		if locPath, err = a.photos.Import(ctx, locSrc, photos.KindLocation); err != nil {
			a.log.Error(ctx, "location photo import failed", "src", locSrc, "error", err)
			a.discardPhoto(ctx, artPath)
			fmt.Fprintln(a.out, "Could not copy the location photo. Please try again.")
			return nil
		}
	}

	draft := models.UploadDraft{
		Title:           title,
		Notes:           notes,
		SessionDateTime: sessionAt,
		ArtworkPhoto:    artPath,
		LocationPhoto:   locPath,
		Location: models.UploadLocation{
			Name:   locName,
			Coords: models.Coordinates{Latitude: lat, Longitude: lon},
		},
	}

	id, err := a.store.SaveUpload(ctx, draft)
	if err != nil {
		// the record was not created; release the copies made for it
		a.discardPhoto(ctx, artPath)
		a.discardPhoto(ctx, locPath)

		if isValidationError(err) {
			fmt.Fprintln(a.out, "Not saved: "+validationMessage(err))
			return nil
		}
		a.log.Error(ctx, "failed to save upload", "error", err)
		fmt.Fprintln(a.out, retryMessage)
		return nil
	}

	fmt.Fprintf(a.out, "Saved session %s.\n", id)
	return nil
}

// EditUpload patches an existing session. Empty answers keep the current
// value; notes accept '-' to clear them. When a photo is replaced, the
// superseded file is deleted after the update was persisted; the store itself
// never touches files on update.
func (a *App) EditUpload(ctx context.Context, id string) error {
	existing := a.store.GetUploadByID(ctx, id)
	if existing == nil {
		fmt.Fprintf(a.out, "No session with id %s.\n", id)
		return nil
	}

	var patch models.UploadPatch

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title [%s] (empty to keep)", existing.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		patch.Title = &title
	}

	notes, err := GetMultiline(a.reader, "Notes (empty to keep, '-' to clear)", a.out)
	if err != nil {
		return err
	}
	switch notes {
	case "":
	case "-":
		cleared := ""
		patch.Notes = &cleared
	default:
		patch.Notes = &notes
	}

	dtRaw, err := GetSimpleText(a.reader, "Session date & time (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if dtRaw != "" {
		sessionAt, err := time.ParseInLocation(sessionTimeLayout, dtRaw, time.Local)
		if err != nil {
			fmt.Fprintln(a.out, "That is not a valid date & time.")
			return nil
		}
		patch.SessionDateTime = &sessionAt
	}

	locName, err := GetSimpleText(a.reader, fmt.Sprintf("Location name [%s] (empty to keep)", existing.Location.Name), a.out)
	if err != nil {
		return err
	}
	if locName != "" {
		lat, err := GetFloat(a.reader, "Latitude", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Latitude must be a number.")
			return nil
		}
		lon, err := GetFloat(a.reader, "Longitude", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Longitude must be a number.")
			return nil
		}
		patch.Location = &models.UploadLocation{
			Name:   locName,
			Coords: models.Coordinates{Latitude: lat, Longitude: lon},
		}
	}

	artSrc, err := GetSimpleText(a.reader, "New artwork photo file (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if artSrc != "" {
		artPath, err := a.photos.Import(ctx, artSrc, photos.KindArtwork)
		if err != nil {
			a.log.Error(ctx, "artwork photo import failed", "src", artSrc, "error", err)
			fmt.Fprintln(a.out, "Could not copy the artwork photo. Please try again.")
			return nil
		}
		patch.ArtworkPhoto = &artPath
	}

	locSrc, err := GetSimpleText(a.reader, "New location photo file (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if locSrc != "" {
		locPath, err := a.photos.Import(ctx, locSrc, photos.KindLocation)
		if err != nil {
			a.log.Error(ctx, "location photo import failed", "src", locSrc, "error", err)
			if patch.ArtworkPhoto != nil {
				a.discardPhoto(ctx, *patch.ArtworkPhoto)
			}
			fmt.Fprintln(a.out, "Could not copy the location photo. Please try again.")
			return nil
		}
		patch.LocationPhoto = &locPath
	}

	ok, err := a.store.UpdateUpload(ctx, id, patch)
	if err != nil {
		if patch.ArtworkPhoto != nil {
			a.discardPhoto(ctx, *patch.ArtworkPhoto)
		}
		if patch.LocationPhoto != nil {
			a.discardPhoto(ctx, *patch.LocationPhoto)
		}
		a.log.Error(ctx, "failed to update upload", "id", id, "error", err)
		fmt.Fprintln(a.out, retryMessage)
		return nil
	}
	if !ok {
		fmt.Fprintf(a.out, "No session with id %s.\n", id)
		return nil
	}

	// stale-photo cleanup after a successful update is this flow's job
	if patch.ArtworkPhoto != nil && existing.ArtworkPhoto != "" && existing.ArtworkPhoto != *patch.ArtworkPhoto {
		a.discardPhoto(ctx, existing.ArtworkPhoto)
	}
	if patch.LocationPhoto != nil && existing.LocationPhoto != "" && existing.LocationPhoto != *patch.LocationPhoto {
		a.discardPhoto(ctx, existing.LocationPhoto)
	}

	fmt.Fprintln(a.out, "Session updated.")
	return nil
}

// DeleteUpload removes a session and its photo files.
func (a *App) DeleteUpload(ctx context.Context, id string) error {
	ok, err := a.store.DeleteUpload(ctx, id)
	if err != nil {
		a.log.Error(ctx, "failed to delete upload", "id", id, "error", err)
		fmt.Fprintln(a.out, retryMessage)
		return nil
	}
	if !ok {
		fmt.Fprintf(a.out, "No session with id %s.\n", id)
		return nil
	}
	fmt.Fprintln(a.out, "Session deleted.")
	return nil
}

// discardPhoto removes an orphaned or superseded asset, best-effort.
func (a *App) discardPhoto(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := a.photos.Delete(ctx, path); err != nil {
		a.log.Warn(ctx, "failed to delete photo file", "path", path, "error", err)
	}
}
