package cli

import (
	"context"
	"fmt"

	"github.com/easel-app/easel/internal/models"
)

// ListLocations prints the saved painting spots in insertion order.
func (a *App) ListLocations(ctx context.Context) error {
	locs := a.store.ListLocations(ctx)
	if len(locs) == 0 {
		fmt.Fprintln(a.out, "No saved spots.")
		return nil
	}
	for _, loc := range locs {
		fmt.Fprintf(a.out, "%-20s %9.4f, %9.4f\n", loc.Name, loc.Latitude, loc.Longitude)
	}
	return nil
}

// SaveLocation bookmarks a new painting spot.
func (a *App) SaveLocation(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Spot name", a.out)
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

	saved, err := a.store.SaveLocation(ctx, models.Location{Name: name, Latitude: lat, Longitude: lon})
	if err != nil {
		if isValidationError(err) {
			fmt.Fprintln(a.out, "Not saved: "+validationMessage(err))
			return nil
		}
		a.log.Error(ctx, "failed to save location", "name", name, "error", err)
		fmt.Fprintln(a.out, retryMessage)
		return nil
	}
	if !saved {
		fmt.Fprintf(a.out, "A spot named %q is already saved.\n", name)
		return nil
	}

	fmt.Fprintf(a.out, "Saved %q.\n", name)
	return nil
}

// RemoveLocation deletes a bookmarked spot; removing an unknown name is
// still reported as success.
func (a *App) RemoveLocation(ctx context.Context, name string) error {
	if err := a.store.RemoveLocation(ctx, name); err != nil {
		a.log.Error(ctx, "failed to remove location", "name", name, "error", err)
		fmt.Fprintln(a.out, retryMessage)
		return nil
	}
	fmt.Fprintf(a.out, "Removed %q.\n", name)
	return nil
}
