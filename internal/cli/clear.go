package cli

import (
	"context"
	"fmt"
)

// ClearAll wipes every stored session, spot and photo after an explicit
// confirmation.
func (a *App) ClearAll(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "This deletes all sessions, spots and photos. Type 'yes' to continue", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.store.ClearAll(ctx); err != nil {
		a.log.Error(ctx, "failed to clear data", "error", err)
		fmt.Fprintln(a.out, retryMessage)
		return nil
	}

	fmt.Fprintln(a.out, "All data cleared.")
	return nil
}
