package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/easel-app/easel/internal/models"
)

// retryMessage is the generic answer to persistence and network failures;
// internal error detail stays in the log.
const retryMessage = "Something went wrong. Please try again."

func coords(lat, lon float64) models.Coordinates {
	return models.Coordinates{Latitude: lat, Longitude: lon}
}

// sortByRecency orders the gallery newest first. The store keeps uploads
// unsorted; presentation order is decided here.
func sortByRecency(uploads []models.Upload) {
	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].CreatedAt.After(uploads[j].CreatedAt)
	})
}

func formatUploadLine(u models.Upload) string {
	return fmt.Sprintf("%s  %s  %s (%s)",
		u.ID, u.SessionDateTime.Local().Format("2006-01-02"), u.Title, u.Location.Name)
}

func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// validationMessage turns validator output into a short, user-facing list of
// offending fields.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid input."
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fe.Field()+" is required")
		case "notfuture":
			fields = append(fields, fe.Field()+" must not be in the future")
		case "latitude", "longitude":
			fields = append(fields, fe.Field()+" is out of range")
		default:
			fields = append(fields, fe.Field()+" is invalid")
		}
	}
	return strings.Join(fields, ", ") + "."
}
