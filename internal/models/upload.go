package models

import "time"

// UploadLocation is the place an artwork session happened, embedded in the
// upload record.
type UploadLocation struct {
	Name   string      `json:"name" validate:"required"`
	Coords Coordinates `json:"coords"`
}

// Upload is a recorded artwork session. ID and CreatedAt are assigned by the
// storage layer at creation and never change afterwards. ArtworkPhoto and
// LocationPhoto, when set, are paths to photo assets owned by this record:
// deleting the record releases the files.
type Upload struct {
	ID              string         `json:"id"`
	CreatedAt       time.Time      `json:"createdAt"`
	Title           string         `json:"title"`
	Notes           string         `json:"notes,omitempty"`
	SessionDateTime time.Time      `json:"sessionDateTime"`
	ArtworkPhoto    string         `json:"artworkPhoto,omitempty"`
	LocationPhoto   string         `json:"locationPhoto,omitempty"`
	Location        UploadLocation `json:"location"`
}

// UploadDraft carries the caller-supplied fields of a new upload, everything
// except the generated ID and CreatedAt.
type UploadDraft struct {
	Title           string         `validate:"required"`
	Notes           string
	SessionDateTime time.Time `validate:"required,notfuture"`
	ArtworkPhoto    string
	LocationPhoto   string
	Location        UploadLocation
}

// Validate checks the draft against the save rules: a non-empty title, a
// session time that is set and not in the future, a named location and
// coordinates within valid degree ranges.
func (d UploadDraft) Validate() error {
	return validateStruct(d)
}

// UploadPatch is a partial update. Nil fields keep the current value. ID and
// CreatedAt are not patchable.
type UploadPatch struct {
	Title           *string
	Notes           *string
	SessionDateTime *time.Time
	ArtworkPhoto    *string
	LocationPhoto   *string
	Location        *UploadLocation
}

// Apply shallow-merges the patch into the upload: set fields override, nil
// fields are retained.
func (u *Upload) Apply(p UploadPatch) {
	if p.Title != nil {
		u.Title = *p.Title
	}
	if p.Notes != nil {
		u.Notes = *p.Notes
	}
	if p.SessionDateTime != nil {
		u.SessionDateTime = *p.SessionDateTime
	}
	if p.ArtworkPhoto != nil {
		u.ArtworkPhoto = *p.ArtworkPhoto
	}
	if p.LocationPhoto != nil {
		u.LocationPhoto = *p.LocationPhoto
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
}

// PhotoPaths returns the non-empty photo paths owned by the upload.
func (u Upload) PhotoPaths() []string {
	paths := make([]string, 0, 2)
	if u.ArtworkPhoto != "" {
		paths = append(paths, u.ArtworkPhoto)
	}
	if u.LocationPhoto != "" {
		paths = append(paths, u.LocationPhoto)
	}
	return paths
}
