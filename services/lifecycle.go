package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// FileStore is the asset-lifecycle collaborator every image-carrying
// workflow talks to.
type FileStore interface {
	Store(data []byte, originalName, folder string) (string, error)
	Delete(fileURL string) error
	Replace(oldURL string, data []byte, originalName string) (string, error)
}

// ImageInput carries both ways an image can arrive: raw upload bytes from a
// multipart file, or a plain URL string in the body. Data nil means no file
// was sent.
type ImageInput struct {
	Data     []byte
	Filename string
	URL      string
}

// resolveImageOnCreate returns the image URL for a new record: an uploaded
// file is stored under the resource folder, otherwise the caller-supplied
// URL (possibly empty) is used as-is.
func resolveImageOnCreate(files FileStore, in ImageInput, folder string) (string, error) {
	if in.Data == nil {
		return in.URL, nil
	}
	return files.Store(in.Data, in.Filename, folder)
}

// resolveImageOnUpdate returns the image URL for an updated record. An
// uploaded file replaces the existing asset (or is stored fresh when there
// is none); a body URL with no file overrides directly; absence of both
// keeps the stored value. A failed cleanup of the replaced asset does not
// lose the new reference.
func resolveImageOnUpdate(files FileStore, existing string, in ImageInput, folder string) (string, error) {
	if in.Data != nil {
		if existing == "" {
			return files.Store(in.Data, in.Filename, folder)
		}
		newURL, err := files.Replace(existing, in.Data, in.Filename)
		if err != nil {
			if newURL == "" {
				return "", err
			}
			zap.L().Warn("failed to delete replaced asset",
				zap.String("old_url", existing),
				zap.Error(err),
			)
		}
		return newURL, nil
	}

	if in.URL != "" {
		return in.URL, nil
	}
	return existing, nil
}

// isNoDocuments reports whether a lookup came back empty.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// isDuplicateKey reports a unique-index violation, the authoritative
// conflict signal for every uniqueness predicate.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
