package models

import (
	"context"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/types"
)

// MemoryModel owns the trip memories: photos and scrapbook entries.
type MemoryModel struct {
	photoDB     *db.PhotoDB
	scrapbookDB *db.ScrapbookDB
}

func NewMemoryModel(photoDB *db.PhotoDB, scrapbookDB *db.ScrapbookDB) *MemoryModel {
	return &MemoryModel{
		photoDB:     photoDB,
		scrapbookDB: scrapbookDB,
	}
}

func (mm *MemoryModel) CreatePhoto(ctx context.Context, photo *types.Photo) error {
	if photo.URL == "" {
		return errors.ValidationFailed("Photo URL is required", "")
	}
	if err := mm.photoDB.CreatePhoto(ctx, photo); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (mm *MemoryModel) ListPhotos(ctx context.Context, tripID int64) ([]types.Photo, error) {
	photos, err := mm.photoDB.ListPhotos(ctx, tripID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return photos, nil
}

func (mm *MemoryModel) DeletePhoto(ctx context.Context, tripID, photoID int64) {
	mm.photoDB.DeletePhoto(ctx, tripID, photoID)
}

func (mm *MemoryModel) CreateScrapbookEntry(ctx context.Context, entry *types.ScrapbookEntry) error {
	if entry.Title == "" {
		return errors.ValidationFailed("Entry title is required", "")
	}
	if entry.Day < 1 {
		return errors.ValidationFailed("Entry day must be a positive day number", "")
	}
	if err := mm.scrapbookDB.CreateEntry(ctx, entry); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (mm *MemoryModel) ListScrapbookEntries(ctx context.Context, tripID int64) ([]types.ScrapbookEntry, error) {
	entries, err := mm.scrapbookDB.ListEntries(ctx, tripID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return entries, nil
}

func (mm *MemoryModel) DeleteScrapbookEntry(ctx context.Context, tripID, entryID int64) {
	mm.scrapbookDB.DeleteEntry(ctx, tripID, entryID)
}
