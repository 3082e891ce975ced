package services

import (
	"errors"
	"testing"
)

func TestResolveImageOnCreate(t *testing.T) {
	files := &fakeFileStore{}

	// No file: the body URL passes through untouched, empty included.
	url, err := resolveImageOnCreate(files, ImageInput{URL: "https://cdn.example.com/a.png"}, "categories_image")
	if err != nil || url != "https://cdn.example.com/a.png" {
		t.Fatalf("url passthrough: %q, %v", url, err)
	}
	url, err = resolveImageOnCreate(files, ImageInput{}, "categories_image")
	if err != nil || url != "" {
		t.Fatalf("empty input: %q, %v", url, err)
	}
	if len(files.stored) != 0 {
		t.Fatal("no file means no store call")
	}

	// A file wins over the URL.
	url, err = resolveImageOnCreate(files, ImageInput{
		Data:     []byte("png"),
		Filename: "a.png",
		URL:      "https://cdn.example.com/ignored.png",
	}, "categories_image")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if len(files.stored) != 1 || url != files.stored[0] {
		t.Fatalf("file not stored: %q vs %v", url, files.stored)
	}
}

func TestResolveImageOnUpdateKeepsExisting(t *testing.T) {
	files := &fakeFileStore{}

	url, err := resolveImageOnUpdate(files, "/uploads/general/1-a.png", ImageInput{}, "general")
	if err != nil || url != "/uploads/general/1-a.png" {
		t.Fatalf("existing must be kept: %q, %v", url, err)
	}
}

func TestResolveImageOnUpdateURLOverride(t *testing.T) {
	files := &fakeFileStore{}

	url, err := resolveImageOnUpdate(files, "/uploads/general/1-a.png",
		ImageInput{URL: "https://cdn.example.com/b.png"}, "general")
	if err != nil || url != "https://cdn.example.com/b.png" {
		t.Fatalf("url override: %q, %v", url, err)
	}
	if len(files.deleted) != 0 {
		t.Fatal("url override must not touch the old asset")
	}
}

func TestResolveImageOnUpdateReplacesExistingAsset(t *testing.T) {
	files := &fakeFileStore{}

	url, err := resolveImageOnUpdate(files, "/uploads/general/1-a.png",
		ImageInput{Data: []byte("png"), Filename: "b.png"}, "general")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if files.replaceCalls != 1 {
		t.Fatalf("expected one replace call, got %d", files.replaceCalls)
	}
	if url == "" || url == "/uploads/general/1-a.png" {
		t.Fatalf("new url expected, got %q", url)
	}
}

func TestResolveImageOnUpdateStoresWhenNoExisting(t *testing.T) {
	files := &fakeFileStore{}

	url, err := resolveImageOnUpdate(files, "", ImageInput{Data: []byte("png"), Filename: "b.png"}, "general")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if files.replaceCalls != 0 || len(files.stored) != 1 || url != files.stored[0] {
		t.Fatalf("fresh store expected: replace=%d stored=%v url=%q", files.replaceCalls, files.stored, url)
	}
}

func TestResolveImageOnUpdateKeepsNewURLOnFailedCleanup(t *testing.T) {
	files := &fakeFileStore{deleteErr: errors.New("disk unavailable")}

	url, err := resolveImageOnUpdate(files, "/uploads/general/1-a.png",
		ImageInput{Data: []byte("png"), Filename: "b.png"}, "general")
	if err != nil {
		t.Fatalf("a failed cleanup must not surface: %v", err)
	}
	if url != files.stored[0] {
		t.Fatalf("new url must survive a failed cleanup, got %q", url)
	}
}
