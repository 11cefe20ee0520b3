package services

import "testing"

func TestURLFor(t *testing.T) {
	store := newTestUploads(t)

	got := store.URLFor("abc123.png")
	want := "http://localhost:4000/uploads/abc123.png"
	if got != want {
		t.Errorf("URLFor() = %q, want %q", got, want)
	}

	if got := store.URLFor(""); got != "" {
		t.Errorf("URLFor(empty) = %q, want empty", got)
	}
}

func TestRemove_MissingFileIsQuiet(t *testing.T) {
	store := newTestUploads(t)

	// Best effort cleanup; a file that is already gone is not an error.
	store.Remove("never-existed.png")

	// Path traversal in a stored name must not escape the upload dir.
	store.Remove("../../etc/passwd")
}
