package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/avasiljevs/filesmanager/internal/client/api"
)

// MkDir prompts for a folder name and an optional parent id and creates the
// folder.
func (a *App) MkDir(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter folder name", os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	parentID, err := getSimpleText(a.reader, "Enter parent id (empty for top level)", os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	entry, err := a.api.Upload(ctx, api.UploadInput{Name: name, Type: "folder", ParentID: parentID})
	if err != nil {
		log.Printf("%v", err)
		return
	}
	fmt.Printf("Created folder %s (%s)\n", entry.Name, entry.ID)
}

// Upload reads a local file, base64-encodes it, and stores it under the
// given parent.
func (a *App) Upload(ctx context.Context) {
	path, err := getSimpleText(a.reader, "Enter local file path", os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("could not read %s: %v", path, err)
		return
	}

	parentID, err := getSimpleText(a.reader, "Enter parent id (empty for top level)", os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	entry, err := a.api.Upload(ctx, api.UploadInput{
		Name:     filepath.Base(path),
		Type:     "file",
		ParentID: parentID,
		Data:     base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		log.Printf("%v", err)
		return
	}
	fmt.Printf("Uploaded %s (%s)\n", entry.Name, entry.ID)
}

// List prints one page of entries. Usage: ls [parentId] [page].
func (a *App) List(ctx context.Context, args []string) {
	var parentID string
	var page int64

	if len(args) > 0 {
		parentID = args[0]
	}
	if len(args) > 1 {
		p, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || p < 0 {
			fmt.Println("Usage: ls [parentId] [page]")
			return
		}
		page = p
	}

	entries, err := a.api.List(ctx, parentID, page)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if len(entries) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, e := range entries {
		printEntry(&e)
	}
}

// Stat prints one entry by id.
func (a *App) Stat(ctx context.Context, id string) {
	entry, err := a.api.Stat(ctx, id)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	printEntry(entry)
}

func printEntry(e *api.FileEntry) {
	visibility := "private"
	if e.IsPublic {
		visibility = "public"
	}
	fmt.Printf("%s  %-6s  %-8s  %s\n", e.ID, e.Type, visibility, e.Name)
}
