package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind classifies a file entry.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// Valid reports whether k is one of the accepted entry kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindFolder, KindFile, KindImage:
		return true
	}
	return false
}

// RootParentID is the sentinel parent value meaning "top level of a user's
// hierarchy". It is not the id of a real entry.
const RootParentID = "0"

// FileEntry is the metadata record for a folder or a stored blob, positioned
// in a tree via ParentID. Folders carry no blob, so StoragePath is empty for
// them and is never exposed over the API.
type FileEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     string             `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Kind        Kind               `bson:"type" json:"type"`
	ParentID    string             `bson:"parentId" json:"parentId"`
	IsPublic    bool               `bson:"isPublic" json:"isPublic"`
	StoragePath string             `bson:"localPath,omitempty" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"-"`
}

// IsFolder reports whether the entry is a folder.
func (f *FileEntry) IsFolder() bool { return f.Kind == KindFolder }
