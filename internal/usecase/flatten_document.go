package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
)

// FlattenDocumentInput contains the document to flatten.
type FlattenDocumentInput struct {
	Path string
}

// DocumentEntry is one flattened key and its value.
type DocumentEntry struct {
	Key   string
	Value string
}

// FlattenDocumentOutput contains the flattened entries sorted by key.
type FlattenDocumentOutput struct {
	Entries []DocumentEntry
}

// FlattenDocument is the use case for showing how a document is flattened.
type FlattenDocument struct {
	documents domain.DocumentLoader
}

// NewFlattenDocument creates a new FlattenDocument use case.
func NewFlattenDocument(documents domain.DocumentLoader) *FlattenDocument {
	return &FlattenDocument{documents: documents}
}

// Execute loads and flattens the document.
func (uc *FlattenDocument) Execute(_ context.Context, in FlattenDocumentInput) (*FlattenDocumentOutput, error) {
	props, err := uc.documents.LoadFile(in.Path)
	if err != nil {
		return nil, err
	}

	entries := make([]DocumentEntry, 0, len(props))
	for k, v := range props {
		entries = append(entries, DocumentEntry{Key: k, Value: v})
	}
	slices.SortFunc(entries, func(a, b DocumentEntry) int {
		return strings.Compare(a.Key, b.Key)
	})

	return &FlattenDocumentOutput{Entries: entries}, nil
}
