package interfaces

import (
	"context"
	"errors"
	"offer_agent/internal/domain/entities"
)

var ErrDocumentNotFound = errors.New("document not found")

// IOfferDocumentGenerator renders the filled purchase contract for an offer.
type IOfferDocumentGenerator interface {
	Generate(ctx context.Context, offer entities.Offer, property entities.Property, buyer entities.User) ([]byte, error)
}

// IDocumentStore keeps generated documents. Save returns the public URL
// the document is reachable at; Open reads a document back by name.
type IDocumentStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Open(ctx context.Context, name string) ([]byte, error)
}
