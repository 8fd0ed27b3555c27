package core

import (
	"encoding/binary"
	"iter"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Placeholder values substituted for absent source fields so a loaded
// publication never carries an empty title or link.
const (
	PlaceholderTitle = "No title available"
	PlaceholderLink  = "#"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Publication is a single entry of the publication catalog.
type Publication struct {
	Id    ID     // Content hash of title and link; not used for matching
	Title string // Display name, the only field searched
	Link  string // External URL, opaque
}

// NewPublication builds a publication, substituting placeholders for empty
// fields and computing its content ID.
func NewPublication(title, link string) Publication {
	if title == "" {
		title = PlaceholderTitle
	}
	if link == "" {
		link = PlaceholderLink
	}
	return Publication{
		Id:    IDFromContent(title + "\n" + link),
		Title: title,
		Link:  link,
	}
}

// Catalog is an immutable, ordered snapshot of publications.
// A nil *Catalog is a valid empty catalog.
type Catalog struct {
	pubs []Publication
}

// NewCatalog returns a catalog holding a copy of pubs in the given order.
func NewCatalog(pubs []Publication) *Catalog {
	owned := make([]Publication, len(pubs))
	copy(owned, pubs)
	return &Catalog{pubs: owned}
}

// EmptyCatalog returns a catalog with no publications.
func EmptyCatalog() *Catalog {
	return &Catalog{}
}

// Len returns the number of publications.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pubs)
}

// At returns the publication at position i.
// Panics if i is out of range, like a slice index.
func (c *Catalog) At(i int) Publication {
	return c.pubs[i]
}

// All iterates over the publications in catalog order.
func (c *Catalog) All() iter.Seq2[int, Publication] {
	return func(yield func(int, Publication) bool) {
		if c == nil {
			return
		}
		for i, p := range c.pubs {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Publications returns a copy of the catalog contents.
func (c *Catalog) Publications() []Publication {
	if c == nil {
		return []Publication{}
	}
	out := make([]Publication, len(c.pubs))
	copy(out, c.pubs)
	return out
}

// Summary is a plain-language explanation generated for a publication.
type Summary struct {
	PublicationId ID
	Title         string
	Text          string
	Model         string    // Model that produced the text
	CreatedAt     time.Time // When the summary was generated
}
