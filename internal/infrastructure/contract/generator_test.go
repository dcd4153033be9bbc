package contract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"offer_agent/internal/domain/entities"
)

type fakeOpener struct {
	form *fakeForm
	err  error
}

func (o fakeOpener) Open(_ []byte) (Document, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.form, nil
}

func writeTemplate(t *testing.T, dir, state, name string) {
	t.Helper()
	p := filepath.Join(dir, state)
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(p, name), []byte("%PDF-template"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "tx", "singlefamily-resale.pdf")

	offer := entities.Offer{
		ID:                  "o1",
		OfferPrice:          445000,
		TimelinePreferences: map[string]any{"closingDate": "2025-03-01"},
		Concessions:         map[string]any{"sellerCredits": 5000.0},
	}
	property := entities.Property{Address: "1 Main St", City: "Austin", State: "TX", ZipCode: "78701", PropertyType: "singlefamily"}
	buyer := entities.User{Email: "buyer@example.com", Name: "Jane"}

	t.Run("fills and locks", func(t *testing.T) {
		form := newFakeForm("OfferPrice", "ClosingDate", "Address of Property", "SellerCredits", "Texas known as")
		g := NewGenerator(dir, nil)
		g.Opener = fakeOpener{form: form}

		out, err := g.Generate(context.Background(), offer, property, buyer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != "%PDF-fake" {
			t.Fatalf("unexpected bytes %q", out)
		}
		if !form.locked {
			t.Fatalf("expected document to be locked")
		}
		want := map[string]string{
			"OfferPrice":          "445,000.00",
			"ClosingDate":         "03/01/2025",
			"Address of Property": "1 Main St, Austin, TX 78701",
			"SellerCredits":       "5,000.00",
			"Texas known as":      "1 Main St",
		}
		for k, v := range want {
			if form.fields[k] != v {
				t.Errorf("field %q = %q, want %q", k, form.fields[k], v)
			}
		}
	})

	t.Run("missing template", func(t *testing.T) {
		g := NewGenerator(dir, nil)
		g.Opener = fakeOpener{form: newFakeForm()}
		condo := property
		condo.PropertyType = "condo"
		if _, err := g.Generate(context.Background(), offer, condo, buyer); !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("malformed template propagates", func(t *testing.T) {
		boom := errors.New("malformed")
		g := NewGenerator(dir, nil)
		g.Opener = fakeOpener{err: boom}
		if _, err := g.Generate(context.Background(), offer, property, buyer); !errors.Is(err, boom) {
			t.Fatalf("expected open error, got %v", err)
		}
	})
}

func TestLoadFieldSpecs(t *testing.T) {
	specs, err := LoadFieldSpecs("")
	if err != nil || len(specs) == 0 {
		t.Fatalf("expected default specs, got %v %v", specs, err)
	}

	path := filepath.Join(t.TempDir(), "map.yaml")
	os.WriteFile(path, []byte("fields:\n  - key: offer_price\n    variants: [Preco]\n"), 0o644)
	specs, err = LoadFieldSpecs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 1 || specs[0].Variants[0] != "Preco" {
		t.Fatalf("unexpected specs %+v", specs)
	}

	if _, err := ParseFieldSpecs([]byte("fields:\n  - variants: [X]\n")); err == nil {
		t.Fatalf("expected error for entry without key")
	}
}
