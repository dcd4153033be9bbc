package contract

import (
	"errors"
	"testing"
)

type fakeForm struct {
	fields   map[string]string
	readOnly map[string]bool
	locked   bool
}

func newFakeForm(names ...string) *fakeForm {
	f := &fakeForm{fields: map[string]string{}, readOnly: map[string]bool{}}
	for _, n := range names {
		f.fields[n] = ""
	}
	return f
}

func (f *fakeForm) HasTextField(name string) bool {
	_, ok := f.fields[name]
	return ok
}

func (f *fakeForm) SetText(name, value string) error {
	if f.readOnly[name] {
		return errors.New("read only")
	}
	f.fields[name] = value
	return nil
}

func (f *fakeForm) Lock() error { f.locked = true; return nil }

func (f *fakeForm) Bytes() ([]byte, error) { return []byte("%PDF-fake"), nil }

func TestFill_OfferPrice(t *testing.T) {
	form := newFakeForm("OfferPrice", "Unrelated")
	values := OfferData{OfferPrice: 445000}.Values()

	Fill(form, values, DefaultFieldSpecs())

	if got := form.fields["OfferPrice"]; got != "445,000.00" {
		t.Fatalf("expected 445,000.00, got %q", got)
	}
	if got := form.fields["Unrelated"]; got != "" {
		t.Fatalf("unknown field should stay untouched, got %q", got)
	}
}

func TestFill_Variants(t *testing.T) {
	specs := []FieldSpec{{Key: "city", Variants: []string{"City", "city", "PropertyCity"}}}

	t.Run("first existing variant wins", func(t *testing.T) {
		form := newFakeForm("city", "PropertyCity")
		n := Fill(form, map[string]string{"city": "Austin"}, specs)
		if n != 1 || form.fields["city"] != "Austin" || form.fields["PropertyCity"] != "" {
			t.Fatalf("unexpected fill result n=%d fields=%v", n, form.fields)
		}
	})

	t.Run("failed variant falls through", func(t *testing.T) {
		form := newFakeForm("City", "PropertyCity")
		form.readOnly["City"] = true
		Fill(form, map[string]string{"city": "Austin"}, specs)
		if form.fields["PropertyCity"] != "Austin" {
			t.Fatalf("expected fallback variant to be set, got %v", form.fields)
		}
	})

	t.Run("empty value skipped", func(t *testing.T) {
		form := newFakeForm("City")
		if n := Fill(form, map[string]string{"city": ""}, specs); n != 0 {
			t.Fatalf("expected nothing filled, got %d", n)
		}
	})

	t.Run("no matching variant", func(t *testing.T) {
		form := newFakeForm("Town")
		if n := Fill(form, map[string]string{"city": "Austin"}, specs); n != 0 {
			t.Fatalf("expected nothing filled, got %d", n)
		}
	})
}
