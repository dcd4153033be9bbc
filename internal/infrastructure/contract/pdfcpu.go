package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFOpener opens AcroForm templates with pdfcpu.
type PDFOpener struct{}

var _ Opener = PDFOpener{}

func (PDFOpener) Open(data []byte) (Document, error) {
	conf := model.NewDefaultConfiguration()
	fields, err := api.FormFields(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("read form fields: %w", err)
	}
	text := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Typ == form.FTText && !f.Locked {
			text[f.Name] = true
		}
	}
	return &pdfDocument{src: data, conf: conf, textFields: text, values: map[string]string{}}, nil
}

type pdfDocument struct {
	src        []byte
	conf       *model.Configuration
	textFields map[string]bool
	values     map[string]string
	order      []string
	locked     bool
}

func (d *pdfDocument) HasTextField(name string) bool { return d.textFields[name] }

func (d *pdfDocument) SetText(name, value string) error {
	if !d.textFields[name] {
		return fmt.Errorf("no text field %q", name)
	}
	if _, ok := d.values[name]; !ok {
		d.order = append(d.order, name)
	}
	d.values[name] = value
	return nil
}

func (d *pdfDocument) Lock() error {
	d.locked = true
	return nil
}

// fillJSON mirrors the form export format understood by api.FillForm.
type fillJSON struct {
	Forms []fillForm `json:"forms"`
}

type fillForm struct {
	TextFields []fillTextField `json:"textfield"`
}

type fillTextField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Bytes applies the collected values and, when locked, makes every field
// read-only.
func (d *pdfDocument) Bytes() ([]byte, error) {
	out := d.src
	if len(d.values) > 0 {
		payload := fillJSON{Forms: []fillForm{{}}}
		for _, name := range d.order {
			payload.Forms[0].TextFields = append(payload.Forms[0].TextFields, fillTextField{Name: name, Value: d.values[name]})
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		// Values equal to the template's current ones leave nothing to write.
		err = api.FillForm(bytes.NewReader(out), bytes.NewReader(raw), &buf, d.conf)
		switch {
		case errors.Is(err, api.ErrNoFormFieldsAffected):
		case err != nil:
			return nil, fmt.Errorf("fill form: %w", err)
		default:
			out = buf.Bytes()
		}
	}
	if d.locked {
		var buf bytes.Buffer
		if err := api.LockFormFields(bytes.NewReader(out), &buf, nil, d.conf); err != nil {
			return nil, fmt.Errorf("lock form: %w", err)
		}
		out = buf.Bytes()
	}
	return out, nil
}
