package contract

import "log"

// Form is the writable side of a PDF AcroForm.
type Form interface {
	HasTextField(name string) bool
	SetText(name, value string) error
}

// Document is an opened template.
type Document interface {
	Form
	Lock() error
	Bytes() ([]byte, error)
}

// Opener turns template bytes into a Document.
type Opener interface {
	Open(data []byte) (Document, error)
}

// Fill writes values into form. For each spec the value is set on the first
// variant that exists as a text field; when setting fails the next variant
// is tried. Empty values and specs with no matching variant are skipped.
// It returns the number of logical fields written.
func Fill(form Form, values map[string]string, specs []FieldSpec) int {
	filled := 0
	for _, spec := range specs {
		value := values[spec.Key]
		if value == "" {
			continue
		}
		for _, name := range spec.Variants {
			if !form.HasTextField(name) {
				continue
			}
			if err := form.SetText(name, value); err != nil {
				log.Printf("[contract][filler] set field failed key=%s field=%q error=%v", spec.Key, name, err)
				continue
			}
			filled++
			break
		}
	}
	return filled
}
