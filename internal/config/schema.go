package config

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/gopak/depsort/internal/assets"
)

func ValidateAgainstSchema(m Manifest) error {
	if len(assets.ManifestSchema) == 0 {
		return errors.New("schema not embedded")
	}
	if m.Packages == nil {
		m.Packages = []Package{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewBytesLoader(assets.ManifestSchema)
	docLoader := gojsonschema.NewBytesLoader(b)
	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New("schema validation failed: " + strings.Join(msgs, "; "))
}
