package store

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// codec encodes and decodes snapshot records in one file format.
type codec interface {
	encode(w io.Writer, rec *snapshotRecord) error
	decode(r io.Reader, rec *snapshotRecord) error
}

type jsonCodec struct{}

func (jsonCodec) encode(w io.Writer, rec *snapshotRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (jsonCodec) decode(r io.Reader, rec *snapshotRecord) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(rec)
}

type yamlCodec struct{}

func (yamlCodec) encode(w io.Writer, rec *snapshotRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return err
	}
	return enc.Close()
}

func (yamlCodec) decode(r io.Reader, rec *snapshotRecord) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec.Decode(rec)
}

// formatFor picks the codec from the file extension. A trailing ".gz"
// wraps the inner format in gzip. Anything that is not YAML is JSON.
func formatFor(path string) (c codec, gzipped bool) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".gz") {
		gzipped = true
		name = strings.TrimSuffix(name, ".gz")
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return yamlCodec{}, gzipped
	default:
		return jsonCodec{}, gzipped
	}
}
