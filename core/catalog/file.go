package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ecomodal/footprint/core/model"
)

// factorDef mirrors one mode entry of an override file. A present entry
// replaces both factors of its mode: a missing dataset key means "no data",
// an explicit 0 means zero emissions.
type factorDef struct {
	OWID *float64 `yaml:"owid" json:"owid"`
	PSI  *float64 `yaml:"psi" json:"psi"`
}

type fileDef struct {
	Modes map[string]factorDef `yaml:"modes" json:"modes"`
}

func (d factorDef) toEntry() (Entry, error) {
	conv := func(v *float64) (Factor, error) {
		if v == nil {
			return noData(), nil
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
			return Factor{}, fmt.Errorf("factor %v out of range", *v)
		}
		return known(*v), nil
	}
	owid, err := conv(d.OWID)
	if err != nil {
		return Entry{}, err
	}
	psi, err := conv(d.PSI)
	if err != nil {
		return Entry{}, err
	}
	return Entry{OWID: owid, PSI: psi}, nil
}

// Decode reads override definitions in the given format ("yaml", "yml" or
// "json") and applies them on top of the built-in table.
func Decode(r io.Reader, format string) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var def fileDef
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("catalog: parse yaml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("catalog: parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("catalog: unsupported format: %q", format)
	}

	c := Builtin()
	for name, fd := range def.Modes {
		mode, err := model.ParseMode(name)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		entry, err := fd.toEntry()
		if err != nil {
			return nil, fmt.Errorf("catalog: mode %q: %w", name, err)
		}
		if err := c.override(mode, entry); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadFile loads a catalog from a YAML or JSON override file layered over the
// built-in table. The format follows the file extension.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, filepath.Ext(path))
}
