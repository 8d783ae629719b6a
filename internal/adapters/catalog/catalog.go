// Package catalog provee las cafeterías con las que arranca el servicio:
// la muestra incluida o un archivo YAML (o JSON) indicado por config.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"paws-cafe/internal/domain/cafes"
)

var ErrEmptyCatalog = errors.New("catalog file has no cafes")

// IDs fijos: los favoritos guardados referencian cafés por ID entre reinicios.
const (
	NyanNyanID = "8f0c6f0e-1b51-4a8e-9a0a-6f7f1b8c0001"
	WanWanID   = "8f0c6f0e-1b51-4a8e-9a0a-6f7f1b8c0002"
	PiyoPiyoID = "8f0c6f0e-1b51-4a8e-9a0a-6f7f1b8c0003"
	BuuBuuID   = "8f0c6f0e-1b51-4a8e-9a0a-6f7f1b8c0004"
)

// Sample devuelve la muestra de cuatro cafés en Osaka. Cada llamada crea
// slices nuevos.
func Sample() []cafes.Cafe {
	return []cafes.Cafe{
		{
			ID:        NyanNyanID,
			Name:      "にゃんにゃんカフェ",
			Animals:   []string{"ネコ"},
			Address:   "大阪府",
			Phone:     "080-XXXX-XXXX",
			Price:     "1001円〜2000円",
			URL:       "https://umeda.example.com",
			ImageName: "cafe1",
			Latitude:  34.7025,
			Longitude: 135.4959,
			Tags:      []string{"12歳以下OK", "女性のみ"},
		},
		{
			ID:        WanWanID,
			Name:      "わんわんカフェ",
			Animals:   []string{"イヌ"},
			Address:   "大阪府",
			Phone:     "080-XXXX-XXXX",
			Price:     "2001円〜3000円",
			URL:       "https://shinsaibashi.example.com",
			ImageName: "cafe2",
			Latitude:  34.6723,
			Longitude: 135.5033,
			Tags:      []string{},
		},
		{
			ID:        PiyoPiyoID,
			Name:      "ぴよぴよカフェ",
			Animals:   []string{"鳥類"},
			Address:   "大阪府",
			Phone:     "080-XXXX-XXXX",
			Price:     "2001円〜3000円",
			URL:       "https://tennoji.example.com",
			ImageName: "cafe3",
			Latitude:  34.6469,
			Longitude: 135.5132,
			Tags:      []string{},
		},
		{
			ID:        BuuBuuID,
			Name:      "ぶーぶーカフェ",
			Animals:   []string{"ブタ"},
			Address:   "大阪府",
			Phone:     "080-XXXX-XXXX",
			Price:     "2001円〜3000円",
			URL:       "https://horie.example.com",
			ImageName: "cafe4",
			Latitude:  34.6749,
			Longitude: 135.4949,
			Tags:      []string{},
		},
	}
}

type fileFormat struct {
	Cafes []cafes.Cafe `yaml:"cafes"`
}

// LoadFile lee un catálogo con la forma:
//
//	cafes:
//	  - id: ...
//	    name: ...
//	    animals: [ネコ]
//
// JSON con la misma forma también sirve. Campos desconocidos son error.
func LoadFile(path string) ([]cafes.Cafe, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog path is required")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	out, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return out, nil
}

func Decode(r io.Reader) ([]cafes.Cafe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileFormat
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(f.Cafes) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i := range f.Cafes {
		if f.Cafes[i].Tags == nil {
			f.Cafes[i].Tags = []string{}
		}
	}
	return f.Cafes, nil
}
