package cafes

import (
	"sort"

	"paws-cafe/internal/domain/regions"
)

var animalOptions = []string{"イヌ", "ネコ", "ウサギ", "ブタ", "鳥類", "爬虫類", "魚類", "昆虫", "その他"}

var priceOptions = []string{
	"〜1000円", "1001円〜2000円", "2001円〜3000円",
	"3001円〜4000円", "4001円〜6000円", "6001円〜8000円",
	"8001円〜10000円", "10001円〜",
}

var tagOptions = []string{
	"未就学児OK", "12歳以下OK", "女性のみ",
	"抱っこOK", "おやつあり", "予約不要",
	"フリータイム", "フード持ち込みOK", "22時以降営業", "譲渡",
}

// SearchOptions son los valores que ofrece la pantalla de búsqueda.
// No restringen Query: cualquier string es un criterio válido.
type SearchOptions struct {
	Animals     []string `json:"animals"`
	Prefectures []string `json:"prefectures"`
	Prices      []string `json:"prices"`
	Tags        []string `json:"tags"`
}

func Options() SearchOptions {
	tags := append([]string(nil), tagOptions...)
	sort.Strings(tags)

	return SearchOptions{
		Animals:     append([]string(nil), animalOptions...),
		Prefectures: regions.Prefectures(),
		Prices:      append([]string(nil), priceOptions...),
		Tags:        tags,
	}
}
