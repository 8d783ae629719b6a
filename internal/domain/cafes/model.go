package cafes

// Cafe representa una ficha del catálogo. Se crea una vez al cargar el
// catálogo y no se modifica después.
type Cafe struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Animals   []string `json:"animals" yaml:"animals"`
	Address   string   `json:"address" yaml:"address"`
	Phone     string   `json:"phone" yaml:"phone"`
	Price     string   `json:"price" yaml:"price"` // texto libre, p.ej. "1001円〜2000円"
	URL       string   `json:"url" yaml:"url"`
	ImageName string   `json:"image_name" yaml:"image_name"`
	Latitude  float64  `json:"latitude" yaml:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// clone copia también los slices; el catálogo no comparte memoria con quien lo lee.
func (c Cafe) clone() Cafe {
	if c.Animals != nil {
		c.Animals = append(make([]string, 0, len(c.Animals)), c.Animals...)
	}
	if c.Tags != nil {
		c.Tags = append(make([]string, 0, len(c.Tags)), c.Tags...)
	}
	return c
}

// HasAnimal responde si la cafetería tiene el tipo de animal indicado.
func (c Cafe) HasAnimal(animal string) bool {
	for _, a := range c.Animals {
		if a == animal {
			return true
		}
	}
	return false
}

// HasTag trata Tags nil como lista vacía.
func (c Cafe) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NearbyCafe es una cafetería con su distancia al punto consultado.
type NearbyCafe struct {
	Cafe       Cafe
	DistanceKm float64
}
