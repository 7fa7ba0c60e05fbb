package cities

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLCityLoader reads a custom city definition, letting deployments add a
// city without a code change.
type YAMLCityLoader struct {
	reader io.Reader
}

func NewYAMLCityLoader(reader io.Reader) *YAMLCityLoader {
	return &YAMLCityLoader{reader: reader}
}

func (l *YAMLCityLoader) Load(validate bool) (*City, error) {
	decoder := yaml.NewDecoder(l.reader)
	var city City
	if err := decoder.Decode(&city); err != nil {
		return nil, err
	}
	if validate {
		if err := city.Validate(); err != nil {
			return nil, err
		}
	}
	return &city, nil
}
