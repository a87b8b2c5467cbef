// FILE: bouquet/config/convenience.go
package config

// AsStruct locates filename and binds its first YAML document to a value of type T.
// An empty document yields the zero value of T.
//
//	type Settings struct {
//	    Host string `yaml:"host"`
//	    Port int    `yaml:"port"`
//	}
//	s, err := config.AsStruct[Settings](config.NewFinder(), "settings.yaml")
func AsStruct[T any](f *Finder, filename string) (T, error) {
	content, err := f.Raw(filename)
	if err != nil {
		var zero T
		return zero, err
	}
	result, err := ParseYAML[T](content)
	if err != nil {
		return result, withSource(err, filename)
	}
	return result, nil
}

// AsStructAll locates filename and binds every YAML document in it.
func AsStructAll[T any](f *Finder, filename string) ([]T, error) {
	content, err := f.Raw(filename)
	if err != nil {
		return nil, err
	}
	results, err := ParseYAMLAll[T](content)
	if err != nil {
		return nil, withSource(err, filename)
	}
	return results, nil
}

// MustAsStruct is like AsStruct but panics on error
func MustAsStruct[T any](f *Finder, filename string) T {
	result, err := AsStruct[T](f, filename)
	if err != nil {
		panic(err)
	}
	return result
}
