package config

import (
	"bytes"
	"text/template"

	"go.trai.ch/kiln/internal/core/domain"
	"gopkg.in/yaml.v3"
)

var defaultManifest = template.Must(template.New(domain.KilnFileName).
	Funcs(template.FuncMap{"quote": quoteYAML}).
	Parse(`version: "1"
project: {{ quote .Project }}

# Installed packages live in <store>/<name>/<version>.
store: {{ quote .Store }}

settings:
  build_type: Release

generators:
  - CMakeDeps
  - CMakeToolchain

layout:
  convention: cmake

requires:
  - cxxopts/3.2.0
  - fmt/11.0.2
  - gtest/1.16.0
  - imgui/1.91.8
  - sdl/3.2.6
  - spdlog/1.15.0

stage:
  # The imgui SDL backend sources ship as resources and are compiled with the project.
  - package: imgui
    pattern: "*sdl*"
    from: res/bindings
    to: src/imgui/backends
`))

// quoteYAML renders s as a double-quoted YAML scalar so folder names holding
// YAML syntax stay plain strings.
func quoteYAML(s string) (string, error) {
	out, err := yaml.Marshal(&yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: s,
	})
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(out, []byte("\n"))), nil
}

// RenderDefault renders the default manifest for project.
func RenderDefault(project, store string) ([]byte, error) {
	var buf bytes.Buffer
	if err := defaultManifest.Execute(&buf, struct{ Project, Store string }{project, store}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
