package config

// Kilnfile represents the structure of the kiln.yaml manifest.
type Kilnfile struct {
	Version    string      `yaml:"version" validate:"required,oneof=1"`
	Project    string      `yaml:"project" validate:"required,max=128"`
	Store      string      `yaml:"store"`
	Settings   SettingsDTO `yaml:"settings"`
	Generators []string    `yaml:"generators" validate:"dive,required"`
	Layout     LayoutDTO   `yaml:"layout"`
	Requires   []string    `yaml:"requires" validate:"dive,required"`
	Stage      []StageDTO  `yaml:"stage" validate:"dive"`
}

// SettingsDTO is the build profile section of the manifest.
type SettingsDTO struct {
	OS        string `yaml:"os"`
	Arch      string `yaml:"arch"`
	Compiler  string `yaml:"compiler"`
	BuildType string `yaml:"build_type" validate:"omitempty,oneof=Debug Release RelWithDebInfo MinSizeRel"`
}

// LayoutDTO configures the folder layout of the project.
type LayoutDTO struct {
	Convention string `yaml:"convention" validate:"omitempty,oneof=cmake"`
	Source     string `yaml:"source"`
	Build      string `yaml:"build"`
	Generator  string `yaml:"generator"`
}

// StageDTO is one copy step from a required package into the build folder.
type StageDTO struct {
	Package string   `yaml:"package" validate:"required"`
	Pattern string   `yaml:"pattern" validate:"required"`
	From    string   `yaml:"from"`
	To      string   `yaml:"to"`
	Exclude []string `yaml:"exclude" validate:"dive,required"`
}
