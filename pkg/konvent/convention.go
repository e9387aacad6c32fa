package konvent

import (
	"fmt"
	"sort"

	"github.com/iancoleman/strcase"
)

// ConstantDef defines a constant that is emitted into a module's generated
// constants file. The value of the constant is looked up in the module's
// version catalog under Key.
type ConstantDef struct {
	Name string
	Key  string
}

// Dependency is a dependency that a convention adds to a module.
// The version of the dependency is looked up in the version catalog under
// VersionKey.
type Dependency struct {
	Coordinates string
	VersionKey  string
}

// Toolchain stores compiler toolchain settings that a convention applies.
type Toolchain struct {
	JavaVersion int
}

// Convention is an immutable bundle of build configuration that can be
// applied to a module: build plugins, dependencies, toolchain settings and
// the constant definitions for the module's generated constants file.
//
// The constant definitions of a convention are fixed at compile time, they
// are the allow-list of catalog keys that the code generator emits for
// modules applying the convention.
type Convention struct {
	Name        string
	Description string
	Plugins     []string
	Deps        []Dependency
	Constants   []ConstantDef
	Toolchain   *Toolchain
}

// BuildConfig is the effective build configuration of a module, produced by
// composing conventions with Apply.
// It is a plain value, composing conventions never mutates an existing
// BuildConfig.
type BuildConfig struct {
	Conventions  []string
	Toolchain    Toolchain
	Plugins      []string
	Dependencies []Dependency
	Constants    []ConstantDef
}

// Apply returns a copy of base with the convention applied.
// Plugins, dependencies and constant definitions are appended, toolchain
// settings overwrite earlier ones. base is not modified.
func Apply(base BuildConfig, conv *Convention) BuildConfig {
	res := BuildConfig{
		Conventions:  cloneAppend(base.Conventions, conv.Name),
		Toolchain:    base.Toolchain,
		Plugins:      cloneAppend(base.Plugins, conv.Plugins...),
		Dependencies: cloneAppend(base.Dependencies, conv.Deps...),
		Constants:    cloneAppend(base.Constants, conv.Constants...),
	}

	if conv.Toolchain != nil {
		res.Toolchain = *conv.Toolchain
	}

	return res
}

// ComposeConfig composes the conventions with the given names, in order, into
// the effective build configuration of a module.
// Applying the same convention multiple times has no additional effect.
// Referencing an unknown convention is an error.
func ComposeConfig(conventionNames []string) (BuildConfig, error) {
	var res BuildConfig

	applied := map[string]struct{}{}

	for _, name := range conventionNames {
		if _, exist := applied[name]; exist {
			continue
		}

		conv, err := ConventionByName(name)
		if err != nil {
			return BuildConfig{}, err
		}

		res = Apply(res, conv)
		applied[name] = struct{}{}
	}

	return res, nil
}

// ConventionByName returns the built-in convention with the given name.
func ConventionByName(name string) (*Convention, error) {
	conv, exist := conventions[name]
	if !exist {
		return nil, fmt.Errorf("convention %q does not exist, available conventions: %s",
			name, conventionNamesStr())
	}

	return conv, nil
}

// Conventions returns all built-in conventions, sorted by name.
func Conventions() []*Convention {
	res := make([]*Convention, 0, len(conventions))

	for _, conv := range conventions {
		res = append(res, conv)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})

	return res
}

func conventionNamesStr() string {
	var res string

	for i, conv := range Conventions() {
		if i > 0 {
			res += ", "
		}
		res += conv.Name
	}

	return res
}

// constant returns a ConstantDef for a catalog key, the constant name is the
// SCREAMING_SNAKE form of the key.
func constant(key string) ConstantDef {
	return ConstantDef{
		Name: strcase.ToScreamingSnake(key),
		Key:  key,
	}
}

func cloneAppend[T any](base []T, add ...T) []T {
	res := make([]T, 0, len(base)+len(add))
	res = append(res, base...)
	res = append(res, add...)

	return res
}

// conventions is the registry of built-in convention sets.
// The constant definitions per convention are deliberately hard-coded, they
// are not configurable per invocation.
var conventions = map[string]*Convention{
	"java": {
		Name:        "java",
		Description: "Java toolchain, lombok and base compiler settings",
		Plugins:     []string{"java-library", "io.freefair.lombok"},
		Deps: []Dependency{
			{Coordinates: "org.projectlombok:lombok", VersionKey: "lombok"},
		},
		Constants: []ConstantDef{
			constant("lombok"),
		},
		Toolchain: &Toolchain{JavaVersion: 21},
	},

	"kotlin": {
		Name:        "kotlin",
		Description: "Kotlin JVM compiler settings",
		Plugins:     []string{"org.jetbrains.kotlin.jvm"},
		Constants: []ConstantDef{
			constant("kotlin"),
		},
		Toolchain: &Toolchain{JavaVersion: 21},
	},

	"spotless": {
		Name:        "spotless",
		Description: "code formatting via spotless and palantir-java-format",
		Plugins:     []string{"com.diffplug.spotless"},
		Constants: []ConstantDef{
			constant("spotless"),
			constant("palantir-java-format"),
		},
	},

	"jacoco": {
		Name:        "jacoco",
		Description: "test coverage reporting via jacoco",
		Plugins:     []string{"jacoco"},
		Constants: []ConstantDef{
			constant("jacoco"),
		},
	},

	"junit": {
		Name:        "junit",
		Description: "JUnit 5 test framework wiring",
		Deps: []Dependency{
			{Coordinates: "org.junit.jupiter:junit-jupiter", VersionKey: "junit"},
			{Coordinates: "org.assertj:assertj-core", VersionKey: "assertj"},
		},
		Constants: []ConstantDef{
			constant("junit"),
			constant("assertj"),
		},
	},

	"spring-boot": {
		Name:        "spring-boot",
		Description: "Spring Boot plugins and starter dependency set",
		Plugins:     []string{"org.springframework.boot", "io.spring.dependency-management"},
		Deps: []Dependency{
			{Coordinates: "org.springframework.boot:spring-boot-starter-web", VersionKey: "spring-boot"},
			{Coordinates: "org.springframework.boot:spring-boot-starter-actuator", VersionKey: "spring-boot"},
			{Coordinates: "org.springframework.boot:spring-boot-starter-test", VersionKey: "spring-boot"},
		},
		Constants: []ConstantDef{
			constant("spring-boot"),
			constant("spring-dependency-management"),
		},
	},
}
