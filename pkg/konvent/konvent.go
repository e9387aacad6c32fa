// Package konvent implements convention based build configuration for
// monorepos of modules sharing a version catalog.
package konvent

// ModuleCfgFile is the name of module configuration files.
const ModuleCfgFile = ".module.toml"

// ProjectCfgFile is the name of the project configuration file.
const ProjectCfgFile = ".konvent.toml"
