// Package config loads the jesthelper configuration by layering
// compiled-in defaults, the user configuration file, and the
// project's .jesthelper/config.yaml. The merged result describes the
// team style guide, the test template catalog, and the user-supplied
// validation rules.
package config
