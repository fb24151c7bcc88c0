// Package config manages user-level settings stored at ~/.pyskel/config.yaml.
// The settings supply defaults for the metadata written into new skeletons
// (author, description, links) and an optional python interpreter override.
// Every key can also be set through a PYSKEL_-prefixed environment variable.
package config
