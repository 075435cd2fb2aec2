// Package config loads a draw description from a YAML file.
//
// A configuration file has four top-level sections:
//
//	Rules:      the six rule toggles, all required
//	Output:     printing order and destinations, all optional
//	Names:      participant → {Partner, History}, in family order
//	Rigging:    giver → receiver, optional
//
// Names keeps the order of the file, which is the FamilyOrder used for
// printing. History lists past receivers most recent first; null entries mark
// unknown years and keep the depth of later entries.
//
// Decoding uses gopkg.in/yaml.v3 with unknown keys rejected; validation uses
// go-playground/validator tags on the decoded structs.
package config
