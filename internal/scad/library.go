package scad

import "strings"

// Library is an OpenSCAD library that can be mounted next to a source file.
type Library struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`
}

// DefaultLibraries returns the libraries known out of the box. A fresh slice
// is returned on every call.
func DefaultLibraries() []Library {
	return []Library{
		{Name: "MCAD", Description: "Utilities for OpenSCAD.", URL: "https://github.com/openscad/MCAD"},
		{Name: "BOSL2", Description: "The Belfry OpenSCAD Library, v2.", URL: "https://github.com/BelfrySCAD/BOSL2"},
		{Name: "BOSL", Description: "The Belfry OpenSCAD Library.", URL: "https://github.com/revarbat/BOSL"},
	}
}

// DetectLibraries returns the entries of known whose name occurs anywhere in
// source, in the order of known and without duplicates.
func DetectLibraries(source string, known []Library) []Library {
	var found []Library
	seen := make(map[string]bool)
	for _, lib := range known {
		if lib.Name == "" || seen[lib.Name] {
			continue
		}
		if strings.Contains(source, lib.Name) {
			seen[lib.Name] = true
			found = append(found, lib)
		}
	}
	return found
}
