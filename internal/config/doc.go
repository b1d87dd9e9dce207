// Package config reads the optional HCL settings file.
//
// A settings file mirrors the command-line options:
//
//	output {
//	  format = "pretty" # plain | pretty | json
//	  dump   = false
//	}
//
//	log {
//	  level  = "info"   # debug | info | warn | error
//	  format = "auto"   # text | json | auto
//	}
//
// Every block and attribute is optional. Attributes left out are reported as
// nil so the caller can layer the file between defaults and explicit flags.
package config
