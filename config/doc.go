// Package config loads the JSON configuration table of spec.md §6 into a
// plain Config value. It only parses and defaults the document; turning
// a section into a consuming package's Params struct is done in flowmgr
// (klutParamsFrom, rewriteParamsFrom), not here.
package config
