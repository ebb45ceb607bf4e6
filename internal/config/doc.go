// Package config holds league and fetch settings.
//
// A league is a name, the season (and optionally week) to score, one source
// locator per position and one scoring rule per position. Defaults reproduce
// the reference league: 2019 CBS Sports PPR season pages with its custom
// rules. A YAML file can override any part of it; positions the file does not
// mention keep their defaults.
package config
