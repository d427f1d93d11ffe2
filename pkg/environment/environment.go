// Package environment names the deployment environments the service
// distinguishes between.
package environment

import "strings"

type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Normalize maps a raw APP_ENV value, including the short aliases
// "prod", "stage" and "dev", to an Environment. Unknown and empty values
// fall back to Development.
func Normalize(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool { return e == Production }
