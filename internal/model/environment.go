package model

// Environment is the deployment environment the service runs in.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
)

// IsProduction reports whether name denotes the production environment.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
