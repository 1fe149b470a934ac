package constants

// Application Information
const (
	AppName    = "Hospital Management Service"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default Application Settings
const (
	DefaultPort        = "8080"
	DefaultEnvironment = EnvDevelopment
)

// Cache Key Prefixes
const (
	CacheKeyPrefix       = "hms:"
	CacheKeyPatients     = CacheKeyPrefix + "patients:"
	CacheKeyPatientStats = CacheKeyPatients + "stats"
	CacheKeyInventory    = CacheKeyPrefix + "inventory:"
	CacheKeyRoles        = CacheKeyPrefix + "roles:"
	CacheKeyScreens      = CacheKeyPrefix + "screens:"
)
