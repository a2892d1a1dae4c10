// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP ports,
// TLS, logging level and request limits. AppConfig is everything
// specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// File storage configuration for member avatars
	StorageLocalPath string // Local storage path (e.g., "./uploads/avatars")
	StorageLocalURL  string // URL prefix for serving stored files (e.g., "/files")

	// Base URL used when building absolute links outside a request
	BaseURL string // e.g., "https://somitihub.org" or "http://localhost:3000"
}
