package integration_test

const (
	// Movie related constants
	TestMovieName   = "Inception"
	TestMovieYear   = 2010
	TestMovieRating = 8.8

	// Login related constants
	TestUsername = "curator"
	TestPassword = "Test123!@#"

	// Container images
	mongoImageName = "mongo:7"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	dbName     = "movie_catalog"
	dbUser     = "test_user"
	dbPassword = "test_password"

	// A syntactically valid id of every store that matches no movie
	missingMongoID = "65f1c2a9e4b0a1b2c3d4e5f6"
	missingUUID    = "8f14e45f-ceea-4e7a-9c5b-2c1d3e4f5a6b"
)
