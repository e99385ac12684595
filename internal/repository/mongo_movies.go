package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/metinatakli/movie-catalog/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const MoviesCollection = "movies"

type mongoMovie struct {
	ID     bson.ObjectID `bson:"_id,omitempty"`
	Name   string        `bson:"name"`
	Year   int           `bson:"year"`
	Rating float64       `bson:"rating"`
}

func (m mongoMovie) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:     m.ID.Hex(),
		Name:   m.Name,
		Year:   m.Year,
		Rating: m.Rating,
	}
}

type MongoMovieRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

func NewMongoMovieRepository(db *mongo.Database, logger *slog.Logger) *MongoMovieRepository {
	return &MongoMovieRepository{
		collection: db.Collection(MoviesCollection),
		logger:     logger,
	}
}

func (m *MongoMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	doc := mongoMovie{
		Name:   movie.Name,
		Year:   movie.Year,
		Rating: movie.Rating,
	}

	res, err := m.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.NewDependencyError("insert movie", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return domain.NewDependencyError("insert movie", fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}

	movie.ID = id.Hex()

	return nil
}

func (m *MongoMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	cursor, err := m.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, domain.NewDependencyError("list movies", err)
	}
	defer cursor.Close(ctx)

	movies := []*domain.Movie{}

	// documents written by other clients may not decode; they are skipped
	// so one bad record does not hide the rest of the catalog
	for cursor.Next(ctx) {
		var doc mongoMovie

		err := cursor.Decode(&doc)
		if err != nil {
			m.logger.WarnContext(ctx, "skipping undecodable movie document",
				"id", fmt.Sprint(cursor.Current.Lookup("_id")),
				"error", err,
			)
			continue
		}

		movies = append(movies, doc.toDomain())
	}

	if err = cursor.Err(); err != nil {
		return nil, domain.NewDependencyError("list movies", err)
	}

	return movies, nil
}

func (m *MongoMovieRepository) Delete(ctx context.Context, id string) error {
	// a malformed id cannot match any document
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := m.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return domain.NewDependencyError("delete movie", err)
	}

	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (m *MongoMovieRepository) Ping(ctx context.Context) error {
	return m.collection.Database().Client().Ping(ctx, readpref.Primary())
}
