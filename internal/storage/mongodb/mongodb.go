package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"songcatalog/internal/lib/logger/utils"
	"songcatalog/internal/models"
	"songcatalog/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const SongsCollection = "songs"

var groupableFields = map[string]bool{
	storage.FieldGenre:  true,
	storage.FieldArtist: true,
	storage.FieldAlbum:  true,
}

type MongoStorage struct {
	songs *mongo.Collection
}

func NewMongoStorage(db *mongo.Database) storage.SongStorage {
	return &MongoStorage{songs: db.Collection(SongsCollection)}
}

// Connect dials the database at uri and verifies it with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect failed: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	return client, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, storage.ErrInvalidID
	}
	return oid, nil
}

// Create inserts a new song and returns it with its assigned id.
func (s *MongoStorage) Create(ctx context.Context, song *models.Song) (*models.Song, error) {
	now := time.Now().UTC()
	added := *song
	added.ID = primitive.NewObjectID()
	added.CreatedAt = now
	added.UpdatedAt = now

	if _, err := s.songs.InsertOne(ctx, &added); err != nil {
		utils.Logger.Error("MongoStorage.Create - InsertOne failed", zap.Error(err))
		return nil, fmt.Errorf("MongoStorage.Create - InsertOne failed: %w", err)
	}
	return &added, nil
}

func (s *MongoStorage) GetByID(ctx context.Context, id string) (*models.Song, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var song models.Song
	err = s.songs.FindOne(ctx, bson.M{"_id": oid}).Decode(&song)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("MongoStorage.GetByID - FindOne failed", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("MongoStorage.GetByID - FindOne failed: %w", err)
	}
	return &song, nil
}

func (s *MongoStorage) List(ctx context.Context) ([]models.Song, error) {
	cursor, err := s.songs.Find(ctx, bson.M{})
	if err != nil {
		utils.Logger.Error("MongoStorage.List - Find failed", zap.Error(err))
		return nil, fmt.Errorf("MongoStorage.List - Find failed: %w", err)
	}
	defer cursor.Close(ctx)

	songs := []models.Song{}
	if err := cursor.All(ctx, &songs); err != nil {
		utils.Logger.Error("MongoStorage.List - cursor.All failed", zap.Error(err))
		return nil, fmt.Errorf("MongoStorage.List - cursor.All failed: %w", err)
	}
	return songs, nil
}

func (s *MongoStorage) Update(ctx context.Context, id string, input *models.SongInput) (*models.Song, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"title":      input.Title,
		"artist":     input.Artist,
		"album":      input.Album,
		"genre":      input.Genre,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Song
	err = s.songs.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.Logger.Error("MongoStorage.Update - FindOneAndUpdate failed", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("MongoStorage.Update - FindOneAndUpdate failed: %w", err)
	}
	return &updated, nil
}

func (s *MongoStorage) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := s.songs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		utils.Logger.Error("MongoStorage.Delete - DeleteOne failed", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("MongoStorage.Delete - DeleteOne failed: %w", err)
	}
	if result.DeletedCount == 0 {
		return storage.ErrSongNotFound
	}
	return nil
}

func (s *MongoStorage) Count(ctx context.Context) (int64, error) {
	n, err := s.songs.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.Logger.Error("MongoStorage.Count - CountDocuments failed", zap.Error(err))
		return 0, fmt.Errorf("MongoStorage.Count - CountDocuments failed: %w", err)
	}
	return n, nil
}

func (s *MongoStorage) CountDistinct(ctx context.Context, field string) (int, error) {
	if !groupableFields[field] {
		return 0, fmt.Errorf("MongoStorage.CountDistinct - unsupported field %q", field)
	}
	values, err := s.songs.Distinct(ctx, field, bson.M{})
	if err != nil {
		utils.Logger.Error("MongoStorage.CountDistinct - Distinct failed", zap.Error(err), zap.String("field", field))
		return 0, fmt.Errorf("MongoStorage.CountDistinct - Distinct failed: %w", err)
	}
	return len(values), nil
}

func (s *MongoStorage) GroupCount(ctx context.Context, field string) ([]models.GroupCount, error) {
	if !groupableFields[field] {
		return nil, fmt.Errorf("MongoStorage.GroupCount - unsupported field %q", field)
	}
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	groups := []models.GroupCount{}
	if err := s.aggregate(ctx, pipeline, &groups); err != nil {
		utils.Logger.Error("MongoStorage.GroupCount - aggregate failed", zap.Error(err), zap.String("field", field))
		return nil, fmt.Errorf("MongoStorage.GroupCount - aggregate failed: %w", err)
	}
	return groups, nil
}

func (s *MongoStorage) AlbumsByArtist(ctx context.Context) ([]models.ArtistAlbums, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$artist"},
			{Key: "albums", Value: bson.D{{Key: "$addToSet", Value: "$album"}}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "totalAlbums", Value: bson.D{{Key: "$size", Value: "$albums"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	rows := []models.ArtistAlbums{}
	if err := s.aggregate(ctx, pipeline, &rows); err != nil {
		utils.Logger.Error("MongoStorage.AlbumsByArtist - aggregate failed", zap.Error(err))
		return nil, fmt.Errorf("MongoStorage.AlbumsByArtist - aggregate failed: %w", err)
	}
	return rows, nil
}

func (s *MongoStorage) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := s.songs.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
