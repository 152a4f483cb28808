package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/xavierca1/leadtrack/internal/entity"
)

const leadCollection = "leads"

type leadDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Status    string        `bson:"status"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d *leadDocument) toEntity() *entity.Lead {
	return &entity.Lead{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

type MongoLeadRepository struct {
	Collection *mongo.Collection
}

func NewMongoLeadRepository(db *mongo.Database) *MongoLeadRepository {
	return &MongoLeadRepository{Collection: db.Collection(leadCollection)}
}

// EnsureIndexes creates the unique email index that backs the conflict check
// under concurrent creates.
func (r *MongoLeadRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leads := []*entity.Lead{}
	for cursor.Next(ctx) {
		var doc leadDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		leads = append(leads, doc.toEntity())
	}

	return leads, cursor.Err()
}

func (r *MongoLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	var doc leadDocument
	err := r.Collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *MongoLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	doc := leadDocument{
		Name:      lead.Name,
		Email:     lead.Email,
		Status:    lead.Status,
		CreatedAt: lead.CreatedAt,
	}

	res, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		lead.ID = oid.Hex()
	}

	return nil
}
