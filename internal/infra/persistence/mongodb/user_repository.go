package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
)

// caseInsensitive matches the collation of the unique email index, so lookups
// and the uniqueness constraint agree on what counts as the same address.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// userDocument is the persistence model for a user record.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// userRepository implements repository.UserRepository on a mongo collection.
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		users: db.Collection(usersCollection),
	}
}

// Insert persists a new user document and writes the generated id and
// timestamps back to the entity. A duplicate email surfaces as ErrEmailTaken.
func (repo *userRepository) Insert(ctx context.Context, user *entity.User) error {
	doc := fromUserDomain(user)
	doc.ID = primitive.NewObjectID()

	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := repo.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to insert user")
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt

	return nil
}

// FindByID retrieves a single user by the hex form of their ObjectID.
// A malformed id is treated the same as an absent one.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	var doc userDocument
	if err := repo.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&doc), nil
}

// FindByEmail retrieves a single user by email, matched case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	err := repo.users.FindOne(ctx, bson.M{"email": email}, options.FindOne().SetCollation(caseInsensitive)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&doc), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence documents.

// toUserDomain converts a mongo userDocument to a domain User entity.
func toUserDomain(data *userDocument) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID.Hex(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a mongo userDocument for persistence.
func fromUserDomain(data *entity.User) *userDocument {
	if data == nil {
		return nil
	}

	return &userDocument{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
}
