package recipes

import (
	"context"
	"errors"

	"mixie/db"
	"mixie/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound covers both "no such recipe" and "owned by someone else".
	// Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("recipe not found")

	// ErrDuplicateName reports a (userEmail, name) unique index violation.
	ErrDuplicateName = errors.New("recipe with name already exists")
)

// recipeDoc is the stored document. The owner lives only here, never on the
// API model.
type recipeDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"name"`
	Ingredients []models.Ingredient `bson:"ingredients"`
	UserEmail   string              `bson:"userEmail"`
}

func (d recipeDoc) toAPI() models.Recipe {
	return models.Recipe{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Ingredients: d.Ingredients,
	}
}

// ListByOwner returns every recipe owned by email, in insertion order.
func ListByOwner(ctx context.Context, email string) ([]models.Recipe, error) {
	cursor, err := db.RecipeCollection.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []recipeDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]models.Recipe, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toAPI())
	}
	return out, nil
}

// FindByID looks a recipe up by identifier alone. Ownership is not checked
// here; every mutation path filters by owner instead.
func FindByID(ctx context.Context, id string) (models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Recipe{}, ErrNotFound
	}

	var doc recipeDoc
	err = db.RecipeCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Recipe{}, ErrNotFound
		}
		return models.Recipe{}, err
	}
	return doc.toAPI(), nil
}

// FindByOwnerAndID is the read path the API serves single recipes from: the
// owner filter makes a foreign recipe indistinguishable from a missing one.
func FindByOwnerAndID(ctx context.Context, id, email string) (models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Recipe{}, ErrNotFound
	}

	var doc recipeDoc
	err = db.RecipeCollection.FindOne(ctx, bson.M{"_id": oid, "userEmail": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Recipe{}, ErrNotFound
		}
		return models.Recipe{}, err
	}
	return doc.toAPI(), nil
}

// Create stores a new recipe for email and returns it with its assigned id.
// The unique index on (userEmail, name) decides duplicate races; there is no
// application-level pre-check.
func Create(ctx context.Context, email string, body models.CreateRecipe) (models.Recipe, error) {
	doc := recipeDoc{
		Name:        body.Name,
		Ingredients: body.Ingredients,
		UserEmail:   email,
	}

	result, err := db.RecipeCollection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Recipe{}, ErrDuplicateName
		}
		return models.Recipe{}, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toAPI(), nil
}

// Update replaces name and ingredients of the recipe with the given id, but
// only when it is owned by email. A zero match count means not-found or
// not-owned; both become ErrNotFound.
func Update(ctx context.Context, id, email string, body models.CreateRecipe) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := db.RecipeCollection.UpdateOne(ctx,
		bson.M{"_id": oid, "userEmail": email},
		bson.M{"$set": bson.M{
			"name":        body.Name,
			"ingredients": body.Ingredients,
		}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateName
		}
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the recipe with the given id when owned by email.
func Delete(ctx context.Context, id, email string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := db.RecipeCollection.DeleteOne(ctx, bson.M{"_id": oid, "userEmail": email})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
