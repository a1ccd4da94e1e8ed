package recipes

import (
	"context"
	"testing"

	"mixie/db"
	"mixie/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "mixiedb.recipes"

func mangoBlast() models.CreateRecipe {
	return models.CreateRecipe{
		Name:        "Mango Blast",
		Ingredients: []models.Ingredient{{Name: "mango", Amount: "1 cup"}},
	}
}

func TestCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and keeps fields", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := Create(context.Background(), "a@x.com", mangoBlast())
		require.NoError(mt, err)
		assert.NotEmpty(mt, created.ID)
		assert.Equal(mt, "Mango Blast", created.Name)
		assert.Equal(mt, []models.Ingredient{{Name: "mango", Amount: "1 cup"}}, created.Ingredients)
	})

	mt.Run("duplicate name per owner", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: mixiedb.recipes index: userEmail_1_name_1",
		}))

		_, err := Create(context.Background(), "a@x.com", mangoBlast())
		assert.ErrorIs(mt, err, ErrDuplicateName)
	})
}

func TestCreateThenFindByIDRoundTrip(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("round trip", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := Create(context.Background(), "a@x.com", mangoBlast())
		require.NoError(mt, err)

		oid, err := primitive.ObjectIDFromHex(created.ID)
		require.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: created.Name},
			{Key: "ingredients", Value: bson.A{bson.D{
				{Key: "name", Value: "mango"},
				{Key: "amount", Value: "1 cup"},
			}}},
			{Key: "userEmail", Value: "a@x.com"},
		}))

		found, err := FindByID(context.Background(), created.ID)
		require.NoError(mt, err)
		assert.Equal(mt, created, found)
	})
}

func TestFindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("malformed id", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		_, err := FindByID(context.Background(), "not-a-hex-id")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("missing document", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestFindByOwnerAndID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("foreign owner looks missing", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		// The owner filter matched nothing; the response is empty whether the
		// recipe exists under another owner or not at all.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := FindByOwnerAndID(context.Background(), primitive.NewObjectID().Hex(), "b@x.com")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestListByOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("maps documents to api models", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: first},
				{Key: "name", Value: "Mango Blast"},
				{Key: "ingredients", Value: bson.A{bson.D{
					{Key: "name", Value: "mango"},
					{Key: "amount", Value: "1 cup"},
				}}},
				{Key: "userEmail", Value: "a@x.com"},
			}, bson.D{
				{Key: "_id", Value: second},
				{Key: "name", Value: "Green Machine"},
				{Key: "ingredients", Value: bson.A{bson.D{
					{Key: "name", Value: "spinach"},
					{Key: "amount", Value: "2 handfuls"},
				}}},
				{Key: "userEmail", Value: "a@x.com"},
			}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		list, err := ListByOwner(context.Background(), "a@x.com")
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, first.Hex(), list[0].ID)
		assert.Equal(mt, "Mango Blast", list[0].Name)
		assert.Equal(mt, second.Hex(), list[1].ID)
	})

	mt.Run("no recipes yields empty slice", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		list, err := ListByOwner(context.Background(), "nobody@x.com")
		require.NoError(mt, err)
		assert.NotNil(mt, list)
		assert.Empty(mt, list)
	})
}

func TestUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("owned recipe", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := Update(context.Background(), primitive.NewObjectID().Hex(), "a@x.com", mangoBlast())
		assert.NoError(mt, err)
	})

	mt.Run("not owned or missing", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := Update(context.Background(), primitive.NewObjectID().Hex(), "b@x.com", mangoBlast())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("rename collides with sibling", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := Update(context.Background(), primitive.NewObjectID().Hex(), "a@x.com", mangoBlast())
		assert.ErrorIs(mt, err, ErrDuplicateName)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		err := Update(context.Background(), "nope", "a@x.com", mangoBlast())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("owned recipe", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := Delete(context.Background(), primitive.NewObjectID().Hex(), "a@x.com")
		assert.NoError(mt, err)
	})

	mt.Run("not owned or missing", func(mt *mtest.T) {
		db.RecipeCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := Delete(context.Background(), primitive.NewObjectID().Hex(), "b@x.com")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
