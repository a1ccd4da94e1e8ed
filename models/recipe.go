package models

// Ingredient is one row of a recipe. Amount is free-form text so user-entered
// units ("2 cups", "a pinch") survive round-trips untouched.
type Ingredient struct {
	Name   string `json:"name" bson:"name"`
	Amount string `json:"amount" bson:"amount"`
}

// Recipe is the API shape of a stored recipe. ID is the hex form of the
// storage identifier, assigned on creation and immutable after. The owning
// user never appears on the wire; ownership is resolved from the session.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// CreateRecipe is a Recipe before the storage layer has assigned its ID.
type CreateRecipe struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// User is a registered account. Password hashes never serialize to clients.
type User struct {
	Email        string `json:"email" bson:"email"`
	PasswordHash []byte `json:"-" bson:"passwordHash"`
}
