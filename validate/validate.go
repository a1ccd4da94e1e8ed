package validate

import (
	"fmt"

	"mixie/models"
)

// RequiredMessage is the per-field message for an empty required string.
const RequiredMessage = "Required"

// Errors maps a field path ("name", "ingredients[2].amount") to a
// user-displayable message. The zero-length map means the value is valid.
type Errors map[string]string

func (e Errors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e))
}

// Fields returns the path→message map for the wire shape {"errors": {...}}.
func (e Errors) Fields() map[string]string { return e }

// required flags exact empty strings only. A whitespace-only value counts as
// present; trimming here would reject amounts a user deliberately typed.
func required(errs Errors, path, value string) {
	if value == "" {
		errs[path] = RequiredMessage
	}
}

func ingredientAt(errs Errors, prefix string, in models.Ingredient) {
	required(errs, prefix+".name", in.Name)
	required(errs, prefix+".amount", in.Amount)
}

// Ingredient checks a single ingredient, addressing failures as "name" and
// "amount".
func Ingredient(in models.Ingredient) Errors {
	errs := Errors{}
	required(errs, "name", in.Name)
	required(errs, "amount", in.Amount)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CreateRecipe checks a creation payload: non-empty name, at least one
// ingredient, every ingredient complete. All failing fields are reported.
func CreateRecipe(in models.CreateRecipe) Errors {
	errs := Errors{}
	required(errs, "name", in.Name)
	if len(in.Ingredients) == 0 {
		errs["ingredients"] = RequiredMessage
	}
	for i, ing := range in.Ingredients {
		ingredientAt(errs, fmt.Sprintf("ingredients[%d]", i), ing)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Recipe checks a full recipe: CreateRecipe rules plus a non-empty id. The id
// is opaque; no format beyond non-emptiness is enforced here.
func Recipe(in models.Recipe) Errors {
	errs := Errors{}
	required(errs, "id", in.ID)
	required(errs, "name", in.Name)
	if len(in.Ingredients) == 0 {
		errs["ingredients"] = RequiredMessage
	}
	for i, ing := range in.Ingredients {
		ingredientAt(errs, fmt.Sprintf("ingredients[%d]", i), ing)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
