package form

import (
	"context"
	"errors"

	"mixie/models"
	"mixie/validate"
)

// SubmitFunc delivers a valid draft to the API. It may return
// validate.Errors to push server-side field errors (a duplicate name) back
// into the same per-field display slots as local validation.
type SubmitFunc func(ctx context.Context, draft models.CreateRecipe) error

// Recipe is an editable draft with a dynamically sized ingredient list. The
// list never goes below one row.
type Recipe struct {
	Name        string
	Ingredients []models.Ingredient

	// FieldErrors holds the errors currently shown next to fields, local or
	// server-sent.
	FieldErrors validate.Errors

	submit SubmitFunc
}

// NewRecipe starts a blank draft with a single empty ingredient row.
func NewRecipe(submit SubmitFunc) *Recipe {
	return &Recipe{
		Ingredients: []models.Ingredient{{}},
		submit:      submit,
	}
}

// EditRecipe starts a draft prefilled from an existing recipe.
func EditRecipe(initial models.Recipe, submit SubmitFunc) *Recipe {
	ingredients := make([]models.Ingredient, len(initial.Ingredients))
	copy(ingredients, initial.Ingredients)
	if len(ingredients) == 0 {
		ingredients = []models.Ingredient{{}}
	}
	return &Recipe{
		Name:        initial.Name,
		Ingredients: ingredients,
		submit:      submit,
	}
}

// AddIngredient appends an empty row at the end.
func (f *Recipe) AddIngredient() {
	f.Ingredients = append(f.Ingredients, models.Ingredient{})
}

// CanRemove reports whether the remove action is enabled.
func (f *Recipe) CanRemove() bool {
	return len(f.Ingredients) > 1
}

// RemoveIngredient drops the row at index. Removing the sole remaining row
// is a no-op, as is an out-of-range index.
func (f *Recipe) RemoveIngredient(index int) {
	if !f.CanRemove() || index < 0 || index >= len(f.Ingredients) {
		return
	}
	f.Ingredients = append(f.Ingredients[:index], f.Ingredients[index+1:]...)
}

// Submit validates the draft locally and, only when clean, hands it to the
// submit function. Field errors from either side land in FieldErrors.
func (f *Recipe) Submit(ctx context.Context) error {
	draft := models.CreateRecipe{Name: f.Name, Ingredients: f.Ingredients}

	if errs := validate.CreateRecipe(draft); errs != nil {
		f.FieldErrors = errs
		return errs
	}
	f.FieldErrors = nil

	err := f.submit(ctx, draft)
	if err != nil {
		var fieldErrs validate.Errors
		if errors.As(err, &fieldErrs) {
			f.FieldErrors = fieldErrs
		}
		return err
	}
	return nil
}
