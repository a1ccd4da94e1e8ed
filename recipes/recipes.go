package recipes

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mixie/models"
	"mixie/mq"
	"mixie/utils"
	"mixie/validate"

	"github.com/julienschmidt/httprouter"
)

// duplicateNameMessage is the field-level message the form shows in the name
// slot on a uniqueness conflict.
const duplicateNameMessage = "Recipe with name already exists"

// GetRecipes lists the caller's recipes.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := utils.UserEmailFromContext(r.Context())
	if email == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := ListByOwner(r.Context(), email)
	if err != nil {
		log.Printf("list recipes failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetRecipe returns one recipe by id, 404 unless the caller owns it.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := utils.UserEmailFromContext(r.Context())
	if email == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	recipe, err := FindByOwnerAndID(r.Context(), ps.ByName("id"), email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
			return
		}
		log.Printf("find recipe failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// CreateRecipe validates the body, stores it for the caller, and returns the
// stored recipe with its assigned id.
func CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := utils.UserEmailFromContext(r.Context())
	if email == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body models.CreateRecipe
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := validate.CreateRecipe(body); errs != nil {
		utils.RespondWithFieldErrors(w, http.StatusBadRequest, errs.Fields())
		return
	}

	recipe, err := Create(r.Context(), email, body)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			utils.RespondWithFieldErrors(w, http.StatusBadRequest, map[string]string{
				"name": duplicateNameMessage,
			})
			return
		}
		log.Printf("create recipe failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	mq.Emit(r.Context(), mq.Event{EntityType: "recipe", Method: "created", EntityID: recipe.ID, UserEmail: email})
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// UpdateRecipe replaces name and ingredients of an owned recipe. Name and
// ingredients always change together; there are no partial patches.
func UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := utils.UserEmailFromContext(r.Context())
	if email == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body models.CreateRecipe
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := validate.CreateRecipe(body); errs != nil {
		utils.RespondWithFieldErrors(w, http.StatusBadRequest, errs.Fields())
		return
	}

	id := ps.ByName("id")
	if err := Update(r.Context(), id, email, body); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		case errors.Is(err, ErrDuplicateName):
			utils.RespondWithFieldErrors(w, http.StatusBadRequest, map[string]string{
				"name": duplicateNameMessage,
			})
		default:
			log.Printf("update recipe failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	mq.Emit(r.Context(), mq.Event{EntityType: "recipe", Method: "updated", EntityID: id, UserEmail: email})
	w.WriteHeader(http.StatusNoContent)
}

// DeleteRecipe removes an owned recipe.
func DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := utils.UserEmailFromContext(r.Context())
	if email == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := ps.ByName("id")
	if err := Delete(r.Context(), id, email); err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
			return
		}
		log.Printf("delete recipe failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	mq.Emit(r.Context(), mq.Event{EntityType: "recipe", Method: "deleted", EntityID: id, UserEmail: email})
	w.WriteHeader(http.StatusNoContent)
}
