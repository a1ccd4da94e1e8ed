package routes

import (
	"net/http"

	"mixie/auth"
	"mixie/middleware"
	"mixie/ratelim"
	"mixie/recipes"
	"mixie/utils"

	"github.com/julienschmidt/httprouter"
)

// NewRouter builds the full route table. Unregistered methods on known paths
// answer 405 with the same JSON error shape as everything else.
func NewRouter() *httprouter.Router {
	router := httprouter.New()
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "ok"})
	})

	AddAuthRoutes(router)
	AddRecipeRoutes(router)
	return router
}

func AddRecipeRoutes(router *httprouter.Router) {
	router.GET("/api/v1/recipes", middleware.Authenticate(recipes.GetRecipes))
	router.POST("/api/v1/recipes", middleware.Authenticate(recipes.CreateRecipe))
	router.GET("/api/v1/recipes/:id", middleware.Authenticate(recipes.GetRecipe))
	router.PUT("/api/v1/recipes/:id", middleware.Authenticate(recipes.UpdateRecipe))
	router.DELETE("/api/v1/recipes/:id", middleware.Authenticate(recipes.DeleteRecipe))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/v1/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/v1/auth/logout", auth.Logout)
}
