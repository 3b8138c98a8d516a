package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/franciscosanchezn/gin-mealplan-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-mealplan-api/internal/config"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/controllers"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/database"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/middleware"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/services"
)

var (
	db                 *gorm.DB
	recipeService      services.RecipeService
	catalogService     services.CatalogService
	profileService     services.ProfileService
	planService        services.PlanService
	coverageService    services.CoverageService
	shoppingService    services.ShoppingService
	recipeController   controllers.RecipeController
	profileController  controllers.ProfileController
	planController     controllers.PlanController
	catalogController  controllers.CatalogController
	shoppingController controllers.ShoppingController
	configuration      *config.Config
)

// @title Meal Plan API
// @version 1.0
// @description Deterministic meal planning, nutrition coverage and shopping lists
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	setupServices()

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection and runs migrations
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.ConfigFromApp(conf))
	checkPanicErr(err)

	checkPanicErr(database.AutoMigrate(db))

	// Seed only if the catalog is empty
	var count int64
	db.Model(&models.IngredientCatalogEntry{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the ingredient catalog with common defaults
func seedDatabase() {
	log.Info("Seeding database with initial data")
	entries := []models.IngredientCatalogEntry{
		{ID: uuid.NewString(), OwnerID: "00000000-0000-0000-0000-000000000000", IngredientBase: "arroz", DefaultUnit: "g", DefaultCategory: "Despensa", IsActive: true},
		{ID: uuid.NewString(), OwnerID: "00000000-0000-0000-0000-000000000000", IngredientBase: "cebolla", DefaultUnit: "unidad", DefaultCategory: "Verdura", IsActive: true},
		{ID: uuid.NewString(), OwnerID: "00000000-0000-0000-0000-000000000000", IngredientBase: "pollo", DefaultUnit: "g", DefaultCategory: "Carne", IsActive: true},
		{ID: uuid.NewString(), OwnerID: "00000000-0000-0000-0000-000000000000", IngredientBase: "tomate", DefaultUnit: "g", DefaultCategory: "Verdura", IsActive: true},
	}
	for _, entry := range entries {
		db.Create(&entry)
	}
	log.Info("Database seeded successfully")
}

// setupServices wires services and controllers over the shared database handle
func setupServices() {
	catalogService = services.NewCatalogService(db)
	recipeService = services.NewRecipeService(db, catalogService)
	profileService = services.NewProfileService(db)
	planService = services.NewPlanService(db, recipeService, configuration.PlanWeeks)
	coverageService = services.NewCoverageService(db, planService, profileService, configuration.DefaultServings)
	shoppingService = services.NewShoppingService(db, planService, configuration.DefaultServings)

	recipeController = controllers.NewRecipeController(recipeService)
	profileController = controllers.NewProfileController(profileService)
	planController = controllers.NewPlanController(planService, coverageService)
	catalogController = controllers.NewCatalogController(catalogService)
	shoppingController = controllers.NewShoppingController(shoppingService)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	setupRoutes(router)

	return router
}

// Add this handler for testing.
// TODO remove when the identity provider issues real tokens
func generateTestTokenHandler(c *gin.Context) {
	claims := jwt.MapClaims{
		"uid": uuid.NewString(),
		"exp": time.Now().Add(time.Hour * 24).Unix(), // 24 hours
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(configuration.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      tokenString,
		"type":       "Bearer",
		"expires_in": 86400, // 24 hours in seconds
	})
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Test token generation endpoint
	router.GET("/test-token", generateTestTokenHandler)

	v1 := router.Group("/api/v1")
	{
		// Every resource is owner-scoped, so the whole API sits behind JWT
		api := v1.Group("")
		api.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
		{
			api.GET("/recipes", recipeController.GetAllRecipes)
			api.GET("/recipes/:id", recipeController.GetRecipeByID)
			api.POST("/recipes", recipeController.CreateRecipe)
			api.PUT("/recipes/:id", recipeController.UpdateRecipe)
			api.DELETE("/recipes/:id", recipeController.DeleteRecipe)

			api.GET("/profiles", profileController.GetAllProfiles)
			api.GET("/profiles/:id", profileController.GetProfileByID)
			api.GET("/profiles/:id/targets", profileController.GetProfileTargets)
			api.POST("/profiles", profileController.CreateProfile)
			api.PUT("/profiles/:id", profileController.UpdateProfile)
			api.DELETE("/profiles/:id", profileController.DeleteProfile)

			api.GET("/catalog", catalogController.ListEntries)
			api.POST("/catalog", catalogController.CreateEntry)
			api.DELETE("/catalog/:id", catalogController.DeactivateEntry)

			api.GET("/plans", planController.GetPlan)
			api.PUT("/plans", planController.SavePlan)
			api.POST("/plans/regenerate", planController.Regenerate)
			api.POST("/plans/regenerate-week", planController.RegenerateWeek)
			api.GET("/plans/saved", planController.ListSavedPlans)
			api.GET("/plans/:id/coverage/weekly", planController.WeeklyCoverage)
			api.GET("/plans/:id/coverage/daily", planController.DailyCoverage)
			api.GET("/plans/:id/shopping", shoppingController.GetList)

			api.POST("/shopping/items", shoppingController.AddManualItem)
			api.PATCH("/shopping/items/:id", shoppingController.UpdateManualItem)
			api.DELETE("/shopping/items/:id", shoppingController.DeleteManualItem)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-mealplan-api",
	})
}
