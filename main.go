package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Divyansh670/FeedbackHub/routes"
	"github.com/Divyansh670/FeedbackHub/storage"
	"github.com/Divyansh670/FeedbackHub/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func newApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	// Health check endpoint
	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/login", routes.Login)
		auth.Get("/me", accessTokenVerifierMiddleware, routes.GetCurrentUser)
	}

	users := app.Party("/api/users")
	{
		users.Get("/team", accessTokenVerifierMiddleware, utils.ManagerOnlyMiddleware, routes.GetTeamMembers)
	}

	feedback := app.Party("/api/feedback")
	{
		feedback.Get("/", accessTokenVerifierMiddleware, routes.ListFeedback)
		feedback.Post("/", accessTokenVerifierMiddleware, utils.ManagerOnlyMiddleware, routes.SubmitFeedback)
		feedback.Put("/{id:uint}", accessTokenVerifierMiddleware, routes.UpdateFeedback)
		feedback.Post("/{id:uint}/acknowledge", accessTokenVerifierMiddleware, routes.AcknowledgeFeedback)
	}

	dashboard := app.Party("/api/dashboard")
	{
		dashboard.Get("/stats", accessTokenVerifierMiddleware, utils.ManagerOnlyMiddleware, routes.GetDashboardStats)
	}

	return app
}

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()

	app := newApp()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000" // fallback for local dev
	}
	addr := ":" + port

	fmt.Println("Starting server on", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
