package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/middleware"
	"github.com/myaccountdemo/account_api/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// sortableRecordFields whitelists the columns the records grid may sort by.
// Anything else is rejected at binding time, before the value gets near SQL.
var sortableRecordFields = map[string]bool{
	"get_date":         true,
	"give_date":        true,
	"amount":           true,
	"getmoney":         true,
	"givemoney":        true,
	"interest_amount":  true,
	"net_amount":       true,
	"transaction_type": true,
	"party_name":       true,
	"full_name":        true,
	"agent":            true,
	"utino":            true,
}

// loginRateLimit throttles credential guessing on the login endpoint.
const loginRateLimit = "5-M"

// RegisterRoutes wires every endpoint onto the engine. Only validate-token
// sits behind the auth middleware; the data endpoints are public, matching
// the frontend the API serves.
func RegisterRoutes(engine *gin.Engine, services portssvc.ServiceContainer, cfg *config.Config) {
	registerSortFieldValidator()

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
	}))

	engine.GET("/health", HealthCheck)

	if !cfg.IsProduction {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := NewAuthHandler(services.Auth)
	accountHandler := NewAccountHandler(services.Account)
	recordHandler := NewAccountRecordHandler(services.AccountRecord)
	employeeHandler := NewEmployeeHandler(services.Employee)
	detailsHandler := NewEmployeeDetailsHandler(services.EmployeeDetails)
	userHandler := NewUserHandler(services.User)

	api := engine.Group("/api")

	auth := api.Group("/Auth")
	auth.POST("/login", loginRateLimiter(), authHandler.Login)
	auth.POST("/validate-token", middleware.AuthMiddleware(cfg), authHandler.ValidateToken)

	account := api.Group("/Account")
	account.POST("/CreateGetMoney", accountHandler.CreateGetMoney)
	account.POST("/CreateGiveMoney", accountHandler.CreateGiveMoney)
	account.POST("/CompleteTransaction", accountHandler.CompleteTransaction)
	account.POST("", accountHandler.Create)
	account.GET("", accountHandler.List)
	account.GET("/by-date-range", accountHandler.ListByDateRange)
	account.GET("/:id", accountHandler.GetByID)
	account.PUT("/:id", accountHandler.Update)
	account.DELETE("/:id", accountHandler.Delete)

	api.POST("/AccountRecord/records", recordHandler.GetRecords)

	employee := api.Group("/Employee")
	employee.POST("", employeeHandler.Create)
	employee.GET("", employeeHandler.List)
	employee.GET("/:id", employeeHandler.GetByID)
	employee.PUT("/:id", employeeHandler.Update)
	employee.DELETE("/:id", employeeHandler.Delete)

	details := api.Group("/EmployeeDetails")
	details.POST("", detailsHandler.Create)
	details.GET("/basic-info", detailsHandler.BasicInfo)
	details.GET("/all-details", detailsHandler.AllDetails)

	user := api.Group("/User")
	user.POST("", userHandler.Create)
	user.GET("", userHandler.List)
}

func registerSortFieldValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("sortfield", func(fl validator.FieldLevel) bool {
			return sortableRecordFields[fl.Field().String()]
		})
	}
}

func loginRateLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(loginRateLimit)
	if err != nil {
		panic(err)
	}
	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
